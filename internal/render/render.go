// Package render turns the finished clusters into the static site artifacts:
// index.html, sitemap.xml and robots.txt.
package render

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/prismanews/prisma/internal/bias"
)

// maxEntriesPerCard caps how many member headlines a card shows.
const maxEntriesPerCard = 6

// Entry is one member headline of a card.
type Entry struct {
	Source string
	Title  string
	Link   string
}

// Card is one rendered cluster: the derived topic headline, its bias
// annotation and the member links.
type Card struct {
	Headline string
	Bias     bias.Result
	Entries  []Entry
}

// Page is everything the template needs for one batch run.
type Page struct {
	GeneratedAt time.Time
	SourceCount int
	BaseURL     string
	Cards       []Card
}

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<title>Prisma noticias IA</title>
<meta name="description"
content="Comparador inteligente de noticias. Analiza multiples medios para ofrecer contexto.">
<link rel="stylesheet" href="prisma.css?v={{.CacheBuster}}">
<meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
<header class="header">
<h1>PRISMA</h1>
<p>Mas contexto menos ruido</p>
<p>{{.SourceCount}} medios analizados</p>
<p>Actualizado: {{.Updated}}</p>
</header>
<div class="container">
{{- range $i, $card := .Cards}}
<div class="{{if eq $i 0}}card portada{{else}}card{{end}}">
<h2>{{$card.Headline}}</h2>
<div class="sesgo">Sesgo IA: {{$card.Bias.Label}} ({{printf "%.0f" $card.Bias.PctA}}% / {{printf "%.0f" $card.Bias.PctB}}%)</div>
{{- range $card.Entries}}
<p><b>{{.Source}}:</b> <a href="{{.Link}}" target="_blank">{{.Title}}</a></p>
{{- end}}
</div>
{{- end}}
<footer style="text-align:center;margin:40px 0;font-size:.9em;opacity:.75">
Contacto:
<a href="mailto:contacto@prismanews.com">contacto@prismanews.com</a><br>
Comparador automatico de noticias con IA - Actualizacion continua
</footer>
</div>
</body>
</html>
`))

type pageData struct {
	SourceCount int
	Updated     string
	CacheBuster int64
	Cards       []Card
}

// WriteSite writes the three artifacts into dir, creating it if needed.
func WriteSite(dir string, p Page) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cards := make([]Card, len(p.Cards))
	for i, c := range p.Cards {
		if len(c.Entries) > maxEntriesPerCard {
			c.Entries = c.Entries[:maxEntriesPerCard]
		}
		cards[i] = c
	}

	f, err := os.Create(filepath.Join(dir, "index.html"))
	if err != nil {
		return fmt.Errorf("create index.html: %w", err)
	}
	data := pageData{
		SourceCount: p.SourceCount,
		Updated:     p.GeneratedAt.Format("02/01 15:04"),
		CacheBuster: p.GeneratedAt.Unix(),
		Cards:       cards,
	}
	if err := pageTemplate.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("render index.html: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close index.html: %w", err)
	}

	sitemap := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
<url><loc>%s</loc></url>
</urlset>`, p.BaseURL)
	if err := os.WriteFile(filepath.Join(dir, "sitemap.xml"), []byte(sitemap), 0644); err != nil {
		return fmt.Errorf("write sitemap.xml: %w", err)
	}

	robots := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %ssitemap.xml\n", p.BaseURL)
	if err := os.WriteFile(filepath.Join(dir, "robots.txt"), []byte(robots), 0644); err != nil {
		return fmt.Errorf("write robots.txt: %w", err)
	}

	return nil
}
