package rss

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prismanews/prisma/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func writeSources(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSources(t *testing.T) {
	path := writeSources(t, `
sources:
  - name: El Diario
    url: https://example.com/rss
  - name: World Wire
    url: https://example.org/feed
    scope: international
    max_items: 5
`)
	sources, err := LoadSources(path)
	if err != nil {
		t.Fatalf("LoadSources: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("got %d sources", len(sources))
	}
	if sources[0].Scope != ScopeNational {
		t.Errorf("missing scope should default to national, got %q", sources[0].Scope)
	}
	if sources[1].Scope != ScopeInternational || sources[1].MaxItems != 5 {
		t.Errorf("source 1 parsed as %+v", sources[1])
	}
}

func TestLoadSources_Invalid(t *testing.T) {
	cases := map[string]string{
		"empty list":    "sources: []\n",
		"missing url":   "sources:\n  - name: X\n",
		"unknown scope": "sources:\n  - name: X\n    url: https://x\n    scope: galactic\n",
	}
	for name, body := range cases {
		if _, err := LoadSources(writeSources(t, body)); err == nil {
			t.Errorf("%s: want error", name)
		}
	}
	if _, err := LoadSources(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("missing file: want error")
	}
}

func rssBody(titles ...string) string {
	body := `<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>`
	for i, title := range titles {
		body += fmt.Sprintf("<item><title>%s</title><link>https://example.com/%d</link></item>", title, i)
	}
	return body + "</channel></rss>"
}

func TestFetchAll(t *testing.T) {
	national := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, rssBody("Primera &amp; principal", "Segunda", "Tercera"))
	}))
	defer national.Close()
	international := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, rssBody("Spain in focus", "Other news"))
	}))
	defer international.Close()
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer broken.Close()

	sources := []Source{
		{Name: "Nacional", URL: national.URL, Scope: ScopeNational},
		{Name: "Roto", URL: broken.URL, Scope: ScopeNational},
		{Name: "Mundo", URL: international.URL, Scope: ScopeInternational},
	}

	nat, intl := FetchAll(context.Background(), sources, 2, 2, 10)

	if len(nat) != 2 {
		t.Fatalf("national cap 2 should yield 2 items, got %d", len(nat))
	}
	if nat[0].Title != "Primera & principal" || nat[0].Source != "Nacional" {
		t.Errorf("first national item = %+v", nat[0])
	}
	if len(intl) != 2 {
		t.Fatalf("got %d international items", len(intl))
	}
	if intl[0].Title != "Spain in focus" {
		t.Errorf("international order not preserved: %+v", intl)
	}
}

func TestFetchAll_PerSourceOverride(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, rssBody("a1", "a2", "a3", "a4"))
	}))
	defer srv.Close()

	sources := []Source{{Name: "Uno", URL: srv.URL, Scope: ScopeNational, MaxItems: 1}}
	nat, _ := FetchAll(context.Background(), sources, 1, 8, 8)
	if len(nat) != 1 {
		t.Errorf("max_items override should cap at 1, got %d", len(nat))
	}
}

func TestFetchAll_AllSourcesDown(t *testing.T) {
	sources := []Source{{Name: "Fantasma", URL: "http://127.0.0.1:1", Scope: ScopeNational}}
	nat, intl := FetchAll(context.Background(), sources, 1, 8, 8)
	if len(nat) != 0 || len(intl) != 0 {
		t.Errorf("unreachable sources must contribute nothing, got %d/%d", len(nat), len(intl))
	}
}
