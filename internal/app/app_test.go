package app

import (
	"os"
	"strings"
	"testing"

	"github.com/prismanews/prisma/internal/bias"
	"github.com/prismanews/prisma/internal/logger"
	"github.com/prismanews/prisma/internal/news"
	"github.com/prismanews/prisma/internal/render"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func TestFilterInternational(t *testing.T) {
	items := []news.Item{
		{Source: "A", Title: "Spain approves new budget", Link: "https://a/1"},
		{Source: "B", Title: "Weather across the Alps", Link: "https://b/1"},
		{Source: "C", Title: "Spain approves new budget", Link: "https://a/1"},
		{Source: "D", Title: "Strike hits Madrid airport", Link: "https://d/1"},
	}

	kept := filterInternational(items, 0)
	if len(kept) != 2 {
		t.Fatalf("kept %d items, want 2: %+v", len(kept), kept)
	}
	if kept[0].Source != "A" || kept[1].Source != "D" {
		t.Errorf("wrong items kept: %+v", kept)
	}
}

func TestFilterInternational_Cap(t *testing.T) {
	items := []news.Item{
		{Title: "Spain one", Link: "https://x/1"},
		{Title: "Spain two", Link: "https://x/2"},
		{Title: "Spain three", Link: "https://x/3"},
	}
	if kept := filterInternational(items, 2); len(kept) != 2 {
		t.Errorf("cap 2 kept %d items", len(kept))
	}
}

func TestFormatDigestMessage(t *testing.T) {
	cards := []render.Card{
		{
			Headline: "Tema principal: Reforma",
			Bias:     bias.Result{Label: bias.LabelBalanced, PctA: 50, PctB: 50},
			Entries: []render.Entry{
				{Source: "El Diario", Title: "Titular uno", Link: "https://e/1"},
				{Source: "La Voz", Title: "Titular dos", Link: "https://e/2"},
				{Source: "Mundo", Title: "Titular tres", Link: "https://e/3"},
				{Source: "Extra", Title: "Titular cuatro", Link: "https://e/4"},
			},
		},
		{Headline: "En el foco: Sequía", Bias: bias.Result{Label: bias.LabelLeanConservative, PctA: 45, PctB: 55}},
		{Headline: "Tercero"},
		{Headline: "Cuarto fuera del digest"},
	}

	msg := formatDigestMessage(cards, 3)

	if !strings.Contains(msg, "<b>1. Tema principal: Reforma</b>") {
		t.Error("first card missing")
	}
	if !strings.Contains(msg, bias.LabelBalanced+" (50% / 50%)") {
		t.Error("bias line missing")
	}
	if strings.Contains(msg, "Cuarto fuera del digest") {
		t.Error("cards past the limit must not appear")
	}
	if strings.Contains(msg, "Titular cuatro") {
		t.Error("entries past the per-card limit must not appear")
	}
	if got := strings.Count(msg, "<a href="); got != 3 {
		t.Errorf("digest shows %d links, want 3", got)
	}
}
