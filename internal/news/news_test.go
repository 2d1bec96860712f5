package news

import (
	"reflect"
	"testing"
)

func TestSanitize(t *testing.T) {
	in := []Item{
		{Source: "A", Title: "<b>La reforma</b> &amp; sus efectos", Link: " https://example.com/1 "},
		{Source: "B", Title: "   ", Link: "https://example.com/2"},
		{Source: "C", Title: "Sin enlace", Link: "  "},
		{Source: "D", Title: "Normal", Link: "https://example.com/3"},
	}
	out := Sanitize(in)

	if len(out) != 2 {
		t.Fatalf("got %d items, want 2", len(out))
	}
	if out[0].Title != "La reforma & sus efectos" {
		t.Errorf("title not cleaned: %q", out[0].Title)
	}
	if out[0].Link != "https://example.com/1" {
		t.Errorf("link not trimmed: %q", out[0].Link)
	}
	if out[1].Source != "D" {
		t.Errorf("order not preserved, second item from %q", out[1].Source)
	}
}

func TestTitles(t *testing.T) {
	items := []Item{{Title: "uno"}, {Title: "dos"}}
	if got := Titles(items); !reflect.DeepEqual(got, []string{"uno", "dos"}) {
		t.Errorf("Titles = %v", got)
	}
	if got := Titles(nil); len(got) != 0 {
		t.Errorf("Titles(nil) = %v", got)
	}
}
