package textnorm

import (
	"reflect"
	"testing"
)

func TestCleanHTML_EntitiesAndTags(t *testing.T) {
	in := "&quot;Hola&quot; <b>mundo</b>   nuevo"
	got := CleanHTML(in)
	want := `"Hola" mundo nuevo`
	if got != want {
		t.Errorf("CleanHTML(%q) = %q, want %q", in, got, want)
	}
}

func TestCleanHTML_PlainTextUntouched(t *testing.T) {
	in := "Sin etiquetas ni entidades"
	if got := CleanHTML(in); got != in {
		t.Errorf("CleanHTML(%q) = %q, want unchanged", in, got)
	}
}

func TestCleanHTML_CollapsesWhitespace(t *testing.T) {
	got := CleanHTML("uno \n\t dos   tres ")
	if got != "uno dos tres" {
		t.Errorf("got %q", got)
	}
}

func TestTokenize_StopwordsAndShortTokens(t *testing.T) {
	got := Tokenize("El Gobierno aprueba la nueva ley de vivienda")
	want := []string{"gobierno", "aprueba", "nueva", "vivienda"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenize_PunctuationStripped(t *testing.T) {
	got := Tokenize("Economía: ¡récord histórico! (análisis)")
	want := []string{"economía", "récord", "histórico", "análisis"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestTokenize_Deterministic(t *testing.T) {
	in := "Parliament approves new tax reform law"
	a := Tokenize(in)
	b := Tokenize(in)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Tokenize not deterministic: %v vs %v", a, b)
	}
}

func TestTokenize_Empty(t *testing.T) {
	if got := Tokenize(""); len(got) != 0 {
		t.Errorf("Tokenize(\"\") = %v, want empty", got)
	}
}
