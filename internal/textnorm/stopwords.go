package textnorm

// stopwords covers the languages of the configured feeds: Spanish first, then
// English, French, German, Italian and Portuguese. Short function words that
// survive tokenization on any of those streams end up here.
var stopwords = map[string]bool{}

func init() {
	for _, w := range []string{
		// Spanish
		"el", "la", "los", "las", "un", "una", "unos", "unas", "de", "del",
		"al", "a", "en", "por", "para", "con", "sin", "sobre", "entre",
		"hasta", "desde", "y", "o", "e", "ni", "que", "como", "pero",
		"aunque", "porque", "ya", "también", "solo", "su", "sus", "se",
		"lo", "le", "les", "esto", "esta", "estos", "estas", "ese", "esa",
		"esos", "esas", "hoy", "ayer", "mañana", "tras", "antes", "después",
		"dice", "según", "afirma", "asegura", "explica", "mas", "menos", "ante",
		// English
		"the", "an", "of", "to", "in", "on", "for", "with", "and", "or",
		"but", "from", "by", "about", "as", "at", "this", "that", "after",
		"says", "said", "will", "over", "amid",
		// French
		"du", "des", "sur", "dans", "avec", "pour", "par", "est", "sont",
		"ont", "été", "une", "aux",
		// German
		"der", "die", "das", "und", "mit", "von", "für", "auf", "bei",
		"nach", "aus", "durch", "über", "unter", "ein", "eine",
		// Italian
		"il", "gli", "i", "della", "dei", "per", "tra", "fra", "che", "cui",
		// Portuguese
		"os", "as", "do", "da", "dos", "das", "com", "sem", "sob", "após",
	} {
		stopwords[w] = true
	}
}
