// Package relevance decides whether a headline concerns the target country.
// It is a boolean containment check, no scoring; only the international
// source stream passes through it.
package relevance

import (
	"regexp"
	"strings"
)

// Matcher holds the lowercased keyword list split into substring phrases and
// word-boundary patterns. Short tokens get the regexp treatment so "eu" or
// similar fragments cannot match inside unrelated words.
type Matcher struct {
	phrases  []string
	patterns []*regexp.Regexp
}

// NewMatcher compiles a matcher from a keyword list. Keywords containing a
// space or longer than three bytes match as substrings; shorter ones match as
// whole words only.
func NewMatcher(keywords []string) *Matcher {
	m := &Matcher{}
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if !strings.Contains(k, " ") && len(k) <= 3 {
			m.patterns = append(m.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(k)+`\b`))
			continue
		}
		m.phrases = append(m.phrases, k)
	}
	return m
}

// Matches reports whether the text mentions any configured keyword.
// Case-insensitive.
func (m *Matcher) Matches(text string) bool {
	text = strings.ToLower(text)
	for _, p := range m.phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	for _, re := range m.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// Spain returns the matcher used for the external-coverage feed: country
// names, regions, cities, political figures and institutions across the
// languages of the configured international sources.
func Spain() *Matcher {
	return NewMatcher(spainKeywords)
}

var spainKeywords = []string{
	// Castellano
	"españa", "espana", "español", "española", "españoles",
	"madrid", "barcelona", "valencia", "sevilla", "bilbao",
	"cataluña", "catalunya", "país vasco", "euskadi", "andalucía",
	"galicia", "canarias", "balears", "ibiza", "mallorca",
	"pedro sánchez", "pedro sanchez", "feijóo", "feijoo", "abascal",
	"yolanda díaz", "gobierno español", "moncloa", "congreso", "senado",
	"la liga", "real madrid", "fc barcelona", "atlético",

	// English
	"spain", "spanish", "spaniard", "spain's", "spanish prime minister",
	"catalonia", "basque country", "andalusia", "catalan", "basque",
	"andalusian", "spanish government", "seville",

	// Français
	"espagne", "espagnol", "espagnole", "espagnols",
	"catalogne", "pays basque", "andalousie",
	"gouvernement espagnol", "premier ministre espagnol",

	// Deutsch
	"spanien", "spanisch", "spanier", "spanische", "spanischer",
	"katalonien", "baskenland", "andalusien", "spanische regierung",

	// Italiano
	"spagna", "spagnolo", "spagnola", "spagnoli",
	"catalogna", "paesi baschi", "governo spagnolo",

	// Português
	"espanha", "espanhol", "espanhola", "espanhóis",
	"catalunha", "país basco", "governo espanhol",

	// Русский
	"испания", "испанский", "испанская", "испанские",
	"мадрид", "барселона", "каталония", "правительство испании",

	// 中文
	"西班牙", "西班牙人", "西班牙首相", "西班牙政府",
	"马德里", "巴塞罗那", "加泰罗尼亚",

	// 日本語
	"スペイン", "マドリード", "バルセロナ", "カタルーニャ",

	// 한국어
	"스페인", "마드리드", "바르셀로나", "카탈루냐",

	// العربية
	"إسبانيا", "الإسبانية", "الإسبان",
	"مدريد", "برشلونة", "كاتالونيا",
}
