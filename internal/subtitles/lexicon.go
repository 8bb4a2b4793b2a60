package subtitles

import (
	"strings"

	"winnow/internal/textutil"
)

// Built-in noise tables for the Dutch series these subtitles come from.
// Phrases match a whole line, prefixes match the line start, and keywords
// match anywhere in the line. All comparisons ignore case and one trailing
// "!" or ".".
var (
	builtinPhrases = []string{
		"Ja, op",
		"Ja op",
		"Ja, los",
		"Ja los",
		"En op",
		"En los",
		"Los",
		"Op",
		"Oké, op",
		"Oké op",
		"Oke, op",
		"Oke op",
		"De sliet",
		"Drei Koggen",
	}
	builtinPrefixes = []string{
		"informatie:",
	}
	builtinKeywords = []string{
		"podwalk",
	}
)

// Lexicon holds the noise phrase tables consulted by the line classifier.
type Lexicon struct {
	phrases  map[string]struct{}
	prefixes []string
	keywords []string
}

// DefaultLexicon returns the built-in tables without extensions.
func DefaultLexicon() *Lexicon {
	return NewLexicon(nil, nil)
}

// NewLexicon builds the built-in tables extended with user-supplied phrases
// and prefixes. Empty entries are ignored.
func NewLexicon(extraPhrases, extraPrefixes []string) *Lexicon {
	lex := &Lexicon{
		phrases:  make(map[string]struct{}, len(builtinPhrases)+len(extraPhrases)),
		keywords: append([]string(nil), builtinKeywords...),
	}
	for _, phrase := range builtinPhrases {
		lex.phrases[normalizePhrase(phrase)] = struct{}{}
	}
	for _, phrase := range extraPhrases {
		if normalized := normalizePhrase(phrase); normalized != "" {
			lex.phrases[normalized] = struct{}{}
		}
	}
	for _, prefix := range builtinPrefixes {
		lex.prefixes = append(lex.prefixes, strings.ToLower(prefix))
	}
	for _, prefix := range extraPrefixes {
		if normalized := strings.ToLower(strings.TrimSpace(prefix)); normalized != "" {
			lex.prefixes = append(lex.prefixes, normalized)
		}
	}
	return lex
}

// Matches reports whether the given line text is a known noise phrase.
// The text should already have markup stripped.
func (l *Lexicon) Matches(text string) bool {
	normalized := normalizePhrase(text)
	if normalized == "" {
		return false
	}
	if _, ok := l.phrases[normalized]; ok {
		return true
	}
	for _, prefix := range l.prefixes {
		if strings.HasPrefix(normalized, prefix) {
			return true
		}
	}
	for _, keyword := range l.keywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}

// normalizePhrase lowercases, collapses whitespace, and drops one trailing
// "!" or "." so "Op!" and "op" compare equal.
func normalizePhrase(s string) string {
	s = strings.ToLower(textutil.CollapseWhitespace(s))
	if len(s) > 0 {
		if last := s[len(s)-1]; last == '!' || last == '.' {
			s = strings.TrimSpace(s[:len(s)-1])
		}
	}
	return s
}
