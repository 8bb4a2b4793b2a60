package subtitles

import (
	"strings"

	"winnow/internal/textutil"
)

// NoColor is the color identifier for text that carries no font markup.
const NoColor = ""

// Fragment is the text of one retained content line together with its
// extracted color identifier.
type Fragment struct {
	Color string
	Text  string
}

// ExtractTags strips markup from a line and returns the line's color
// identifier and plain text. The first font color attribute on the line
// wins; a line without one gets NoColor. Each stripped tag leaves a word
// boundary, and interior whitespace collapses to single spaces.
//
// Extraction is a two-state scan (outside markup / inside markup) rather
// than a pattern match, so malformed markup degrades deterministically: a
// "<" that does not start a tag passes through as text, and an unclosed tag
// at end of line behaves as if it were closed. ExtractTags never fails.
func ExtractTags(line string) (string, string) {
	var (
		text      strings.Builder
		tag       strings.Builder
		color     = NoColor
		insideTag bool
	)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		if insideTag {
			if ch == '>' {
				if value, ok := colorAttribute(tag.String()); ok && color == NoColor {
					color = value
				}
				tag.Reset()
				insideTag = false
				text.WriteByte(' ')
			} else {
				tag.WriteByte(ch)
			}
			continue
		}
		if ch == '<' && tagOpensAt(line, i) {
			insideTag = true
			continue
		}
		text.WriteByte(ch)
	}
	if insideTag {
		// Unclosed tag at end of line: treat it as closed.
		if value, ok := colorAttribute(tag.String()); ok && color == NoColor {
			color = value
		}
	}
	return color, textutil.CollapseWhitespace(text.String())
}

// tagOpensAt reports whether the "<" at index i opens tag-like markup: the
// next byte must begin a tag name or a closing slash. Anything else (for
// example "a < b") is treated as literal text.
func tagOpensAt(s string, i int) bool {
	if i+1 >= len(s) {
		return false
	}
	next := s[i+1]
	switch {
	case next == '/':
		return true
	case next >= 'a' && next <= 'z':
		return true
	case next >= 'A' && next <= 'Z':
		return true
	default:
		return false
	}
}

// colorAttribute parses a font tag body such as `font color="#FFFFFF"` and
// returns the lowercased attribute value. Non-font tags and font tags
// without a color attribute report ok=false.
func colorAttribute(body string) (string, bool) {
	trimmed := strings.TrimSpace(strings.ToLower(body))
	if !strings.HasPrefix(trimmed, "font") {
		return "", false
	}
	idx := strings.Index(trimmed, "color=")
	if idx < 0 {
		return "", false
	}
	value := strings.TrimSpace(trimmed[idx+len("color="):])
	if value == "" {
		return "", false
	}
	if value[0] == '"' || value[0] == '\'' {
		quote := value[0]
		value = value[1:]
		if end := strings.IndexByte(value, quote); end >= 0 {
			value = value[:end]
		}
	} else if end := strings.IndexAny(value, " \t"); end >= 0 {
		value = value[:end]
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}
