package subtitles

import "strings"

// AssembleParagraphs folds the ordered fragment sequence into paragraphs.
// A paragraph collects consecutive fragments that share one color; a color
// change flushes the paragraph in progress and starts the next one. The
// color identifiers include NoColor, so an untagged fragment between tagged
// ones breaks the paragraph. Fragments within a paragraph are joined with
// single spaces, in input order.
func AssembleParagraphs(fragments []Fragment) []string {
	var (
		paragraphs []string
		buffer     []string
		current    string
	)
	flush := func() {
		if len(buffer) == 0 {
			return
		}
		paragraphs = append(paragraphs, strings.Join(buffer, " "))
		buffer = buffer[:0]
	}
	for _, fragment := range fragments {
		if len(buffer) == 0 {
			current = fragment.Color
		} else if fragment.Color != current {
			flush()
			current = fragment.Color
		}
		buffer = append(buffer, fragment.Text)
	}
	flush()
	return paragraphs
}
