// Package reflow merges hard-wrapped text lines into paragraphs while
// preserving headings.
//
// Lines are classified as heading, blank, or body. Markdown ATX headings
// and numbered chapter headings pass through verbatim and close the
// paragraph in progress, blank lines separate paragraphs, and consecutive
// body lines merge into one paragraph with single spaces.
package reflow

import (
	"regexp"
	"strings"

	"winnow/internal/textutil"
)

// Stats reports what one reflow run read and produced.
type Stats struct {
	LinesRead  int `json:"lines_read"`
	Headings   int `json:"heading_lines"`
	Blanks     int `json:"blank_lines"`
	BodyLines  int `json:"body_lines"`
	Paragraphs int `json:"paragraphs"`
}

// Document is the ordered sequence of headings and paragraphs produced by a
// reflow run.
type Document struct {
	Units []string
}

// Bytes serializes the document: units in input order, one blank line
// between them, trailing newline.
func (d Document) Bytes() []byte {
	return []byte(textutil.JoinBlocks(d.Units))
}

// Chapter headings are a number followed by plain words: "3 De Hanzevaart".
// Punctuation disqualifies a line, so numbered sentences stay body text.
var chapterPattern = regexp.MustCompile(`^\d+\s+[\p{L}\d_\s]+$`)

// Reflow converts raw hard-wrapped text into paragraph units. Line endings
// are normalized first; headings and blank lines bound paragraphs, and body
// lines merge in order.
func Reflow(raw []byte) (Document, Stats) {
	normalized := textutil.NormalizeNewlines(string(raw))
	normalized = strings.TrimRight(normalized, "\n")

	var (
		stats  Stats
		units  []string
		buffer []string
	)
	flush := func() {
		if len(buffer) == 0 {
			return
		}
		units = append(units, strings.Join(buffer, " "))
		buffer = buffer[:0]
	}
	if normalized != "" {
		for _, line := range strings.Split(normalized, "\n") {
			stats.LinesRead++
			trimmed := strings.TrimSpace(line)
			switch {
			case trimmed == "":
				stats.Blanks++
				flush()
			case isHeading(trimmed):
				stats.Headings++
				flush()
				units = append(units, trimmed)
			default:
				stats.BodyLines++
				buffer = append(buffer, textutil.CollapseWhitespace(line))
			}
		}
	}
	flush()
	stats.Paragraphs = len(units) - stats.Headings

	return Document{Units: units}, stats
}

func isHeading(trimmed string) bool {
	if strings.HasPrefix(trimmed, "#") {
		return true
	}
	return chapterPattern.MatchString(trimmed)
}
