package subtitles

import (
	"regexp"

	"winnow/internal/textutil"
)

var (
	// Subtitle cues often end a line with "..." purely to mark the break;
	// inside an assembled paragraph these are joins, not pauses.
	ellipsisBreak   = regexp.MustCompile(`\.\.\.\s+`)
	ellipsisSpacing = regexp.MustCompile(`\s*\.\.\.\s*`)
	periodBeforeCap = regexp.MustCompile(`\.([A-Z])`)
	commaBeforeText = regexp.MustCompile(`,(\S)`)
	markBeforeCap   = regexp.MustCompile(`([?!])([A-Z])`)
	doubleDot       = regexp.MustCompile(`(^|[^.])\.\.([^.]|$)`)
)

// Polish normalizes punctuation spacing inside one assembled paragraph.
// Ellipses that marked line breaks are removed, remaining ellipses get one
// trailing space, and sentences joined without spacing after ".", ",", "?",
// or "!" are separated. Only whitespace and ellipsis punctuation change;
// no words are added or removed.
func Polish(paragraph string) string {
	s := ellipsisBreak.ReplaceAllString(paragraph, " ")
	s = ellipsisSpacing.ReplaceAllString(s, "... ")
	s = textutil.CollapseWhitespace(s)
	s = periodBeforeCap.ReplaceAllString(s, ". $1")
	s = commaBeforeText.ReplaceAllString(s, ", $1")
	s = markBeforeCap.ReplaceAllString(s, "$1 $2")
	s = doubleDot.ReplaceAllString(s, "$1...$2")
	return textutil.CollapseWhitespace(s)
}
