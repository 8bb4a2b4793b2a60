package subtitles

import (
	"regexp"
	"strings"

	"winnow/internal/textutil"
)

// LineKind is the category the classifier assigns to a raw subtitle line.
// Only LineContent survives into paragraph assembly.
type LineKind int

const (
	LineContent LineKind = iota
	LineSequence
	LineTimestamp
	LineBlank
	LineSoundCue
	LineNoise
)

func (k LineKind) String() string {
	switch k {
	case LineContent:
		return "content"
	case LineSequence:
		return "sequence"
	case LineTimestamp:
		return "timestamp"
	case LineBlank:
		return "blank"
	case LineSoundCue:
		return "sound-cue"
	case LineNoise:
		return "noise"
	default:
		return "unknown"
	}
}

var timestampPattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2},\d{3}\s*-->\s*\d{2}:\d{2}:\d{2},\d{3}$`)

// Classify decides a raw line's fate. Rules apply in priority order: blank,
// cue sequence number, timestamp, sound cue, noise phrase, content.
// A line whose text is empty once markup is stripped counts as blank.
// Classify is a pure function of the line text and lexicon.
func Classify(line string, lexicon *Lexicon) LineKind {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return LineBlank
	}
	if textutil.DigitsOnly(trimmed) {
		return LineSequence
	}
	if timestampPattern.MatchString(trimmed) {
		return LineTimestamp
	}
	_, text := ExtractTags(trimmed)
	if text == "" {
		return LineBlank
	}
	if textutil.HasLetter(text) && !textutil.HasLowercase(text) {
		// Sound cues render as shouted text: "MUSIC PLAYING".
		return LineSoundCue
	}
	if isSoundDescription(text) {
		return LineSoundCue
	}
	if lexicon.Matches(text) {
		return LineNoise
	}
	return LineContent
}

// isSoundDescription reports whether the entire text is a parenthesized or
// bracketed sound description such as "(geluid van regen)".
func isSoundDescription(text string) bool {
	if len(text) < 2 {
		return false
	}
	if strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		return true
	}
	return strings.HasPrefix(text, "[") && strings.HasSuffix(text, "]")
}
