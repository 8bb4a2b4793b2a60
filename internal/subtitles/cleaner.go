package subtitles

import (
	"strings"

	"winnow/internal/textutil"
)

// Stats reports what one cleaning run read and discarded.
type Stats struct {
	LinesRead  int `json:"lines_read"`
	Sequences  int `json:"sequence_lines"`
	Timestamps int `json:"timestamp_lines"`
	Blanks     int `json:"blank_lines"`
	SoundCues  int `json:"sound_cue_lines"`
	Noise      int `json:"noise_lines"`
	Fragments  int `json:"fragments"`
	Paragraphs int `json:"paragraphs"`
}

// Document is the ordered paragraph sequence produced by a cleaning run.
type Document struct {
	Paragraphs []string
}

// Bytes serializes the document: paragraphs in assembly order, one blank
// line between them, trailing newline.
func (d Document) Bytes() []byte {
	return []byte(textutil.JoinBlocks(d.Paragraphs))
}

// Cleaner runs the subtitle cleaning pipeline with a fixed lexicon.
type Cleaner struct {
	lexicon *Lexicon
}

// NewCleaner returns a Cleaner using the given lexicon, or the built-in
// tables when lexicon is nil.
func NewCleaner(lexicon *Lexicon) *Cleaner {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Cleaner{lexicon: lexicon}
}

// Clean converts raw SRT content into paragraph text. Line endings are
// normalized first; every line is then classified, content lines contribute
// (color, text) fragments, and consecutive same-color fragments merge into
// polished paragraphs.
func (c *Cleaner) Clean(raw []byte) (Document, Stats) {
	normalized := textutil.NormalizeNewlines(string(raw))
	normalized = strings.TrimRight(normalized, "\n")

	var (
		stats     Stats
		fragments []Fragment
	)
	for _, line := range splitLines(normalized) {
		stats.LinesRead++
		switch Classify(line, c.lexicon) {
		case LineSequence:
			stats.Sequences++
		case LineTimestamp:
			stats.Timestamps++
		case LineBlank:
			stats.Blanks++
		case LineSoundCue:
			stats.SoundCues++
		case LineNoise:
			stats.Noise++
		case LineContent:
			color, text := ExtractTags(line)
			fragments = append(fragments, Fragment{Color: color, Text: text})
		}
	}
	stats.Fragments = len(fragments)

	paragraphs := AssembleParagraphs(fragments)
	polished := make([]string, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		polished = append(polished, Polish(paragraph))
	}
	stats.Paragraphs = len(polished)

	return Document{Paragraphs: polished}, stats
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	return strings.Split(content, "\n")
}
