// Package subtitles converts SRT subtitle files into readable paragraph text.
//
// The package strips cue numbers and timestamps, filters noise lines (sound
// cues, known interjections, advertisement boilerplate), extracts caption
// text per font-color tag, and groups consecutive same-color fragments into
// paragraphs. Color changes are the only paragraph boundary: cue boundaries
// and blank lines carry no break meaning of their own.
package subtitles
