// Package textutil provides the small string normalization helpers shared by
// the subtitle and reflow pipelines.
//
// All helpers are pure functions over strings: newline canonicalization,
// whitespace collapsing, and character-class checks used by the line
// classifiers. File reading and encoding concerns live in fileutil.
package textutil
