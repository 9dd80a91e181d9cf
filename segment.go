package sanzang

import (
	"iter"
	"unicode/utf8"
)

// DefaultBoundaries is the full-stop punctuation class used by the
// default Segmenter: full-width and ASCII sentence enders plus the
// semicolon forms common in CBETA punctuation.
const DefaultBoundaries = "。．！？.!?…；;"

// Segmenter splits text into units along a fixed, finite set of
// boundary punctuation runes supplied at construction. It holds no
// mutable state: the same Segmenter may run concurrently over any
// number of texts, and re-segmenting the same text yields an identical
// sequence.
type Segmenter struct {
	boundaries map[rune]bool
}

// SegmenterOption configures a Segmenter.
type SegmenterOption func(*Segmenter)

// WithBoundaries replaces the boundary rune set. Each rune in set
// closes the unit it appears in.
func WithBoundaries(set string) SegmenterOption {
	return func(s *Segmenter) {
		s.boundaries = make(map[rune]bool)
		for _, r := range set {
			s.boundaries[r] = true
		}
	}
}

// NewSegmenter creates a Segmenter with the default boundary set.
func NewSegmenter(opts ...SegmenterOption) *Segmenter {
	s := &Segmenter{}
	WithBoundaries(DefaultBoundaries)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Units returns a lazy, restartable sequence of text units. A boundary
// rune is appended to the unit it terminates, never carried into the
// next one, and any remainder at end of text is emitted as a final unit
// without trailing punctuation. Empty input yields no units. The units
// concatenated in order reproduce text exactly.
func (s *Segmenter) Units(text string) iter.Seq[TextUnit] {
	return func(yield func(TextUnit) bool) {
		start := 0
		for i, r := range text {
			if !s.boundaries[r] {
				continue
			}
			end := i + utf8.RuneLen(r)
			if !yield(TextUnit{Text: text[start:end], Start: start, End: end}) {
				return
			}
			start = end
		}
		if start < len(text) {
			yield(TextUnit{Text: text[start:], Start: start, End: len(text)})
		}
	}
}

// Segment splits text into units eagerly. See Units for the boundary
// rules.
func (s *Segmenter) Segment(text string) []TextUnit {
	var units []TextUnit
	for u := range s.Units(text) {
		units = append(units, u)
	}
	return units
}

// Align pairs comparably-numbered units of a source/target text pair
// for bilingual review. When one text has more units than the other,
// the unpaired side of the trailing entries is a zero TextUnit.
func (s *Segmenter) Align(source, target string) []AlignedUnit {
	src := s.Segment(source)
	dst := s.Segment(target)

	n := len(src)
	if len(dst) > n {
		n = len(dst)
	}

	aligned := make([]AlignedUnit, 0, n)
	for i := 0; i < n; i++ {
		a := AlignedUnit{N: i + 1}
		if i < len(src) {
			a.Source = src[i]
		}
		if i < len(dst) {
			a.Target = dst[i]
		}
		aligned = append(aligned, a)
	}
	return aligned
}
