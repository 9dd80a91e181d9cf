package sanzang

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ListingOption configures a bilingual listing.
type ListingOption func(*listingConfig)

type listingConfig struct {
	start int
}

// WithStartLine sets the first line number of the listing. Callers
// processing a large text in chunks pass the running line count so
// numbering stays continuous across chunks.
func WithStartLine(n int) ListingOption {
	return func(c *listingConfig) {
		c.start = n
	}
}

// Listing renders text line by line into a numbered review listing:
// each source line N is followed by its glossed rendering, as
//
//	N.1|念佛三昧
//	N.2|recollect buddha samādhi
//
// with a blank line between groups. Glosses in the rendered column are
// set off from adjacent text by single spaces so that word boundaries
// survive the substitution.
func Listing(text string, index *TermIndex, opts ...ListingOption) string {
	cfg := listingConfig{start: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if text == "" {
		return ""
	}

	var b strings.Builder
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		fmt.Fprintf(&b, "%d.1|%s\n", cfg.start+i, line)
		fmt.Fprintf(&b, "%d.2|%s\n", cfg.start+i, renderSpaced(line, index))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSpaced substitutes one line in Replace mode, inserting a single
// space at every boundary between a gloss and its neighbor.
func renderSpaced(line string, index *TermIndex) string {
	type piece struct {
		text  string
		gloss bool
	}

	var pieces []piece
	appendLiteral := func(s string) {
		if n := len(pieces); n > 0 && !pieces[n-1].gloss {
			pieces[n-1].text += s
			return
		}
		pieces = append(pieces, piece{text: s})
	}

	i := 0
	for i < len(line) {
		m, ok := index.LongestMatch(line, i)
		if !ok {
			_, size := utf8.DecodeRuneInString(line[i:])
			appendLiteral(line[i : i+size])
			i += size
			continue
		}
		pieces = append(pieces, piece{text: m.Gloss, gloss: true})
		i += m.Length
	}

	var out strings.Builder
	for idx, p := range pieces {
		if idx > 0 && (p.gloss || pieces[idx-1].gloss) {
			out.WriteByte(' ')
		}
		out.WriteString(p.text)
	}
	return out.String()
}
