package sanzang

import (
	"strings"
	"unicode/utf8"
)

// SubstituteOption configures a substitution scan.
type SubstituteOption func(*substConfig)

type substConfig struct {
	open  string
	close string
}

// WithBrackets sets the delimiter pair used around the gloss in
// Annotate mode. The default is ASCII parentheses.
func WithBrackets(open, close string) SubstituteOption {
	return func(c *substConfig) {
		c.open = open
		c.close = close
	}
}

// Substitute renders text through a single left-to-right scan against
// the index. At each position the longest matching term is consumed and
// emitted according to mode; characters where no term begins pass
// through unchanged. It is a total function: any text, including the
// empty string, produces output with every input character accounted
// for exactly once and no overlapping matches.
func Substitute(text string, index *TermIndex, mode SubstitutionMode, opts ...SubstituteOption) string {
	cfg := substConfig{open: "(", close: ")"}
	for _, opt := range opts {
		opt(&cfg)
	}

	var out strings.Builder
	out.Grow(len(text))

	i := 0
	for i < len(text) {
		m, ok := index.LongestMatch(text, i)
		if !ok {
			_, size := utf8.DecodeRuneInString(text[i:])
			out.WriteString(text[i : i+size])
			i += size
			continue
		}

		switch mode {
		case Annotate:
			out.WriteString(m.Term)
			out.WriteString(cfg.open)
			out.WriteString(m.Gloss)
			out.WriteString(cfg.close)
		default: // Replace
			out.WriteString(m.Gloss)
		}
		i += m.Length
	}

	return out.String()
}

// UsedTerms returns the distinct terms the scan would consume in text,
// in order of first occurrence. It runs the same longest-match scan as
// Substitute, so the result is exactly the vocabulary relevant to the
// text under the index's tie-breaking rules.
func UsedTerms(text string, index *TermIndex) []Term {
	var used []Term
	seen := make(map[string]bool)

	i := 0
	for i < len(text) {
		m, ok := index.LongestMatch(text, i)
		if !ok {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
			continue
		}
		if !seen[m.Term] {
			seen[m.Term] = true
			used = append(used, Term{Source: m.Term, Gloss: m.Gloss, Priority: m.Priority})
		}
		i += m.Length
	}

	return used
}
