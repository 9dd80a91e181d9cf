package sanzang

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"unicode/utf8"
)

// TermIndex is an immutable longest-prefix lookup structure built from
// one or more glossaries. It is built once and never mutated, so it may
// be shared across any number of concurrent lookups without locking.
type TermIndex struct {
	root        *trieNode
	maxTermLen  int // longest term, in runes
	count       int
	fingerprint string
}

// trieNode is one state of the term trie, keyed on a single rune.
// entry is non-nil only where a complete term ends.
type trieNode struct {
	children map[rune]*trieNode
	entry    *Term
}

// Match describes the longest term found at a given offset.
type Match struct {
	Term     string // Matched source characters
	Gloss    string
	Priority int // Rank of the glossary that supplied the term
	Length   int // Match length in bytes
	Runes    int // Match length in runes
}

// BuildIndex constructs a TermIndex from the given glossaries, in
// priority order: when two glossaries define the same term, the
// earlier-loaded one wins. It fails only if a glossary contains an
// empty term; construction is atomic and no partial index escapes.
func BuildIndex(glossaries ...Glossary) (*TermIndex, error) {
	ix := &TermIndex{root: &trieNode{}}
	h := sha256.New()

	for rank, g := range glossaries {
		for i, t := range g.Terms {
			if t.Source == "" {
				return nil, &ConfigurationError{
					Message:  "glossary term must not be empty",
					Glossary: g.Name,
					Entry:    i,
				}
			}
			ix.insert(Term{Source: t.Source, Gloss: t.Gloss, Priority: rank})
			fmt.Fprintf(h, "%d\x1f%s\x1f%s\x1e", rank, t.Source, t.Gloss)
		}
	}

	ix.fingerprint = hex.EncodeToString(h.Sum(nil))
	return ix, nil
}

// insert adds a term to the trie. Terms are inserted in glossary order,
// so an already-present entry always has lower or equal priority and is
// kept; this resolves equal-length ties at build time rather than per
// lookup.
func (ix *TermIndex) insert(t Term) {
	node := ix.root
	runes := 0
	for _, r := range t.Source {
		runes++
		if node.children == nil {
			node.children = make(map[rune]*trieNode)
		}
		child, ok := node.children[r]
		if !ok {
			child = &trieNode{}
			node.children[r] = child
		}
		node = child
	}

	if node.entry == nil {
		entry := t
		node.entry = &entry
		ix.count++
	}
	if runes > ix.maxTermLen {
		ix.maxTermLen = runes
	}
}

// LongestMatch walks the trie from text[offset:] and returns the
// longest term starting exactly at offset. The walk visits at most
// MaxTermLen runes, so a failed lookup is bounded by the longest term
// in the index, not by the text length. The second return value is
// false when no term begins at offset.
func (ix *TermIndex) LongestMatch(text string, offset int) (Match, bool) {
	if offset < 0 || offset >= len(text) {
		return Match{}, false
	}

	node := ix.root
	var best *Term
	bestBytes, bestRunes := 0, 0

	i := offset
	runes := 0
	for i < len(text) && runes < ix.maxTermLen {
		r, size := utf8.DecodeRuneInString(text[i:])
		child, ok := node.children[r]
		if !ok {
			break
		}
		node = child
		i += size
		runes++
		if node.entry != nil {
			best = node.entry
			bestBytes = i - offset
			bestRunes = runes
		}
	}

	if best == nil {
		return Match{}, false
	}
	return Match{
		Term:     best.Source,
		Gloss:    best.Gloss,
		Priority: best.Priority,
		Length:   bestBytes,
		Runes:    bestRunes,
	}, true
}

// Len returns the number of distinct terms in the index.
func (ix *TermIndex) Len() int {
	return ix.count
}

// MaxTermLen returns the length in runes of the longest indexed term.
func (ix *TermIndex) MaxTermLen() int {
	return ix.maxTermLen
}

// Fingerprint returns a stable hash of the index contents (terms,
// glosses and glossary order). Two indexes built from identical
// glossary sequences share a fingerprint; it keys cached results to the
// exact glossary set that produced them.
func (ix *TermIndex) Fingerprint() string {
	return ix.fingerprint
}
