package sanzang

import (
	"regexp"
	"strings"
)

// Reflow line-breaking classes. Enders close a line when followed by a
// non-ender; starters open a new line. The sets cover CBETA-style CJK
// punctuation plus the ASCII equivalents that appear in mixed texts.
var (
	cbetaMargin = regexp.MustCompile(`(?m)^[TX].*?║`)
	poetryLine  = regexp.MustCompile(`(?m)^　(.{1,15})$`)
	afterEnder  = regexp.MustCompile(`([：，；。？！」』.;:?])([^：，；。？！」』.;:?])`)
	beforeStart = regexp.MustCompile("([^「『　\t：，；。？！」』.;:?\n])([「『　\t])")
)

// Reflow reformats CJK text according to its punctuation so that terms
// are never broken apart between lines. CBETA-style margins
// (X01n0020_p0404a01(00)║ and the like) are stripped, existing line
// breaks are collapsed, and new breaks are inserted after ender
// punctuation and before starter punctuation. Short indented lines are
// treated as poetry and kept separate from the surrounding prose.
//
// Input should not contain incomplete CBETA margins; only whole margins
// in the standard format are recognized.
func Reflow(text string) string {
	text = cbetaMargin.ReplaceAllString(text, "")

	// A short line starting with an ideographic space is poetry; pad it
	// so collapsing newlines cannot merge it into the following prose.
	text = poetryLine.ReplaceAllString(text, "　$1　")

	text = strings.ReplaceAll(text, "\n", "")

	text = afterEnder.ReplaceAllString(text, "$1\n$2")
	text = beforeStart.ReplaceAllString(text, "$1\n$2")

	if len(text) > 0 && text[len(text)-1] != '\n' {
		text += "\n"
	}
	return text
}
