// Package sanzang provides glossary-driven CJK term substitution.
package sanzang

// SubstitutionMode controls how a matched term is rendered.
type SubstitutionMode int

const (
	// Replace discards the matched source characters and emits the gloss.
	Replace SubstitutionMode = iota
	// Annotate keeps the matched source characters and appends the gloss
	// in a bracketed form immediately after them.
	Annotate
)

// String returns the mode name for cache keys and diagnostics.
func (m SubstitutionMode) String() string {
	switch m {
	case Replace:
		return "replace"
	case Annotate:
		return "annotate"
	default:
		return "unknown"
	}
}

// Term is a source-script character sequence paired with its gloss.
// Priority is the rank of the glossary that supplied it (lower wins
// equal-length ties during lookup).
type Term struct {
	Source   string // Source-script text, length >= 1
	Gloss    string // Replacement or annotation text
	Priority int    // Glossary rank, assigned by BuildIndex
}

// Glossary is an ordered collection of terms from one source.
// Its priority rank is its position among the glossaries passed to
// BuildIndex, not a field of its own.
type Glossary struct {
	Name  string // Origin label (file name, etc.), for diagnostics
	Terms []Term
}

// TextUnit is a contiguous, non-empty slice of the original text.
// Start and End are byte offsets such that text[Start:End] == Text.
type TextUnit struct {
	Text  string
	Start int
	End   int
}

// AlignedUnit pairs comparably-numbered units of a bilingual text pair.
// Either side may be empty when one text has more units than the other.
type AlignedUnit struct {
	N      int // 1-based unit number
	Source TextUnit
	Target TextUnit
}

// TextNode represents one renderable unit of structured content, as
// extracted by a ContentProcessor.
type TextNode struct {
	ID       string            // Unique identifier within the document
	Text     string            // Original text content
	Hash     string            // SHA-256 hash of Text
	NodeType string            // Content type: "html_text", "text_line", etc.
	Metadata map[string]string // Additional info (parent tag, line number, etc.)
}

// ProcessedContent is the result of an Engine run over one document.
type ProcessedContent struct {
	Content       string // Content with glosses substituted in
	RenderedCount int    // Number of nodes rendered by the scan
	CachedCount   int    // Number of cache hits
	TotalNodes    int    // Total text nodes found
}

// IgnoredTags contains HTML tags whose content is never substituted.
var IgnoredTags = map[string]bool{
	"script":   true,
	"style":    true,
	"code":     true,
	"pre":      true,
	"textarea": true,
	"noscript": true,
}
