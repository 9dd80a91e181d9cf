package processor

import (
	"fmt"
	"strconv"
	"strings"

	sanzang "github.com/yaoguai/sanzang-lib"
)

// TextProcessor treats plain text as a sequence of lines. Each
// non-blank line becomes one text node, so a cache shared across
// documents gets line-level granularity, and blank lines and the
// newline structure survive Apply untouched.
type TextProcessor struct{}

// NewTextProcessor creates a plain text processor.
func NewTextProcessor() *TextProcessor {
	return &TextProcessor{}
}

// parsedText holds the split lines between Extract and Apply.
type parsedText struct {
	lines []string
}

// Extract splits content into lines and collects the non-blank ones,
// deduplicated by content hash.
func (p *TextProcessor) Extract(content string) (interface{}, []sanzang.TextNode, error) {
	lines := strings.Split(content, "\n")

	var nodes []sanzang.TextNode
	seenHashes := make(map[string]bool)

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		hash := sanzang.HashText(line)
		if seenHashes[hash] {
			continue
		}
		seenHashes[hash] = true

		nodes = append(nodes, sanzang.TextNode{
			ID:       fmt.Sprintf("line-%d", i),
			Text:     line,
			Hash:     hash,
			NodeType: "text_line",
			Metadata: map[string]string{"line": strconv.Itoa(i + 1)},
		})
	}

	return &parsedText{lines: lines}, nodes, nil
}

// Apply replaces each line that has a rendering and rejoins the
// document with its original newline structure.
func (p *TextProcessor) Apply(parsed interface{}, nodes []sanzang.TextNode, rendered map[string]string) (string, error) {
	pt, ok := parsed.(*parsedText)
	if !ok {
		return "", &sanzang.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "text",
		}
	}

	out := make([]string, len(pt.lines))
	for i, line := range pt.lines {
		if strings.TrimSpace(line) == "" {
			out[i] = line
			continue
		}
		if r, ok := rendered[sanzang.HashText(line)]; ok {
			out[i] = r
		} else {
			out[i] = line
		}
	}

	return strings.Join(out, "\n"), nil
}

// ContentType returns "text".
func (p *TextProcessor) ContentType() string {
	return "text"
}

// Verify TextProcessor implements ContentProcessor
var _ ContentProcessor = (*TextProcessor)(nil)
