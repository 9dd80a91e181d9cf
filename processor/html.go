package processor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	sanzang "github.com/yaoguai/sanzang-lib"
)

// HTMLProcessor extracts text nodes from HTML documents and applies
// glossed renderings back to them. Markup is left intact; only text
// content changes. Subtrees under ignored tags (script, style, code,
// pre and friends) or carrying a data-no-substitute attribute are
// skipped entirely.
type HTMLProcessor struct {
	ignoredTags map[string]bool
}

// NewHTMLProcessor creates a new HTML processor with default ignored tags.
func NewHTMLProcessor() *HTMLProcessor {
	return &HTMLProcessor{
		ignoredTags: sanzang.IgnoredTags,
	}
}

// NewHTMLProcessorWithIgnoredTags creates a new HTML processor with custom ignored tags.
func NewHTMLProcessorWithIgnoredTags(tags []string) *HTMLProcessor {
	ignored := make(map[string]bool)
	for _, tag := range tags {
		ignored[strings.ToLower(tag)] = true
	}
	return &HTMLProcessor{
		ignoredTags: ignored,
	}
}

// parsedHTML holds the parsed document between Extract and Apply.
type parsedHTML struct {
	doc *goquery.Document
}

// skip reports whether an element's subtree is excluded from
// substitution.
func (p *HTMLProcessor) skip(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	if p.ignoredTags[strings.ToLower(n.Data)] {
		return true
	}
	for _, attr := range n.Attr {
		if attr.Key == "data-no-substitute" {
			return true
		}
	}
	return false
}

// Extract parses HTML and collects its text nodes, deduplicated by
// content hash.
func (p *HTMLProcessor) Extract(content string) (interface{}, []sanzang.TextNode, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, nil, &sanzang.ProcessorError{
			Message:     "failed to parse HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	var nodes []sanzang.TextNode
	seenHashes := make(map[string]bool)

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if p.skip(n) {
			return
		}

		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				hash := sanzang.HashText(trimmed)
				if !seenHashes[hash] {
					seenHashes[hash] = true

					node := sanzang.TextNode{
						ID:       fmt.Sprintf("node-%d", len(nodes)),
						Text:     trimmed,
						Hash:     hash,
						NodeType: "html_text",
						Metadata: map[string]string{},
					}
					if n.Parent != nil {
						node.Metadata["parent_tag"] = n.Parent.Data
					}
					nodes = append(nodes, node)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	return &parsedHTML{doc: doc}, nodes, nil
}

// Apply writes renderings back into the document's text nodes,
// preserving each node's original surrounding whitespace.
func (p *HTMLProcessor) Apply(parsed interface{}, nodes []sanzang.TextNode, rendered map[string]string) (string, error) {
	ph, ok := parsed.(*parsedHTML)
	if !ok {
		return "", &sanzang.ProcessorError{
			Message:     "invalid parsed content type",
			ContentType: "html",
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if p.skip(n) {
			return
		}

		if n.Type == html.TextNode {
			trimmed := strings.TrimSpace(n.Data)
			if trimmed != "" {
				hash := sanzang.HashText(trimmed)
				if out, ok := rendered[hash]; ok {
					n.Data = preserveWhitespace(n.Data, out)
				}
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	ph.doc.Each(func(i int, s *goquery.Selection) {
		for _, n := range s.Nodes {
			walk(n)
		}
	})

	out, err := ph.doc.Html()
	if err != nil {
		return "", &sanzang.ProcessorError{
			Message:     "failed to serialize HTML",
			Cause:       err,
			ContentType: "html",
		}
	}

	return out, nil
}

// ContentType returns "html".
func (p *HTMLProcessor) ContentType() string {
	return "html"
}

// preserveWhitespace preserves the original leading/trailing whitespace.
func preserveWhitespace(original, rendered string) string {
	leadingLen := len(original) - len(strings.TrimLeft(original, " \t\n\r"))
	leading := original[:leadingLen]

	trailingLen := len(original) - len(strings.TrimRight(original, " \t\n\r"))
	trailing := ""
	if trailingLen > 0 {
		trailing = original[len(original)-trailingLen:]
	}

	return leading + rendered + trailing
}

// Verify HTMLProcessor implements ContentProcessor
var _ ContentProcessor = (*HTMLProcessor)(nil)
