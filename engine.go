package sanzang

import "context"

// Engine ties the substitution scan to content processors and an
// optional result cache. It mirrors the core contract: the TermIndex is
// read-only, the scan is pure, and the Engine itself holds no mutable
// state after construction, so one Engine may serve concurrent calls.
type Engine struct {
	index      *TermIndex
	mode       SubstitutionMode
	open       string
	close      string
	cache      SubstitutionCache
	processors map[string]ContentProcessor
	segmenter  *Segmenter
}

// SubstitutionCache is the interface for caching rendered text.
type SubstitutionCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// ContentProcessor is the interface for content processing.
type ContentProcessor interface {
	Extract(content string) (interface{}, []TextNode, error)
	Apply(parsed interface{}, nodes []TextNode, rendered map[string]string) (string, error)
	ContentType() string
}

// EngineOption is a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithMode sets the substitution mode (default Replace).
func WithMode(mode SubstitutionMode) EngineOption {
	return func(e *Engine) {
		e.mode = mode
	}
}

// WithEngineBrackets sets the Annotate-mode delimiter pair.
func WithEngineBrackets(open, close string) EngineOption {
	return func(e *Engine) {
		e.open = open
		e.close = close
	}
}

// WithCache sets the substitution cache.
func WithCache(cache SubstitutionCache) EngineOption {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithProcessor registers a content processor.
func WithProcessor(processor ContentProcessor) EngineOption {
	return func(e *Engine) {
		e.processors[processor.ContentType()] = processor
	}
}

// WithSegmenter sets the segmenter used by unit-level helpers.
func WithSegmenter(s *Segmenter) EngineOption {
	return func(e *Engine) {
		e.segmenter = s
	}
}

// NewEngine creates an Engine over a built TermIndex.
func NewEngine(index *TermIndex, opts ...EngineOption) *Engine {
	e := &Engine{
		index:      index,
		mode:       Replace,
		open:       "(",
		close:      ")",
		processors: make(map[string]ContentProcessor),
		segmenter:  NewSegmenter(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Process substitutes glosses into content of the specified type.
func (e *Engine) Process(ctx context.Context, content string, contentType string) (*ProcessedContent, error) {
	processor, ok := e.processors[contentType]
	if !ok {
		return nil, &ProcessorError{
			Message:     "no processor registered for content type",
			ContentType: contentType,
		}
	}

	parsed, nodes, err := processor.Extract(content)
	if err != nil {
		return nil, err
	}

	if len(nodes) == 0 {
		return &ProcessedContent{
			Content:       content,
			RenderedCount: 0,
			CachedCount:   0,
			TotalNodes:    0,
		}, nil
	}

	rendered, cachedCount, renderedCount, err := e.renderBatch(ctx, nodes)
	if err != nil {
		return nil, err
	}

	result, err := processor.Apply(parsed, nodes, rendered)
	if err != nil {
		return nil, err
	}

	return &ProcessedContent{
		Content:       result,
		RenderedCount: renderedCount,
		CachedCount:   cachedCount,
		TotalNodes:    len(nodes),
	}, nil
}

// ProcessHTML is a convenience method for processing HTML content.
func (e *Engine) ProcessHTML(ctx context.Context, html string) (*ProcessedContent, error) {
	return e.Process(ctx, html, "html")
}

// ProcessText is a convenience method for processing plain text.
func (e *Engine) ProcessText(ctx context.Context, text string) (*ProcessedContent, error) {
	return e.Process(ctx, text, "text")
}

// renderBatch renders nodes through the scan, using the cache where
// possible. Returns hash-keyed renderings plus hit and miss counts.
func (e *Engine) renderBatch(ctx context.Context, nodes []TextNode) (map[string]string, int, int, error) {
	rendered := make(map[string]string)
	cachedCount := 0
	renderedCount := 0

	for _, node := range nodes {
		if _, done := rendered[node.Hash]; done {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, 0, 0, err
		}

		key := CacheKey(node.Hash, e.index.Fingerprint(), e.mode)
		if e.cache != nil {
			if cached, ok := e.cache.Get(key); ok {
				rendered[node.Hash] = cached
				cachedCount++
				continue
			}
		}

		out := Substitute(node.Text, e.index, e.mode, WithBrackets(e.open, e.close))
		rendered[node.Hash] = out
		renderedCount++

		if e.cache != nil {
			_ = e.cache.Set(key, out) // Ignore cache set errors
		}
	}

	return rendered, cachedCount, renderedCount, nil
}

// Substitute runs the configured scan directly over a plain string.
func (e *Engine) Substitute(text string) string {
	return Substitute(text, e.index, e.mode, WithBrackets(e.open, e.close))
}

// Units segments text with the Engine's segmenter.
func (e *Engine) Units(text string) []TextUnit {
	return e.segmenter.Segment(text)
}

// Index returns the read-only term index.
func (e *Engine) Index() *TermIndex {
	return e.index
}

// Mode returns the substitution mode.
func (e *Engine) Mode() SubstitutionMode {
	return e.mode
}
