package sanzang

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// mockCache is a simple map-backed cache for testing
type mockCache struct {
	data     map[string]string
	getCalls int
	setCalls int
}

func newMockCache() *mockCache {
	return &mockCache{data: make(map[string]string)}
}

func (c *mockCache) Get(key string) (string, bool) {
	c.getCalls++
	val, ok := c.data[key]
	return val, ok
}

func (c *mockCache) Set(key string, value string) error {
	c.setCalls++
	c.data[key] = value
	return nil
}

// lineProcessor is a minimal per-line processor for testing
type lineProcessor struct{}

func (p *lineProcessor) Extract(content string) (interface{}, []TextNode, error) {
	lines := strings.Split(content, "\n")
	var nodes []TextNode
	seen := make(map[string]bool)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		hash := HashText(line)
		if seen[hash] {
			continue
		}
		seen[hash] = true
		nodes = append(nodes, TextNode{
			ID:       "line-" + line,
			Text:     line,
			Hash:     hash,
			NodeType: "text_line",
		})
	}
	return lines, nodes, nil
}

func (p *lineProcessor) Apply(parsed interface{}, nodes []TextNode, rendered map[string]string) (string, error) {
	lines := parsed.([]string)
	out := make([]string, len(lines))
	for i, line := range lines {
		if r, ok := rendered[HashText(line)]; ok && strings.TrimSpace(line) != "" {
			out[i] = r
		} else {
			out[i] = line
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *lineProcessor) ContentType() string { return "text" }

func buildTestIndex(t *testing.T) *TermIndex {
	t.Helper()
	ix, err := BuildIndex(makeGlossary("g",
		"念佛", "recollect the buddha",
		"淨土", "pure land",
	))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	return ix
}

func TestEngine_ProcessText(t *testing.T) {
	ix := buildTestIndex(t)
	e := NewEngine(ix, WithProcessor(&lineProcessor{}))

	result, err := e.Process(context.Background(), "念佛。\n求生淨土！", "text")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	want := "recollect the buddha。\n求生pure land！"
	if result.Content != want {
		t.Errorf("Content = %q, want %q", result.Content, want)
	}
	if result.TotalNodes != 2 {
		t.Errorf("TotalNodes = %d, want 2", result.TotalNodes)
	}
	if result.RenderedCount != 2 {
		t.Errorf("RenderedCount = %d, want 2", result.RenderedCount)
	}
	if result.CachedCount != 0 {
		t.Errorf("CachedCount = %d, want 0", result.CachedCount)
	}
}

func TestEngine_NoProcessor(t *testing.T) {
	ix := buildTestIndex(t)
	e := NewEngine(ix)

	_, err := e.Process(context.Background(), "念佛", "html")
	if err == nil {
		t.Fatal("Process should fail without a registered processor")
	}
	var procErr *ProcessorError
	if !errors.As(err, &procErr) {
		t.Fatalf("error should be *ProcessorError, got %T", err)
	}
	if procErr.ContentType != "html" {
		t.Errorf("ContentType = %q, want %q", procErr.ContentType, "html")
	}
}

func TestEngine_CacheHits(t *testing.T) {
	ix := buildTestIndex(t)
	c := newMockCache()
	e := NewEngine(ix, WithProcessor(&lineProcessor{}), WithCache(c))

	first, err := e.Process(context.Background(), "念佛。\n求生淨土！", "text")
	if err != nil {
		t.Fatalf("first Process failed: %v", err)
	}
	if first.CachedCount != 0 || first.RenderedCount != 2 {
		t.Errorf("first run: cached=%d rendered=%d, want 0/2", first.CachedCount, first.RenderedCount)
	}

	second, err := e.Process(context.Background(), "念佛。\n求生淨土！", "text")
	if err != nil {
		t.Fatalf("second Process failed: %v", err)
	}
	if second.CachedCount != 2 || second.RenderedCount != 0 {
		t.Errorf("second run: cached=%d rendered=%d, want 2/0", second.CachedCount, second.RenderedCount)
	}
	if second.Content != first.Content {
		t.Errorf("cached content %q differs from rendered %q", second.Content, first.Content)
	}
}

func TestEngine_AnnotateModeAndBrackets(t *testing.T) {
	ix := buildTestIndex(t)
	e := NewEngine(ix,
		WithProcessor(&lineProcessor{}),
		WithMode(Annotate),
		WithEngineBrackets("[", "]"),
	)

	result, err := e.Process(context.Background(), "念佛", "text")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	want := "念佛[recollect the buddha]"
	if result.Content != want {
		t.Errorf("Content = %q, want %q", result.Content, want)
	}
}

func TestEngine_EmptyContent(t *testing.T) {
	ix := buildTestIndex(t)
	e := NewEngine(ix, WithProcessor(&lineProcessor{}))

	result, err := e.Process(context.Background(), "", "text")
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}
	if result.TotalNodes != 0 {
		t.Errorf("TotalNodes = %d, want 0", result.TotalNodes)
	}
	if result.Content != "" {
		t.Errorf("Content = %q, want empty", result.Content)
	}
}

func TestEngine_CancelledContext(t *testing.T) {
	ix := buildTestIndex(t)
	e := NewEngine(ix, WithProcessor(&lineProcessor{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Process(ctx, "念佛", "text")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestEngine_Substitute(t *testing.T) {
	ix := buildTestIndex(t)
	e := NewEngine(ix, WithMode(Annotate))

	got := e.Substitute("念佛")
	want := "念佛(recollect the buddha)"
	if got != want {
		t.Errorf("Substitute = %q, want %q", got, want)
	}
}

func TestEngine_Units(t *testing.T) {
	ix := buildTestIndex(t)
	e := NewEngine(ix)

	units := e.Units("念佛。求生淨土！")
	if len(units) != 2 {
		t.Fatalf("len(units) = %d, want 2", len(units))
	}
}
