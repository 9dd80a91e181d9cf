// Command sanzang substitutes glossary terms into CJK text.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	sanzang "github.com/yaoguai/sanzang-lib"
	"github.com/yaoguai/sanzang-lib/cache"
	"github.com/yaoguai/sanzang-lib/glossary"
	"github.com/yaoguai/sanzang-lib/processor"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = sanzang.Version
	commit    = sanzang.GitCommit
	buildDate = sanzang.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sanzang", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	glossaries := fs.String("glossary", "", "Comma-separated tab-separated glossary files, in priority order")
	tableFile := fs.String("table", "", "Sanzang translation table file (pipe-delimited columns)")
	mode := fs.String("mode", "replace", "Substitution mode: replace or annotate")
	open := fs.String("open", "(", "Opening delimiter for annotate mode")
	closing := fs.String("close", ")", "Closing delimiter for annotate mode")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	reflow := fs.Bool("reflow", false, "Reflow input along CJK punctuation before processing")
	listing := fs.Bool("listing", false, "Emit a numbered bilingual listing instead of plain output")
	segment := fs.Bool("segment", false, "Emit one punctuation-delimited unit per line, no substitution")
	vocab := fs.Bool("vocab", false, "List the glossary terms used by the input, one per line")
	htmlIn := fs.Bool("html", false, "Treat input as HTML and substitute inside text nodes")
	boundaries := fs.String("boundaries", sanzang.DefaultBoundaries, "Boundary punctuation set for --segment")
	cacheTTL := fs.Int("cache-ttl", 3600, "In-memory cache TTL in seconds for --html (0 to disable)")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", sanzang.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	// Get input
	var input string
	var inputName string

	if fs.NArg() == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		input = string(data)
		inputName = "stdin"
	} else {
		inputPath := fs.Arg(0)
		data, err := os.ReadFile(inputPath) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		input = string(data)
		inputName = filepath.Base(inputPath)
	}

	if *reflow {
		input = sanzang.Reflow(input)
	}

	// Resolve output writer
	var out io.Writer = stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	// Segmentation needs no glossaries
	if *segment {
		seg := sanzang.NewSegmenter(sanzang.WithBoundaries(*boundaries))
		for _, u := range seg.Segment(input) {
			fmt.Fprintln(out, u.Text)
		}
		return nil
	}

	// Load glossaries
	var loaded []sanzang.Glossary
	if *glossaries != "" {
		paths := strings.Split(*glossaries, ",")
		for i := range paths {
			paths[i] = strings.TrimSpace(paths[i])
		}
		gs, err := glossary.LoadAll(paths...)
		if err != nil {
			return fmt.Errorf("loading glossaries: %w", err)
		}
		loaded = append(loaded, gs...)
	}
	if *tableFile != "" {
		gs, err := glossary.LoadTable(*tableFile)
		if err != nil {
			return fmt.Errorf("loading table: %w", err)
		}
		loaded = append(loaded, gs...)
	}
	if len(loaded) == 0 {
		fs.Usage()
		return fmt.Errorf("--glossary or --table is required")
	}

	index, err := sanzang.BuildIndex(loaded...)
	if err != nil {
		return fmt.Errorf("building term index: %w", err)
	}

	var subMode sanzang.SubstitutionMode
	switch *mode {
	case "replace":
		subMode = sanzang.Replace
	case "annotate":
		subMode = sanzang.Annotate
	default:
		return fmt.Errorf("unknown mode %q (want replace or annotate)", *mode)
	}

	if *vocab {
		for _, t := range sanzang.UsedTerms(input, index) {
			fmt.Fprintf(out, "%s\t%s\n", t.Source, t.Gloss)
		}
		return nil
	}

	if *listing {
		fmt.Fprint(out, sanzang.Listing(input, index))
		return nil
	}

	if !*quiet {
		fmt.Fprintf(stderr, "Substituting %s (%d terms, %s mode)...\n", inputName, index.Len(), subMode)
	}

	start := time.Now()

	if *htmlIn {
		opts := []sanzang.EngineOption{
			sanzang.WithMode(subMode),
			sanzang.WithEngineBrackets(*open, *closing),
			sanzang.WithProcessor(processor.NewHTMLProcessor()),
		}
		if *cacheTTL > 0 {
			opts = append(opts, sanzang.WithCache(cache.NewInMemoryCache(*cacheTTL)))
		}

		engine := sanzang.NewEngine(index, opts...)
		result, err := engine.ProcessHTML(context.Background(), input)
		if err != nil {
			return fmt.Errorf("processing HTML: %w", err)
		}
		elapsed := time.Since(start)

		if *jsonOutput {
			return outputJSON(out, result, elapsed)
		}
		fmt.Fprint(out, result.Content)

		if !*quiet {
			fmt.Fprintf(stderr, "\nDone in %v\n", elapsed.Round(time.Millisecond))
			fmt.Fprintf(stderr, "  Nodes found: %d\n", result.TotalNodes)
			fmt.Fprintf(stderr, "  Rendered:    %d\n", result.RenderedCount)
			fmt.Fprintf(stderr, "  From cache:  %d\n", result.CachedCount)
		}
		return nil
	}

	rendered := sanzang.Substitute(input, index, subMode, sanzang.WithBrackets(*open, *closing))
	elapsed := time.Since(start)

	if *jsonOutput {
		return outputJSON(out, &sanzang.ProcessedContent{
			Content:       rendered,
			RenderedCount: 1,
			TotalNodes:    1,
		}, elapsed)
	}
	fmt.Fprint(out, rendered)

	if !*quiet {
		fmt.Fprintf(stderr, "\nDone in %v\n", elapsed.Round(time.Millisecond))
	}
	return nil
}

// JSONOutput represents the JSON output format.
type JSONOutput struct {
	Content       string `json:"content"`
	TotalNodes    int    `json:"total_nodes"`
	RenderedCount int    `json:"rendered_count"`
	CachedCount   int    `json:"cached_count"`
	ElapsedMs     int64  `json:"elapsed_ms"`
}

// outputJSON writes the result as JSON.
func outputJSON(w io.Writer, result *sanzang.ProcessedContent, elapsed time.Duration) error {
	out := JSONOutput{
		Content:       result.Content,
		TotalNodes:    result.TotalNodes,
		RenderedCount: result.RenderedCount,
		CachedCount:   result.CachedCount,
		ElapsedMs:     elapsed.Milliseconds(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
