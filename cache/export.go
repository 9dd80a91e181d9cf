package cache

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
)

// ExportFormat represents the JSON structure for cache export/import.
type ExportFormat struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Entries    []ExportEntry     `json:"entries"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// ExportEntry represents a single cache entry.
type ExportEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Exporter provides cache export functionality.
type Exporter struct {
	cache SubstitutionCache
}

// NewExporter creates a new cache exporter.
func NewExporter(cache SubstitutionCache) *Exporter {
	return &Exporter{cache: cache}
}

// Export writes the cache contents to a writer in JSON format.
func (e *Exporter) Export(w io.Writer, metadata map[string]string) error {
	entries, err := e.getAllEntries()
	if err != nil {
		return fmt.Errorf("getting cache entries: %w", err)
	}

	export := ExportFormat{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:    entries,
		Metadata:   metadata,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// ExportCompressed writes the cache contents as gzip-compressed JSON.
// Rendered CJK text with repeated glosses compresses well, so this is
// the format of choice for archiving or shipping caches between hosts.
func (e *Exporter) ExportCompressed(w io.Writer, metadata map[string]string) error {
	zw := gzip.NewWriter(w)
	if err := e.Export(zw, metadata); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// ExportToFile exports the cache to a file. Paths ending in ".gz" are
// written gzip-compressed.
func (e *Exporter) ExportToFile(path string, metadata map[string]string) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if strings.HasSuffix(path, ".gz") {
		return e.ExportCompressed(f, metadata)
	}
	return e.Export(f, metadata)
}

// getAllEntries extracts all entries from the cache.
func (e *Exporter) getAllEntries() ([]ExportEntry, error) {
	switch c := e.cache.(type) {
	case *InMemoryCache:
		data := c.Entries()
		entries := make([]ExportEntry, 0, len(data))
		for key, value := range data {
			entries = append(entries, ExportEntry{Key: key, Value: value})
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("cache type %T does not support export", e.cache)
	}
}

// Importer provides cache import functionality.
type Importer struct {
	cache SubstitutionCache
}

// NewImporter creates a new cache importer.
func NewImporter(cache SubstitutionCache) *Importer {
	return &Importer{cache: cache}
}

// Import reads cache entries from a reader and loads them into the
// cache. Gzip-compressed input is detected by its magic bytes and
// decompressed transparently.
func (i *Importer) Import(r io.Reader) (*ImportResult, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		defer zr.Close()
		return i.importJSON(zr)
	}

	return i.importJSON(br)
}

func (i *Importer) importJSON(r io.Reader) (*ImportResult, error) {
	var export ExportFormat
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	result := &ImportResult{
		Version:  export.Version,
		Metadata: export.Metadata,
	}

	for _, entry := range export.Entries {
		if err := i.cache.Set(entry.Key, entry.Value); err != nil {
			result.Failed++
			continue
		}
		result.Imported++
	}

	return result, nil
}

// ImportFromFile imports cache entries from a file.
func (i *Importer) ImportFromFile(path string) (*ImportResult, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return i.Import(f)
}

// ImportResult contains statistics about the import operation.
type ImportResult struct {
	Version  string
	Metadata map[string]string
	Imported int
	Failed   int
}
