package glossary

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	sanzang "github.com/yaoguai/sanzang-lib"
)

// CommentMarker introduces a comment line in the tab-separated format.
const CommentMarker = "#"

// Parse reads a tab-separated glossary: one entry per line, term and
// gloss separated by a single horizontal tab. Blank lines and lines
// beginning with the comment marker are skipped. Lines with a missing
// separator or the wrong field count are rejected with a *FormatError.
func Parse(r io.Reader, name string) (sanzang.Glossary, error) {
	g := sanzang.Glossary{Name: name}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, CommentMarker) {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return sanzang.Glossary{}, &FormatError{
				Source:  name,
				Line:    lineNo,
				Message: "expected exactly one tab separator",
			}
		}

		term := strings.TrimSpace(fields[0])
		gloss := strings.TrimSpace(fields[1])
		if term == "" {
			return sanzang.Glossary{}, &FormatError{
				Source:  name,
				Line:    lineNo,
				Message: "empty term",
			}
		}
		if gloss == "" {
			return sanzang.Glossary{}, &FormatError{
				Source:  name,
				Line:    lineNo,
				Message: "empty gloss",
			}
		}

		g.Terms = append(g.Terms, sanzang.Term{Source: term, Gloss: gloss})
	}
	if err := scanner.Err(); err != nil {
		return sanzang.Glossary{}, err
	}

	return g, nil
}

// Load reads a tab-separated glossary from a file. The glossary name is
// the file's base name.
func Load(path string) (sanzang.Glossary, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return sanzang.Glossary{}, err
	}
	defer f.Close()

	return Parse(f, filepath.Base(path))
}

// LoadAll reads several glossary files in order. The returned slice
// preserves argument order, which determines priority when the
// glossaries are passed to sanzang.BuildIndex.
func LoadAll(paths ...string) ([]sanzang.Glossary, error) {
	glossaries := make([]sanzang.Glossary, 0, len(paths))
	for _, path := range paths {
		g, err := Load(path)
		if err != nil {
			return nil, err
		}
		glossaries = append(glossaries, g)
	}
	return glossaries, nil
}
