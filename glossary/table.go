package glossary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	sanzang "github.com/yaoguai/sanzang-lib"
)

// ReadTable reads a sanzang translation table: pipe-delimited records,
// one source-term column followed by one column per target rendering.
// Every record must have the same number of columns as the first; blank
// lines are skipped. The result is one glossary per target column, in
// column order, so that passing them to sanzang.BuildIndex unchanged
// gives column 1 the highest priority.
func ReadTable(r io.Reader, name string) ([]sanzang.Glossary, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var records [][]string
	var recLines []int
	width := -1

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		rec := strings.Split(line, "|")
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		switch {
		case width == -1 && len(rec) > 1:
			width = len(rec)
			records = append(records, rec)
			recLines = append(recLines, lineNo)
		case len(rec) == width:
			records = append(records, rec)
			recLines = append(recLines, lineNo)
		default:
			return nil, &FormatError{
				Source:  name,
				Line:    lineNo,
				Message: fmt.Sprintf("record has %d columns, table has %d", len(rec), width),
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if width == -1 {
		return nil, nil
	}

	glossaries := make([]sanzang.Glossary, width-1)
	for col := 1; col < width; col++ {
		glossaries[col-1].Name = fmt.Sprintf("%s[%d]", name, col)
	}
	for recIdx, rec := range records {
		if rec[0] == "" {
			return nil, &FormatError{
				Source:  name,
				Line:    recLines[recIdx],
				Message: "empty source term",
			}
		}
		for col := 1; col < width; col++ {
			glossaries[col-1].Terms = append(glossaries[col-1].Terms, sanzang.Term{
				Source: rec[0],
				Gloss:  rec[col],
			})
		}
	}

	return glossaries, nil
}

// LoadTable reads a sanzang translation table from a file.
func LoadTable(path string) ([]sanzang.Glossary, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadTable(f, filepath.Base(path))
}
