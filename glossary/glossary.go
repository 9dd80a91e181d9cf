// Package glossary loads translation glossaries for the sanzang core.
//
// Two on-disk formats are supported: the tab-separated two-column
// format (one "term<TAB>gloss" entry per line, '#' comments), and the
// original sanzang translation table format (pipe-delimited columns,
// one source column followed by one column per target rendering).
// Parsing and validation happen here; the core only ever receives
// well-formed term/gloss pairs.
package glossary

import "fmt"

// FormatError indicates a malformed glossary line. It is reported
// before anything reaches the core, which only validates term length.
type FormatError struct {
	Source  string // Glossary origin (file name, reader label)
	Line    int    // One-based line number
	Message string
}

func (e *FormatError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("glossary %s:%d: %s", e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("glossary line %d: %s", e.Line, e.Message)
}
