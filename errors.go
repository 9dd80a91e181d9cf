package sanzang

import "fmt"

// ConfigurationError indicates invalid glossary input during index
// construction. Construction is atomic: when BuildIndex returns a
// ConfigurationError no partially built index is retained.
type ConfigurationError struct {
	Message  string
	Glossary string // Name of the offending glossary, if known
	Entry    int    // Zero-based position of the offending term
}

func (e *ConfigurationError) Error() string {
	if e.Glossary != "" {
		return fmt.Sprintf("configuration error: %s (glossary %q, entry %d)", e.Message, e.Glossary, e.Entry)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// ProcessorError indicates a content processing failure (parse error, etc.).
type ProcessorError struct {
	Message     string
	Cause       error
	ContentType string // The type of content that failed to process
}

func (e *ProcessorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("processor error (%s): %s: %v", e.ContentType, e.Message, e.Cause)
	}
	return fmt.Sprintf("processor error (%s): %s", e.ContentType, e.Message)
}

func (e *ProcessorError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message string
	Cause   error
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}
