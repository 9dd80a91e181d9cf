// Package cache provides substitution result caching implementations.
//
// Keys are produced by sanzang.CacheKey and bind a rendering to the
// text hash, the term-index fingerprint, and the substitution mode, so
// one cache may safely serve several glossary sets at once.
package cache

// SubstitutionCache is the interface for caching rendered text.
type SubstitutionCache interface {
	// Get retrieves a cached rendering. Returns empty string and false if not found or expired.
	Get(key string) (string, bool)

	// Set stores a rendering in the cache.
	Set(key string, value string) error
}
