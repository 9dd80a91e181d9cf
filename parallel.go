package sanzang

import "sync"

// ParallelCacheLookup performs cache lookups in parallel using
// goroutines. Useful for remote caches with per-call latency; the
// in-memory cache gains nothing from it. Returns a map of hash to
// cached rendering, and the nodes that missed, deduplicated by hash in
// original order.
func ParallelCacheLookup(cache SubstitutionCache, nodes []TextNode, fingerprint string, mode SubstitutionMode) (map[string]string, []TextNode) {
	if cache == nil || len(nodes) == 0 {
		return make(map[string]string), nodes
	}

	type lookupResult struct {
		hash  string
		value string
		found bool
	}

	uniqueNodes := make(map[string]TextNode)
	for _, node := range nodes {
		if _, exists := uniqueNodes[node.Hash]; !exists {
			uniqueNodes[node.Hash] = node
		}
	}

	results := make(chan lookupResult, len(uniqueNodes))
	var wg sync.WaitGroup

	for hash := range uniqueNodes {
		wg.Add(1)
		go func(h string) {
			defer wg.Done()
			key := CacheKey(h, fingerprint, mode)
			if val, ok := cache.Get(key); ok {
				results <- lookupResult{hash: h, value: val, found: true}
			} else {
				results <- lookupResult{hash: h, found: false}
			}
		}(hash)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	rendered := make(map[string]string)
	missedHashes := make(map[string]bool)

	for result := range results {
		if result.found {
			rendered[result.hash] = result.value
		} else {
			missedHashes[result.hash] = true
		}
	}

	var misses []TextNode
	seenMisses := make(map[string]bool)
	for _, node := range nodes {
		if missedHashes[node.Hash] && !seenMisses[node.Hash] {
			misses = append(misses, node)
			seenMisses[node.Hash] = true
		}
	}

	return rendered, misses
}
