package sanzang

import (
	"strings"
	"testing"
)

func TestHashText(t *testing.T) {
	h1 := HashText("念佛")
	h2 := HashText("念佛")
	if h1 != h2 {
		t.Error("identical text should hash identically")
	}
	if len(h1) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(h1))
	}

	if HashText("念佛") != HashText("  念佛\n") {
		t.Error("hash should ignore surrounding whitespace")
	}
	if HashText("念佛") == HashText("淨土") {
		t.Error("different text should hash differently")
	}
}

func TestCacheKey(t *testing.T) {
	key := CacheKey("abc", "def", Annotate)
	if key != "abc:def:annotate" {
		t.Errorf("CacheKey = %q, want %q", key, "abc:def:annotate")
	}

	if CacheKey("abc", "def", Replace) == CacheKey("abc", "def", Annotate) {
		t.Error("mode must be part of the key")
	}
	if CacheKey("abc", "def", Replace) == CacheKey("abc", "xyz", Replace) {
		t.Error("index fingerprint must be part of the key")
	}
}

func TestCacheKey_UsesFingerprint(t *testing.T) {
	ix1, err := BuildIndex(makeGlossary("g", "念佛", "one"))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	ix2, err := BuildIndex(makeGlossary("g", "念佛", "two"))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	h := HashText("念佛")
	k1 := CacheKey(h, ix1.Fingerprint(), Replace)
	k2 := CacheKey(h, ix2.Fingerprint(), Replace)
	if k1 == k2 {
		t.Error("different glossaries must not share cache keys")
	}
	if !strings.HasPrefix(k1, h+":") {
		t.Errorf("key %q should start with the text hash", k1)
	}
}
