package sanzang

import "testing"

func TestSubstitute_IdentityOnEmptyGlossary(t *testing.T) {
	ix, err := BuildIndex()
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	texts := []string{
		"",
		"阿彌陀佛",
		"念佛。求生淨土！",
		"plain ASCII text",
		"mixed 中英 text",
	}
	for _, text := range texts {
		if got := Substitute(text, ix, Replace); got != text {
			t.Errorf("Substitute(%q) = %q, want identity", text, got)
		}
	}
}

func TestSubstitute_SingleTerm(t *testing.T) {
	ix, err := BuildIndex(makeGlossary("g", "阿彌陀佛", "Amitabha Buddha"))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	if got := Substitute("阿彌陀佛", ix, Replace); got != "Amitabha Buddha" {
		t.Errorf("Replace = %q, want %q", got, "Amitabha Buddha")
	}
	if got := Substitute("阿彌陀佛", ix, Annotate); got != "阿彌陀佛(Amitabha Buddha)" {
		t.Errorf("Annotate = %q, want %q", got, "阿彌陀佛(Amitabha Buddha)")
	}
}

func TestSubstitute_LongestMatchPrecedence(t *testing.T) {
	ix, err := BuildIndex(makeGlossary("g", "AB", "X", "ABC", "Y"))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	if got := Substitute("ABCD", ix, Replace); got != "YD" {
		t.Errorf("Substitute = %q, want %q", got, "YD")
	}
}

func TestSubstitute_PriorityTieBreak(t *testing.T) {
	g1 := makeGlossary("first", "AB", "one")
	g2 := makeGlossary("second", "AB", "two")

	ix, err := BuildIndex(g1, g2)
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	if got := Substitute("AB", ix, Replace); got != "one" {
		t.Errorf("Substitute = %q, want %q (first-loaded glossary wins)", got, "one")
	}
}

func TestSubstitute_PassThrough(t *testing.T) {
	ix, err := BuildIndex(makeGlossary("g", "念佛", "recollect the buddha"))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	text := "此處無彼詞。Nor here."
	if got := Substitute(text, ix, Replace); got != text {
		t.Errorf("Substitute = %q, want unchanged input", got)
	}
}

func TestSubstitute_MixedScan(t *testing.T) {
	ix, err := BuildIndex(makeGlossary("g",
		"念佛", "recollect the buddha",
		"淨土", "pure land",
	))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	got := Substitute("念佛。求生淨土！", ix, Replace)
	want := "recollect the buddha。求生pure land！"
	if got != want {
		t.Errorf("Replace = %q, want %q", got, want)
	}

	got = Substitute("念佛。求生淨土！", ix, Annotate)
	want = "念佛(recollect the buddha)。求生淨土(pure land)！"
	if got != want {
		t.Errorf("Annotate = %q, want %q", got, want)
	}
}

func TestSubstitute_CustomBrackets(t *testing.T) {
	ix, err := BuildIndex(makeGlossary("g", "念佛", "nianfo"))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	got := Substitute("念佛", ix, Annotate, WithBrackets("【", "】"))
	want := "念佛【nianfo】"
	if got != want {
		t.Errorf("Annotate = %q, want %q", got, want)
	}
}

func TestSubstitute_AdjacentMatchesDoNotOverlap(t *testing.T) {
	ix, err := BuildIndex(makeGlossary("g", "AA", "x", "AB", "y"))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	// "AAAB": the scan consumes "AA" then "AB"; the middle "A" is
	// never reused by two matches.
	if got := Substitute("AAAB", ix, Replace); got != "xy" {
		t.Errorf("Substitute = %q, want %q", got, "xy")
	}
}

func TestUsedTerms(t *testing.T) {
	ix, err := BuildIndex(makeGlossary("g",
		"念佛", "recollect the buddha",
		"淨土", "pure land",
		"禪", "dhyana",
	))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	used := UsedTerms("淨土。念佛。又念佛。", ix)
	if len(used) != 2 {
		t.Fatalf("len(used) = %d, want 2", len(used))
	}
	if used[0].Source != "淨土" || used[1].Source != "念佛" {
		t.Errorf("used = %v, want 淨土 then 念佛 in first-occurrence order", used)
	}
}

func TestUsedTerms_Empty(t *testing.T) {
	ix, err := BuildIndex(makeGlossary("g", "念佛", "recollect the buddha"))
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}

	if used := UsedTerms("無關文字", ix); used != nil {
		t.Errorf("used = %v, want nil", used)
	}
}
