package glossary

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	sanzang "github.com/yaoguai/sanzang-lib"
)

func TestParse_Basic(t *testing.T) {
	input := "阿彌陀佛\tAmitabha Buddha\n念佛\trecollect the buddha\n"

	g, err := Parse(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if g.Name != "test" {
		t.Errorf("Name = %q, want %q", g.Name, "test")
	}
	if len(g.Terms) != 2 {
		t.Fatalf("len(Terms) = %d, want 2", len(g.Terms))
	}
	if g.Terms[0].Source != "阿彌陀佛" || g.Terms[0].Gloss != "Amitabha Buddha" {
		t.Errorf("Terms[0] = %+v", g.Terms[0])
	}
}

func TestParse_SkipsBlankAndComments(t *testing.T) {
	input := "# header comment\n\n念佛\trecollect the buddha\n\n# trailing\n"

	g, err := Parse(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(g.Terms) != 1 {
		t.Errorf("len(Terms) = %d, want 1", len(g.Terms))
	}
}

func TestParse_MissingTab(t *testing.T) {
	input := "念佛\trecollect the buddha\nno separator here\n"

	_, err := Parse(strings.NewReader(input), "test")
	if err == nil {
		t.Fatal("Parse should reject a line without a tab")
	}

	var fmtErr *FormatError
	if !errors.As(err, &fmtErr) {
		t.Fatalf("error should be *FormatError, got %T", err)
	}
	if fmtErr.Line != 2 {
		t.Errorf("Line = %d, want 2", fmtErr.Line)
	}
	if fmtErr.Source != "test" {
		t.Errorf("Source = %q, want %q", fmtErr.Source, "test")
	}
}

func TestParse_TooManyFields(t *testing.T) {
	input := "a\tb\tc\n"

	_, err := Parse(strings.NewReader(input), "test")
	var fmtErr *FormatError
	if !errors.As(err, &fmtErr) {
		t.Fatalf("want *FormatError, got %v", err)
	}
}

func TestParse_EmptyTermOrGloss(t *testing.T) {
	for _, input := range []string{"\tgloss\n", "term\t\n", "  \tgloss\n"} {
		_, err := Parse(strings.NewReader(input), "test")
		var fmtErr *FormatError
		if !errors.As(err, &fmtErr) {
			t.Errorf("Parse(%q): want *FormatError, got %v", input, err)
		}
	}
}

func TestParse_PreservesOrder(t *testing.T) {
	input := "乙\tsecond\n甲\tfirst\n"

	g, err := Parse(strings.NewReader(input), "test")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if g.Terms[0].Source != "乙" || g.Terms[1].Source != "甲" {
		t.Errorf("Terms out of order: %+v", g.Terms)
	}
}

func TestLoadAll_PriorityOrder(t *testing.T) {
	dir := t.TempDir()

	p1 := filepath.Join(dir, "first.tsv")
	p2 := filepath.Join(dir, "second.tsv")
	if err := os.WriteFile(p1, []byte("念佛\tfrom first\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p2, []byte("念佛\tfrom second\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	gs, err := LoadAll(p1, p2)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(gs) != 2 {
		t.Fatalf("len = %d, want 2", len(gs))
	}
	if gs[0].Name != "first.tsv" || gs[1].Name != "second.tsv" {
		t.Errorf("names = %q, %q", gs[0].Name, gs[1].Name)
	}

	// The loader's ordering is what BuildIndex turns into priority.
	ix, err := sanzang.BuildIndex(gs...)
	if err != nil {
		t.Fatalf("BuildIndex failed: %v", err)
	}
	if got := sanzang.Substitute("念佛", ix, sanzang.Replace); got != "from first" {
		t.Errorf("Substitute = %q, want %q", got, "from first")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.tsv")); err == nil {
		t.Error("Load should fail on a missing file")
	}
}
