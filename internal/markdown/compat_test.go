package markdown

import (
	"strings"
	"testing"

	"github.com/russross/blackfriday/v2"
)

// These tests use blackfriday as a differential oracle for the subset of
// behavior this package shares with CommonMark: not byte-for-byte (the
// element structure and class/span conventions here are bespoke), but
// enough to catch a processor silently swallowing or duplicating content.
func TestCompatHeaderTextSurvives(t *testing.T) {
	in := "# Hello World\n"

	ours := mustRun(t, in)
	theirs := string(blackfriday.Run([]byte(in)))

	assertContainsWord(t, ours, "Hello")
	assertContainsWord(t, theirs, "Hello")
}

func TestCompatEmphasisTextSurvives(t *testing.T) {
	in := "this is *emphasized* and **strong** text\n"

	ours := mustRun(t, in)
	theirs := string(blackfriday.Run([]byte(in)))

	for _, word := range []string{"emphasized", "strong"} {
		assertContainsWord(t, ours, word)
		assertContainsWord(t, theirs, word)
	}
}

func TestCompatCodeSpanRetainsLiteralContent(t *testing.T) {
	in := "call `fmt.Println(x)` to print\n"

	ours := mustRun(t, in)
	theirs := string(blackfriday.Run([]byte(in)))

	if !strings.Contains(ours, "fmt.Println(x)") {
		t.Fatalf("our output dropped code span content: %q", ours)
	}
	if !strings.Contains(theirs, "fmt.Println(x)") {
		t.Fatalf("oracle output dropped code span content: %q", theirs)
	}
}

func TestCompatListItemCountMatches(t *testing.T) {
	in := "- one\n- two\n- three\n"

	ours := mustRun(t, in)
	theirs := string(blackfriday.Run([]byte(in)))

	ourCount := strings.Count(ours, "<li")
	theirCount := strings.Count(theirs, "<li")
	if ourCount != 3 || theirCount != 3 {
		t.Fatalf("expected 3 list items each, got ours=%d theirs=%d", ourCount, theirCount)
	}
}

func TestCompatBlockquoteWraps(t *testing.T) {
	in := "> quoted\n"

	ours := mustRun(t, in)
	theirs := string(blackfriday.Run([]byte(in)))

	if !strings.Contains(ours, "<blockquote") || !strings.Contains(theirs, "<blockquote") {
		t.Fatalf("expected both outputs to contain a blockquote: ours=%q theirs=%q", ours, theirs)
	}
}

func mustRun(t *testing.T, in string) string {
	t.Helper()

	out, err := NewPipeline(Options{}).Run(in)
	if err != nil {
		t.Fatalf("Run(%q): %v", in, err)
	}

	return out
}

func assertContainsWord(t *testing.T, haystack, word string) {
	t.Helper()

	if !strings.Contains(haystack, word) {
		t.Fatalf("expected %q to contain %q", haystack, word)
	}
}
