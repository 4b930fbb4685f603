package markdown

import (
	"strings"
	"testing"
)

func render(t *testing.T, text string, opts Options) string {
	t.Helper()

	out, err := NewPipeline(opts).Run(text)
	if err != nil {
		t.Fatalf("Run(%q): %v", text, err)
	}

	return out
}

func TestRenderSeedScenario1Header(t *testing.T) {
	got := render(t, "# Hello\n", Options{})
	want := `<div class="markdown-content"><h1><span>Hello</span></h1></div>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderSeedScenario2EmphasisOrder(t *testing.T) {
	got := render(t, "**a** *b*", Options{})
	if !strings.Contains(got, "<strong><span>a</span></strong>") {
		t.Fatalf("missing strong: %q", got)
	}
	if !strings.Contains(got, "<em><span>b</span></em>") {
		t.Fatalf("missing em: %q", got)
	}
	strongIdx := strings.Index(got, "<strong>")
	emIdx := strings.Index(got, "<em>")
	if strongIdx == -1 || emIdx == -1 || strongIdx > emIdx {
		t.Fatalf("expected strong before em: %q", got)
	}
}

func TestRenderSeedScenario3InlineCode(t *testing.T) {
	got := render(t, "`x`", Options{})
	if !strings.Contains(got, "<code>`x`</code>") {
		t.Fatalf("got %q", got)
	}
}

func TestRenderSeedScenario4CodeBlockLanguage(t *testing.T) {
	got := render(t, "```js\nlet a=1\n```", Options{})
	want := `<div class="markdown-content"><pre><code class="language-js">let a=1</code></pre></div>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderSeedScenario5TaskList(t *testing.T) {
	got := render(t, "- [x] done\n- [ ] todo", Options{})
	if !strings.Contains(got, `<ul class="task-list">`) {
		t.Fatalf("missing task-list ul: %q", got)
	}
	if !strings.Contains(got, `checked`) {
		t.Fatalf("missing checked: %q", got)
	}
	if !strings.Contains(got, `type="checkbox"`) {
		t.Fatalf("missing checkbox input: %q", got)
	}
}

func TestRenderSeedScenario6URLSanitization(t *testing.T) {
	got := render(t, "[a](javascript:x)", Options{SanitizeContent: true, SanitizeURL: true})
	if !strings.Contains(got, `href="#"`) {
		t.Fatalf("expected sanitized href, got %q", got)
	}
}

func TestRenderWellFormedWrapper(t *testing.T) {
	got := render(t, "plain text", Options{})
	if !strings.HasPrefix(got, `<div class="markdown-content">`) {
		t.Fatalf("missing opening wrapper: %q", got)
	}
	if !strings.HasSuffix(got, `</div>`) {
		t.Fatalf("missing closing wrapper: %q", got)
	}
}

func TestRenderEmptyInputStillWraps(t *testing.T) {
	got := render(t, "", Options{})
	want := `<div class="markdown-content"></div>`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRenderSelfClosingTags(t *testing.T) {
	got := render(t, "---", Options{})
	if !strings.Contains(got, "<hr />") {
		t.Fatalf("got %q", got)
	}
}

func TestRenderEscapedAsteriskStaysLiteral(t *testing.T) {
	got := render(t, `\*not emphasis\*`, Options{})
	if strings.Contains(got, "<em>") || strings.Contains(got, "<strong>") {
		t.Fatalf("escaped asterisks should not open emphasis: %q", got)
	}
	if !strings.Contains(got, "<span>*</span>") || !strings.Contains(got, "<span>not emphasis</span>") {
		t.Fatalf("got %q", got)
	}
}

func TestRenderContentSanitizationIdempotent(t *testing.T) {
	once := encodeContent(`<script>`, true)
	twice := encodeContent(once, true)
	if !strings.HasPrefix(twice, "&amp;") {
		t.Fatalf("re-encoding should escape the leading '&' rather than decode it: %q", twice)
	}
	if strings.Contains(twice, "<") || strings.Contains(twice, ">") {
		t.Fatalf("re-encoded output must not resurrect raw angle brackets: %q", twice)
	}
}
