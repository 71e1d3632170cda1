package render

import (
	"strings"
	"testing"
)

func TestMarkdown_RendersText(t *testing.T) {
	out, err := Markdown("# Title\n\nSome **bold** text.", "notty", 80)
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}

	if !strings.Contains(out, "Title") {
		t.Errorf("output missing heading text: %q", out)
	}
	if !strings.Contains(out, "bold") {
		t.Errorf("output missing body text: %q", out)
	}
}

func TestMarkdown_DefaultsApplied(t *testing.T) {
	// Empty style and non-positive width fall back to defaults.
	out, err := Markdown("plain text", "", 0)
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}
	if !strings.Contains(out, "plain text") {
		t.Errorf("output = %q", out)
	}
}

func TestMarkdown_CachesRenderer(t *testing.T) {
	if _, err := Markdown("one", "notty", 60); err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}

	cacheMu.Lock()
	before := len(cache)
	cacheMu.Unlock()

	if _, err := Markdown("two", "notty", 60); err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}

	cacheMu.Lock()
	after := len(cache)
	cacheMu.Unlock()

	if after != before {
		t.Errorf("renderer cache grew from %d to %d for same style/width", before, after)
	}
}

func TestMarkdown_Wraps(t *testing.T) {
	long := strings.Repeat("word ", 40)
	out, err := Markdown(long, "notty", 40)
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}

	for _, line := range strings.Split(out, "\n") {
		if len(line) > 60 {
			t.Errorf("line longer than wrap width allows: %d chars", len(line))
		}
	}
}
