package markdown

import (
	"strings"
	"testing"
)

func TestRenderSanitized_BasicMarkdown(t *testing.T) {
	html, err := RenderSanitized("## Digest\n\n- shipped the release\n- **fixed** the login bug")
	if err != nil {
		t.Fatalf("RenderSanitized failed: %v", err)
	}
	if !strings.Contains(html, "<h2>Digest</h2>") {
		t.Errorf("Expected heading in output, got %q", html)
	}
	if !strings.Contains(html, "<li>") {
		t.Errorf("Expected list items in output, got %q", html)
	}
	if !strings.Contains(html, "<strong>fixed</strong>") {
		t.Errorf("Expected bold text in output, got %q", html)
	}
}

func TestRenderSanitized_StripsScripts(t *testing.T) {
	html, err := RenderSanitized("hello <script>alert('x')</script> world")
	if err != nil {
		t.Fatalf("RenderSanitized failed: %v", err)
	}
	if strings.Contains(html, "<script") {
		t.Errorf("Expected script tags to be stripped, got %q", html)
	}
}

func TestRenderSanitized_GFMTable(t *testing.T) {
	html, err := RenderSanitized("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("RenderSanitized failed: %v", err)
	}
	if !strings.Contains(html, "<table>") {
		t.Errorf("Expected GFM table rendering, got %q", html)
	}
}
