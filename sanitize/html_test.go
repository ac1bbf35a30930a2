package sanitize

import (
	"strings"
	"testing"
)

func TestSanitizeStripsScriptTags(t *testing.T) {
	out := Sanitize(`<script>bad()</script><p>ok</p>`)
	if strings.Contains(out, "<script") || strings.Contains(out, "bad()") {
		t.Fatalf("script content survived sanitization: %q", out)
	}
	if !strings.Contains(out, "<p>ok</p>") {
		t.Fatalf("allowed tag was stripped: %q", out)
	}
}

func TestSanitizeKeepsAllowedMarkup(t *testing.T) {
	in := `<h2>Title</h2><p style="text-align: center; color: #FF0000;">body</p><a href="https://example.com" target="_blank" rel="noopener">link</a>`
	out := Sanitize(in)
	for _, want := range []string{"<h2>Title</h2>", "text-align: center", "color: #FF0000", `href="https://example.com"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in sanitized output %q", want, out)
		}
	}
}

func TestSanitizeStripsDisallowedAttributesAndStyles(t *testing.T) {
	in := `<p onclick="steal()" style="position: absolute; color: #00FF00;">x</p><iframe src="evil"></iframe>`
	out := Sanitize(in)
	if strings.Contains(out, "onclick") || strings.Contains(out, "position") || strings.Contains(out, "iframe") {
		t.Fatalf("disallowed markup survived: %q", out)
	}
	if !strings.Contains(out, "color: #00FF00") {
		t.Fatalf("allowed style was stripped: %q", out)
	}
}

func TestSanitizeRejectsNonHexColor(t *testing.T) {
	out := Sanitize(`<span style="color: expression(alert(1));">x</span>`)
	if strings.Contains(out, "expression") {
		t.Fatalf("css expression survived: %q", out)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		`<script>bad()</script><p>ok</p>`,
		`<div style="background-color: rgb(10, 20, 30);"><mark>hi</mark></div>`,
		`plain text with <unknown>tag</unknown>`,
		``,
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Fatalf("sanitize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
