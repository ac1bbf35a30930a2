package sanitize

import "testing"

func TestSanitizeSlug(t *testing.T) {
	cases := map[string]string{
		"Hello World":            "hello-world",
		"  lots   of   spaces  ": "lots-of-spaces",
		"Already-a-slug":         "already-a-slug",
		"Symbols!@# removed":     "symbols-removed",
		"under_scores_too":       "underscorestoo",
		"--edge--hyphens--":      "edge-hyphens",
		"MiXeD CaSe 123":         "mixed-case-123",
	}
	for in, want := range cases {
		if got := SanitizeSlug(in); got != want {
			t.Errorf("SanitizeSlug(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeSlugIdempotent(t *testing.T) {
	inputs := []string{"Hello World", "a--b--c", "tabs\tand\nnewlines", "...dots..."}
	for _, in := range inputs {
		once := SanitizeSlug(in)
		if twice := SanitizeSlug(once); twice != once {
			t.Errorf("SanitizeSlug not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSanitizedSlugsValidate(t *testing.T) {
	inputs := []string{"Hello World", "My 1st Post!", "C'est la vie", "Go & Rust, compared"}
	for _, in := range inputs {
		slug := SanitizeSlug(in)
		if !ValidateSlug(slug) {
			t.Errorf("SanitizeSlug(%q) produced invalid slug %q", in, slug)
		}
	}
}

func TestValidateSlug(t *testing.T) {
	valid := []string{"a", "my-post", "post-123"}
	invalid := []string{"", "My-Post", "has space", "under_score", "émoji"}
	for _, s := range valid {
		if !ValidateSlug(s) {
			t.Errorf("ValidateSlug(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidateSlug(s) {
			t.Errorf("ValidateSlug(%q) = true, want false", s)
		}
	}
}
