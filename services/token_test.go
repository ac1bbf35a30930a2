package services

import (
	"regexp"
	"testing"
)

func TestNewTokenShape(t *testing.T) {
	hexPattern := regexp.MustCompile(`^[0-9a-f]{40}$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok := NewToken()
		if !hexPattern.MatchString(tok) {
			t.Fatalf("token %q is not 40 hex chars", tok)
		}
		if seen[tok] {
			t.Fatalf("token %q repeated", tok)
		}
		seen[tok] = true
	}
}
