package token

import "testing"

func TestNewIsNotEmpty(t *testing.T) {
	if got := New(); got == "" {
		t.Fatal("expected non-empty token")
	}
}

func TestNewDoesNotCollide(t *testing.T) {
	const n = 10000

	seen := make(map[string]struct{}, n)

	for range n {
		tok := New()
		if _, ok := seen[tok]; ok {
			t.Fatalf("duplicate token after %d generations: %s", len(seen), tok)
		}
		seen[tok] = struct{}{}
	}
}
