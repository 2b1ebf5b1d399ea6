package link

import "testing"

func TestGenerateShape(t *testing.T) {
	got, err := Generate()
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(got) != Length {
		t.Errorf("Generate() = %q, want %d characters", got, Length)
	}
	for _, c := range got {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Errorf("Generate() = %q, contains non-hex character %q", got, c)
		}
	}
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		tok, err := Generate()
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if seen[tok] {
			t.Fatalf("Generate() repeated token %q after %d draws", tok, i)
		}
		seen[tok] = true
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"a1b2c3d4e5f6", true},
		{"000000000000", true},
		{"a1b2c3d4e5f", false},   // too short
		{"a1b2c3d4e5f6a", false}, // too long
		{"g1b2c3d4e5f6", false},  // non-hex
		{"", false},
	}
	for _, c := range cases {
		if got := Valid(c.in); got != c.want {
			t.Errorf("Valid(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
