package grammar

import "testing"

func TestNormalizeDocumentedExample(t *testing.T) {
	input := "  The  quick      \t, brown fox      jumps over the lazy dog, ‐ ‑ ‒ – — ―,  "
	want := ", The quick, brown fox jumps over the lazy dog, - - - - - -, "

	got := Normalize(input)
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"123 Main St, Anytown, ST 00000",
		"  messy   ,,  input\t\tline  ",
		", already, wrapped, ",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize() not idempotent for %q: first=%q second=%q", in, once, twice)
		}
	}
}

func TestNormalizePreservesNewlines(t *testing.T) {
	got := Normalize("123 Main St\nAnytown ST 00000")
	if !contains(got, "\n") {
		t.Errorf("Normalize() dropped newline: %q", got)
	}
}

func TestNormalizeCollapsesHorizontalWhitespaceOnly(t *testing.T) {
	got := Normalize("123   Main\tSt")
	want := ", 123 Main St, "
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
