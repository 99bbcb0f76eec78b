package parser

import (
	"strings"
	"testing"
)

// TestRealWorldAddresses exercises Parse end to end against the kinds of
// inputs a caller actually sends: a fully qualified address, a bare
// street, and a PO box.
func TestRealWorldAddresses(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"standard address", "1005 N Gravenstein Highway Sebastopol CA 95472"},
		{"simple address", "123 Main Street"},
		{"po box", "PO Box 1234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addrs, err := Parse(tt.input, "US")
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if len(addrs) == 0 {
				t.Errorf("Parse found no address in %q", tt.input)
			}
		})
	}
}

// TestRealisticFullStreetCorpus is the SPEC_FULL.md §5 realistic-mailing-
// block supplement: a sample of pyap's own test_full_street positive corpus
// (original_source/tests/test_parser_us.py), spanning typed streets,
// extended route forms and occupancy trailers the token-level tests never
// exercise together in one pass.
func TestRealisticFullStreetCorpus(t *testing.T) {
	inputs := []string{
		"10354 Smoothwater Dr Site 142",
		"9652 Loiret Boulevard",
		"101 MacIntosh Boulevard",
		"899 HEATHROW PARK LN",
		"696 BEAL PKWY",
		"3821 ED DR",
		"600 HIGHWAY 32 EAST",
		"1 West Hegeler Lane",
		"1270 Leeds Avenue",
		"1806 Dominion Way Ste B",
		"9606 North Mopac Expressway Suite 500",
		"1659 Scott Blvd Ste 26",
		"1737 S Lumpkin St Ste B",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			addr, err := ParseSingleStreet(in, "US")
			if err != nil {
				t.Fatalf("ParseSingleStreet(%q) error = %v", in, err)
			}
			if addr == nil {
				t.Fatalf("ParseSingleStreet(%q) found no street", in)
			}
			if addr.StreetNumber == "" {
				t.Errorf("ParseSingleStreet(%q) left StreetNumber empty", in)
			}
		})
	}
}

// TestParserDoesNotPanic ensures Parse handles all inputs gracefully,
// including adversarial and oversized ones.
func TestParserDoesNotPanic(t *testing.T) {
	inputs := []string{
		"",
		"normal address 123 Main St",
		"'; DROP TABLE--",
		"<script>alert('xss')</script>",
		strings.Repeat("A", 5000),
	}

	for _, input := range inputs {
		t.Run("Input: "+input[:min(len(input), 50)], func(t *testing.T) {
			defer func() {
				if r := recover(); r != nil {
					t.Errorf("Parse panicked: %v", r)
				}
			}()
			_, _ = Parse(input, "US")
		})
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
