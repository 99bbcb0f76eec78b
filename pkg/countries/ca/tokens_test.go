package ca

import (
	"testing"

	"github.com/dlclark/regexp2"
)

func mustMatch(t *testing.T, pattern, input string) bool {
	t.Helper()
	re, err := regexp2.Compile(`^(?:`+pattern+`)$`, regexp2.IgnoreCase)
	if err != nil {
		t.Fatalf("regexp2.Compile(%q) error = %v", pattern, err)
	}
	m, err := re.FindStringMatch(input)
	if err != nil {
		t.Fatalf("FindStringMatch error = %v", err)
	}
	return m != nil
}

func TestPostalCodeAcceptsCanadianShape(t *testing.T) {
	accept := []string{"K1A 0B1", "K1A0B1", "M5V 3L9"}
	for _, in := range accept {
		if !mustMatch(t, postalCode, in) {
			t.Errorf("postalCode should accept %q", in)
		}
	}
}

func TestPostalCodeRejectsExcludedLetters(t *testing.T) {
	// D, F, I, O, Q, U never appear in the first letter position; W and Z
	// never appear in the first letter position either.
	reject := []string{"D1A 0B1", "F1A 0B1", "O1A 0B1"}
	for _, in := range reject {
		if mustMatch(t, postalCode, in) {
			t.Errorf("postalCode should reject %q", in)
		}
	}
}

func TestRegion1AcceptsProvincesByNameAndCode(t *testing.T) {
	accept := []string{"Ontario", "ON", "British Columbia", "BC", "Newfoundland", "Newfoundland and Labrador", "NL"}
	for _, in := range accept {
		if !mustMatch(t, region1, in) {
			t.Errorf("region1 should accept %q", in)
		}
	}
}

func TestPoBoxAcceptsCanadianForm(t *testing.T) {
	accept := []string{"C.P. 1234", "CP 1234", "PO Box 99"}
	for _, in := range accept {
		if !mustMatch(t, poBox, in) {
			t.Errorf("poBox should accept %q", in)
		}
	}
}

func TestCountryAcceptsCanada(t *testing.T) {
	if !mustMatch(t, country, "Canada") {
		t.Errorf("country should accept %q", "Canada")
	}
}

func TestTokensReturnsAllFields(t *testing.T) {
	tok := Tokens()
	if tok.StreetNumber == "" || tok.StreetType == "" || tok.PoBox == "" || tok.Region1 == "" || tok.PostalCode == "" {
		t.Errorf("Tokens() left a required field empty: %+v", tok)
	}
}
