package us

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

func TestStreetNumberAcceptsDigitsAndSpelledOut(t *testing.T) {
	accept := []string{"123", "5214F", "155-B", "1", "12345", "twenty two", "one hundred one"}
	for _, in := range accept {
		if !mustMatch(t, streetNumber, in) {
			t.Errorf("streetNumber should accept %q", in)
		}
	}
}

func TestStreetNumberRejectsLetterSeparatedByWhitespace(t *testing.T) {
	// a unit letter separated from the digits by a space is not part of
	// the street number token itself.
	if mustMatch(t, streetNumber, "155 B") {
		t.Errorf("streetNumber should not accept %q as a whole token", "155 B")
	}
}

// TestStreetNumberRejectsMalformedDigitRuns is the SPEC_FULL.md §5 negative
// corpus: a too-long digit run, a digit run split across whitespace, and
// digits with a stray alphabetic run glued on are all not a valid street
// number as a whole token.
func TestStreetNumberRejectsMalformedDigitRuns(t *testing.T) {
	reject := []string{"536233", "123 456", "1111ss11"}
	for _, in := range reject {
		if mustMatch(t, streetNumber, in) {
			t.Errorf("streetNumber should reject %q", in)
		}
	}
}

func TestDirectionAcceptsAbbreviatedAndSpelledOut(t *testing.T) {
	accept := []string{"N", "N.", "North", "NE", "Northeast", "SW", "Southwest"}
	for _, in := range accept {
		if !mustMatch(t, direction, in) {
			t.Errorf("direction should accept %q", in)
		}
	}
}

func TestStreetTypeAcceptsCommonSuffixes(t *testing.T) {
	accept := []string{"St", "Street", "Ave", "Avenue", "Blvd", "Hwy", "Highway", "Dr", "Ln", "Rd", "Way", "Ct"}
	for _, in := range accept {
		if !mustMatch(t, streetType, in) {
			t.Errorf("streetType should accept %q", in)
		}
	}
}

// TestStreetTypeAcceptsSpecNamedSuffixes covers the entries spec.md §8's
// Testable Properties table and §4.1 call out by name (BAY, Freeway, Loop,
// Estate, Manor, Cut Off) — a prior revision of streetTypeSuffix omitted all
// of these, and nothing in this file caught the gap.
func TestStreetTypeAcceptsSpecNamedSuffixes(t *testing.T) {
	accept := []string{"BAY", "Bay", "Freeway", "Fwy", "Loop", "Estate", "Estates", "Manor", "Manors", "Cut Off", "Cutoff"}
	for _, in := range accept {
		if !mustMatch(t, streetType, in) {
			t.Errorf("streetType should accept %q", in)
		}
	}
}

func TestStreetTypeAcceptsExtendedRouteForms(t *testing.T) {
	accept := []string{
		"Interstate", "I-95", "US Highway", "Route 9", "State Route 9",
		"I- 35", "I-35 Service Road", "Street route 5",
	}
	for _, in := range accept {
		if !mustMatch(t, streetType, in) {
			t.Errorf("streetType should accept %q", in)
		}
	}
}

func TestPoBoxAcceptsKnownForms(t *testing.T) {
	accept := []string{"PO Box 1234", "P.O. Box 99999", "Post Office Box 42"}
	for _, in := range accept {
		if !mustMatch(t, poBox, in) {
			t.Errorf("poBox should accept %q", in)
		}
	}
}

func TestRegion1AcceptsNamesAndAbbreviations(t *testing.T) {
	accept := []string{"CA", "California", "New York", "NY", "North Carolina", "NC"}
	for _, in := range accept {
		if !mustMatch(t, region1, in) {
			t.Errorf("region1 should accept %q", in)
		}
	}
}

func TestPostalCodeAcceptsFiveAndNinePlus(t *testing.T) {
	accept := []string{"95472", "97201-1234"}
	for _, in := range accept {
		if !mustMatch(t, postalCode, in) {
			t.Errorf("postalCode should accept %q", in)
		}
	}
}

func TestPostalCodeRejectsWrongLength(t *testing.T) {
	reject := []string{"1234", "123456"}
	for _, in := range reject {
		if mustMatch(t, postalCode, in) {
			t.Errorf("postalCode should reject %q", in)
		}
	}
}

func TestTokensReturnsAllFields(t *testing.T) {
	tok := Tokens()
	if tok.StreetNumber == "" || tok.StreetType == "" || tok.PoBox == "" || tok.Region1 == "" || tok.PostalCode == "" {
		t.Errorf("Tokens() left a required field empty: %+v", tok)
	}
}
