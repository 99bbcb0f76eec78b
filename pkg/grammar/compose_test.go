package grammar

import (
	"testing"

	"github.com/dlclark/regexp2"
)

func testTokens() Tokens {
	return Tokens{
		StreetNumber:   `\d{1,5}`,
		PreDirection:   `(?:N|S|E|W)`,
		PostDirection:  `(?:N|S|E|W)`,
		StreetNameWord: `[A-Za-z]+`,
		StreetType:     `(?:St|Ave)`,
		Occupancy:      `(?:Apt\s*\d+)`,
		Floor:          `(?:Fl\s*\d+)`,
		Building:       `(?:Bldg\s*\d+)`,
		MailStop:       `(?:MS\s*\d+)`,
		PoBox:          `(?:PO\s*Box\s*\d+)`,
		City:           `[A-Z][a-z]+`,
		Region1:        `(?:CA|OR)`,
		PostalCode:     `\d{5}`,
		Country:        `(?:USA)`,
	}
}

// firstNonEmptyMatch returns the first match of re in s that consumed at
// least one character. The composed pattern also yields zero-length
// matches (every part of the standard arm is optional), which the parser's
// match driver passes over as well.
func firstNonEmptyMatch(re *regexp2.Regexp, s string) (*regexp2.Match, error) {
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil && m.Length == 0 {
		m, err = re.FindNextMatch(m)
	}
	return m, err
}

func TestBuildCompilesWithoutError(t *testing.T) {
	if _, err := Build(testTokens()); err != nil {
		t.Fatalf("Build() error = %v", err)
	}
}

func TestBuildMatchesStandardForm(t *testing.T) {
	composed, err := Build(testTokens())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	m, err := firstNonEmptyMatch(composed.Pattern, ", 123 N Main St Anytown CA 90210 USA, ")
	if err != nil {
		t.Fatalf("FindStringMatch error = %v", err)
	}
	if m == nil {
		t.Fatal("FindStringMatch found no match for a well-formed address")
	}
}

func TestBuildMatchesPoBoxFirstForm(t *testing.T) {
	composed, err := Build(testTokens())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	m, err := firstNonEmptyMatch(composed.Pattern, ", PO Box 4125, 1 Main St, ")
	if err != nil {
		t.Fatalf("FindStringMatch error = %v", err)
	}
	if m == nil {
		t.Fatal("FindStringMatch found no match for a PO-box-first address")
	}
	g := m.GroupByName("po_box_lead")
	if g == nil || len(g.Captures) == 0 {
		t.Error("po_box_lead group did not participate in the PO-box-first match")
	}
}

// TestTypedArmGuardRejectsGluedContinuation exercises the regexp2-only
// lookahead guard on typedArm. "St" is a real USPS suffix and also a
// literal prefix of the unrelated word "Streetwise" — without the guard,
// typedArm would happily match "Main" + "St" inside "Main Streetwise
// Avenue" and leave "reetwise Avenue" dangling. The guard requires a real
// word boundary after the type, rejecting that glued case while still
// accepting the type when it's genuinely followed by a space (the "El
// Camino Real" shape pyap's own typed_street_name tests use as the
// canonical accept case, here grounded with the real suffix vocabulary
// instead of a Spanish-language one absent from the US/CA token lists).
func TestTypedArmGuardRejectsGluedContinuation(t *testing.T) {
	tokens := testTokens()
	tokens.StreetType = `(?:St|Ave)`

	re, err := regexp2.Compile(`^(?:`+typedArm(tokens, "")+`)$`, compileOptions)
	if err != nil {
		t.Fatalf("regexp2.Compile error = %v", err)
	}

	accept := "Main St"
	m, err := re.FindStringMatch(accept)
	if err != nil {
		t.Fatalf("FindStringMatch(%q) error = %v", accept, err)
	}
	if m == nil {
		t.Errorf("typedArm should match %q (name %q, type %q)", accept, "Main", "St")
	}

	reject := "Main Streetwise"
	m, err = re.FindStringMatch(reject)
	if err != nil {
		t.Fatalf("FindStringMatch(%q) error = %v", reject, err)
	}
	if m != nil {
		t.Errorf("typedArm should not match %q: the guard should reject treating %q as the type when it's glued to %q with no separator",
			reject, "St", "reetwise")
	}
}

func TestFieldOfMapsSuffixedGroupsToBaseNames(t *testing.T) {
	composed, err := Build(testTokens())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if composed.FieldOf["street_name_a"] != "street_name" {
		t.Errorf("FieldOf[street_name_a] = %q, want %q", composed.FieldOf["street_name_a"], "street_name")
	}
	if composed.FieldOf["po_box_lead"] != "po_box" {
		t.Errorf("FieldOf[po_box_lead] = %q, want %q", composed.FieldOf["po_box_lead"], "po_box")
	}
}
