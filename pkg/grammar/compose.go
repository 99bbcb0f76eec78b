package grammar

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// compileOptions is shared by every pattern this package builds: verbose
// mode (so patterns can carry whitespace and comments like the reference
// grammar's own source), case-insensitive matching, and "." not crossing
// line boundaries (multi-line mailing blocks are matched a field at a
// time, not swallowed whole).
const compileOptions = regexp2.IgnorePatternWhitespace | regexp2.IgnoreCase

// wordSep is a mandatory inline separator: one or more spaces or tabs,
// never a newline. The street number, directionals, name and type are
// joined with it, so they share one physical line, matching how mailing
// labels are actually laid out; occupancy/floor/building/mail-stop
// trailers are joined with tailSep instead.
const wordSep = `[ \t]+`

// tailSep separates the street block from its occupancy/floor/building/
// mail-stop trailers and from the city/region/postal-code/country tail.
// Unlike wordSep it is any run of whitespace and commas, so it may cross
// line breaks, since that tail is routinely printed on its own line.
const tailSep = `[\s,]+`

// optTailSep is tailSep made optional, for slots that may be the first
// thing in the tail (immediately following a mandatory token that already
// consumed its own trailing separator).
const optTailSep = `[\s,]*`

// Composed holds the compiled full_address pattern (C2) together with the
// group-name → semantic-field-name table the capture projector (C5) needs
// to undo the duplicate-name suffixing this function performs when it
// folds two structurally identical arms (the standard form and the
// PO-box-first form) into one alternation.
type Composed struct {
	Pattern *regexp2.Regexp
	FieldOf map[string]string // capture group name -> Address field name
}

// streetFields and tailFields list every semantic field the street/tail
// blocks capture, in the
// order the composer wraps them. Names here double as the base names the
// capture projector coalesces suffixed duplicates back onto.
var streetFields = []string{
	"street_number", "pre_direction", "street_name", "typeless_street_name",
	"street_type", "post_direction", "occupancy", "floor", "building",
	"mail_stop",
}

var tailFields = []string{"po_box", "city", "region1", "postal_code", "country"}

// Build assembles the full_address pattern (C2) for one country's token
// library: a street block (street number, directionals, typed-or-typeless
// street name, post-direction, occupancy/floor/building/mail-stop) followed
// by an optional city/region/postal-code/country tail, in either order
// (the secondary "PO Box first" form pyap calls out — e.g. "P.O. BOX 41256,
// One Velvet Drive"). Both arms reuse the same field names, so the second
// arm's groups are suffixed "_a" to keep them unique within one compiled
// pattern; FieldOf maps every group name (suffixed or not) back to its
// base field.
func Build(t Tokens) (*Composed, error) {
	street := streetBlock(t, "")
	tail := tailBlock(t, "")
	streetA := streetBlock(t, "_a")
	tailA := tailBlock(t, "_a")

	standardArm := fmt.Sprintf(`(?:%s)? (?:%s%s)?`, street, optTailSep, tail)
	poBoxFirstArm := fmt.Sprintf(`(?<po_box_lead>%s) %s (?:%s)? (?:%s%s)?`,
		t.PoBox, tailSep, streetA, optTailSep, tailA)

	// The PO-box-first arm is tried first: every part of the standard arm
	// is optional, so the standard arm matches the empty string wherever it
	// finds nothing else and, as the first alternative, would keep the
	// PO-box-first arm from ever being tried.
	full := fmt.Sprintf(`(?:%s|%s)`, poBoxFirstArm, standardArm)

	re, err := regexp2.Compile(full, compileOptions)
	if err != nil {
		return nil, fmt.Errorf("grammar: compile full_address: %w", err)
	}

	fieldOf := map[string]string{"po_box_lead": "po_box"}
	for _, f := range append(append([]string{}, streetFields...), tailFields...) {
		fieldOf[f] = f
		fieldOf[f+"_a"] = f
	}

	return &Composed{Pattern: re, FieldOf: fieldOf}, nil
}

// streetBlock composes the street-only sub-pattern (full_street): a
// street number, optional pre-direction, a typed street name
// (name + recognized type) tried before a typeless one, an optional
// post-direction, and any number of occupancy/floor/building/mail-stop
// trailers. suffix disambiguates group names when the same block is
// embedded twice in one pattern.
func streetBlock(t Tokens, suffix string) string {
	streetNumber := group("street_number", suffix, t.StreetNumber)
	preDir := group("pre_direction", suffix, t.PreDirection)
	postDir := group("post_direction", suffix, t.PostDirection)
	// numbered_or_typeless_street_name: a street-type-like word, optionally
	// followed by a trailing number ("Highway 32", "Parkway") — not an
	// arbitrary run of words. A broader definition (any 1-5 letter-led
	// words) would let ordinary non-address prose be mistaken for a bare
	// street name.
	typelessName := group("typeless_street_name", suffix, t.StreetType+`(?:`+wordSep+`\d{1,4})?`)

	typed := typedArm(t, suffix)
	typeless := typelessName
	name := fmt.Sprintf(`(?:%s|%s)`, typed, typeless)

	occupancy := group("occupancy", suffix, t.Occupancy)
	floor := group("floor", suffix, t.Floor)
	building := group("building", suffix, t.Building)
	mailStop := group("mail_stop", suffix, t.MailStop)
	trailer := fmt.Sprintf(`(?:%s(?:%s|%s|%s|%s))*`, tailSep, occupancy, floor, building, mailStop)

	return fmt.Sprintf(`%s%s (?:%s%s)? %s (?:%s%s)? %s`,
		streetNumber, wordSep, preDir, wordSep, name, wordSep, postDir, trailer)
}

// typedArm composes <street_name> <street_type>, guarded by a negative
// lookahead requiring the type to end on a real word boundary. Without the
// guard, a short type alternative can match as a bare prefix of a longer,
// unrelated word glued right after it with no separator — e.g. "St" inside
// "Streetwise" in "123 Main Streetwise Avenue" — truncating the match
// instead of falling through to the typeless arm or to a longer type
// alternative. The guard only looks at the character immediately following
// the type match, so it never rejects the ordinary case of a type word
// followed by a space and more text (a city name, another field, or end of
// input) — only a glued continuation with no separator at all.
func typedArm(t Tokens, suffix string) string {
	streetName := group("street_name", suffix, t.StreetNameWord+`(?:`+wordSep+t.StreetNameWord+`){0,4}`)
	streetType := group("street_type", suffix, t.StreetType)
	return streetName + wordSep + streetType + `(?![A-Za-z])`
}

// tailBlock composes the city/region/postal-code/country tail shared by
// both full_address arms, plus a PO box that may trail the street (the
// primary form, as opposed to the PO-box-first arm built in Build).
func tailBlock(t Tokens, suffix string) string {
	poBox := group("po_box", suffix, t.PoBox)
	city := group("city", suffix, t.City)
	region1 := group("region1", suffix, t.Region1)
	postalCode := group("postal_code", suffix, t.PostalCode)
	country := group("country", suffix, t.Country)

	parts := []string{
		fmt.Sprintf(`(?:%s)?`, poBox),
		fmt.Sprintf(`(?:%s)?`, city),
		fmt.Sprintf(`(?:%s)?`, region1),
		fmt.Sprintf(`(?:%s)?`, postalCode),
		fmt.Sprintf(`(?:%s)?`, country),
	}
	return strings.Join(parts, tailSep)
}

func group(name, suffix, body string) string {
	return fmt.Sprintf(`(?<%s%s>%s)`, name, suffix, body)
}
