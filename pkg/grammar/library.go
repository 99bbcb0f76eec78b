package grammar

// Tokens is a country's token library (component C1): the regex body for
// every atom the composer needs, in dlclark/regexp2 (verbose-mode, .NET
// flavor) syntax. Every field holds the *body* of a named group — the
// composer wraps each one in its own `(?<name>...)` when it assembles
// full_street and full_address, so a country's token library never repeats
// group-name bookkeeping.
//
// Fields are plain alternations/sequences, not full patterns: callers pass
// them straight to Build, which handles anchoring, optionality,
// and boundary whitespace.
type Tokens struct {
	// StreetNumber matches a building number: digits (optionally with a
	// trailing letter or hyphen-letter suffix), or a spelled-out cardinal
	// up to the low thousands.
	StreetNumber string

	// PreDirection and PostDirection match directional abbreviations
	// (N, North, NE, Northeast, ...) appearing before or after the street
	// name.
	PreDirection  string
	PostDirection string

	// StreetNameWord matches a single word of a street name: a
	// letter-led token of at least two characters (allowing embedded
	// digits, apostrophes and hyphens), or a bare number used as a name
	// word (e.g. "Avenue 123").
	StreetNameWord string

	// StreetType matches a recognized street-type suffix (St, Avenue,
	// Blvd, ...), including the extended interstate/route/highway forms.
	StreetType string

	// Occupancy matches a secondary unit designator and its id (Apt 4B,
	// Suite 200, #12).
	Occupancy string

	// Floor matches a floor designator (2nd Floor, Fl. 3).
	Floor string

	// Building matches a named building/complex designator (Bldg A,
	// Building 12).
	Building string

	// MailStop matches a mail-stop designator (MS 42, Mail Stop A-100).
	MailStop string

	// PoBox matches a post-office box designator and its id.
	PoBox string

	// City matches a city/place name: one to several capitalized words.
	City string

	// Region1 matches the state/province name or abbreviation.
	Region1 string

	// PostalCode matches the country's postal-code shape.
	PostalCode string

	// Country matches an optional trailing country name/abbreviation.
	Country string
}
