package parser

import (
	"strings"
	"unicode"
)

// Address is the parsed-address entity (component C6): every field a
// successful match can populate, trimmed of surrounding whitespace and
// trailing separators. Fields that didn't participate in a given match are
// the empty string. Address is immutable after construction.
type Address struct {
	CountryID  string
	MatchStart int
	MatchEnd   int
	FullMatch  string

	FullStreet         string
	StreetNumber       string
	StreetName         string
	TypelessStreetName string
	StreetType         string
	PostDirection      string
	PreDirection       string
	Occupancy          string
	Floor              string
	Building           string
	MailStop           string
	POBox              string
	City               string
	Region1            string
	Region2            string
	PostalCode         string
	Country            string
}

// newAddress builds an Address from a raw field map (as produced by the
// capture projector), trimming every value and ignoring unknown keys. It
// never panics on a missing or unexpected key — the projector is the only
// caller, and it's expected to evolve the field set over time without
// every caller needing to change in lockstep.
//
// start and end are the untrimmed match bounds in the normalized text;
// they're narrowed here by however much trimField strips from full, so
// that normalizedText[MatchStart:MatchEnd] always equals FullMatch exactly
// — trimming the match text without correspondingly narrowing its span
// would leave the two inconsistent.
func newAddress(countryID string, start, end int, full string, fields map[string]string) *Address {
	trimmedFull, lead, trail := trimFieldSpan(full)
	a := &Address{
		CountryID:  countryID,
		MatchStart: start + lead,
		MatchEnd:   end - trail,
		FullMatch:  trimmedFull,

		StreetNumber:       trimField(fields["street_number"]),
		StreetName:         trimField(fields["street_name"]),
		TypelessStreetName: trimField(fields["typeless_street_name"]),
		StreetType:         trimField(fields["street_type"]),
		PostDirection:      trimField(fields["post_direction"]),
		PreDirection:       trimField(fields["pre_direction"]),
		Occupancy:          trimField(fields["occupancy"]),
		Floor:              trimField(fields["floor"]),
		Building:           trimField(fields["building"]),
		MailStop:           trimField(fields["mail_stop"]),
		POBox:              trimField(fields["po_box"]),
		City:               trimField(fields["city"]),
		Region1:            trimField(fields["region1"]),
		Region2:            trimField(fields["region2"]),
		PostalCode:         trimField(fields["postal_code"]),
		Country:            trimField(fields["country"]),
	}
	a.FullStreet = a.buildFullStreet()
	return a
}

// buildFullStreet reassembles the street-only portion of the match (used
// by ParseSingleStreet, and useful on its own for callers that only want
// the street line without the city/region/postal tail).
func (a *Address) buildFullStreet() string {
	parts := make([]string, 0, 8)
	add := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}
	add(a.StreetNumber)
	add(a.PreDirection)
	if a.StreetName != "" {
		add(a.StreetName)
		add(a.StreetType)
	} else {
		add(a.TypelessStreetName)
	}
	add(a.PostDirection)
	add(a.Occupancy)
	add(a.Floor)
	add(a.Building)
	add(a.MailStop)
	return strings.Join(parts, " ")
}

// String returns the full matched text, matching the Address entity's
// documented String() contract.
func (a *Address) String() string {
	return a.FullMatch
}

// IsEmpty reports whether no field was populated — a defensive check for
// callers, never produced by Parse itself (the match driver only yields
// non-empty matches).
func (a *Address) IsEmpty() bool {
	return a.FullMatch == ""
}

// trimField strips surrounding whitespace and trailing comma/semicolon
// separators left over from how the composed pattern captures a field
// (e.g. a trailing ", " consumed as part of a greedy tail separator).
func trimField(s string) string {
	trimmed, _, _ := trimFieldSpan(s)
	return trimmed
}

// trimFieldSpan does the same trim as trimField but also reports how many
// bytes it removed from the front (lead) and back (trail) of s, so a
// caller holding s's position within a larger string can narrow that span
// to match.
func trimFieldSpan(s string) (trimmed string, lead, trail int) {
	left := strings.TrimLeftFunc(s, unicode.IsSpace)
	lead = len(s) - len(left)

	right := strings.TrimRightFunc(left, unicode.IsSpace)
	right = strings.TrimRight(right, ",;")
	trimmed = right
	trail = len(left) - len(right)
	return trimmed, lead, trail
}
