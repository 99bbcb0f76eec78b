package parser

import (
	"errors"
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/parseaddr/pkg/countries"
	"github.com/parseaddr/pkg/grammar"
)

// ErrCountryRequired and ErrCountryDetectionMissing are the two
// configuration-error sentinels: an unsupported or missing country tag is
// resolved here, synchronously, rather than surfaced as a runtime parse
// failure partway through a scan.
var (
	ErrCountryRequired         = errors.New("parser: country is required")
	ErrCountryDetectionMissing = errors.New("parser: country could not be detected")
)

// Parse is the public façade (C8). It normalizes text (component C3),
// matches every non-overlapping occurrence of country's full_address
// grammar (component C4), and projects each match into an Address
// (components C5/C6). No match is not an error: Parse returns a nil/empty
// slice, never an error, when the grammar simply doesn't find an address.
func Parse(text, country string) ([]*Address, error) {
	composed, err := resolveCountry(country)
	if err != nil {
		return nil, err
	}
	return driveMatches(composed, country, grammar.Normalize(text))
}

// ParseSingleStreet runs Parse over text and returns at most one Address:
// the first match with no city, region, postal code or country, or, when
// every match has one of those, the first match. Callers use this for
// street-only input ("123 Main St", "PO Box 99999"). FullStreet equals
// FullMatch for a plain space-separated street line such as "123 Main St";
// FullStreet is rebuilt from the street fields joined by single spaces, so
// it leaves out a PO box, the separators between fields, and any
// city/region/postal tail that FullMatch contains.
func ParseSingleStreet(text, country string) (*Address, error) {
	addrs, err := Parse(text, country)
	if err != nil {
		return nil, err
	}
	for _, a := range addrs {
		if a.City == "" && a.Region1 == "" && a.PostalCode == "" && a.Country == "" {
			return a, nil
		}
	}
	if len(addrs) > 0 {
		return addrs[0], nil
	}
	return nil, nil
}

func resolveCountry(country string) (*grammar.Composed, error) {
	if country == "" {
		return nil, ErrCountryRequired
	}
	composed, err := countries.Get(country)
	if err != nil {
		var unknown *countries.ErrUnknownCountry
		if errors.As(err, &unknown) {
			return nil, fmt.Errorf("%w: %v", ErrCountryDetectionMissing, err)
		}
		return nil, err
	}
	return composed, nil
}

// driveMatches is the match driver (C4): it walks text with
// composed.Pattern via FindStringMatch/FindNextMatch, the regexp2
// equivalent of a non-overlapping global match loop. regexp2 itself
// advances past a zero-length match internally, so the scan always makes
// progress and terminates.
func driveMatches(composed *grammar.Composed, country, text string) ([]*Address, error) {
	var out []*Address
	// regexp2 reports match positions in runes; Address spans are byte
	// offsets into text.
	runes := []rune(text)

	m, err := composed.Pattern.FindStringMatch(text)
	if err != nil {
		return nil, fmt.Errorf("parser: match: %w", err)
	}
	for m != nil {
		fields := project(composed, m)
		if hasAnyField(fields) {
			full := m.String()
			start := len(string(runes[:m.Index]))
			out = append(out, newAddress(country, start, start+len(full), full, fields))
		}

		next, err := composed.Pattern.FindNextMatch(m)
		if err != nil {
			return nil, fmt.Errorf("parser: match: %w", err)
		}
		m = next
	}
	return out, nil
}

// project is the capture projector (C5): it reads every named group the
// compiled pattern can produce and coalesces duplicate-suffixed groups
// (street_name vs street_name_a, and so on for every field the two
// full_address arms share) back onto their base field name, keeping
// whichever one actually participated in the match. Because the two arms
// are mutually exclusive alternatives, at most one side of each pair ever
// participates — "first non-empty wins" here is really "the one that
// fired".
func project(composed *grammar.Composed, m *regexp2.Match) map[string]string {
	raw := make(map[string]string, len(composed.FieldOf))
	for groupName := range composed.FieldOf {
		g := m.GroupByName(groupName)
		if g == nil || len(g.Captures) == 0 {
			continue
		}
		raw[groupName] = g.String()
	}
	return combineResults(raw, composed.FieldOf)
}

// combineResults coalesces a raw group-name → value map down to one value
// per base field, keeping the first non-empty value it encounters for
// each base name. It takes plain maps rather than a *regexp2.Match so it
// can be exercised directly, independent of matching, against a synthetic
// capture map — the duplicate-field-coalescence behavior this function
// implements is itself a testable property, not just an emergent effect of
// end-to-end parses.
func combineResults(raw map[string]string, fieldOf map[string]string) map[string]string {
	combined := make(map[string]string, len(raw))
	for groupName, value := range raw {
		base, ok := fieldOf[groupName]
		if !ok || value == "" {
			continue
		}
		if _, already := combined[base]; already {
			continue
		}
		combined[base] = value
	}
	return combined
}

func hasAnyField(fields map[string]string) bool {
	for _, v := range fields {
		if v != "" {
			return true
		}
	}
	return false
}
