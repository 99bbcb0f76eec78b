// Package countries is the country registry (component C7): it maps a
// country tag ("US", "CA") to that country's compiled grammar, built once
// per tag the first time it's requested.
package countries

import (
	"fmt"
	"sync"

	"github.com/parseaddr/pkg/countries/ca"
	"github.com/parseaddr/pkg/countries/us"
	"github.com/parseaddr/pkg/grammar"
)

// ErrUnknownCountry is returned by Get for any tag outside the supported
// set. Per spec, an unsupported country is a construction-time
// configuration error, never a runtime parse failure.
type ErrUnknownCountry struct {
	Tag string
}

func (e *ErrUnknownCountry) Error() string {
	return fmt.Sprintf("countries: unknown country tag %q", e.Tag)
}

var (
	mu    sync.Mutex
	cache = map[string]*grammar.Composed{}

	tokenSources = map[string]func() grammar.Tokens{
		"US": us.Tokens,
		"CA": ca.Tokens,
	}
)

// Get returns the compiled full_address grammar for tag, building and
// caching it on first use. The cache only ever holds successfully
// compiled, immutable patterns — nothing here is mutated after
// construction, satisfying the no-shared-mutable-state requirement.
func Get(tag string) (*grammar.Composed, error) {
	source, ok := tokenSources[tag]
	if !ok {
		return nil, &ErrUnknownCountry{Tag: tag}
	}

	mu.Lock()
	defer mu.Unlock()
	if c, ok := cache[tag]; ok {
		return c, nil
	}

	composed, err := grammar.Build(source())
	if err != nil {
		return nil, fmt.Errorf("countries: build grammar for %q: %w", tag, err)
	}
	cache[tag] = composed
	return composed, nil
}

// Supported returns the set of country tags this registry knows about.
func Supported() []string {
	tags := make([]string, 0, len(tokenSources))
	for tag := range tokenSources {
		tags = append(tags, tag)
	}
	return tags
}
