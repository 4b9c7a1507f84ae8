// Package tiers maps integer scores onto named tiers using ordered,
// inclusive range tables.
package tiers

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

//go:embed tiers.yaml
var defaultTables []byte

var (
	ErrEmptyTable   = errors.New("table has no tiers")
	ErrNoFallback   = errors.New("table has no fallback label")
	ErrInvalidRange = errors.New("invalid tier range")
	ErrRangeGap     = errors.New("tier ranges are not contiguous")
)

// Tier covers the closed range [Min, Max]. A nil Max leaves the range open
// upwards.
type Tier struct {
	Name string `yaml:"name"`
	Min  int    `yaml:"min"`
	Max  *int   `yaml:"max,omitempty"`
}

func (t Tier) Contains(n int) bool {
	return n >= t.Min && (t.Max == nil || n <= *t.Max)
}

func (t Tier) upper() int {
	if t.Max == nil {
		return math.MaxInt
	}
	return *t.Max
}

type Table struct {
	Name     string `yaml:"-"`
	Fallback string `yaml:"fallback"`
	Tiers    []Tier `yaml:"tiers"`
}

// Classify returns the label of the tier containing n, or the fallback label
// when no tier does.
func (t Table) Classify(n int) string {
	for _, tier := range t.Tiers {
		if tier.Contains(n) {
			return tier.Name
		}
	}
	return t.Fallback
}

// Validate checks that tiers are ordered, contiguous and non-overlapping, so
// that at most one tier matches any integer.
func (t Table) Validate() error {
	if len(t.Tiers) == 0 {
		return fmt.Errorf("%s: %w", t.Name, ErrEmptyTable)
	}
	if t.Fallback == "" {
		return fmt.Errorf("%s: %w", t.Name, ErrNoFallback)
	}
	for i, tier := range t.Tiers {
		if tier.Name == "" {
			return fmt.Errorf("%s: tier %d has no name: %w", t.Name, i, ErrInvalidRange)
		}
		if tier.Max != nil && *tier.Max < tier.Min {
			return fmt.Errorf("%s: %s has min %d above max %d: %w",
				t.Name, tier.Name, tier.Min, *tier.Max, ErrInvalidRange)
		}
		if tier.Max == nil && i != len(t.Tiers)-1 {
			return fmt.Errorf("%s: open-ended tier %s is not last: %w",
				t.Name, tier.Name, ErrInvalidRange)
		}
		if i == 0 {
			continue
		}
		prev := t.Tiers[i-1]
		if prev.upper()+1 != tier.Min {
			return fmt.Errorf("%s: %s ends at %d but %s starts at %d: %w",
				t.Name, prev.Name, prev.upper(), tier.Name, tier.Min, ErrRangeGap)
		}
	}
	return nil
}

// Load decodes a YAML document of named tables and validates each of them.
func Load(r io.Reader) (map[string]Table, error) {
	var tables map[string]Table
	if err := yaml.NewDecoder(r).Decode(&tables); err != nil {
		return nil, fmt.Errorf("failed to decode tier tables: %w", err)
	}
	for name, table := range tables {
		table.Name = name
		if err := table.Validate(); err != nil {
			return nil, err
		}
		tables[name] = table
	}
	return tables, nil
}

// Default returns the built-in medal and ranking tables.
func Default() (map[string]Table, error) {
	return Load(bytes.NewReader(defaultTables))
}
