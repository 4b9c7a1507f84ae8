package tiers

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults(t *testing.T) map[string]Table {
	t.Helper()
	tables, err := Default()
	require.NoError(t, err)
	return tables
}

func TestDefaultTables(t *testing.T) {
	tables := defaults(t)
	require.Contains(t, tables, "medal")
	require.Contains(t, tables, "ranking")

	var names []string
	for _, tier := range tables["medal"].Tiers {
		names = append(names, tier.Name)
	}
	want := []string{"Iron", "Bronze", "Silver", "Gold", "Platinum", "Ascendant", "Immortal", "Radiant"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("medal tiers mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "medal", tables["medal"].Name)
	assert.Equal(t, "No medal", tables["medal"].Fallback)
}

func TestClassifyMedal(t *testing.T) {
	medal := defaults(t)["medal"]

	tests := []struct {
		xp   int
		want string
	}{
		{-5, "No medal"},
		{0, "No medal"},
		{1, "Iron"},
		{1000, "Iron"},
		{1001, "Bronze"},
		{2000, "Bronze"},
		{2001, "Silver"},
		{5000, "Silver"},
		{5001, "Gold"},
		{7000, "Gold"},
		{7001, "Platinum"},
		{8000, "Platinum"},
		{8001, "Ascendant"},
		{9000, "Ascendant"},
		{9001, "Immortal"},
		{10000, "Immortal"},
		{10001, "Radiant"},
		{99000, "Radiant"},
		{99001, "No medal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, medal.Classify(tt.xp), "xp %d", tt.xp)
	}
}

func TestClassifyRanking(t *testing.T) {
	ranking := defaults(t)["ranking"]

	tests := []struct {
		balance int
		want    string
	}{
		{-30, "No medal"},
		{0, "No medal"},
		{1, "Iron"},
		{10, "Iron"},
		{11, "Bronze"},
		{20, "Bronze"},
		{21, "Silver"},
		{30, "Silver"},
		{50, "Silver"},
		{51, "Gold"},
		{80, "Gold"},
		{81, "Diamond"},
		{90, "Diamond"},
		{91, "Legendary"},
		{100, "Legendary"},
		{101, "Immortal"},
		{1_000_000, "Immortal"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ranking.Classify(tt.balance), "balance %d", tt.balance)
	}
}

func TestClassifyEveryCoveredValueHasOneTier(t *testing.T) {
	for name, table := range defaults(t) {
		last := table.Tiers[len(table.Tiers)-1]
		top := last.Min + 100
		if last.Max != nil {
			top = *last.Max
		}
		for n := table.Tiers[0].Min; n <= top; n++ {
			matches := 0
			for _, tier := range table.Tiers {
				if tier.Contains(n) {
					matches++
				}
			}
			require.Equal(t, 1, matches, "%s: value %d", name, n)
			first := table.Classify(n)
			assert.Equal(t, first, table.Classify(n))
		}
	}
}

func TestValidate(t *testing.T) {
	ten, five, twenty := 10, 5, 20

	tests := []struct {
		name  string
		table Table
		err   error
	}{
		{"empty", Table{Name: "t", Fallback: "none"}, ErrEmptyTable},
		{"no fallback", Table{Name: "t", Tiers: []Tier{{Name: "a", Min: 1}}}, ErrNoFallback},
		{"inverted", Table{Name: "t", Fallback: "none", Tiers: []Tier{{Name: "a", Min: 10, Max: &five}}}, ErrInvalidRange},
		{"unnamed", Table{Name: "t", Fallback: "none", Tiers: []Tier{{Min: 1}}}, ErrInvalidRange},
		{"open not last", Table{Name: "t", Fallback: "none", Tiers: []Tier{{Name: "a", Min: 1}, {Name: "b", Min: 11, Max: &twenty}}}, ErrInvalidRange},
		{"gap", Table{Name: "t", Fallback: "none", Tiers: []Tier{{Name: "a", Min: 1, Max: &five}, {Name: "b", Min: 11, Max: &twenty}}}, ErrRangeGap},
		{"overlap", Table{Name: "t", Fallback: "none", Tiers: []Tier{{Name: "a", Min: 1, Max: &ten}, {Name: "b", Min: 5, Max: &twenty}}}, ErrRangeGap},
		{"ok", Table{Name: "t", Fallback: "none", Tiers: []Tier{{Name: "a", Min: 1, Max: &ten}, {Name: "b", Min: 11}}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestLoad(t *testing.T) {
	doc := `
league:
  fallback: Unranked
  tiers:
    - { name: Low, min: 0, max: 9 }
    - { name: High, min: 10 }
`
	tables, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	league := tables["league"]
	assert.Equal(t, "league", league.Name)
	assert.Equal(t, "Low", league.Classify(0))
	assert.Equal(t, "High", league.Classify(10))
	assert.Equal(t, "Unranked", league.Classify(-1))

	_, err = Load(strings.NewReader("league:\n  fallback: x\n  tiers:\n    - { name: A, min: 1 }\n    - { name: B, min: 2 }\n"))
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = Load(strings.NewReader("league: ["))
	assert.Error(t, err)
}
