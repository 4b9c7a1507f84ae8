package entities

import (
	"strconv"
	"strings"
)

// Stat is a numeric value typed in by the user. Input without a leading
// integer yields an invalid Stat instead of an error.
type Stat struct {
	Raw   string
	Value int
	Valid bool
}

// ParseStat reads the leading integer of s, ignoring surrounding whitespace
// and anything after the digits ("12abc" is 12, "3.7" is 3).
func ParseStat(s string) Stat {
	stat := Stat{Raw: s}
	trimmed := strings.TrimSpace(s)

	end := 0
	if end < len(trimmed) && (trimmed[end] == '+' || trimmed[end] == '-') {
		end++
	}
	digits := end
	for end < len(trimmed) && trimmed[end] >= '0' && trimmed[end] <= '9' {
		end++
	}
	if end == digits {
		return stat
	}

	value, err := strconv.Atoi(trimmed[:end])
	if err != nil {
		return stat
	}
	stat.Value = value
	stat.Valid = true
	return stat
}

// Sub returns s - other. The result is invalid if either side is.
func (s Stat) Sub(other Stat) Stat {
	if !s.Valid || !other.Valid {
		return Stat{}
	}
	value := s.Value - other.Value
	return Stat{Raw: strconv.Itoa(value), Value: value, Valid: true}
}

func (s Stat) String() string {
	if !s.Valid {
		return "NaN"
	}
	return strconv.Itoa(s.Value)
}
