package types

import "strings"

// Sex is the biological sex recorded for a person. The empty value means
// nothing was recorded.
type Sex string

// Recognized Sex values.
const (
	SexMale        Sex = "male"
	SexFemale      Sex = "female"
	SexUnspecified Sex = "unspecified"
)

// validSexes is the set of recognized Sex values.
var validSexes = map[Sex]bool{
	SexMale:        true,
	SexFemale:      true,
	SexUnspecified: true,
}

// ParseSex converts text to a Sex, ignoring case and surrounding space.
// Returns ErrInvalidSex for anything other than the three recognized values.
func ParseSex(s string) (Sex, error) {
	sex := Sex(strings.ToLower(strings.TrimSpace(s)))
	if !validSexes[sex] {
		return "", ErrInvalidSex
	}
	return sex, nil
}

// Valid reports whether s is one of the recognized values.
func (s Sex) Valid() bool {
	return validSexes[s]
}

func (s Sex) String() string {
	return string(s)
}
