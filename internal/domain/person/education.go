package person

import (
	"fmt"
	"strings"
)

// EducationLevel is the highest education a person has attained.
type EducationLevel int

const (
	// EducationHighSchool is spelled "high school" on input.
	EducationHighSchool EducationLevel = iota + 1
	// EducationUndergraduate is spelled "undergraduate" on input.
	EducationUndergraduate
	// EducationGraduate is spelled "graduate" on input.
	EducationGraduate
)

// DefaultEducationLevel is the education level assumed when none is given.
const DefaultEducationLevel = "high school"

// ParseEducationLevel converts free text into an EducationLevel ignoring letter case.
func ParseEducationLevel(s string) (EducationLevel, error) {
	switch strings.ToLower(s) {
	case "high school":
		return EducationHighSchool, nil
	case "undergraduate":
		return EducationUndergraduate, nil
	case "graduate":
		return EducationGraduate, nil
	default:
		return 0, fmt.Errorf("invalid education level %q: %w", s, ErrInvalidArgument)
	}
}

// String returns the canonical input spelling.
func (e EducationLevel) String() string {
	switch e {
	case EducationHighSchool:
		return "high school"
	case EducationUndergraduate:
		return "undergraduate"
	case EducationGraduate:
		return "graduate"
	default:
		return "unknown"
	}
}

// Article returns the indefinite article that precedes the level in a sentence.
func (e EducationLevel) Article() string {
	if e == EducationUndergraduate {
		return "an"
	}

	return "a"
}

// Credential names what the level is awarded with.
func (e EducationLevel) Credential() string {
	switch e {
	case EducationUndergraduate, EducationGraduate:
		return "degree"
	default:
		return "diploma"
	}
}
