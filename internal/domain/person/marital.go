package person

import (
	"fmt"
	"strings"
)

// MaritalStatus is the closed set of marital states a person can be in.
type MaritalStatus int

const (
	// MaritalSingle is spelled "no" on input.
	MaritalSingle MaritalStatus = iota + 1
	// MaritalMarried is spelled "yes" on input.
	MaritalMarried
	// MaritalDivorced is spelled "divorced" on input.
	MaritalDivorced
)

// DefaultMaritalStatus is the marital status assumed when none is given.
const DefaultMaritalStatus = "no"

// ParseMaritalStatus converts free text into a MaritalStatus ignoring letter case.
func ParseMaritalStatus(s string) (MaritalStatus, error) {
	switch strings.ToLower(s) {
	case "no":
		return MaritalSingle, nil
	case "yes":
		return MaritalMarried, nil
	case "divorced":
		return MaritalDivorced, nil
	default:
		return 0, fmt.Errorf("invalid marital status %q: %w", s, ErrInvalidArgument)
	}
}

// String returns the canonical input spelling.
func (m MaritalStatus) String() string {
	switch m {
	case MaritalSingle:
		return "no"
	case MaritalMarried:
		return "yes"
	case MaritalDivorced:
		return "divorced"
	default:
		return "unknown"
	}
}
