package enums

import "fmt"

// ProgramStatus reports whether a shop's negotiation program is in effect.
type ProgramStatus string

const (
	ProgramStatusActive   ProgramStatus = "active"
	ProgramStatusPaused   ProgramStatus = "paused"
	ProgramStatusArchived ProgramStatus = "archived"
)

var validProgramStatuses = []ProgramStatus{
	ProgramStatusActive,
	ProgramStatusPaused,
	ProgramStatusArchived,
}

// String implements fmt.Stringer.
func (p ProgramStatus) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProgramStatus.
func (p ProgramStatus) IsValid() bool {
	for _, candidate := range validProgramStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProgramStatus converts raw input into a ProgramStatus.
func ParseProgramStatus(value string) (ProgramStatus, error) {
	for _, candidate := range validProgramStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid program status %q", value)
}
