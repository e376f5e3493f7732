package enums

import "fmt"

// DiscountStatus tracks the platform-facing discount artifact.
type DiscountStatus string

const (
	DiscountStatusPending DiscountStatus = "pending"
	DiscountStatusIssued  DiscountStatus = "issued"
	DiscountStatusFailed  DiscountStatus = "failed"
)

var validDiscountStatuses = []DiscountStatus{
	DiscountStatusPending,
	DiscountStatusIssued,
	DiscountStatusFailed,
}

// String implements fmt.Stringer.
func (d DiscountStatus) String() string {
	return string(d)
}

// IsValid reports whether the value is a known DiscountStatus.
func (d DiscountStatus) IsValid() bool {
	for _, candidate := range validDiscountStatuses {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDiscountStatus converts raw input into a DiscountStatus.
func ParseDiscountStatus(value string) (DiscountStatus, error) {
	for _, candidate := range validDiscountStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid discount status %q", value)
}
