package enums

import "fmt"

// CartStatus tracks a negotiated cart through its lifecycle.
type CartStatus string

const (
	CartStatusAbandoned  CartStatus = "abandoned"
	CartStatusOffered    CartStatus = "offered"
	CartStatusCheckout   CartStatus = "checkout"
	CartStatusClosedWon  CartStatus = "closed_won"
	CartStatusClosedLost CartStatus = "closed_lost"
	CartStatusExpired    CartStatus = "expired"
	CartStatusArchived   CartStatus = "archived"
)

var validCartStatuses = []CartStatus{
	CartStatusAbandoned,
	CartStatusOffered,
	CartStatusCheckout,
	CartStatusClosedWon,
	CartStatusClosedLost,
	CartStatusExpired,
	CartStatusArchived,
}

// String implements fmt.Stringer.
func (c CartStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CartStatus.
func (c CartStatus) IsValid() bool {
	for _, candidate := range validCartStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the cart can no longer change.
func (c CartStatus) IsTerminal() bool {
	switch c {
	case CartStatusClosedWon, CartStatusClosedLost, CartStatusArchived:
		return true
	}
	return false
}

// ParseCartStatus converts raw input into a CartStatus.
func ParseCartStatus(value string) (CartStatus, error) {
	for _, candidate := range validCartStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cart status %q", value)
}
