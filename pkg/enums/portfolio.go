package enums

import "fmt"

// PortfolioSegment classifies a shopper's behavioral portfolio.
type PortfolioSegment string

const (
	PortfolioNew         PortfolioSegment = "new"
	PortfolioReactivated PortfolioSegment = "reactivated"
	PortfolioStable      PortfolioSegment = "stable"
	PortfolioGrowth      PortfolioSegment = "growth"
	PortfolioDeclining   PortfolioSegment = "declining"
	PortfolioDefected    PortfolioSegment = "defected"
)

var validPortfolioSegments = []PortfolioSegment{
	PortfolioNew,
	PortfolioReactivated,
	PortfolioStable,
	PortfolioGrowth,
	PortfolioDeclining,
	PortfolioDefected,
}

// String implements fmt.Stringer.
func (p PortfolioSegment) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PortfolioSegment.
func (p PortfolioSegment) IsValid() bool {
	for _, candidate := range validPortfolioSegments {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePortfolioSegment converts raw input into a PortfolioSegment.
func ParsePortfolioSegment(value string) (PortfolioSegment, error) {
	for _, candidate := range validPortfolioSegments {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid portfolio segment %q", value)
}
