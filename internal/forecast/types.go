package forecast

import (
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	"github.com/c-e-daly/prophet-sub001/pkg/types"
)

// CartTotals carries the order-level money a forecast works against.
type CartTotals struct {
	CartTotalCents       int
	COGSCents            int
	ShippingRevenueCents int
	ShippingCostCents    int
}

// CustomerHistory is what the reviewing merchant knows about the shopper.
// HistoricalAcceptRate is nil when no personal history was supplied.
type CustomerHistory struct {
	LifetimeOrders          int
	DaysSinceLastOrder      int
	HistoricalAcceptRate    *float64
	SimilarCountersOffered  int
	SimilarCountersAccepted int
}

// Input is everything a counter-offer forecast needs. The engine is pure:
// identical inputs always produce identical outputs.
type Input struct {
	Totals  CartTotals
	Type    enums.CounterType
	Config  types.CounterConfig
	Segment enums.PortfolioSegment
	History CustomerHistory
}

// MarginResult reports original vs. post-counter margin. Percentages are in
// percent units (25.0 means 25%).
type MarginResult struct {
	DiscountCents        int
	OriginalMarginCents  int
	OriginalMarginPct    float64
	EstimatedMarginCents int
	EstimatedMarginPct   float64
	MarginImpactCents    int
	FinalOrderValueCents int
}

// FactorContribution exposes one weighted term of the probability blend.
type FactorContribution struct {
	Name         string  `json:"name"`
	Weight       float64 `json:"weight"`
	Score        float64 `json:"score"`
	Contribution float64 `json:"contribution"`
}

// ProbabilityResult bounds acceptance probability to [0.05, 0.95] and carries
// a separate confidence score plus the per-factor breakdown.
type ProbabilityResult struct {
	Probability float64
	Confidence  float64
	Factors     []FactorContribution
}

// Evaluation is the complete forecast for one candidate counter-offer.
type Evaluation struct {
	Margin               MarginResult
	Probability          ProbabilityResult
	ExpectedRevenueCents int
	ExpectedMarginCents  int
	Score                float64
	Recommendation       enums.RecommendationTier
	Rationale            string
}
