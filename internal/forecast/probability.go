package forecast

import (
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
)

// Factor weights. They sum to 1.0; the blend is a straight weighted average.
const (
	weightPortfolio  = 0.40
	weightDepth      = 0.25
	weightHistory    = 0.20
	weightTypeFit    = 0.10
	weightTimeliness = 0.05
)

const (
	probabilityFloor = 0.05
	probabilityCeil  = 0.95
	historyPrior     = 0.50
	confidenceCap    = 0.95
)

// Base acceptance rates by portfolio segment. Shoppers already trending up
// accept most counters; defected shoppers rarely come back for one.
var portfolioBaseRates = map[enums.PortfolioSegment]float64{
	enums.PortfolioNew:         0.50,
	enums.PortfolioReactivated: 0.60,
	enums.PortfolioStable:      0.65,
	enums.PortfolioGrowth:      0.70,
	enums.PortfolioDeclining:   0.45,
	enums.PortfolioDefected:    0.30,
}

// Fit scores for type and segment pairings that deviate from the 0.50
// baseline. Bounceback credits exist to win back lapsing shoppers, so they
// score high for declining and reactivated segments and poorly for shoppers
// with no purchase pattern to revive. Gifts and shipping perks land well with
// loyal segments that resent percent haggling.
var typeSegmentFit = map[enums.CounterType]map[enums.PortfolioSegment]float64{
	enums.CounterTypeBouncebackCurrent: {
		enums.PortfolioDeclining:   0.85,
		enums.PortfolioReactivated: 0.80,
		enums.PortfolioDefected:    0.70,
		enums.PortfolioNew:         0.30,
	},
	enums.CounterTypeBouncebackFuture: {
		enums.PortfolioDeclining:   0.85,
		enums.PortfolioReactivated: 0.80,
		enums.PortfolioDefected:    0.70,
		enums.PortfolioNew:         0.25,
	},
	enums.CounterTypePercentOffNextOrder: {
		enums.PortfolioDeclining:   0.75,
		enums.PortfolioReactivated: 0.70,
		enums.PortfolioNew:         0.35,
	},
	enums.CounterTypeFreeShipping: {
		enums.PortfolioNew:    0.75,
		enums.PortfolioStable: 0.70,
		enums.PortfolioGrowth: 0.70,
	},
	enums.CounterTypeGiftWithPurchase: {
		enums.PortfolioStable: 0.70,
		enums.PortfolioGrowth: 0.75,
	},
	enums.CounterTypePercentOffOrder: {
		enums.PortfolioNew: 0.65,
	},
	enums.CounterTypeFlatShipping: {
		enums.PortfolioNew: 0.65,
	},
}

// Probability blends five weighted factors into an acceptance probability,
// clamped to [0.05, 0.95]. Nothing is ever certain to convert or certain to
// bounce. Confidence is scored separately from the data volume behind the
// history factors.
func Probability(in Input, discountCents int) ProbabilityResult {
	depthPct := 0.0
	if in.Totals.CartTotalCents > 0 {
		depthPct = float64(discountCents) / float64(in.Totals.CartTotalCents) * 100
	}

	factors := []FactorContribution{
		{Name: "portfolio", Weight: weightPortfolio, Score: portfolioScore(in.Segment)},
		{Name: "discount_depth", Weight: weightDepth, Score: depthScore(depthPct)},
		{Name: "history", Weight: weightHistory, Score: historyScore(in.History)},
		{Name: "type_fit", Weight: weightTypeFit, Score: typeFitScore(in.Type, in.Segment)},
		{Name: "timeliness", Weight: weightTimeliness, Score: timelinessScore(in.Segment, in.History.DaysSinceLastOrder)},
	}

	probability := 0.0
	for i := range factors {
		factors[i].Contribution = factors[i].Weight * factors[i].Score
		probability += factors[i].Contribution
	}
	probability = clamp(probability, probabilityFloor, probabilityCeil)

	return ProbabilityResult{
		Probability: probability,
		Confidence:  confidence(in.History),
		Factors:     factors,
	}
}

func portfolioScore(segment enums.PortfolioSegment) float64 {
	if rate, ok := portfolioBaseRates[segment]; ok {
		return rate
	}
	return historyPrior
}

// depthScore is a step curve over discount depth as a percent of cart total.
// Shallow discounts barely move anyone. Appeal peaks between 15% and 20%,
// then decays: past a point, deep discounts read as desperation or as a
// signal the list price was inflated.
func depthScore(depthPct float64) float64 {
	switch {
	case depthPct < 5:
		return 0.40
	case depthPct < 10:
		return 0.55
	case depthPct < 15:
		return 0.70
	case depthPct < 20:
		return 0.85
	case depthPct < 25:
		return 0.75
	case depthPct < 30:
		return 0.65
	default:
		return 0.55
	}
}

// historyScore prefers the shopper's own accept rate, falls back to the
// observed rate on similar counters, and otherwise sits on the 0.50 prior.
func historyScore(h CustomerHistory) float64 {
	if h.HistoricalAcceptRate != nil {
		return clamp(*h.HistoricalAcceptRate, 0, 1)
	}
	if h.SimilarCountersOffered > 0 {
		return clamp(float64(h.SimilarCountersAccepted)/float64(h.SimilarCountersOffered), 0, 1)
	}
	return historyPrior
}

func typeFitScore(t enums.CounterType, segment enums.PortfolioSegment) float64 {
	if bySegment, ok := typeSegmentFit[t]; ok {
		if score, ok := bySegment[segment]; ok {
			return score
		}
	}
	return historyPrior
}

// timelinessScore only matters for shoppers drifting away. For everyone else
// recency says little about whether a counter will land, so it scores flat.
func timelinessScore(segment enums.PortfolioSegment, daysSinceLastOrder int) float64 {
	if segment != enums.PortfolioDeclining && segment != enums.PortfolioDefected {
		return 0.75
	}
	switch {
	case daysSinceLastOrder <= 30:
		return 0.90
	case daysSinceLastOrder <= 60:
		return 0.75
	case daysSinceLastOrder <= 90:
		return 0.60
	case daysSinceLastOrder <= 180:
		return 0.45
	default:
		return 0.30
	}
}

// confidence grows additively with the amount of history behind the forecast
// and caps at 0.95.
func confidence(h CustomerHistory) float64 {
	score := 0.25
	switch {
	case h.LifetimeOrders >= 10:
		score += 0.25
	case h.LifetimeOrders >= 3:
		score += 0.15
	case h.LifetimeOrders >= 1:
		score += 0.05
	}
	switch {
	case h.SimilarCountersOffered >= 10:
		score += 0.25
	case h.SimilarCountersOffered >= 3:
		score += 0.15
	case h.SimilarCountersOffered >= 1:
		score += 0.05
	}
	if h.HistoricalAcceptRate != nil {
		score += 0.20
	}
	return clamp(score, 0, confidenceCap)
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
