package forecast

import (
	"fmt"
	"math"
	"strings"

	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	"github.com/c-e-daly/prophet-sub001/pkg/money"
)

// Score blend weights. Probability is scaled to cents (p * 10000) so all
// three terms live on comparable magnitudes for a typical cart.
const (
	scoreWeightRevenue     = 0.40
	scoreWeightMargin      = 0.40
	scoreWeightProbability = 0.20
	probabilityScaleCents  = 10000
)

// Evaluate runs the full forecast for one candidate counter-offer: margin
// impact, acceptance probability, expected value, a recommendation tier, and
// a human-readable rationale. Pure function of its input.
func Evaluate(in Input) Evaluation {
	margin := Margin(in.Totals, in.Type, in.Config)
	probability := Probability(in, margin.DiscountCents)

	p := probability.Probability
	expectedRevenue := int(math.Round(float64(margin.FinalOrderValueCents) * p))
	expectedMargin := int(math.Round(float64(margin.EstimatedMarginCents) * p))
	score := scoreWeightRevenue*float64(expectedRevenue) +
		scoreWeightMargin*float64(expectedMargin) +
		scoreWeightProbability*(p*probabilityScaleCents)

	return Evaluation{
		Margin:               margin,
		Probability:          probability,
		ExpectedRevenueCents: expectedRevenue,
		ExpectedMarginCents:  expectedMargin,
		Score:                score,
		Recommendation:       recommend(p, margin.EstimatedMarginPct),
		Rationale:            rationale(in, margin, p, expectedMargin),
	}
}

// recommend maps probability and estimated margin percent onto a tier. Rules
// are checked top to bottom and the first match wins. The caution row shadows
// the reject row under that ordering; the reject branch stays so the table
// reads the same as the product rules it encodes.
func recommend(p, marginPct float64) enums.RecommendationTier {
	switch {
	case p > 0.75 && marginPct > 25:
		return enums.RecommendationStrongAccept
	case p > 0.65 && marginPct > 15:
		return enums.RecommendationAccept
	case p > 0.50 && marginPct > 10:
		return enums.RecommendationNeutral
	case marginPct < 10 || p < 0.40:
		return enums.RecommendationCaution
	case marginPct < 5 || p < 0.25:
		return enums.RecommendationReject
	default:
		return enums.RecommendationNeutral
	}
}

// rationale assembles the short clauses a reviewer sees next to the tier.
// Each clause only appears when its threshold trips, so a middling forecast
// can legitimately produce an empty rationale.
func rationale(in Input, margin MarginResult, p float64, expectedMarginCents int) string {
	var clauses []string

	switch {
	case margin.EstimatedMarginPct >= 25:
		clauses = append(clauses, fmt.Sprintf("strong margin (%.1f%%)", margin.EstimatedMarginPct))
	case margin.EstimatedMarginPct < 0:
		clauses = append(clauses, fmt.Sprintf("negative margin (%.1f%%)", margin.EstimatedMarginPct))
	case margin.EstimatedMarginPct < 10:
		clauses = append(clauses, fmt.Sprintf("thin margin (%.1f%%)", margin.EstimatedMarginPct))
	}

	switch {
	case p >= 0.70:
		clauses = append(clauses, "high acceptance likelihood")
	case p < 0.40:
		clauses = append(clauses, "low acceptance likelihood")
	}

	switch in.Segment {
	case enums.PortfolioDeclining:
		clauses = append(clauses, "declining shopper, retention weighs in favor")
	case enums.PortfolioDefected:
		clauses = append(clauses, "defected shopper, any conversion is a win-back")
	case enums.PortfolioGrowth:
		clauses = append(clauses, "growth shopper, protect the trajectory")
	}

	if expectedMarginCents > 0 {
		clauses = append(clauses, fmt.Sprintf("expected margin $%s", money.FormatCents(expectedMarginCents)))
	}

	return strings.Join(clauses, "; ")
}
