package enums

import "fmt"

// RecommendationTier is the discrete verdict on a candidate counter-offer.
type RecommendationTier string

const (
	RecommendationStrongAccept RecommendationTier = "strong_accept"
	RecommendationAccept       RecommendationTier = "accept"
	RecommendationNeutral      RecommendationTier = "neutral"
	RecommendationCaution      RecommendationTier = "caution"
	RecommendationReject       RecommendationTier = "reject"
)

var validRecommendationTiers = []RecommendationTier{
	RecommendationStrongAccept,
	RecommendationAccept,
	RecommendationNeutral,
	RecommendationCaution,
	RecommendationReject,
}

// String implements fmt.Stringer.
func (r RecommendationTier) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RecommendationTier.
func (r RecommendationTier) IsValid() bool {
	for _, candidate := range validRecommendationTiers {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRecommendationTier converts raw input into a RecommendationTier.
func ParseRecommendationTier(value string) (RecommendationTier, error) {
	for _, candidate := range validRecommendationTiers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid recommendation tier %q", value)
}
