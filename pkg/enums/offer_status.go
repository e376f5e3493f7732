package enums

import "fmt"

// OfferStatus tracks a shopper offer through evaluation and review.
type OfferStatus string

const (
	OfferStatusAutoAccepted      OfferStatus = "auto_accepted"
	OfferStatusAutoDeclined      OfferStatus = "auto_declined"
	OfferStatusPendingReview     OfferStatus = "pending_review"
	OfferStatusConsumerAccepted  OfferStatus = "consumer_accepted"
	OfferStatusConsumerDeclined  OfferStatus = "consumer_declined"
	OfferStatusConsumerCountered OfferStatus = "consumer_countered"
	OfferStatusReviewedAccepted  OfferStatus = "reviewed_accepted"
	OfferStatusReviewedCountered OfferStatus = "reviewed_countered"
	OfferStatusReviewedDeclined  OfferStatus = "reviewed_declined"
	OfferStatusExpired           OfferStatus = "expired"
)

var validOfferStatuses = []OfferStatus{
	OfferStatusAutoAccepted,
	OfferStatusAutoDeclined,
	OfferStatusPendingReview,
	OfferStatusConsumerAccepted,
	OfferStatusConsumerDeclined,
	OfferStatusConsumerCountered,
	OfferStatusReviewedAccepted,
	OfferStatusReviewedCountered,
	OfferStatusReviewedDeclined,
	OfferStatusExpired,
}

// offerTransitions encodes the allowed moves. Once an offer leaves
// pending_review it is never re-evaluated; later moves come only from
// explicit human or consumer actions.
var offerTransitions = map[OfferStatus][]OfferStatus{
	OfferStatusPendingReview: {
		OfferStatusReviewedAccepted,
		OfferStatusReviewedCountered,
		OfferStatusReviewedDeclined,
		OfferStatusExpired,
	},
	OfferStatusReviewedCountered: {
		OfferStatusConsumerAccepted,
		OfferStatusConsumerDeclined,
		OfferStatusConsumerCountered,
		OfferStatusExpired,
	},
	OfferStatusConsumerCountered: {
		OfferStatusReviewedAccepted,
		OfferStatusReviewedCountered,
		OfferStatusReviewedDeclined,
		OfferStatusExpired,
	},
	OfferStatusAutoAccepted: {},
	OfferStatusAutoDeclined: {},
}

// String implements fmt.Stringer.
func (o OfferStatus) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OfferStatus.
func (o OfferStatus) IsValid() bool {
	for _, candidate := range validOfferStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (o OfferStatus) IsTerminal() bool {
	switch o {
	case OfferStatusAutoDeclined,
		OfferStatusConsumerAccepted,
		OfferStatusConsumerDeclined,
		OfferStatusReviewedDeclined,
		OfferStatusExpired:
		return true
	}
	return false
}

// ValidOfferTransition reports whether moving from one status to another is
// allowed by the offer state machine.
func ValidOfferTransition(from, to OfferStatus) bool {
	if from.IsTerminal() {
		return false
	}
	for _, candidate := range offerTransitions[from] {
		if candidate == to {
			return true
		}
	}
	return false
}

// ParseOfferStatus converts raw input into an OfferStatus.
func ParseOfferStatus(value string) (OfferStatus, error) {
	for _, candidate := range validOfferStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid offer status %q", value)
}
