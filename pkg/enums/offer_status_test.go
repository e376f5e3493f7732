package enums

import "testing"

func TestOfferStatusTerminality(t *testing.T) {
	terminal := []OfferStatus{
		OfferStatusAutoDeclined,
		OfferStatusConsumerAccepted,
		OfferStatusConsumerDeclined,
		OfferStatusReviewedDeclined,
		OfferStatusExpired,
	}
	for _, status := range terminal {
		if !status.IsTerminal() {
			t.Fatalf("expected %s to be terminal", status)
		}
	}
	if OfferStatusPendingReview.IsTerminal() {
		t.Fatal("pending_review must not be terminal")
	}
}

func TestValidOfferTransition(t *testing.T) {
	allowed := []struct{ from, to OfferStatus }{
		{OfferStatusPendingReview, OfferStatusReviewedAccepted},
		{OfferStatusPendingReview, OfferStatusReviewedCountered},
		{OfferStatusPendingReview, OfferStatusReviewedDeclined},
		{OfferStatusPendingReview, OfferStatusExpired},
		{OfferStatusReviewedCountered, OfferStatusConsumerAccepted},
		{OfferStatusReviewedCountered, OfferStatusConsumerCountered},
		{OfferStatusConsumerCountered, OfferStatusReviewedDeclined},
	}
	for _, tt := range allowed {
		if !ValidOfferTransition(tt.from, tt.to) {
			t.Fatalf("expected %s -> %s to be allowed", tt.from, tt.to)
		}
	}

	denied := []struct{ from, to OfferStatus }{
		{OfferStatusAutoDeclined, OfferStatusPendingReview},
		{OfferStatusExpired, OfferStatusReviewedAccepted},
		{OfferStatusConsumerAccepted, OfferStatusConsumerDeclined},
		{OfferStatusAutoAccepted, OfferStatusPendingReview},
		{OfferStatusPendingReview, OfferStatusAutoAccepted},
	}
	for _, tt := range denied {
		if ValidOfferTransition(tt.from, tt.to) {
			t.Fatalf("expected %s -> %s to be rejected", tt.from, tt.to)
		}
	}
}

func TestPipelineStageRetrySafety(t *testing.T) {
	if !StageUpsertConsumer.SafeToRetry() || !StageCreateDiscount.SafeToRetry() {
		t.Fatal("idempotent stages must be retriable")
	}
	if StageCreateOffer.SafeToRetry() {
		t.Fatal("offer creation must not be marked retriable")
	}
	if StageCallPlatform.SafeToRetry() {
		t.Fatal("platform call failures require operator attention, not blind retry")
	}
}
