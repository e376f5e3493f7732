package enums

import "fmt"

// PipelineStage names each commit boundary of the offer evaluation pipeline.
// Stage-tagged errors let a caller know exactly how far a submission got.
type PipelineStage string

const (
	StageUpsertConsumer  PipelineStage = "upsert_consumer"
	StageUpsertCart      PipelineStage = "upsert_cart"
	StageUpsertCartItems PipelineStage = "upsert_cart_items"
	StageCreateOffer     PipelineStage = "create_offer"
	StageEvaluateOffer   PipelineStage = "evaluate_offer"
	StageCreateDiscount  PipelineStage = "create_discount"
	StageBuildRequest    PipelineStage = "build_platform_request"
	StageCallPlatform    PipelineStage = "call_platform"
	StageRecordResponse  PipelineStage = "record_platform_response"
)

var validPipelineStages = []PipelineStage{
	StageUpsertConsumer,
	StageUpsertCart,
	StageUpsertCartItems,
	StageCreateOffer,
	StageEvaluateOffer,
	StageCreateDiscount,
	StageBuildRequest,
	StageCallPlatform,
	StageRecordResponse,
}

// String implements fmt.Stringer.
func (p PipelineStage) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PipelineStage.
func (p PipelineStage) IsValid() bool {
	for _, candidate := range validPipelineStages {
		if candidate == p {
			return true
		}
	}
	return false
}

// SafeToRetry reports whether a failure at this stage recovers cleanly via a
// retry from the top. The upsert stages and discount creation are idempotent
// by natural key. Offer creation is not: a replay after an ambiguous failure
// can mint a second Offer, so the caller must surface the error instead.
func (p PipelineStage) SafeToRetry() bool {
	switch p {
	case StageUpsertConsumer, StageUpsertCart, StageUpsertCartItems, StageCreateDiscount:
		return true
	}
	return false
}

// ParsePipelineStage converts raw input into a PipelineStage.
func ParsePipelineStage(value string) (PipelineStage, error) {
	for _, candidate := range validPipelineStages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid pipeline stage %q", value)
}
