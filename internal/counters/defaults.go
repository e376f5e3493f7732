package counters

import (
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	"github.com/c-e-daly/prophet-sub001/pkg/types"
)

// DefaultConfig seeds the admin form for a counter type with sane starting
// values. One case per variant.
func DefaultConfig(t enums.CounterType) types.CounterConfig {
	switch t {
	case enums.CounterTypePercentOffOrder:
		return types.CounterConfig{Percent: 10}
	case enums.CounterTypePercentOffItem:
		return types.CounterConfig{Percent: 15}
	case enums.CounterTypePercentOffNextOrder:
		return types.CounterConfig{Percent: 20}
	case enums.CounterTypePriceMarkdown:
		return types.CounterConfig{AmountCents: 500}
	case enums.CounterTypeMarkdownPerUnit:
		return types.CounterConfig{PerUnitCents: 200, BundleQuantity: 2}
	case enums.CounterTypeMarkdownBundle:
		return types.CounterConfig{AmountCents: 1000, BundleQuantity: 3}
	case enums.CounterTypeMarkdownOrderBundle:
		return types.CounterConfig{AmountCents: 1500, BundleQuantity: 2}
	case enums.CounterTypeThresholdOne:
		return types.CounterConfig{Tiers: []types.ThresholdTier{
			{MinSpendCents: 5000, Percent: 10},
		}}
	case enums.CounterTypeThresholdTwo:
		return types.CounterConfig{Tiers: []types.ThresholdTier{
			{MinSpendCents: 0, Percent: 10},
			{MinSpendCents: 15000, Percent: 20},
		}}
	case enums.CounterTypeBouncebackCurrent:
		return types.CounterConfig{CreditCents: 1000, MinNextSpendCents: 5000}
	case enums.CounterTypeBouncebackFuture:
		return types.CounterConfig{CreditCents: 1500, MinNextSpendCents: 7500}
	case enums.CounterTypeFreeShipping:
		return types.CounterConfig{}
	case enums.CounterTypeFlatShipping:
		return types.CounterConfig{FlatShippingCents: 500}
	case enums.CounterTypeFlatShippingUpgrade:
		return types.CounterConfig{FlatShippingCents: 500, UpgradeCostCents: 300}
	case enums.CounterTypePurchaseWithPurchase:
		return types.CounterConfig{AddonPriceCents: 500, AddonValueCents: 1500}
	case enums.CounterTypeGiftWithPurchase:
		return types.CounterConfig{GiftValueCents: 1000, GiftCostCents: 400}
	}
	return types.CounterConfig{}
}
