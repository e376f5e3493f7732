// Package counters centralizes every per-type computation for merchant
// counter-offers. Each concern (discount amount, shipping adjustment, cost
// adjustment, defaults, labels) is a single exhaustive switch over
// enums.CounterType, so a new discount shape is one new case per switch
// rather than edits scattered across the codebase.
package counters

import (
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	"github.com/c-e-daly/prophet-sub001/pkg/money"
	"github.com/c-e-daly/prophet-sub001/pkg/types"
)

// DiscountAmountCents resolves the concession applied to the current order's
// price term. Bounceback, next-order, and shipping types return zero here;
// their value shows up as shipping or future adjustments instead.
func DiscountAmountCents(t enums.CounterType, cfg types.CounterConfig, cartTotalCents int) int {
	switch t {
	case enums.CounterTypePercentOffOrder:
		return money.RoundPct(cartTotalCents, cfg.Percent)
	case enums.CounterTypePercentOffItem:
		base := cfg.ItemSubtotalCents
		if base <= 0 {
			base = cartTotalCents
		}
		return money.RoundPct(base, cfg.Percent)
	case enums.CounterTypePercentOffNextOrder:
		return 0
	case enums.CounterTypePriceMarkdown,
		enums.CounterTypeMarkdownBundle,
		enums.CounterTypeMarkdownOrderBundle:
		return cfg.AmountCents
	case enums.CounterTypeMarkdownPerUnit:
		qty := cfg.BundleQuantity
		if qty < 1 {
			qty = 1
		}
		return cfg.PerUnitCents * qty
	case enums.CounterTypeThresholdOne, enums.CounterTypeThresholdTwo:
		tier, ok := selectTier(cfg.Tiers, cartTotalCents)
		if !ok {
			return 0
		}
		return money.RoundPct(cartTotalCents, tier.Percent)
	case enums.CounterTypeBouncebackCurrent, enums.CounterTypeBouncebackFuture:
		return 0
	case enums.CounterTypeFreeShipping,
		enums.CounterTypeFlatShipping,
		enums.CounterTypeFlatShippingUpgrade:
		return 0
	case enums.CounterTypePurchaseWithPurchase:
		if d := cfg.AddonValueCents - cfg.AddonPriceCents; d > 0 {
			return d
		}
		return 0
	case enums.CounterTypeGiftWithPurchase:
		return 0
	}
	return 0
}

// ShippingRevenueCents returns the shipping revenue term after the counter's
// adjustment. Free and flat shipping act on this term directly, never on the
// discount term, and only at order level.
func ShippingRevenueCents(t enums.CounterType, cfg types.CounterConfig, shippingRevenueCents int) int {
	switch t {
	case enums.CounterTypeFreeShipping:
		return 0
	case enums.CounterTypeFlatShipping, enums.CounterTypeFlatShippingUpgrade:
		return cfg.FlatShippingCents
	}
	return shippingRevenueCents
}

// ExtraCostCents returns additional merchant cost the counter introduces:
// gift COGS or a shipping-service upgrade.
func ExtraCostCents(t enums.CounterType, cfg types.CounterConfig) int {
	switch t {
	case enums.CounterTypeGiftWithPurchase:
		return cfg.GiftCostCents
	case enums.CounterTypeFlatShippingUpgrade:
		return cfg.UpgradeCostCents
	}
	return 0
}

// FutureValueCents returns the value promised against a later order. It never
// affects the current order's margin; the predictor uses it when scoring
// bounceback-style counters.
func FutureValueCents(t enums.CounterType, cfg types.CounterConfig, cartTotalCents int) int {
	switch t {
	case enums.CounterTypeBouncebackCurrent, enums.CounterTypeBouncebackFuture:
		return cfg.CreditCents
	case enums.CounterTypePercentOffNextOrder:
		return money.RoundPct(cartTotalCents, cfg.Percent)
	}
	return 0
}

// selectTier picks the highest threshold whose minimum spend the cart total
// meets or exceeds. Ties go to the larger threshold, never the first-defined.
func selectTier(tiers []types.ThresholdTier, cartTotalCents int) (types.ThresholdTier, bool) {
	var best types.ThresholdTier
	found := false
	for _, tier := range tiers {
		if cartTotalCents < tier.MinSpendCents {
			continue
		}
		if !found || tier.MinSpendCents >= best.MinSpendCents {
			best = tier
			found = true
		}
	}
	return best, found
}
