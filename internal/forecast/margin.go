package forecast

import (
	"github.com/c-e-daly/prophet-sub001/internal/counters"
	"github.com/c-e-daly/prophet-sub001/pkg/enums"
	"github.com/c-e-daly/prophet-sub001/pkg/types"
)

// Margin computes the margin impact of applying one counter-offer to a cart.
//
// Original margin treats the cart as sold at list with shipping charged as
// quoted. The estimated side subtracts the counter's discount from product
// revenue, swaps in the adjusted shipping revenue (free shipping forgives the
// whole line), and adds any extra fulfillment cost the counter carries, such
// as a gift's COGS or a shipping upgrade subsidy.
func Margin(totals CartTotals, t enums.CounterType, cfg types.CounterConfig) MarginResult {
	discount := counters.DiscountAmountCents(t, cfg, totals.CartTotalCents)
	if discount > totals.CartTotalCents {
		discount = totals.CartTotalCents
	}
	adjustedShipping := counters.ShippingRevenueCents(t, cfg, totals.ShippingRevenueCents)
	extraCost := counters.ExtraCostCents(t, cfg)

	originalRevenue := totals.CartTotalCents + totals.ShippingRevenueCents
	originalCost := totals.COGSCents + totals.ShippingCostCents
	originalMargin := originalRevenue - originalCost

	finalOrderValue := totals.CartTotalCents - discount
	estimatedRevenue := finalOrderValue + adjustedShipping
	estimatedCost := totals.COGSCents + totals.ShippingCostCents + extraCost
	estimatedMargin := estimatedRevenue - estimatedCost

	return MarginResult{
		DiscountCents:        discount,
		OriginalMarginCents:  originalMargin,
		OriginalMarginPct:    marginPct(originalMargin, originalRevenue),
		EstimatedMarginCents: estimatedMargin,
		EstimatedMarginPct:   marginPct(estimatedMargin, estimatedRevenue),
		MarginImpactCents:    originalMargin - estimatedMargin,
		FinalOrderValueCents: finalOrderValue,
	}
}

func marginPct(marginCents, revenueCents int) float64 {
	if revenueCents <= 0 {
		return 0
	}
	return float64(marginCents) / float64(revenueCents) * 100
}
