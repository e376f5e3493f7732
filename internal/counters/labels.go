package counters

import "github.com/c-e-daly/prophet-sub001/pkg/enums"

// Label returns the merchant-facing display name for a counter type.
func Label(t enums.CounterType) string {
	switch t {
	case enums.CounterTypePercentOffOrder:
		return "Percent Off Order"
	case enums.CounterTypePercentOffItem:
		return "Percent Off Item"
	case enums.CounterTypePercentOffNextOrder:
		return "Percent Off Next Order"
	case enums.CounterTypePriceMarkdown:
		return "Price Markdown"
	case enums.CounterTypeMarkdownPerUnit:
		return "Markdown Per Unit"
	case enums.CounterTypeMarkdownBundle:
		return "Bundle Markdown"
	case enums.CounterTypeMarkdownOrderBundle:
		return "Order Bundle Markdown"
	case enums.CounterTypeThresholdOne:
		return "Spend Threshold"
	case enums.CounterTypeThresholdTwo:
		return "Tiered Spend Threshold"
	case enums.CounterTypeBouncebackCurrent:
		return "Bounceback (This Order)"
	case enums.CounterTypeBouncebackFuture:
		return "Bounceback (Next Order)"
	case enums.CounterTypeFreeShipping:
		return "Free Shipping"
	case enums.CounterTypeFlatShipping:
		return "Flat Rate Shipping"
	case enums.CounterTypeFlatShippingUpgrade:
		return "Flat Rate Shipping Upgrade"
	case enums.CounterTypePurchaseWithPurchase:
		return "Purchase With Purchase"
	case enums.CounterTypeGiftWithPurchase:
		return "Gift With Purchase"
	}
	return string(t)
}
