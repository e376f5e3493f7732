package enums

import "fmt"

// CounterType identifies the discount shape of a merchant counter-offer.
type CounterType string

const (
	CounterTypePercentOffOrder      CounterType = "percent_off_order"
	CounterTypePercentOffItem       CounterType = "percent_off_item"
	CounterTypePercentOffNextOrder  CounterType = "percent_off_next_order"
	CounterTypePriceMarkdown        CounterType = "price_markdown"
	CounterTypeMarkdownPerUnit      CounterType = "price_markdown_per_unit"
	CounterTypeMarkdownBundle       CounterType = "price_markdown_bundle"
	CounterTypeMarkdownOrderBundle  CounterType = "price_markdown_order_bundle"
	CounterTypeThresholdOne         CounterType = "threshold_one"
	CounterTypeThresholdTwo         CounterType = "threshold_two"
	CounterTypeBouncebackCurrent    CounterType = "bounceback_current"
	CounterTypeBouncebackFuture     CounterType = "bounceback_future"
	CounterTypeFreeShipping         CounterType = "free_shipping"
	CounterTypeFlatShipping         CounterType = "flat_shipping"
	CounterTypeFlatShippingUpgrade  CounterType = "flat_shipping_upgrade"
	CounterTypePurchaseWithPurchase CounterType = "purchase_with_purchase"
	CounterTypeGiftWithPurchase     CounterType = "gift_with_purchase"
)

var validCounterTypes = []CounterType{
	CounterTypePercentOffOrder,
	CounterTypePercentOffItem,
	CounterTypePercentOffNextOrder,
	CounterTypePriceMarkdown,
	CounterTypeMarkdownPerUnit,
	CounterTypeMarkdownBundle,
	CounterTypeMarkdownOrderBundle,
	CounterTypeThresholdOne,
	CounterTypeThresholdTwo,
	CounterTypeBouncebackCurrent,
	CounterTypeBouncebackFuture,
	CounterTypeFreeShipping,
	CounterTypeFlatShipping,
	CounterTypeFlatShippingUpgrade,
	CounterTypePurchaseWithPurchase,
	CounterTypeGiftWithPurchase,
}

// String implements fmt.Stringer.
func (c CounterType) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CounterType.
func (c CounterType) IsValid() bool {
	for _, candidate := range validCounterTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// CounterTypes returns every known counter type in declaration order.
func CounterTypes() []CounterType {
	out := make([]CounterType, len(validCounterTypes))
	copy(out, validCounterTypes)
	return out
}

// ParseCounterType converts raw input into a CounterType.
func ParseCounterType(value string) (CounterType, error) {
	for _, candidate := range validCounterTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid counter type %q", value)
}
