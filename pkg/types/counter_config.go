package types

// ThresholdTier pairs a minimum spend with the percent applied once met.
type ThresholdTier struct {
	MinSpendCents int     `json:"min_spend_cents"`
	Percent       float64 `json:"percent"`
}

// CounterConfig is the structured payload carried by a counter-offer. Which
// fields apply depends on the counter type; the dispatch over types lives in
// internal/counters.
type CounterConfig struct {
	Percent           float64         `json:"percent,omitempty"`
	AmountCents       int             `json:"amount_cents,omitempty"`
	PerUnitCents      int             `json:"per_unit_cents,omitempty"`
	BundleQuantity    int             `json:"bundle_quantity,omitempty"`
	ItemSubtotalCents int             `json:"item_subtotal_cents,omitempty"`
	Tiers             []ThresholdTier `json:"tiers,omitempty"`
	CreditCents       int             `json:"credit_cents,omitempty"`
	MinNextSpendCents int             `json:"min_next_spend_cents,omitempty"`
	FlatShippingCents int             `json:"flat_shipping_cents,omitempty"`
	UpgradeCostCents  int             `json:"upgrade_cost_cents,omitempty"`
	AddonPriceCents   int             `json:"addon_price_cents,omitempty"`
	AddonValueCents   int             `json:"addon_value_cents,omitempty"`
	GiftValueCents    int             `json:"gift_value_cents,omitempty"`
	GiftCostCents     int             `json:"gift_cost_cents,omitempty"`
}
