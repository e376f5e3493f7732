package allocation

// Line is a cart line entering allowance allocation.
type Line struct {
	UnitSellCents int
	UnitCostCents int
	Quantity      int
}

// LineResult carries the per-unit settlement for one line.
type LineResult struct {
	UnitAllowanceCents int
	UnitSettleCents    int
	UnitProfitCents    int
	MarginPct          float64
}

// Result aggregates the cart-level rollups after allocation.
type Result struct {
	Lines               []LineResult
	DeltaCents          int
	TotalAllowanceCents int
	TotalMarkupCents    int
	NORSalesCents       int
	GrossMarginPct      float64
}

// Allocate distributes the concession between list total and settle total
// across lines proportional to each line's share of pre-discount list value.
// It is pure: no I/O, no shared state.
func Allocate(lines []Line, listTotalCents, settleTotalCents int) Result {
	delta := listTotalCents - settleTotalCents
	if delta < 0 {
		delta = 0
	}

	res := Result{
		Lines:      make([]LineResult, len(lines)),
		DeltaCents: delta,
	}
	if len(lines) == 0 {
		return res
	}

	sumSell := 0
	for _, line := range lines {
		sumSell += line.UnitSellCents * line.Quantity
	}

	// Line-level allowances first, floored, with leftover cents pushed onto
	// the final line so the line totals reconcile to delta exactly.
	lineAllowances := make([]int, len(lines))
	if sumSell > 0 && delta > 0 {
		allocated := 0
		for i, line := range lines {
			lineValue := line.UnitSellCents * line.Quantity
			share := int(int64(delta) * int64(lineValue) / int64(sumSell))
			lineAllowances[i] = share
			allocated += share
		}
		lineAllowances[len(lines)-1] += delta - allocated
	}

	for i, line := range lines {
		var unitAllowance int
		if line.Quantity > 0 {
			// Half-up so unit settlement stays within a cent of the line share.
			unitAllowance = (lineAllowances[i] + line.Quantity/2) / line.Quantity
		}
		unitSettle := line.UnitSellCents - unitAllowance
		if unitSettle < 0 {
			unitSettle = 0
		}
		unitProfit := unitSettle - line.UnitCostCents

		var marginPct float64
		if unitSettle > 0 {
			marginPct = float64(unitProfit) / float64(unitSettle)
		}

		res.Lines[i] = LineResult{
			UnitAllowanceCents: unitAllowance,
			UnitSettleCents:    unitSettle,
			UnitProfitCents:    unitProfit,
			MarginPct:          marginPct,
		}

		// Rollups use the exact line shares, not the rounded per-unit
		// figures, so the totals reconcile to delta to the cent.
		lineSell := line.UnitSellCents * line.Quantity
		lineSettle := lineSell - lineAllowances[i]
		if lineSettle < 0 {
			lineSettle = 0
		}
		res.TotalAllowanceCents += lineAllowances[i]
		res.NORSalesCents += lineSettle
		res.TotalMarkupCents += lineSettle - line.UnitCostCents*line.Quantity
	}

	if res.NORSalesCents > 0 {
		res.GrossMarginPct = float64(res.TotalMarkupCents) / float64(res.NORSalesCents)
	}

	return res
}
