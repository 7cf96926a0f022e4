package fundsplit

// splitMoonbag gives pct of the pool to the founders and shares the rest
// between investors by their own dollar-days, founders excluded.
// When no investor holds dollar-days the founders keep the whole pool.
func splitMoonbag(pool Money, investors map[string]Money, pct Ratio) Allocation {
	a := newAllocation()
	if !pool.IsPositive() {
		return a
	}
	a.Founders = pool.Mul(pct)
	investorsPool := pool.Sub(a.Founders)

	var total Money
	for _, dd := range investors {
		if dd.IsPositive() {
			total = total.Add(dd)
		}
	}
	if !total.IsPositive() {
		a.Founders = pool
		return a
	}
	for name, dd := range investors {
		if dd.IsPositive() {
			a.Investors[name] = investorsPool.Mul(dd.Div(total))
		}
	}
	return a
}

// moonbagLegs records a credited moonbag split as non earning legs at window end.
func moonbagLegs(a Allocation, w Window) []Leg {
	var legs []Leg
	end := w.End.String()
	if a.Founders.IsPositive() {
		legs = append(legs, Leg{ID: "moonbag_founders_" + end, Owner: Founders, Name: FoundersName, Type: MoonbagFounders, Amount: a.Founders, TS: w.End, Net: true})
	}
	for _, name := range a.Names() {
		if amount := a.Investors[name]; amount.IsPositive() {
			legs = append(legs, Leg{ID: "moonbag_" + name + "_" + end, Owner: Investor, Name: name, Type: MoonbagInvestor, Amount: amount, TS: w.End, Net: true})
		}
	}
	return legs
}
