package fundsplit

// computeCapital classifies the expanded legs into the window's capital base.
func computeCapital(legs []Leg, w Window) Capital {
	c := Capital{Start: newAllocation(), Contributions: newAllocation()}
	for _, l := range legs {
		if l.TS.After(w.End) {
			continue
		}
		if l.IsDraw() {
			if w.Range().Contains(l.TS) {
				c.Draws = c.Draws.Add(l.Amount.Abs())
			}
			continue
		}
		if l.TS.After(w.Start) {
			c.Contributions.add(l.key(), l.Amount)
		} else {
			c.Start.add(l.key(), l.Amount)
		}
	}
	return c
}

// deriveProfit reconciles the wallet with the capital base.
//
//	total    = wallet - start - contributions + draws
//	realized = total - realized moonbag - credited unrealized
func deriveProfit(s State, c Capital) (total, realized, credited Money) {
	total = s.WalletSizeEndOfWindow.Sub(c.Base())
	if s.Constants.UnrealizedInWallet && s.UnrealizedPnlEndOfWindow.IsPositive() {
		credited = s.UnrealizedPnlEndOfWindow
	}
	realized = total.Sub(s.RealizedMoonbagEndOfWindow).Sub(credited)
	return total, realized, credited
}
