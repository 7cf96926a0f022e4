package fundsplit

// Compute runs the whole allocation of a state.
//
// It fails only when the state is malformed (see State.Check). Accounting
// inconsistencies are not errors: they are reported by the validate package.
// Compute has no side effect and reads nothing but s, the same state always
// gives the same outputs.
func Compute(s State) (Outputs, error) {
	if err := s.Check(); err != nil {
		return Outputs{}, err
	}
	c, w := s.Constants, s.Window

	var out Outputs
	out.ExpandedLegs, out.GeneratedLegs = ExpandLegs(s.Contributions, w, c)
	out.Capital = computeCapital(out.ExpandedLegs, w)
	out.ProfitTotal, out.RealizedProfit, out.UnrealizedCredited = deriveProfit(s, out.Capital)
	out.DollarDays = computeDollarDays(out.ExpandedLegs, w)
	out.Shares = computeShares(out.DollarDays)

	if !out.DollarDays.Total.IsPositive() {
		// nothing was at risk: there is no one to share with.
		out.RealizedGross, out.RealizedNet = newAllocation(), newAllocation()
		out.ManagementFees = ManagementFees{Investors: map[string]Money{}}
		out.Moonbag, out.RealizedMoonbag = newAllocation(), newAllocation()
		out.Net, out.EndCapital = newAllocation(), newAllocation()
		out.Dominance = EvaluateDominance(out.EndCapital, c.DominanceLeadPct, Money{})
		return out, nil
	}

	out.RealizedGross, out.RealizedNet, out.ManagementFees = allocateRealized(out.RealizedProfit, out.Shares, c.MgmtFeeRate)
	out.FoundersMgmtLeg = mgmtFeeLeg(out.ManagementFees, w)
	if out.FoundersMgmtLeg != nil {
		out.GeneratedLegs = append(out.GeneratedLegs, *out.FoundersMgmtLeg)
	}

	out.Moonbag = splitMoonbag(s.UnrealizedPnlEndOfWindow, out.DollarDays.Investors, c.FoundersMoonbagPct)
	out.RealizedMoonbag = splitMoonbag(s.RealizedMoonbagEndOfWindow, out.DollarDays.Investors, c.FoundersMoonbagPct)
	if out.UnrealizedCredited.IsPositive() {
		out.GeneratedLegs = append(out.GeneratedLegs, moonbagLegs(out.Moonbag, w)...)
	}

	out.Net = computeNet(out.RealizedNet, out.Moonbag, out.RealizedMoonbag, out.UnrealizedCredited.IsPositive(), out.Capital.Draws)
	out.EndCapital = computeEndCapital(out.Capital, out.Net)
	out.Dominance = EvaluateDominance(out.EndCapital, c.DominanceLeadPct, out.Capital.Draws)
	return out, nil
}
