package fundsplit

// allocateRealized shares the realized profit by time weight, then takes the
// management fee on every investor whose share is a gain.
func allocateRealized(profit Money, shares Shares, rate Ratio) (gross, net Allocation, fees ManagementFees) {
	gross, net = newAllocation(), newAllocation()
	fees = ManagementFees{Investors: make(map[string]Money, len(shares.Investors))}

	gross.Founders = profit.Mul(shares.Founders)
	for name, share := range shares.Investors {
		base := profit.Mul(share)
		gross.Investors[name] = base

		var fee Money
		if base.IsPositive() {
			fee = base.Mul(rate)
		}
		fees.Investors[name] = fee
		fees.FoundersCarryTotal = fees.FoundersCarryTotal.Add(fee)
		net.Investors[name] = base.Sub(fee)
	}
	net.Founders = gross.Founders.Add(fees.FoundersCarryTotal)
	return gross, net, fees
}

// mgmtFeeLeg records the carried fee as a founders leg at window end.
func mgmtFeeLeg(fees ManagementFees, w Window) *Leg {
	if !fees.FoundersCarryTotal.IsPositive() {
		return nil
	}
	return &Leg{
		ID:     "founders_mgmt_fee_" + w.End.String(),
		Owner:  Founders,
		Name:   FoundersName,
		Type:   FoundersMgmtFee,
		Amount: fees.FoundersCarryTotal,
		TS:     w.End,
		Net:    true,
	}
}
