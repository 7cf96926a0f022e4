package fundsplit

// Impact is the effect of one more contribution on an allocation.
type Impact struct {
	Leg        Leg        `json:"leg"`
	Before     Outputs    `json:"before"`
	After      Outputs    `json:"after"`
	DollarDays Allocation `json:"dollarDaysChange"`
	Shares     Shares     `json:"sharesChange"`
	Net        Allocation `json:"netChange"`
}

// ContributionImpact computes s with and without leg. s is not modified.
func ContributionImpact(s State, leg Leg) (Impact, error) {
	before, err := Compute(s)
	if err != nil {
		return Impact{}, err
	}
	if leg.ID == "" {
		leg.ID = "whatif"
	}
	after, err := Compute(s.With(leg))
	if err != nil {
		return Impact{}, err
	}
	return Impact{
		Leg:        leg,
		Before:     before,
		After:      after,
		DollarDays: diffAllocation(before.DollarDays.Allocation, after.DollarDays.Allocation),
		Shares:     diffShares(before.Shares, after.Shares),
		Net:        diffAllocation(before.Net, after.Net),
	}, nil
}

func diffAllocation(before, after Allocation) Allocation {
	d := newAllocation()
	d.Founders = after.Founders.Sub(before.Founders)
	for name, v := range after.Investors {
		d.Investors[name] = v.Sub(before.Investors[name])
	}
	for name, v := range before.Investors {
		if _, ok := after.Investors[name]; !ok {
			d.Investors[name] = v.Neg()
		}
	}
	return d
}

func diffShares(before, after Shares) Shares {
	d := Shares{Founders: after.Founders.Sub(before.Founders), Investors: make(map[string]Ratio)}
	for name, v := range after.Investors {
		d.Investors[name] = v.Sub(before.Investors[name])
	}
	for name, v := range before.Investors {
		if _, ok := after.Investors[name]; !ok {
			d.Investors[name] = Ratio{}.Sub(v)
		}
	}
	return d
}
