package fundsplit

// DominanceState is the outcome of the founders dominance guard.
type DominanceState string

const (
	DominanceGood DominanceState = "good"
	DominanceWarn DominanceState = "warn"
	DominanceBad  DominanceState = "bad"
)

// Dominance compares the founders end capital with the largest investor's.
type Dominance struct {
	State   DominanceState `json:"state"`
	Message string         `json:"message"`
	// Required is what founders must end with: largest investor times 1 + lead.
	Required        Money  `json:"required"`
	LargestInvestor string `json:"largestInvestor,omitempty"`
	MaxInvestor     Money  `json:"maxInvestor"`
}

// computeNet sums what each owner is credited this window.
func computeNet(realizedNet, moonbag, realizedMoonbag Allocation, creditMoonbag bool, draws Money) Allocation {
	net := newAllocation()
	parts := []Allocation{realizedNet, realizedMoonbag}
	if creditMoonbag {
		parts = append(parts, moonbag)
	}
	for _, p := range parts {
		net.add(FoundersName, p.Founders)
		for name, m := range p.Investors {
			net.add(name, m)
		}
	}
	net.Founders = net.Founders.Sub(draws)
	return net
}

// computeEndCapital rolls start capital, contributions and net into end balances.
func computeEndCapital(c Capital, net Allocation) Allocation {
	end := newAllocation()
	for _, a := range []Allocation{c.Start, c.Contributions, net} {
		end.add(FoundersName, a.Founders)
		for name, m := range a.Investors {
			end.add(name, m)
		}
	}
	return end
}

// EvaluateDominance checks that the founders end ahead of every investor by lead.
// draws is what the founders took out this window: giving it back would be
// enough to restore dominance when the state is warn.
func EvaluateDominance(end Allocation, lead Ratio, draws Money) Dominance {
	var d Dominance
	for _, name := range end.Names() {
		if v := end.Investors[name]; d.LargestInvestor == "" || v.GreaterThan(d.MaxInvestor) {
			d.LargestInvestor, d.MaxInvestor = name, v
		}
	}
	d.Required = d.MaxInvestor.Mul(One.Add(lead))
	switch {
	case end.Founders.GreaterThanOrEqual(d.Required):
		d.State, d.Message = DominanceGood, "Dominance OK"
	case end.Founders.Add(draws).GreaterThanOrEqual(d.Required):
		d.State, d.Message = DominanceWarn, "Reduce founder draws to maintain dominance."
	default:
		d.State, d.Message = DominanceBad, "Increase profit or reduce draws; founders below largest investor."
	}
	return d
}
