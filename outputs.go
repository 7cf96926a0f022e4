package fundsplit

import (
	"maps"
	"slices"
)

// Allocation is an amount per owner: the founders as a whole and each investor by name.
type Allocation struct {
	Founders  Money            `json:"founders"`
	Investors map[string]Money `json:"investors"`
}

func newAllocation() Allocation { return Allocation{Investors: make(map[string]Money)} }

// Get returns the amount of an owner, FoundersName designating the founders.
func (a Allocation) Get(name string) Money {
	if name == FoundersName {
		return a.Founders
	}
	return a.Investors[name]
}

func (a *Allocation) add(name string, m Money) {
	if name == FoundersName {
		a.Founders = a.Founders.Add(m)
		return
	}
	if a.Investors == nil {
		a.Investors = make(map[string]Money)
	}
	a.Investors[name] = a.Investors[name].Add(m)
}

// InvestorsTotal returns the sum over investors.
func (a Allocation) InvestorsTotal() Money { return Sum(slices.Collect(maps.Values(a.Investors))...) }

// Total returns founders plus investors.
func (a Allocation) Total() Money { return a.Founders.Add(a.InvestorsTotal()) }

// Names returns the investors names in alphabetical order.
func (a Allocation) Names() []string { return slices.Sorted(maps.Keys(a.Investors)) }

// DollarDays is the time weight of each owner: amount times days held in the window.
type DollarDays struct {
	Allocation
	Total Money `json:"total"`
}

// Shares are the owners' fractions of the total dollar-days.
type Shares struct {
	Founders  Ratio            `json:"founders"`
	Investors map[string]Ratio `json:"investors"`
}

// Total returns the sum of all shares, 1 unless the window is degenerate.
func (s Shares) Total() Ratio {
	total := s.Founders
	for _, r := range s.Investors {
		total = total.Add(r)
	}
	return total
}

// Get returns the share of an owner, FoundersName designating the founders.
func (s Shares) Get(name string) Ratio {
	if name == FoundersName {
		return s.Founders
	}
	return s.Investors[name]
}

// ManagementFees are taken on investors' positive realized profit and carried to the founders.
type ManagementFees struct {
	Investors          map[string]Money `json:"investors"`
	FoundersCarryTotal Money            `json:"foundersCarryTotal"`
}

// Capital is the capital base of the window.
type Capital struct {
	// Start is the capital held on the first day (legs dated on or before the start).
	Start Allocation `json:"start"`
	// Contributions are credited after the first day, up to the last one.
	Contributions Allocation `json:"contributions"`
	// Draws taken by the founders during the window, as a positive amount.
	Draws Money `json:"draws"`
}

// Base returns the capital the wallet must hold before any profit.
func (c Capital) Base() Money {
	return c.Start.Total().Add(c.Contributions.Total()).Sub(c.Draws)
}

// Outputs is the complete, read-only result of an allocation.
type Outputs struct {
	// ProfitTotal is the wallet growth over the capital base.
	ProfitTotal Money `json:"profitTotal"`
	// RealizedProfit is the part of ProfitTotal shared by time weight (the profit core).
	RealizedProfit Money `json:"realizedProfit"`
	// UnrealizedCredited is the unrealized PnL paid out as moonbag this window.
	UnrealizedCredited Money          `json:"unrealizedCredited"`
	Capital            Capital        `json:"capital"`
	DollarDays         DollarDays     `json:"dollarDays"`
	Shares             Shares         `json:"shares"`
	RealizedGross      Allocation     `json:"realizedGross"`
	RealizedNet        Allocation     `json:"realizedNet"`
	ManagementFees     ManagementFees `json:"managementFees"`
	Moonbag            Allocation     `json:"moonbag"`
	RealizedMoonbag    Allocation     `json:"realizedMoonbag"`
	// Net is everything credited to an owner this window: realized net,
	// moonbags and, for the founders, minus draws.
	Net        Allocation `json:"net"`
	EndCapital Allocation `json:"endCapital"`
	Dominance  Dominance  `json:"dominance"`
	// FoundersMgmtLeg credits the carried management fee at window end, nil without fee.
	FoundersMgmtLeg *Leg `json:"foundersMgmtLeg"`
	// ExpandedLegs are the legs the allocation was computed from.
	ExpandedLegs []Leg `json:"expandedLegs"`
	// GeneratedLegs are the legs created by the allocation itself. Moonbag legs
	// are among them only when the moonbag is credited.
	GeneratedLegs []Leg `json:"generatedLegs"`
}
