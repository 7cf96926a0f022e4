package fundsplit

import "github.com/etnz/fundsplit/date"

// HeldDays returns the number of days a leg dated on ts is held within w.
//
// A leg dated on the last day is not held at all, unless the window is that
// single day.
func HeldDays(ts date.Date, w Window) int {
	if ts.After(w.End) {
		return 0
	}
	if ts == w.End && ts.After(w.Start) {
		return 0
	}
	return date.DaysInclusive(date.Max(ts, w.Start), w.End)
}

// computeDollarDays integrates every earning leg over the days it is held.
func computeDollarDays(legs []Leg, w Window) DollarDays {
	dd := DollarDays{Allocation: newAllocation()}
	for _, l := range legs {
		if !l.EarnsDollarDays || l.IsDraw() || !l.Amount.IsPositive() || l.TS.After(w.End) {
			continue
		}
		v := l.Amount.MulDays(HeldDays(l.TS, w))
		dd.add(l.key(), v)
		dd.Total = dd.Total.Add(v)
	}
	return dd
}

// computeShares normalizes dollar-days. Without any dollar-days every share is zero.
func computeShares(dd DollarDays) Shares {
	s := Shares{Investors: make(map[string]Ratio, len(dd.Investors))}
	s.Founders = dd.Founders.Div(dd.Total)
	for name, v := range dd.Investors {
		s.Investors[name] = v.Div(dd.Total)
	}
	return s
}
