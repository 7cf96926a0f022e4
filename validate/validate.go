// Package validate checks allocation outputs against the accounting
// invariants they must satisfy.
//
// Every quantity is recomputed here from the state and the expanded legs,
// on purpose without calling the allocation code: a bug there must not be
// reproduced here.
package validate

import (
	"fmt"
	"maps"
	"slices"

	"github.com/etnz/fundsplit"
	"github.com/etnz/fundsplit/date"
)

// Tolerance is the largest difference accepted between two amounts.
var Tolerance = fundsplit.M(0.01)

// report accumulates issues.
type report struct {
	issues []fundsplit.ValidationError
}

// expect records an error when actual is not within Tolerance of expected.
func (r *report) expect(field, message string, expected, actual fundsplit.Money) {
	if actual.Within(expected, Tolerance) {
		return
	}
	r.issues = append(r.issues, fundsplit.ValidationError{
		Type:     fundsplit.Error,
		Field:    field,
		Message:  message,
		Expected: &expected,
		Actual:   &actual,
	})
}

func (r *report) fail(field, message string) {
	r.issues = append(r.issues, fundsplit.ValidationError{Type: fundsplit.Error, Field: field, Message: message})
}

func (r *report) warn(field, message string) {
	r.issues = append(r.issues, fundsplit.ValidationError{Type: fundsplit.Warning, Field: field, Message: message})
}

func sum(m map[string]fundsplit.Money) fundsplit.Money {
	var total fundsplit.Money
	for _, v := range m {
		total = total.Add(v)
	}
	return total
}

func names[T any](m map[string]T) []string { return slices.Sorted(maps.Keys(m)) }

// ratio converts a ratio into a comparable amount.
func ratio(r fundsplit.Ratio) fundsplit.Money { return fundsplit.M(r.Decimal()) }

// Check returns every inconsistency between s and its outputs. It never fails:
// an empty report means the outputs hold.
func Check(s fundsplit.State, out fundsplit.Outputs) []fundsplit.ValidationError {
	var r report
	w := s.Window
	degenerate := !out.DollarDays.Total.IsPositive()

	r.checkLegs(s)
	r.checkProfitDerivation(s, out)
	r.checkDollarDays(w, out)
	r.checkEntryFees(s.Constants, out.ExpandedLegs)
	if degenerate {
		r.warn("dollarDays", "No dollar-days calculated - all allocations will be zero")
		return r.issues
	}
	r.checkShares(out)
	r.checkRealized(out)
	r.checkManagementFees(s.Constants, out)
	r.checkMoonbag("moonbag", s.UnrealizedPnlEndOfWindow, s.Constants, out.DollarDays.Investors, out.Moonbag)
	r.checkMoonbag("realizedMoonbag", s.RealizedMoonbagEndOfWindow, s.Constants, out.DollarDays.Investors, out.RealizedMoonbag)
	r.checkEndCapital(s, out)

	if out.RealizedProfit.IsNegative() {
		r.warn("realizedProfit", "Realized profit is negative - loss allocation is active")
	}
	return r.issues
}

// checkLegs reports the legs the allocation ignores.
func (r *report) checkLegs(s fundsplit.State) {
	for _, l := range s.Contributions {
		if l.TS.After(s.Window.End) {
			r.warn("contributions", fmt.Sprintf("Leg %s is dated %s, after the window end, and was ignored", l.ID, l.TS))
		}
	}
}

// capitalBase sums the capital the wallet must hold before profit.
func capitalBase(legs []fundsplit.Leg, w fundsplit.Window) (start, contributions, draws fundsplit.Money) {
	for _, l := range legs {
		switch {
		case l.TS.After(w.End):
		case l.Type == fundsplit.Draw:
			if !l.TS.Before(w.Start) {
				draws = draws.Add(l.Amount.Abs())
			}
		case l.TS.After(w.Start):
			contributions = contributions.Add(l.Amount)
		default:
			start = start.Add(l.Amount)
		}
	}
	return start, contributions, draws
}

func (r *report) checkProfitDerivation(s fundsplit.State, out fundsplit.Outputs) {
	start, contributions, draws := capitalBase(out.ExpandedLegs, s.Window)
	total := s.WalletSizeEndOfWindow.Sub(start).Sub(contributions).Add(draws)
	r.expect("profitTotal", "Profit total must equal wallet size minus start capital and contributions plus draws", total, out.ProfitTotal)

	var credited fundsplit.Money
	if s.Constants.UnrealizedInWallet && s.UnrealizedPnlEndOfWindow.IsPositive() {
		credited = s.UnrealizedPnlEndOfWindow
	}
	realized := total.Sub(s.RealizedMoonbagEndOfWindow).Sub(credited)
	r.expect("realizedProfit", "Realized profit must equal profit total minus moonbags paid from the wallet", realized, out.RealizedProfit)

	if baseline := s.Constants.SeedBaseline; baseline.IsPositive() {
		delta := s.WalletSizeEndOfWindow.Sub(baseline)
		r.expect("profitTotal", "Profit total must equal wallet size minus the seed baseline", delta, out.ProfitTotal)
	}
}

// heldDays counts the days a leg dated on ts earns in w; the last day earns nothing.
func heldDays(ts date.Date, w fundsplit.Window) int {
	if ts.After(w.End) || (ts == w.End && w.Start.Before(w.End)) {
		return 0
	}
	from := ts
	if from.Before(w.Start) {
		from = w.Start
	}
	return w.End.Sub(from) + 1
}

func (r *report) checkDollarDays(w fundsplit.Window, out fundsplit.Outputs) {
	var founders, total fundsplit.Money
	investors := make(map[string]fundsplit.Money)
	for _, l := range out.ExpandedLegs {
		if !l.EarnsDollarDays || l.Type == fundsplit.Draw || !l.Amount.IsPositive() {
			continue
		}
		dd := l.Amount.MulDays(heldDays(l.TS, w))
		if l.Owner == fundsplit.Founders {
			founders = founders.Add(dd)
		} else {
			investors[l.Name] = investors[l.Name].Add(dd)
		}
		total = total.Add(dd)
	}
	r.expect("dollarDays", "Founders dollar-days calculation mismatch", founders, out.DollarDays.Founders)
	for _, name := range names(investors) {
		r.expect("dollarDays", fmt.Sprintf("Dollar-days calculation mismatch for investor %s", name), investors[name], out.DollarDays.Investors[name])
	}
	r.expect("dollarDays", "Total dollar-days must equal the sum over owners", total, out.DollarDays.Total)
}

func (r *report) checkShares(out fundsplit.Outputs) {
	total := out.Shares.Founders
	for _, s := range out.Shares.Investors {
		total = total.Add(s)
	}
	r.expect("shares", "Total shares must sum to 1.0", fundsplit.M(1), ratio(total))

	dd := out.DollarDays
	r.expect("shares", "Founders share must be their part of the dollar-days", ratio(dd.Founders.Div(dd.Total)), ratio(out.Shares.Founders))
	for _, name := range names(dd.Investors) {
		want := dd.Investors[name].Div(dd.Total)
		r.expect("shares", fmt.Sprintf("Share of investor %s must be their part of the dollar-days", name), ratio(want), ratio(out.Shares.Investors[name]))
	}
}

func (r *report) checkRealized(out fundsplit.Outputs) {
	gross := out.RealizedGross.Founders.Add(sum(out.RealizedGross.Investors))
	r.expect("realizedGross", "Sum of gross realized shares must equal total realized profit", out.RealizedProfit, gross)

	net := out.RealizedNet.Founders.Add(sum(out.RealizedNet.Investors))
	r.expect("realizedNet", "Sum of net realized shares must equal total realized profit", out.RealizedProfit, net)
}

func (r *report) checkManagementFees(c fundsplit.Constants, out fundsplit.Outputs) {
	fees := out.ManagementFees
	r.expect("managementFees", "Sum of investor management fees must equal founders carry total", fees.FoundersCarryTotal, sum(fees.Investors))

	for _, name := range names(fees.Investors) {
		fee, gross := fees.Investors[name], out.RealizedGross.Investors[name]
		if !gross.IsPositive() {
			r.expect("managementFees", fmt.Sprintf("Management fee applied to investor %s with non-positive gross share", name), fundsplit.Money{}, fee)
			continue
		}
		r.expect("managementFees", fmt.Sprintf("Incorrect management fee rate for investor %s", name), gross.Mul(c.MgmtFeeRate), fee)
		r.expect("realizedNet", fmt.Sprintf("Net realized profit of investor %s must be gross minus fee", name), gross.Sub(fee), out.RealizedNet.Investors[name])
	}
	r.expect("realizedNet", "Founders net realized profit must be gross plus the carried fees",
		out.RealizedGross.Founders.Add(fees.FoundersCarryTotal), out.RealizedNet.Founders)

	if out.RealizedProfit.IsNegative() && fees.FoundersCarryTotal.IsPositive() {
		r.fail("managementFees", "Management fees must be zero when realized profit is negative")
	}
}

// checkEntryFees reconciles the founders entry fees with the investors
// contributions they were charged on.
func (r *report) checkEntryFees(c fundsplit.Constants, legs []fundsplit.Leg) {
	var gross, credited, fees fundsplit.Money
	charged := make(map[string]int)
	for _, l := range legs {
		if l.Type == fundsplit.FoundersEntryFee {
			fees = fees.Add(l.Amount)
			charged[l.ID]++
		}
	}
	for _, l := range legs {
		if l.Type != fundsplit.InvestorContribution || l.Gross.IsZero() {
			continue
		}
		gross = gross.Add(l.Gross)
		credited = credited.Add(l.Amount)
		if c.EntryFeeRate.IsZero() {
			continue
		}
		switch charged[l.ID+"_entry_fee"] {
		case 0:
			r.fail("entryFees", fmt.Sprintf("Contribution %s was not charged an entry fee", l.ID))
		case 1:
		default:
			r.fail("entryFees", fmt.Sprintf("Contribution %s was charged the entry fee more than once", l.ID))
		}
	}
	r.expect("entryFees", fmt.Sprintf("Founders entry fees must equal %s of gross investor contributions", c.EntryFeeRate), gross.Mul(c.EntryFeeRate), fees)

	if c.EntryFeeReducesInvestorCredit {
		// credited is gross*(1-rate) so the fee is credited*rate/(1-rate): a ninth at 10%.
		expected := fundsplit.M(credited.Decimal().Mul(c.EntryFeeRate.Decimal()).Div(c.EntryFeeRate.Complement().Decimal()))
		r.expect("entryFees", "Founders entry fees must reconcile with the net credited to investors", expected, fees)
	} else {
		r.expect("entryFees", "Investors must be credited their gross contribution", gross, credited)
	}
}

// checkMoonbag verifies a moonbag split: pct to founders, the rest pro rata
// of the investors dollar-days only.
func (r *report) checkMoonbag(field string, pool fundsplit.Money, c fundsplit.Constants, dd map[string]fundsplit.Money, got fundsplit.Allocation) {
	if !pool.IsPositive() {
		r.expect(field, "Moonbag must be empty without a positive pool", fundsplit.Money{}, got.Founders.Add(sum(got.Investors)))
		return
	}
	r.expect(field, "Total moonbag allocation must equal its pool", pool, got.Founders.Add(sum(got.Investors)))

	var investorsDD fundsplit.Money
	for _, v := range dd {
		if v.IsPositive() {
			investorsDD = investorsDD.Add(v)
		}
	}
	if !investorsDD.IsPositive() {
		r.expect(field, "Founders keep the whole moonbag without investors", pool, got.Founders)
		return
	}
	investorsPool := pool.Mul(c.FoundersMoonbagPct.Complement())
	r.expect(field, fmt.Sprintf("Founders moonbag must be %s of the pool", c.FoundersMoonbagPct), pool.Mul(c.FoundersMoonbagPct), got.Founders)
	r.expect(field, fmt.Sprintf("Investors moonbag must be %s of the pool", c.FoundersMoonbagPct.Complement()), investorsPool, sum(got.Investors))
	for _, name := range names(dd) {
		if !dd[name].IsPositive() {
			continue
		}
		r.expect(field, fmt.Sprintf("Moonbag of investor %s must be pro rata of investors dollar-days", name),
			investorsPool.Mul(dd[name].Div(investorsDD)), got.Investors[name])
	}
}

// checkEndCapital rolls every owner forward and closes on the wallet.
func (r *report) checkEndCapital(s fundsplit.State, out fundsplit.Outputs) {
	w := s.Window
	start := map[string]fundsplit.Money{}
	credit := func(l fundsplit.Leg, m fundsplit.Money) {
		key := l.Name
		if l.Owner == fundsplit.Founders {
			key = fundsplit.FoundersName
		}
		start[key] = start[key].Add(m)
	}
	var draws fundsplit.Money
	for _, l := range out.ExpandedLegs {
		switch {
		case l.TS.After(w.End):
		case l.Type == fundsplit.Draw:
			if !l.TS.Before(w.Start) {
				draws = draws.Add(l.Amount.Abs())
			}
		default:
			credit(l, l.Amount)
		}
	}

	founders := start[fundsplit.FoundersName].Add(out.RealizedNet.Founders).Add(out.RealizedMoonbag.Founders).Sub(draws)
	if out.UnrealizedCredited.IsPositive() {
		founders = founders.Add(out.Moonbag.Founders)
	}
	r.expect("endCapital", "Founders end capital must be capital plus net profit", founders, out.EndCapital.Founders)
	delete(start, fundsplit.FoundersName)

	for name := range out.RealizedNet.Investors {
		if _, ok := start[name]; !ok {
			start[name] = fundsplit.Money{}
		}
	}
	for _, name := range names(start) {
		want := start[name].Add(out.RealizedNet.Investors[name]).Add(out.RealizedMoonbag.Investors[name])
		if out.UnrealizedCredited.IsPositive() {
			want = want.Add(out.Moonbag.Investors[name])
		}
		r.expect("endCapital", fmt.Sprintf("End capital of investor %s must be capital plus net profit", name), want, out.EndCapital.Investors[name])
	}

	total := out.EndCapital.Founders.Add(sum(out.EndCapital.Investors))
	r.expect("endCapital", "End capital must add up to the wallet size", s.WalletSizeEndOfWindow, total)
}
