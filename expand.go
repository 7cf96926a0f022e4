package fundsplit

import "fmt"

// freeID returns the first of leg<n>, leg<n>_1, leg<n>_2... such that neither
// it nor its entry fee ID is in taken, and marks it taken.
func freeID(taken map[string]bool, n int) string {
	id := fmt.Sprintf("leg%d", n)
	for k := 1; taken[id] || taken[id+"_entry_fee"]; k++ {
		id = fmt.Sprintf("leg%d_%d", n, k)
	}
	taken[id] = true
	return id
}

// ExpandLegs splits every raw investor contribution into the investor's net
// credit and the founders entry fee. Other legs, and legs already marked Net,
// are kept as they are, so expanding twice changes nothing.
//
// The policy draws are appended, dated on the window end.
// generated holds the legs created here.
func ExpandLegs(legs []Leg, w Window, c Constants) (expanded, generated []Leg) {
	taken := make(map[string]bool, len(legs))
	for _, l := range legs {
		if l.ID != "" {
			taken[l.ID] = true
		}
	}
	expanded = make([]Leg, 0, len(legs)+1)
	for i, l := range legs {
		if l.ID == "" {
			l.ID = freeID(taken, i+1)
		}
		if l.Type != InvestorContribution || l.Net {
			expanded = append(expanded, l)
			continue
		}
		gross := l.Amount
		fee := gross.Mul(c.EntryFeeRate)
		credit := gross
		if c.EntryFeeReducesInvestorCredit {
			credit = gross.Sub(fee)
		}

		l.Amount, l.Gross, l.Net = credit, gross, true
		l.EarnsDollarDays = true
		expanded = append(expanded, l)
		if fee.IsZero() {
			continue
		}
		feeLeg := Leg{
			ID:              l.ID + "_entry_fee",
			Owner:           Founders,
			Name:            FoundersName,
			Type:            FoundersEntryFee,
			Amount:          fee,
			TS:              l.TS,
			EarnsDollarDays: true,
			Net:             true,
		}
		expanded = append(expanded, feeLeg)
		generated = append(generated, feeLeg)
	}

	if c.DrawPerFounder.IsPositive() {
		heads := max(1, c.FoundersCount)
		draw := NewDraw("draw_founders_"+w.End.String(), w.End, c.DrawPerFounder.MulDays(heads))
		expanded = append(expanded, draw)
		generated = append(generated, draw)
	}
	return expanded, generated
}
