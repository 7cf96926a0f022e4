package fundsplit

import (
	"iter"
	"time"

	"github.com/etnz/fundsplit/date"
)

// TrendRow summarizes one window for historical tracking.
type TrendRow struct {
	Window         Window         `json:"window"`
	WalletSizeEnd  Money          `json:"walletSizeEnd"`
	ProfitTotal    Money          `json:"profitTotal"`
	Unrealized     Money          `json:"unrealized"`
	Realized       Money          `json:"realized"`
	DollarDays     DollarDays     `json:"dollarDays"`
	Shares         Shares         `json:"shares"`
	RealizedNet    Allocation     `json:"realizedNet"`
	ManagementFees ManagementFees `json:"managementFees"`
	Moonbag        Allocation     `json:"moonbag"`
	EndCapital     Allocation     `json:"endCapital"`
	Timestamp      time.Time      `json:"timestamp"`
}

func NewTrendRow(s State, out Outputs, at time.Time) TrendRow {
	return TrendRow{
		Window:         s.Window,
		WalletSizeEnd:  s.WalletSizeEndOfWindow,
		ProfitTotal:    out.ProfitTotal,
		Unrealized:     s.UnrealizedPnlEndOfWindow,
		Realized:       out.RealizedProfit,
		DollarDays:     out.DollarDays,
		Shares:         out.Shares,
		RealizedNet:    out.RealizedNet,
		ManagementFees: out.ManagementFees,
		Moonbag:        out.Moonbag,
		EndCapital:     out.EndCapital,
		Timestamp:      at,
	}
}

// Trend is the series of windows, ordered by their last day.
// A window recorded twice keeps its latest row.
type Trend struct {
	rows date.History[TrendRow]
}

// Add records a row.
func (t *Trend) Add(rows ...TrendRow) {
	for _, r := range rows {
		if prev, ok := t.rows.Get(r.Window.End); ok && prev.Timestamp.After(r.Timestamp) {
			continue
		}
		t.rows.Append(r.Window.End, r)
	}
}

// Len returns the number of windows.
func (t *Trend) Len() int { return t.rows.Len() }

// Rows iterates over windows in chronological order.
func (t *Trend) Rows() iter.Seq[TrendRow] {
	return func(yield func(TrendRow) bool) {
		for _, r := range t.rows.Values() {
			if !yield(r) {
				return
			}
		}
	}
}

// Names returns every investor seen across the trend, sorted.
func (t *Trend) Names() []string {
	all := newAllocation()
	for r := range t.Rows() {
		for name := range r.EndCapital.Investors {
			all.Investors[name] = Money{}
		}
	}
	return all.Names()
}
