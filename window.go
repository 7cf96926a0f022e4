package fundsplit

import "github.com/etnz/fundsplit/date"

// Window is the accounting period, both boundaries included.
type Window struct {
	Start date.Date `json:"start"`
	End   date.Date `json:"end"`
	Label string    `json:"label,omitempty"`
}

// NewWindow returns the window of the calendar period containing on.
func NewWindow(on date.Date, period date.Period) Window {
	return windowOf(date.NewRange(on, period))
}

func windowOf(r date.Range) Window {
	return Window{Start: r.From, End: r.To, Label: r.Identifier()}
}

// Range returns the window as a date range.
func (w Window) Range() date.Range { return date.Range{From: w.Start, To: w.End} }

// Days returns the number of days in the window.
func (w Window) Days() int { return w.Range().Days() }

// Next returns the window following w, of the same period or length.
func (w Window) Next() Window { return windowOf(w.Range().Next()) }

// Name returns the label, or the date span when there is none.
func (w Window) Name() string {
	if w.Label != "" {
		return w.Label
	}
	return w.Start.String() + " to " + w.End.String()
}
