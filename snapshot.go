package fundsplit

import (
	"errors"
	"fmt"
	"time"
)

// Snapshot is the audit checkpoint of one window: its input, its outputs and
// the validation report, as of a timestamp.
type Snapshot struct {
	ID         string            `json:"id"`
	Timestamp  time.Time         `json:"timestamp"`
	State      State             `json:"state"`
	Outputs    Outputs           `json:"outputs"`
	Trend      TrendRow          `json:"trendRow"`
	Validation []ValidationError `json:"validationErrors"`
}

// NewSnapshot bundles a computed window.
func NewSnapshot(s State, out Outputs, issues []ValidationError, at time.Time) Snapshot {
	at = at.UTC()
	return Snapshot{
		ID:         fmt.Sprintf("snapshot_%s_%s", s.Window.End, at.Format("20060102T150405")),
		Timestamp:  at,
		State:      s,
		Outputs:    out,
		Trend:      NewTrendRow(s, out, at),
		Validation: issues,
	}
}

// AuditLegs returns the legs generated by the allocation, to be kept with the snapshot.
func (sn Snapshot) AuditLegs() []Leg {
	return append([]Leg(nil), sn.Outputs.GeneratedLegs...)
}

// NextState starts the window next from this snapshot: every owner's end
// capital becomes a start leg of next. Those legs are already net, they are
// not charged an entry fee again.
func (sn Snapshot) NextState(next Window) (State, error) {
	prev := sn.State.Window
	if next.Start.IsZero() || next.End.IsZero() || next.Start.After(next.End) {
		return State{}, fmt.Errorf("%w: invalid next window %s", ErrInvalidState, next.Name())
	}
	if !next.Start.After(prev.End) {
		return State{}, fmt.Errorf("%w: next window starts on %s, not after %s", ErrInvalidState, next.Start, prev.End)
	}
	end := sn.Outputs.EndCapital
	if end.Total().IsZero() {
		return State{}, errors.New("snapshot has no end capital to carry forward")
	}

	s := State{
		Window:    next,
		Currency:  sn.State.Currency,
		Constants: sn.State.Constants,
	}
	on := next.Start.String()
	if !end.Founders.IsZero() {
		l := NewSeed("carry_founders_"+on, next.Start, end.Founders)
		l.Net = true
		s.Contributions = append(s.Contributions, l)
	}
	for _, name := range end.Names() {
		if m := end.Investors[name]; !m.IsZero() {
			l := NewContribution("carry_"+name+"_"+on, name, next.Start, m)
			l.Net = true
			s.Contributions = append(s.Contributions, l)
		}
	}
	return s, nil
}
