package fundsplit

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidState is wrapped by every error reporting a malformed State.
var ErrInvalidState = errors.New("invalid allocation state")

// DefaultCurrency is used to display amounts when the state does not name one.
const DefaultCurrency = "USD"

// State is the single input of the allocation: a window, the wallet
// valuation at its end and every capital leg known so far.
type State struct {
	Window   Window `json:"window"`
	Currency string `json:"currency,omitempty"`
	// WalletSizeEndOfWindow is the total value of the pooled wallet on the last day.
	WalletSizeEndOfWindow Money `json:"walletSizeEndOfWindow"`
	// UnrealizedPnlEndOfWindow is the mark-to-market profit not realized yet (the moonbag).
	UnrealizedPnlEndOfWindow Money `json:"unrealizedPnlEndOfWindow"`
	// RealizedMoonbagEndOfWindow is the moonbag already realized and paid into the wallet.
	RealizedMoonbagEndOfWindow Money     `json:"realizedMoonbagEndOfWindow"`
	Contributions              []Leg     `json:"contributions"`
	Constants                  Constants `json:"constants"`
}

// NewState returns a state for the window with the default constants.
func NewState(w Window, legs ...Leg) State {
	return State{
		Window:        w,
		Currency:      DefaultCurrency,
		Contributions: legs,
		Constants:     DefaultConstants(),
	}
}

// UnmarshalJSON decodes a state; absent constants take their default values.
func (s *State) UnmarshalJSON(data []byte) error {
	type plain State
	v := plain{Constants: DefaultConstants()}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = State(v)
	return nil
}

// Cur returns the display currency.
func (s State) Cur() string {
	if s.Currency == "" {
		return DefaultCurrency
	}
	return s.Currency
}

// With returns a copy of s with extra legs appended. s is left untouched.
func (s State) With(legs ...Leg) State {
	s.Contributions = append(append([]Leg(nil), s.Contributions...), legs...)
	return s
}

// Check verifies that the state can be computed at all. All the problems
// found are joined in a single error wrapping ErrInvalidState.
func (s State) Check() error {
	var errs []error
	switch {
	case s.Window.Start.IsZero() || s.Window.End.IsZero():
		errs = append(errs, errors.New("window dates are missing"))
	case s.Window.Start.After(s.Window.End):
		errs = append(errs, fmt.Errorf("window starts on %s after it ends on %s", s.Window.Start, s.Window.End))
	}
	if s.RealizedMoonbagEndOfWindow.IsNegative() {
		errs = append(errs, fmt.Errorf("realized moonbag %s is negative", s.RealizedMoonbagEndOfWindow))
	}
	if err := s.Constants.Check(); err != nil {
		errs = append(errs, err)
	}
	ids := make(map[string]bool, len(s.Contributions))
	for _, l := range s.Contributions {
		if err := l.Check(); err != nil {
			errs = append(errs, err)
		}
		if l.ID != "" {
			if ids[l.ID] {
				errs = append(errs, fmt.Errorf("leg %q: duplicated id", l.ID))
			}
			ids[l.ID] = true
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidState, errors.Join(errs...))
}
