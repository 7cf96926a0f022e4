package fundsplit

import (
	"testing"

	"github.com/etnz/fundsplit/date"
	"github.com/google/go-cmp/cmp"
)

// day is a helper for test to create a date from a literal.
func day(s string) date.Date { return date.MustParse(s) }

// cent is the accepted rounding error when comparing amounts to literals.
var cent = M(0.01)

// equalOpts compare engine values exactly.
var equalOpts = cmp.Options{
	cmp.Comparer(func(a, b date.Date) bool { return a == b }),
}

// worked is the reference scenario: Alice joins the founders on the first
// day of a ten days window that makes 1,000 of realized profit.
func worked() State {
	s := NewState(Window{Start: day("2025-01-01"), End: day("2025-01-10")},
		NewSeed("seed", day("2025-01-01"), M(10_000)),
		NewContribution("alice1", "Alice", day("2025-01-01"), M(9_000)),
	)
	s.WalletSizeEndOfWindow = M(20_000)
	s.UnrealizedPnlEndOfWindow = M(500)
	s.Constants.UnrealizedInWallet = false
	return s
}

func mustCompute(t *testing.T, s State) Outputs {
	t.Helper()
	out, err := Compute(s)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return out
}

func checkMoney(t *testing.T, name string, got, want Money) {
	t.Helper()
	if !got.Within(want, cent) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
