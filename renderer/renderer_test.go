package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/fundsplit"
	"github.com/etnz/fundsplit/date"
)

func worked(t *testing.T) (fundsplit.State, fundsplit.Outputs) {
	t.Helper()
	start := date.New(2025, 1, 1)
	s := fundsplit.NewState(fundsplit.Window{Start: start, End: date.New(2025, 1, 10)},
		fundsplit.NewSeed("seed", start, fundsplit.M(10_000)),
		fundsplit.NewContribution("alice1", "Alice", start, fundsplit.M(9_000)),
	)
	s.WalletSizeEndOfWindow = fundsplit.M(20_000)
	s.UnrealizedPnlEndOfWindow = fundsplit.M(500)
	s.Constants.UnrealizedInWallet = false
	out, err := fundsplit.Compute(s)
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	return s, out
}

func TestAllocationMarkdown(t *testing.T) {
	s, out := worked(t)
	issues := []fundsplit.ValidationError{{Type: fundsplit.Warning, Field: "realizedProfit", Message: "Realized profit is negative"}}

	tests := []struct {
		name    string
		opts    Options
		want    []string
		notWant []string
	}{
		{
			name: "full",
			want: []string{
				"# Allocation 2025-01-01 to 2025-01-10",
				"$20,000.00",
				"Alice",
				"$11,558.95",
				"$8,441.05",
				"57.37%",
				"## Per Founder",
				"$5,779.47",
				"## Dominance",
				"## Generated Legs",
				"alice1_entry_fee",
				"founders_mgmt_fee_2025-01-10",
				"not credited",
				"0 errors, 1 warnings.",
			},
		},
		{
			name:    "compact",
			opts:    Options{SkipLegs: true, SkipValidation: true},
			want:    []string{"## Allocation by Owner"},
			notWant: []string{"## Generated Legs", "## Validation"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AllocationMarkdown(s, out, issues, tt.opts)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("report does not contain %q:\n%s", w, got)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(got, w) {
					t.Errorf("report contains %q:\n%s", w, got)
				}
			}
		})
	}
}

func TestAllocationMarkdown_Degenerate(t *testing.T) {
	s := fundsplit.NewState(fundsplit.Window{Start: date.New(2025, 1, 1), End: date.New(2025, 1, 10)})
	out, err := fundsplit.Compute(s)
	if err != nil {
		t.Fatal(err)
	}
	got := AllocationMarkdown(s, out, nil, Options{})
	if !strings.Contains(got, "nothing is allocated") {
		t.Errorf("degenerate report:\n%s", got)
	}
	if strings.Contains(got, "## Allocation by Owner") {
		t.Errorf("degenerate report lists owners:\n%s", got)
	}
}

func TestValidationMarkdown(t *testing.T) {
	if got := ValidationMarkdown(nil, "USD"); !strings.Contains(got, "All checks passed.") {
		t.Errorf("ValidationMarkdown(nil) = %q", got)
	}
	want, actual := fundsplit.M(100), fundsplit.M(90)
	got := ValidationMarkdown([]fundsplit.ValidationError{
		{Type: fundsplit.Error, Field: "entryFees", Message: "mismatch", Expected: &want, Actual: &actual},
	}, "USD")
	for _, w := range []string{"1 errors, 0 warnings.", "entryFees", "$100.00", "$90.00"} {
		if !strings.Contains(got, w) {
			t.Errorf("ValidationMarkdown() does not contain %q:\n%s", w, got)
		}
	}
}

func TestTrendMarkdown(t *testing.T) {
	s, out := worked(t)
	var trend fundsplit.Trend
	if got := TrendMarkdown(&trend, "USD"); !strings.Contains(got, "No window recorded.") {
		t.Errorf("empty trend = %q", got)
	}
	trend.Add(fundsplit.NewTrendRow(s, out, time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)))
	got := TrendMarkdown(&trend, "USD")
	for _, w := range []string{"Founders", "Alice", "2025-01-01 to 2025-01-10", "$8,441.05"} {
		if !strings.Contains(got, w) {
			t.Errorf("TrendMarkdown() does not contain %q:\n%s", w, got)
		}
	}
}

func TestImpactMarkdown(t *testing.T) {
	s, _ := worked(t)
	imp, err := fundsplit.ContributionImpact(s, fundsplit.NewContribution("bob1", "Bob", date.New(2025, 1, 6), fundsplit.M(5_000)))
	if err != nil {
		t.Fatal(err)
	}
	got := ImpactMarkdown(imp, "USD")
	for _, w := range []string{"# Contribution Impact", "**Bob** contributes $5,000.00 on 2025-01-06.", "Alice", "Bob"} {
		if !strings.Contains(got, w) {
			t.Errorf("ImpactMarkdown() does not contain %q:\n%s", w, got)
		}
	}
}
