package fundsplit

import (
	"slices"
	"testing"
)

func TestTrend(t *testing.T) {
	first := worked()
	out := mustCompute(t, first)
	sn := NewSnapshot(first, out, nil, at)

	second, err := sn.NextState(first.Window.Next())
	if err != nil {
		t.Fatal(err)
	}
	second = second.With(NewContribution("bob1", "Bob", day("2025-01-15"), M(2_000)))
	second.WalletSizeEndOfWindow = M(22_500)
	out2 := mustCompute(t, second)

	var trend Trend
	// recorded out of order, with a stale duplicate of the first window.
	trend.Add(NewTrendRow(second, out2, at.AddDate(0, 0, 10)))
	trend.Add(sn.Trend)
	stale := sn.Trend
	stale.Timestamp = at.AddDate(0, 0, -1)
	stale.ProfitTotal = M(-1)
	trend.Add(stale)

	if trend.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", trend.Len())
	}
	rows := slices.Collect(trend.Rows())
	if rows[0].Window.End != day("2025-01-10") || rows[1].Window.End != day("2025-01-20") {
		t.Errorf("rows are not chronological: %s, %s", rows[0].Window.Name(), rows[1].Window.Name())
	}
	checkMoney(t, "first profit", rows[0].ProfitTotal, M(1_000))
	if got, want := trend.Names(), []string{"Alice", "Bob"}; !slices.Equal(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
