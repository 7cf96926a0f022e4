package fundsplit

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var at = time.Date(2025, 1, 11, 9, 30, 0, 0, time.UTC)

func TestNewSnapshot(t *testing.T) {
	s := worked()
	sn := NewSnapshot(s, mustCompute(t, s), nil, at)

	if want := "snapshot_2025-01-10_20250111T093000"; sn.ID != want {
		t.Errorf("ID = %q, want %q", sn.ID, want)
	}
	legs := sn.AuditLegs()
	if len(legs) == 0 {
		t.Fatal("AuditLegs() is empty")
	}
	legs[0].ID = "changed"
	if sn.Outputs.GeneratedLegs[0].ID == "changed" {
		t.Error("AuditLegs() shares the snapshot legs")
	}
}

func TestSnapshot_NextState(t *testing.T) {
	s := worked()
	sn := NewSnapshot(s, mustCompute(t, s), nil, at)

	next, err := sn.NextState(s.Window.Next())
	if err != nil {
		t.Fatalf("NextState() error = %v", err)
	}
	if next.Window.Start != day("2025-01-11") || next.Window.End != day("2025-01-20") {
		t.Errorf("next window = %s, want 2025-01-11 to 2025-01-20", next.Window.Name())
	}
	if len(next.Contributions) != 2 {
		t.Fatalf("next contributions = %v, want one leg per owner", next.Contributions)
	}
	for _, l := range next.Contributions {
		if !l.Net {
			t.Errorf("carried leg %s is not marked net", l.ID)
		}
	}

	// a flat window keeps every owner's capital.
	next.WalletSizeEndOfWindow = M(20_000)
	out := mustCompute(t, next)
	checkMoney(t, "founders", out.EndCapital.Founders, M(11_558.95))
	checkMoney(t, "alice", out.EndCapital.Investors["Alice"], M(8_441.05))
	if len(out.GeneratedLegs) != 0 {
		t.Errorf("carried legs generated %v", out.GeneratedLegs)
	}
}

func TestSnapshot_NextState_Errors(t *testing.T) {
	s := worked()
	sn := NewSnapshot(s, mustCompute(t, s), nil, at)

	tests := []struct {
		name string
		next Window
	}{
		{"overlapping", Window{Start: day("2025-01-10"), End: day("2025-01-20")}},
		{"inverted", Window{Start: day("2025-01-20"), End: day("2025-01-11")}},
		{"missing", Window{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := sn.NextState(tt.next); !errors.Is(err, ErrInvalidState) {
				t.Errorf("NextState() error = %v, want %v", err, ErrInvalidState)
			}
		})
	}

	if _, err := (Snapshot{State: s}).NextState(s.Window.Next()); err == nil {
		t.Error("NextState() of an empty snapshot succeeded")
	}
}

func TestSnapshot_CBOR(t *testing.T) {
	s := worked()
	out := mustCompute(t, s)
	sn := NewSnapshot(s, out, []ValidationError{{Type: Warning, Field: "realizedProfit", Message: "loss"}}, at)

	var buf bytes.Buffer
	if err := EncodeSnapshotCBOR(&buf, sn); err != nil {
		t.Fatalf("EncodeSnapshotCBOR() error = %v", err)
	}
	got, err := DecodeSnapshotCBOR(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshotCBOR() error = %v", err)
	}
	if diff := cmp.Diff(sn, got, equalOpts); diff != "" {
		t.Errorf("CBOR archive differs (-want +got):\n%s", diff)
	}
}

func TestDecodeState(t *testing.T) {
	const input = `{
		"window": {"start": "2025-01-01", "end": "2025-01-10"},
		"walletSizeEndOfWindow": 20000,
		"unrealizedPnlEndOfWindow": 500,
		"contributions": [
			{"id": "seed", "owner": "founders", "name": "Founders", "type": "seed", "amount": 10000, "ts": "2025-01-01", "earnsDollarDaysThisWindow": true},
			{"id": "alice1", "owner": "investor", "name": "Alice", "type": "investor_contribution", "amount": 9000, "ts": "2025-01-01", "earnsDollarDaysThisWindow": true}
		],
		"constants": {"unrealizedInWallet": false}
	}`
	s, err := DecodeState(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeState() error = %v", err)
	}
	if s.Currency != DefaultCurrency {
		t.Errorf("Currency = %q, want %q", s.Currency, DefaultCurrency)
	}
	if !s.Constants.EntryFeeRate.Equal(R(0.10)) || s.Constants.FoundersCount != 2 {
		t.Errorf("missing constants did not default: %+v", s.Constants)
	}
	if diff := cmp.Diff(mustCompute(t, worked()), mustCompute(t, s), equalOpts); diff != "" {
		t.Errorf("decoded state computes differently (-want +got):\n%s", diff)
	}

	if _, err := DecodeState(strings.NewReader(`{"window": 12}`)); err == nil {
		t.Error("DecodeState() accepted a malformed state")
	}
}
