package fundsplit

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// DecodeState reads a JSON state.
func DecodeState(r io.Reader) (State, error) {
	var s State
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return State{}, fmt.Errorf("could not decode state: %w", err)
	}
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	return s, nil
}

// EncodeJSON writes any engine value as indented JSON.
func EncodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// DecodeSnapshot reads a JSON snapshot.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var sn Snapshot
	if err := json.NewDecoder(r).Decode(&sn); err != nil {
		return Snapshot{}, fmt.Errorf("could not decode snapshot: %w", err)
	}
	return sn, nil
}

var cborEncMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano, Sort: cbor.SortCanonical}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// EncodeSnapshotCBOR writes the compact binary archive form of a snapshot.
func EncodeSnapshotCBOR(w io.Writer, sn Snapshot) error {
	return cborEncMode.NewEncoder(w).Encode(sn)
}

// DecodeSnapshotCBOR reads a snapshot written by EncodeSnapshotCBOR.
func DecodeSnapshotCBOR(r io.Reader) (Snapshot, error) {
	var sn Snapshot
	if err := cbor.NewDecoder(r).Decode(&sn); err != nil {
		return Snapshot{}, fmt.Errorf("could not decode snapshot: %w", err)
	}
	return sn, nil
}
