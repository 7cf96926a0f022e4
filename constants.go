package fundsplit

import (
	"encoding/json"
	"fmt"
)

// Constants are the policy parameters of the allocation.
type Constants struct {
	// SeedBaseline is the capital floor of the wallet-delta cross-check; zero disables it.
	SeedBaseline Money `json:"seedBaseline"`
	EntryFeeRate Ratio `json:"entryFeeRate"`
	MgmtFeeRate  Ratio `json:"mgmtFeeRate"`
	// FoundersMoonbagPct is the founders part of the moonbag, investors share the rest.
	FoundersMoonbagPct Ratio `json:"foundersMoonbagPct"`
	FoundersCount      int   `json:"foundersCount"`
	// EntryFeeReducesInvestorCredit credits investors with gross minus fee when true,
	// with the full gross otherwise.
	EntryFeeReducesInvestorCredit bool `json:"entryFeeReducesInvestorCredit"`
	// DominanceLeadPct is the lead founders must keep over the largest investor.
	DominanceLeadPct Ratio `json:"dominanceLeadPct"`
	// DrawPerFounder is drawn by each founder at window end.
	DrawPerFounder Money `json:"drawPerFounder"`
	// UnrealizedInWallet tells that the end-of-window wallet value includes the
	// unrealized position, so that the moonbag is paid out of it.
	UnrealizedInWallet bool `json:"unrealizedInWallet"`
}

// DefaultConstants returns the standard fund policy.
func DefaultConstants() Constants {
	return Constants{
		EntryFeeRate:                  R(0.10),
		MgmtFeeRate:                   R(0.20),
		FoundersMoonbagPct:            R(0.75),
		FoundersCount:                 2,
		EntryFeeReducesInvestorCredit: true,
		UnrealizedInWallet:            true,
	}
}

// UnmarshalJSON decodes constants, missing fields keep their default value.
func (c *Constants) UnmarshalJSON(data []byte) error {
	type plain Constants
	v := plain(DefaultConstants())
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*c = Constants(v)
	return nil
}

func checkRate(name string, r Ratio, allowOne bool) error {
	if r.IsNegative() || r.GreaterThan(One) || (!allowOne && r.Equal(One)) {
		return fmt.Errorf("%s %s out of range", name, r)
	}
	return nil
}

// Check returns an error when the constants cannot produce a meaningful allocation.
func (c Constants) Check() error {
	if err := checkRate("entry fee rate", c.EntryFeeRate, false); err != nil {
		return err
	}
	if err := checkRate("management fee rate", c.MgmtFeeRate, true); err != nil {
		return err
	}
	if err := checkRate("founders moonbag percentage", c.FoundersMoonbagPct, true); err != nil {
		return err
	}
	if c.DominanceLeadPct.IsNegative() {
		return fmt.Errorf("dominance lead %s is negative", c.DominanceLeadPct)
	}
	if c.FoundersCount < 0 {
		return fmt.Errorf("founders count %d is negative", c.FoundersCount)
	}
	if c.DrawPerFounder.IsNegative() {
		return fmt.Errorf("draw per founder %s is negative", c.DrawPerFounder)
	}
	return nil
}
