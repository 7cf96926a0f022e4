package fundsplit

import (
	"fmt"

	"github.com/etnz/fundsplit/date"
)

// Owner is the class of party a leg is credited to.
type Owner string

const (
	Founders Owner = "founders"
	Investor Owner = "investor"
)

// FoundersName is the name carried by every founders leg.
const FoundersName = "Founders"

// LegType identifies what kind of capital movement a leg records.
type LegType string

const (
	Seed                 LegType = "seed"
	InvestorContribution LegType = "investor_contribution"
	FoundersEntryFee     LegType = "founders_entry_fee"
	FoundersMgmtFee      LegType = "founders_mgmt_fee"
	MoonbagFounders      LegType = "moonbag_founders"
	MoonbagInvestor      LegType = "moonbag_investor"
	Draw                 LegType = "draw"
)

// Leg is one dated capital movement attributed to one owner.
//
// Legs are values: a modified leg is a new leg with a new ID.
type Leg struct {
	ID     string    `json:"id"`
	Owner  Owner     `json:"owner"`
	Name   string    `json:"name"`
	Type   LegType   `json:"type"`
	Amount Money     `json:"amount"` // negative for draws
	TS     date.Date `json:"ts"`
	// EarnsDollarDays reports whether the leg is time-weighted in the current window.
	EarnsDollarDays bool `json:"earnsDollarDaysThisWindow"`
	// Net is set when Amount is already credited net of the entry fee.
	// Such legs are never expanded again.
	Net bool `json:"net,omitempty"`
	// Gross is the declared amount of an expanded investor contribution.
	Gross Money `json:"gross,omitzero"`
}

// NewContribution returns a raw investor contribution of a gross amount.
func NewContribution(id, name string, on date.Date, gross Money) Leg {
	return Leg{ID: id, Owner: Investor, Name: name, Type: InvestorContribution, Amount: gross, TS: on, EarnsDollarDays: true}
}

// NewSeed returns a founders capital leg.
func NewSeed(id string, on date.Date, amount Money) Leg {
	return Leg{ID: id, Owner: Founders, Name: FoundersName, Type: Seed, Amount: amount, TS: on, EarnsDollarDays: true}
}

// NewDraw returns a founders draw; the amount is stored negative whatever the sign given.
func NewDraw(id string, on date.Date, amount Money) Leg {
	return Leg{ID: id, Owner: Founders, Name: FoundersName, Type: Draw, Amount: amount.Abs().Neg(), TS: on}
}

// IsDraw reports whether the leg removes capital from the pool.
func (l Leg) IsDraw() bool { return l.Type == Draw }

// key returns the name the leg is accounted under.
func (l Leg) key() string {
	if l.Owner == Founders {
		return FoundersName
	}
	return l.Name
}

func (o Owner) valid() bool { return o == Founders || o == Investor }

func (t LegType) valid() bool {
	switch t {
	case Seed, InvestorContribution, FoundersEntryFee, FoundersMgmtFee, MoonbagFounders, MoonbagInvestor, Draw:
		return true
	}
	return false
}

// Check returns an error describing why the leg cannot be accounted.
func (l Leg) Check() error {
	switch {
	case !l.Owner.valid():
		return fmt.Errorf("leg %q: unknown owner %q", l.ID, l.Owner)
	case !l.Type.valid():
		return fmt.Errorf("leg %q: unknown type %q", l.ID, l.Type)
	case l.TS.IsZero():
		return fmt.Errorf("leg %q: missing date", l.ID)
	case l.Owner == Investor && l.Name == "":
		return fmt.Errorf("leg %q: investor leg without a name", l.ID)
	case l.Owner == Investor && l.Name == FoundersName:
		return fmt.Errorf("leg %q: investor cannot be named %q", l.ID, FoundersName)
	case l.Type == InvestorContribution && l.Owner != Investor:
		return fmt.Errorf("leg %q: %s must be owned by an investor", l.ID, l.Type)
	case l.Type == Draw && l.Owner != Founders:
		return fmt.Errorf("leg %q: only founders can draw", l.ID)
	}
	return nil
}
