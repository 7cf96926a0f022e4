// Package renderer formats allocation results as markdown reports.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fundsplit"
	md "github.com/nao1215/markdown"
)

// Options configures an allocation report.
type Options struct {
	SkipLegs       bool // Do not list the expanded and generated legs.
	SkipValidation bool // Do not render the validation section.
}

// AllocationMarkdown renders the full allocation of a window.
func AllocationMarkdown(s fundsplit.State, out fundsplit.Outputs, issues []fundsplit.ValidationError, opts Options) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	cur := s.Cur()

	doc.H1(fmt.Sprintf("Allocation %s", s.Window.Name()))
	doc.PlainText(md.Italic(fmt.Sprintf("%s to %s, %d days", s.Window.Start, s.Window.End, s.Window.Days())))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Wallet Size"), md.Bold(s.WalletSizeEndOfWindow.Format(cur))},
		Rows: [][]string{
			{"Start Capital", out.Capital.Start.Total().Format(cur)},
			{"Contributions", out.Capital.Contributions.Total().Format(cur)},
			{"Draws", out.Capital.Draws.Neg().SignedString(cur)},
			{"Profit Total", out.ProfitTotal.SignedString(cur)},
			{"Unrealized Credited", out.UnrealizedCredited.SignedString(cur)},
			{"Realized Moonbag", s.RealizedMoonbagEndOfWindow.SignedString(cur)},
			{md.Bold("Realized Profit"), md.Bold(out.RealizedProfit.SignedString(cur))},
		},
	})

	if !out.DollarDays.Total.IsPositive() {
		doc.PlainText("No capital was held during the window: nothing is allocated.")
	} else {
		renderOwners(doc, s, out)
		renderFounders(doc, s, out)
		renderDominance(doc, out.Dominance, cur)
	}

	if !opts.SkipLegs {
		renderLegs(doc, "Generated Legs", out.GeneratedLegs, cur)
	}
	if !opts.SkipValidation {
		renderValidation(doc, issues, cur)
	}
	return doc.String()
}

func renderOwners(doc *md.Markdown, s fundsplit.State, out fundsplit.Outputs) {
	cur := s.Cur()
	doc.H2("Allocation by Owner")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Owner", "Dollar-Days", "Share", "Gross", "Mgmt Fee", "Moonbag", "Net", "End Capital"},
	}
	for _, name := range owners(out.EndCapital) {
		fee := out.ManagementFees.Investors[name]
		if name == fundsplit.FoundersName {
			fee = out.ManagementFees.FoundersCarryTotal
		} else {
			fee = fee.Neg()
		}
		table.Rows = append(table.Rows, []string{
			name,
			out.DollarDays.Get(name).String(),
			out.Shares.Get(name).String(),
			out.RealizedGross.Get(name).SignedString(cur),
			fee.SignedString(cur),
			out.Moonbag.Get(name).Add(out.RealizedMoonbag.Get(name)).SignedString(cur),
			out.Net.Get(name).SignedString(cur),
			out.EndCapital.Get(name).Format(cur),
		})
	}
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		out.DollarDays.Total.String(),
		out.Shares.Total().String(),
		out.RealizedGross.Total().SignedString(cur),
		"",
		out.Moonbag.Total().Add(out.RealizedMoonbag.Total()).SignedString(cur),
		out.Net.Total().SignedString(cur),
		md.Bold(out.EndCapital.Total().Format(cur)),
	})
	doc.Table(table)

	if !out.UnrealizedCredited.IsPositive() && out.Moonbag.Total().IsPositive() {
		doc.PlainText(md.Italic("The unrealized moonbag is not in the wallet: it is reported but not credited."))
	}
}

// renderFounders splits the founders figures evenly between them.
func renderFounders(doc *md.Markdown, s fundsplit.State, out fundsplit.Outputs) {
	n := s.Constants.FoundersCount
	if n < 2 {
		return
	}
	cur := s.Cur()
	doc.H2("Per Founder")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Founders", fmt.Sprint(n)},
		Rows: [][]string{
			{"Realized Net", out.RealizedNet.Founders.DivInt(n).SignedString(cur)},
			{"Of which Fees", out.ManagementFees.FoundersCarryTotal.DivInt(n).SignedString(cur)},
			{"Draws", out.Capital.Draws.DivInt(n).Neg().SignedString(cur)},
			{"End Capital", out.EndCapital.Founders.DivInt(n).Format(cur)},
		},
	})
}

func renderDominance(doc *md.Markdown, d fundsplit.Dominance, cur string) {
	if d.LargestInvestor == "" {
		return
	}
	doc.H2("Dominance")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("State"), md.Bold(string(d.State))},
		Rows: [][]string{
			{"Largest Investor", fmt.Sprintf("%s (%s)", d.LargestInvestor, d.MaxInvestor.Format(cur))},
			{"Required", d.Required.Format(cur)},
		},
	})
	doc.PlainText(d.Message)
}

func renderLegs(doc *md.Markdown, title string, legs []fundsplit.Leg, cur string) {
	if len(legs) == 0 {
		return
	}
	doc.H2(title)
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"ID", "Date", "Owner", "Type", "Amount"},
	}
	for _, l := range legs {
		table.Rows = append(table.Rows, []string{l.ID, l.TS.String(), l.Name, string(l.Type), l.Amount.SignedString(cur)})
	}
	doc.Table(table)
}

// owners lists the founders first, then investors alphabetically.
func owners(a fundsplit.Allocation) []string {
	return append([]string{fundsplit.FoundersName}, a.Names()...)
}
