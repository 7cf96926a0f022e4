package renderer

import (
	"bytes"

	"github.com/etnz/fundsplit"
	md "github.com/nao1215/markdown"
)

// TrendMarkdown renders one row per window with every owner's end capital.
func TrendMarkdown(t *fundsplit.Trend, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Trend")
	if t.Len() == 0 {
		doc.PlainText("No window recorded.")
		return doc.String()
	}

	names := append([]string{fundsplit.FoundersName}, t.Names()...)
	table := md.TableSet{
		Header: append([]string{"Window", "Wallet", "Profit", "Realized", "Fees"}, names...),
	}
	for range table.Header {
		table.Alignment = append(table.Alignment, md.AlignRight)
	}
	table.Alignment[0] = md.AlignLeft

	for r := range t.Rows() {
		row := []string{
			r.Window.Name(),
			r.WalletSizeEnd.Format(cur),
			r.ProfitTotal.SignedString(cur),
			r.Realized.SignedString(cur),
			r.ManagementFees.FoundersCarryTotal.Format(cur),
		}
		for _, name := range names {
			row = append(row, r.EndCapital.Get(name).Format(cur))
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)
	return doc.String()
}
