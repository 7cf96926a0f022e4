package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fundsplit"
	md "github.com/nao1215/markdown"
)

// ImpactMarkdown renders what one more contribution changes for every owner.
func ImpactMarkdown(imp fundsplit.Impact, cur string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	l := imp.Leg
	doc.H1("Contribution Impact")
	doc.PlainText(fmt.Sprintf("%s contributes %s on %s.", md.Bold(l.Name), l.Amount.Format(cur), l.TS))

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Owner", "Dollar-Days", "Share Before", "Share After", "Net Change"},
	}
	for _, name := range owners(imp.After.EndCapital) {
		table.Rows = append(table.Rows, []string{
			name,
			imp.DollarDays.Get(name).String(),
			imp.Before.Shares.Get(name).String(),
			imp.After.Shares.Get(name).String(),
			imp.Net.Get(name).SignedString(cur),
		})
	}
	doc.Table(table)
	return doc.String()
}
