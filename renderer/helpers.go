package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fundsplit"
	md "github.com/nao1215/markdown"
)

// ValidationMarkdown renders a validation report on its own.
func ValidationMarkdown(issues []fundsplit.ValidationError, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	renderValidation(doc, issues, currency)
	return doc.String()
}

func renderValidation(doc *md.Markdown, issues []fundsplit.ValidationError, cur string) {
	doc.H2("Validation")
	if len(issues) == 0 {
		doc.PlainText("All checks passed.")
		return
	}
	var errs int
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Severity", "Field", "Message", "Expected", "Actual"},
	}
	for _, v := range issues {
		if v.Type == fundsplit.Error {
			errs++
		}
		table.Rows = append(table.Rows, []string{string(v.Type), v.Field, v.Message, amount(v.Expected, cur), amount(v.Actual, cur)})
	}
	doc.PlainText(fmt.Sprintf("%d errors, %d warnings.", errs, len(issues)-errs))
	doc.Table(table)
}

func amount(m *fundsplit.Money, cur string) string {
	if m == nil {
		return ""
	}
	return m.Format(cur)
}
