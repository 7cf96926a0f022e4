package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundsplit"
	"github.com/etnz/fundsplit/date"
	"github.com/etnz/fundsplit/renderer"
	"github.com/google/subcommands"
)

type impactCmd struct {
	stateFile string
	id        string
	name      string
	amount    string
	on        string
	json      bool
}

func (*impactCmd) Name() string     { return "impact" }
func (*impactCmd) Synopsis() string { return "show what one more contribution would change" }
func (*impactCmd) Usage() string {
	return `fsplit impact [-s <state>] -name <investor> -amount <gross> -d <date>

  Computes the allocation with and without a contribution and prints the
  change of every owner's dollar-days, share and net profit.
`
}

func (c *impactCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stateFile, "s", "state.json", "State file, - for the standard input")
	f.StringVar(&c.id, "id", "", "Contribution id")
	f.StringVar(&c.name, "name", "", "Investor name")
	f.StringVar(&c.amount, "amount", "", "Gross amount contributed")
	f.StringVar(&c.on, "d", date.Today().String(), "Contribution date")
	f.BoolVar(&c.json, "json", false, "Print the impact as JSON")
}

func (c *impactCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	amount, err := fundsplit.ParseMoney(c.amount)
	if err != nil || !amount.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: -amount %q must be a positive number\n", c.amount)
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	s, err := readState(cfg, c.stateFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading state %q: %v\n", c.stateFile, err)
		return subcommands.ExitFailure
	}

	imp, err := fundsplit.ContributionImpact(s, fundsplit.NewContribution(c.id, c.name, on, amount))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing impact: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.json {
		if err := fundsplit.EncodeJSON(stdout, imp); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing impact: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ImpactMarkdown(imp, s.Cur()))
	return subcommands.ExitSuccess
}
