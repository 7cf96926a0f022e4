package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundsplit"
	"github.com/etnz/fundsplit/renderer"
	"github.com/google/subcommands"
)

type trendCmd struct{}

func (*trendCmd) Name() string     { return "trend" }
func (*trendCmd) Synopsis() string { return "summarize a series of snapshots" }
func (*trendCmd) Usage() string {
	return `fsplit trend <snapshot>...

  Prints one row per window, in chronological order. A window snapshotted
  several times shows its latest snapshot.
`
}

func (c *trendCmd) SetFlags(f *flag.FlagSet) {}

func (c *trendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no snapshot given")
		return subcommands.ExitUsageError
	}
	var trend fundsplit.Trend
	currency := ""
	for _, path := range f.Args() {
		sn, err := readSnapshot(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading snapshot %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		if currency == "" {
			currency = sn.State.Cur()
		}
		trend.Add(sn.Trend)
	}
	printMarkdown(renderer.TrendMarkdown(&trend, currency))
	return subcommands.ExitSuccess
}
