package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/fundsplit"
	"github.com/google/subcommands"
)

type advanceCmd struct {
	input  string
	output string
	window windowFlags
}

func (*advanceCmd) Name() string     { return "advance" }
func (*advanceCmd) Synopsis() string { return "start the next window from a snapshot" }
func (*advanceCmd) Usage() string {
	return `fsplit advance -i <snapshot> [-o <state>] [-start <date> -end <date>]

  Writes the state of the window following a snapshot. Every owner's end
  capital is carried as a start leg. Without -period, -start or -end the
  next window has the same period or the same length.
`
}

func (c *advanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Snapshot file (.json or .cbor)")
	f.StringVar(&c.output, "o", "-", "Output state file, - for the standard output")
	c.window.SetFlags(f)
}

func (c *advanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required")
		return subcommands.ExitUsageError
	}
	sn, err := readSnapshot(c.input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading snapshot %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}
	next, err := c.window.window(sn.State.Window.Next())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in window: %v\n", err)
		return subcommands.ExitUsageError
	}
	s, err := sn.NextState(next)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error advancing to %s: %v\n", next.Name(), err)
		return subcommands.ExitFailure
	}
	if err := writeOutput(c.output, func(w io.Writer) error { return fundsplit.EncodeJSON(w, s) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing state: %v\n", err)
		return subcommands.ExitFailure
	}
	debugf("advanced to %s with %d carried legs", s.Window.Name(), len(s.Contributions))
	return subcommands.ExitSuccess
}
