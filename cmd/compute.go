package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/fundsplit"
	"github.com/etnz/fundsplit/renderer"
	"github.com/etnz/fundsplit/validate"
	"github.com/google/subcommands"
)

// computeCmd holds the flags for the 'compute' subcommand.
type computeCmd struct {
	stateFile string
	json      bool
	skipLegs  bool
	window    windowFlags
}

func (*computeCmd) Name() string     { return "compute" }
func (*computeCmd) Synopsis() string { return "allocate the profit of a window" }
func (*computeCmd) Usage() string {
	return `fsplit compute [-s <state>] [-json] [-period <period> -d <date>]

  Computes the allocation of a state file and prints the report.
`
}

func (c *computeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stateFile, "s", "state.json", "State file, - for the standard input")
	f.BoolVar(&c.json, "json", false, "Print the outputs as JSON")
	f.BoolVar(&c.skipLegs, "no-legs", false, "Do not list the generated legs")
	c.window.SetFlags(f)
}

func (c *computeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if s.Window, err = c.window.window(s.Window); err != nil {
		fmt.Fprintf(os.Stderr, "Error in window: %v\n", err)
		return subcommands.ExitUsageError
	}

	out, err := compute(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing allocation: %v\n", err)
		return subcommands.ExitFailure
	}
	issues := validate.Check(s, out)

	if c.json {
		err := writeOutput("-", func(w io.Writer) error {
			return fundsplit.EncodeJSON(w, struct {
				Outputs    fundsplit.Outputs           `json:"outputs"`
				Validation []fundsplit.ValidationError `json:"validationErrors"`
			}{out, issues})
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing outputs: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.AllocationMarkdown(s, out, issues, renderer.Options{SkipLegs: c.skipLegs}))
	return subcommands.ExitSuccess
}
