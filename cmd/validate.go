package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fundsplit"
	"github.com/etnz/fundsplit/renderer"
	"github.com/etnz/fundsplit/validate"
	"github.com/google/subcommands"
)

type validateCmd struct {
	stateFile string
	window    windowFlags
}

func (*validateCmd) Name() string     { return "validate" }
func (*validateCmd) Synopsis() string { return "check the accounting invariants of an allocation" }
func (*validateCmd) Usage() string {
	return `fsplit validate [-s <state>]

  Computes the allocation of a state file and checks it independently.
  Exits with status 1 when an error is found.
`
}

func (c *validateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stateFile, "s", "state.json", "State file, - for the standard input")
	c.window.SetFlags(f)
}

func (c *validateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	printMarkdown(renderer.ValidationMarkdown(issues, s.Cur()))
	if fundsplit.HasErrors(issues) {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
