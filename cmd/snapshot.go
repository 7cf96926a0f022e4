package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/etnz/fundsplit"
	"github.com/etnz/fundsplit/validate"
	"github.com/google/subcommands"
)

type snapshotCmd struct {
	stateFile string
	output    string
	format    string
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "record a window, its allocation and its validation" }
func (*snapshotCmd) Usage() string {
	return `fsplit snapshot [-s <state>] [-o <file>] [-format json|cbor]

  Writes the snapshot of a state file: the state, its outputs, the trend row
  and the validation report, timestamped.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.stateFile, "s", "state.json", "State file, - for the standard input")
	f.StringVar(&c.output, "o", "-", "Output file, - for the standard output")
	f.StringVar(&c.format, "format", "json", "Snapshot encoding: json or cbor")
}

func (c *snapshotCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var encode func(io.Writer, fundsplit.Snapshot) error
	switch c.format {
	case "json":
		encode = func(w io.Writer, sn fundsplit.Snapshot) error { return fundsplit.EncodeJSON(w, sn) }
	case "cbor":
		encode = fundsplit.EncodeSnapshotCBOR
	default:
		fmt.Fprintf(os.Stderr, "Unknown format %q\n", c.format)
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
	out, err := compute(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing allocation: %v\n", err)
		return subcommands.ExitFailure
	}

	sn := fundsplit.NewSnapshot(s, out, validate.Check(s, out), time.Now())
	if err := writeOutput(c.output, func(w io.Writer) error { return encode(w, sn) }); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	debugf("snapshot %s written to %s", sn.ID, c.output)
	return subcommands.ExitSuccess
}
