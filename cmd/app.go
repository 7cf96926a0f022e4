// Package cmd implements the fsplit command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fundsplit"
	"github.com/etnz/fundsplit/config"
	"github.com/etnz/fundsplit/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&computeCmd{}, "allocation")
	c.Register(&validateCmd{}, "allocation")
	c.Register(&impactCmd{}, "allocation")

	c.Register(&snapshotCmd{}, "windows")
	c.Register(&advanceCmd{}, "windows")
	c.Register(&trendCmd{}, "windows")

	c.Register(&serveCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", config.DefaultPath, "Path to the YAML configuration file")
var verbose = flag.Bool("v", false, "Log the allocation stages")
var rawMarkdown = flag.Bool("raw", false, "Print reports as plain markdown")

// stdout receives every report.
var stdout io.Writer = os.Stdout

// loadConfig reads the configuration file, the defaults apply when it does not exist.
func loadConfig() (*config.Config, error) {
	return config.LoadOrDefault(*configFile)
}

func debugf(format string, args ...any) {
	if *verbose {
		log.Printf(format, args...)
	}
}

// readState decodes the state file at path, "-" being the standard input.
func readState(cfg *config.Config, path string) (fundsplit.State, error) {
	if path == "-" {
		return cfg.DecodeState(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return fundsplit.State{}, err
	}
	defer f.Close()
	return cfg.DecodeState(f)
}

// readSnapshot decodes a snapshot file, CBOR when its extension is .cbor.
func readSnapshot(path string) (fundsplit.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return fundsplit.Snapshot{}, err
	}
	defer f.Close()
	if filepath.Ext(path) == ".cbor" {
		return fundsplit.DecodeSnapshotCBOR(f)
	}
	return fundsplit.DecodeSnapshot(f)
}

// writeOutput writes to the file at path, or to stdout for "-".
func writeOutput(path string, write func(io.Writer) error) error {
	if path == "-" || path == "" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// compute runs the engine with verbose logging of the stages.
func compute(s fundsplit.State) (fundsplit.Outputs, error) {
	out, err := fundsplit.Compute(s)
	if err != nil {
		return out, err
	}
	debugf("window %s: %d legs expanded, %d generated", s.Window.Name(), len(out.ExpandedLegs), len(out.GeneratedLegs))
	debugf("capital start=%s contributions=%s draws=%s", out.Capital.Start.Total(), out.Capital.Contributions.Total(), out.Capital.Draws)
	debugf("profit total=%s realized=%s unrealized credited=%s", out.ProfitTotal, out.RealizedProfit, out.UnrealizedCredited)
	debugf("dollar-days total=%s, management fees=%s", out.DollarDays.Total, out.ManagementFees.FoundersCarryTotal)
	return out, nil
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Fprint(stdout, md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		out = md
	}
	fmt.Fprint(stdout, out)
}

// windowFlags select the window of a state from the command line.
type windowFlags struct {
	period string
	on     string
	start  string
	end    string
}

func (w *windowFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&w.period, "period", "", "Window period: "+strings.Join(date.PeriodNames(), ", "))
	f.StringVar(&w.on, "d", date.Today().String(), "A day of the window selected by -period")
	f.StringVar(&w.start, "start", "", "First day of the window, overrides the state window")
	f.StringVar(&w.end, "end", "", "Last day of the window, overrides the state window")
}

// window returns the window selected, or def when none is.
func (w *windowFlags) window(def fundsplit.Window) (fundsplit.Window, error) {
	if w.period != "" {
		p, err := date.ParsePeriod(w.period)
		if err != nil {
			return def, err
		}
		on, err := date.Parse(w.on)
		if err != nil {
			return def, fmt.Errorf("invalid date %q: %w", w.on, err)
		}
		debugf("window is the %s of %s", p.Unit(), on)
		return fundsplit.NewWindow(on, p), nil
	}
	if w.start == "" && w.end == "" {
		return def, nil
	}
	win := def
	win.Label = ""
	var err error
	if w.start != "" {
		if win.Start, err = date.Parse(w.start); err != nil {
			return def, fmt.Errorf("invalid start %q: %w", w.start, err)
		}
	}
	if w.end != "" {
		if win.End, err = date.Parse(w.end); err != nil {
			return def, fmt.Errorf("invalid end %q: %w", w.end, err)
		}
	}
	return win, nil
}
