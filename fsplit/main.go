// Command fsplit shares the profit of a pooled fund between founders and investors.
package main

import (
	"context"
	"flag"
	"maps"
	"os"
	"path"

	"github.com/etnz/fundsplit/cmd"
	"github.com/etnz/fundsplit/date"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
func completion() *complete.Command {
	state := predict.Files("*.json")
	snapshots := predict.Files("*")
	period := predict.Set(date.PeriodNames())
	window := map[string]complete.Predictor{
		"period": period, "d": predict.Something, "start": predict.Something, "end": predict.Something,
	}
	with := func(flags map[string]complete.Predictor, extra map[string]complete.Predictor) map[string]complete.Predictor {
		all := maps.Clone(flags)
		maps.Copy(all, extra)
		return all
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.yaml"),
			"v":      predict.Nothing,
			"raw":    predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"compute":  {Flags: with(window, map[string]complete.Predictor{"s": state, "json": predict.Nothing, "no-legs": predict.Nothing})},
			"validate": {Flags: with(window, map[string]complete.Predictor{"s": state})},
			"impact": {Flags: map[string]complete.Predictor{
				"s": state, "id": predict.Something, "name": predict.Something, "amount": predict.Something, "d": predict.Something, "json": predict.Nothing,
			}},
			"snapshot": {Flags: map[string]complete.Predictor{"s": state, "o": predict.Files("*"), "format": predict.Set{"json", "cbor"}}},
			"advance":  {Flags: with(window, map[string]complete.Predictor{"i": snapshots, "o": state})},
			"trend":    {Args: snapshots},
			"serve":    {Flags: map[string]complete.Predictor{"addr": predict.Something, "release": predict.Nothing}},
			"topic":    {Args: predict.Set{"allocation", "moonbag", "state", "validation", "windows", "config", "api"}},
		},
	}
}

func main() {
	completion().Complete("fsplit")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
