package cmd

import (
	"flag"

	"github.com/etnz/pms/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the pms command.
//
// Install it with COMP_INSTALL=1 pms.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	root.Flags["portfolio-file"] = predict.Files("*.txt")
	root.Flags["currency"] = predict.Set{"USD", "EUR", "GBP", "JPY", "CHF"}

	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		root.Sub[c.Name()] = &complete.Command{
			Flags: flagPredictors(fs),
			Args:  argsPredictor(c),
		}
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{Args: predict.Set(commandNames())}
	}
	return root
}

func commandNames() []string {
	names := make([]string, 0, len(Commands))
	for _, c := range Commands {
		names = append(names, c.Name())
	}
	return names
}

func argsPredictor(c subcommands.Command) complete.Predictor {
	switch c.(type) {
	case *addCmd:
		return predict.Set{"stock", "bond", "mutual", "crypto"}
	case *topicCmd:
		topics, err := docs.GetAllTopics()
		if err != nil {
			return predict.Nothing
		}
		return predict.Set(append(topics, "*"))
	default:
		return predict.Nothing
	}
}

// flagPredictors predicts nothing for boolean flags and anything for the
// others.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	m := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			m[f.Name] = predict.Nothing
			return
		}
		m[f.Name] = predict.Something
	})
	return m
}

// IsCommand reports whether name is a registered subcommand.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}
