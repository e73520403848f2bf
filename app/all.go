package app

import (
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

const (
	QUIET_FLAG = "q"
)

var (
	quiet bool
)

func AppCommands() []*commander.Command {
	return []*commander.Command{
		MorphCmd(),
		SummaryCmd(),
	}
}

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine:   os.Args[0],
		Short:       "segmentation mass conversion tools",
		Subcommands: AppCommands(),
		Flag:        *flag.NewFlagSet("app", flag.ExitOnError),
	}
	for _, app := range cmd.Subcommands {
		app.Run = NewAppWrapCommand(app.Run)
		app.Flag.BoolVar(&quiet, QUIET_FLAG, false, "Only print errors and command output")
	}
	return cmd
}

func InitCommand(cmd *commander.Command, args []string) {
	allOut = !quiet
}

func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	wrapped := func(cmd *commander.Command, args []string) error {
		InitCommand(cmd, args)
		return f(cmd, args)
	}

	return wrapped
}
