package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/hostkit/hostkit/internal/version"
)

type VersionCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	long bool
}

// NewVersionCommand returns the version command.
func NewVersionCommand(rootCmd *RootCommand, app *kingpin.Application) *VersionCommand {
	c := &VersionCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("version", "Show the application version.")
	c.Cmd.Flag("long", "Show the long version including runtime information.").BoolVar(&c.long)

	return c
}

func (c VersionCommand) Name() string { return c.Cmd.FullCommand() }

func (c VersionCommand) Run(ctx context.Context) error {
	if c.long {
		fmt.Fprintln(c.rootCmd.Stdout, version.Long())
		return nil
	}

	fmt.Fprintln(c.rootCmd.Stdout, version.Version)
	return nil
}
