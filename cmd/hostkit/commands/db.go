package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/hostkit/hostkit/internal/app/reset"
)

// NewDBCommand returns the db parent command.
func NewDBCommand(app *kingpin.Application) *kingpin.CmdClause {
	return app.Command("db", "Manage the run history database.")
}

type DBResetCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand
}

// NewDBResetCommand returns the db reset command.
func NewDBResetCommand(rootCmd *RootCommand, parent *kingpin.CmdClause) *DBResetCommand {
	c := &DBResetCommand{rootCmd: rootCmd}

	c.Cmd = parent.Command("reset", "Delete the run history database, it will be recreated on the next host start.")

	return c
}

func (c DBResetCommand) Name() string { return c.Cmd.FullCommand() }

func (c DBResetCommand) Run(ctx context.Context) error {
	svc, err := reset.NewService(reset.ServiceConfig{
		DBPath: c.rootCmd.DBPath,
		Logger: c.rootCmd.Logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	if err := svc.Run(ctx); err != nil {
		return fmt.Errorf("could not reset database: %w", err)
	}

	fmt.Fprintln(c.rootCmd.Stdout, "Run history database reset.")

	return nil
}
