package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// exitCodeError carries the delegated program's exit code up to main, which
// mirrors it as the process exit status.
type exitCodeError struct {
	code int
}

func (e exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func (e exitCodeError) ExitCode() int {
	return e.code
}

func (c *CLI) newBootCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "boot <executable> [args...]",
		Short:  "Run a produced executable (invoked via its header line)",
		Hidden: true,
		Args:   cobra.MinimumNArgs(1),
		// Everything after the executable path belongs to the delegated
		// program, including flag-like arguments.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := c.app.Boot(cmd.Context(), args[0], args[1:])
			if err != nil {
				return err
			}
			if code != 0 {
				return exitCodeError{code: code}
			}
			return nil
		},
	}
}
