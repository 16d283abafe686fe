package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/healthlens/healthlens-go/pkg/validator"
)

// NewCheckCommand creates the check command group for the client-side
// validators.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run client-side validators",
	}
	cmd.AddCommand(newCheckPasswordCommand(), newCheckEmailCommand())
	return cmd
}

func newCheckPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "password <password>",
		Short: "Score password strength",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strength := validator.CheckPassword(args[0])
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "score: %d/5\n", strength.Score)
			fmt.Fprintf(out, "level: %s\n", strength.Level)
			for _, suggestion := range strength.Suggestions {
				fmt.Fprintf(out, "  - %s\n", suggestion)
			}
			return nil
		},
	}
}

func newCheckEmailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "email <address>",
		Short: "Validate an email address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			check := validator.CheckEmail(args[0])
			out := cmd.OutOrStdout()

			if check.IsValid {
				fmt.Fprintln(out, "valid")
				return nil
			}

			fmt.Fprintln(out, "invalid")
			for _, suggestion := range check.Suggestions {
				fmt.Fprintf(out, "  - %s\n", suggestion)
			}
			return nil
		},
	}
}
