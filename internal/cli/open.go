package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/healthlens/healthlens-go/pkg/router"
)

// NewOpenCommand creates the open command, which resolves a navigation path
// through the route table and access guard and prints the decision.
func NewOpenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "open <path>",
		Short: "Resolve a navigation path to a page decision",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Sessions.Initialize(cmd.Context()); err != nil {
				return err
			}

			decision := app.Router.Resolve(args[0])
			out := cmd.OutOrStdout()

			switch decision.Action {
			case router.ActionRender:
				fmt.Fprintf(out, "render %s", decision.Page)
				if decision.Protected {
					fmt.Fprint(out, " (protected)")
				}
				fmt.Fprintln(out)
			case router.ActionSuspend:
				fmt.Fprintln(out, "suspend (session still resolving)")
			case router.ActionRedirect:
				fmt.Fprintf(out, "redirect to %s\n", decision.RedirectTo)
				for _, n := range app.Notifier.Active() {
					fmt.Fprintf(out, "notice [%s]: %s\n", n.Severity, n.Message)
				}
			}
			return nil
		},
	}
}
