package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the healthlens command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "healthlens",
		Short: "Client for the HealthLens diagnostics dashboard",
		Long: `healthlens is the command-line client for the HealthLens diagnostics
platform. It manages the authenticated session (sign in, sign up, sign out),
the user profile, and avatar uploads against a configured backend.

Configuration comes from the environment (or a local .env file):

  HEALTHLENS_API_URL          backend base address (default http://localhost:8000)
  HEALTHLENS_TIMEOUT          per-request timeout (default 30s)
  HEALTHLENS_CREDENTIAL_FILE  credential location (default under the user config dir)
  HEALTHLENS_ROUTES_FILE      optional YAML route table override
  HEALTHLENS_ENV              development, staging or production`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewLoginCommand(),
		NewSignupCommand(),
		NewLogoutCommand(),
		NewWhoamiCommand(),
		NewProfileCommand(),
		NewAvatarCommand(),
		NewOpenCommand(),
		NewCheckCommand(),
	)

	return root
}
