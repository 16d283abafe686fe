package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/healthlens/healthlens-go/pkg/session"
	"github.com/healthlens/healthlens-go/pkg/validator"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Apply(
				validator.Required("email", email),
				validator.ValidEmail("email", email),
				validator.Required("password", password),
			); err != nil {
				return err
			}

			app, err := NewApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			if err := app.Sessions.Initialize(ctx); err != nil {
				return err
			}

			if err := app.Sessions.SignIn(ctx, email, password); err != nil {
				return fmt.Errorf("%s", session.FriendlyMessage(err))
			}

			snap := app.Sessions.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s <%s>\n", snap.User.Name, snap.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// NewSignupCommand creates the signup command.
func NewSignupCommand() *cobra.Command {
	var email, password, name string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validator.Apply(
				validator.Required("name", name),
				validator.Required("email", email),
				validator.ValidEmail("email", email),
				validator.StrongPassword("password", password),
			); err != nil {
				return err
			}

			app, err := NewApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			if err := app.Sessions.Initialize(ctx); err != nil {
				return err
			}

			if err := app.Sessions.SignUp(ctx, email, password, name); err != nil {
				return fmt.Errorf("%s", session.FriendlyMessage(err))
			}

			snap := app.Sessions.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Account created for %s <%s>\n", snap.User.Name, snap.User.Email)
			return nil
		},
	}

	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password")
	cmd.Flags().StringVarP(&name, "name", "n", "", "display name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp()
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			if err := app.Sessions.Initialize(ctx); err != nil {
				return err
			}

			// Best-effort remote call; local state clears regardless.
			app.Sessions.SignOut(ctx)

			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}
