package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/healthlens/healthlens-go/pkg/session"
)

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := NewApp()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Sessions.Initialize(cmd.Context()); err != nil {
				return err
			}

			snap := app.Sessions.Snapshot()
			if snap.User == nil {
				return fmt.Errorf("not signed in")
			}

			printIdentity(cmd, snap.User)
			return nil
		},
	}
}

// NewProfileCommand creates the profile command with its update subcommand.
func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the user profile",
	}
	cmd.AddCommand(newProfileUpdateCommand())
	return cmd
}

func newProfileUpdateCommand() *cobra.Command {
	var name, title, company, bio, phone, location, timezone string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		Long:  "Update profile fields. Only the flags you pass are sent; everything else is left untouched.",
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

			var updates session.ProfileUpdate
			set := false
			if cmd.Flags().Changed("name") {
				updates.Name = &name
				set = true
			}
			if cmd.Flags().Changed("title") {
				updates.Title = &title
				set = true
			}
			if cmd.Flags().Changed("company") {
				updates.Company = &company
				set = true
			}
			if cmd.Flags().Changed("bio") {
				updates.Bio = &bio
				set = true
			}
			if cmd.Flags().Changed("phone") {
				updates.Phone = &phone
				set = true
			}
			if cmd.Flags().Changed("location") {
				updates.Location = &location
				set = true
			}
			if cmd.Flags().Changed("timezone") {
				updates.Timezone = &timezone
				set = true
			}
			if !set {
				return fmt.Errorf("nothing to update: pass at least one field flag")
			}

			if err := app.Sessions.UpdateProfile(ctx, updates); err != nil {
				return err
			}

			snap := app.Sessions.Snapshot()
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated")
			printIdentity(cmd, snap.User)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&title, "title", "", "job title")
	cmd.Flags().StringVar(&company, "company", "", "company")
	cmd.Flags().StringVar(&bio, "bio", "", "short bio")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&location, "location", "", "location")
	cmd.Flags().StringVar(&timezone, "timezone", "", "timezone")

	return cmd
}

// NewAvatarCommand creates the avatar upload command.
func NewAvatarCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avatar <file>",
		Short: "Upload a new avatar image",
		Args:  cobra.ExactArgs(1),
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

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close() //nolint:errcheck

			if err := app.Sessions.UploadAvatar(ctx, filepath.Base(args[0]), f); err != nil {
				return err
			}

			snap := app.Sessions.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Avatar updated: %s\n", snap.User.AvatarURL)
			return nil
		},
	}
	return cmd
}

func printIdentity(cmd *cobra.Command, user *session.Identity) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:        %s\n", user.ID)
	fmt.Fprintf(out, "Name:      %s\n", user.Name)
	fmt.Fprintf(out, "Email:     %s\n", user.Email)
	if user.Title != "" {
		fmt.Fprintf(out, "Title:     %s\n", user.Title)
	}
	if user.Company != "" {
		fmt.Fprintf(out, "Company:   %s\n", user.Company)
	}
	if user.Bio != "" {
		fmt.Fprintf(out, "Bio:       %s\n", user.Bio)
	}
	if user.Phone != "" {
		fmt.Fprintf(out, "Phone:     %s\n", user.Phone)
	}
	if user.Location != "" {
		fmt.Fprintf(out, "Location:  %s\n", user.Location)
	}
	if user.Timezone != "" {
		fmt.Fprintf(out, "Timezone:  %s\n", user.Timezone)
	}
	if user.AvatarURL != "" {
		fmt.Fprintf(out, "Avatar:    %s\n", user.AvatarURL)
	}
}
