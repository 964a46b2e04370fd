package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/storefront/internal/api"
	"github.com/alexisbeaulieu97/storefront/internal/forms"
	"github.com/alexisbeaulieu97/storefront/internal/state"
	apperrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

// Terminal seams, replaced in tests.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

type loginOptions struct {
	username string
	password string
}

func newLoginCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the gateway",
		Long:  `Sign in with a gateway account. The password is prompted for without echo when --password is omitted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "Account username")
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "Account password")

	return cmd
}

func runLogin(cmd *cobra.Command, rootFlags *rootFlags, opts *loginOptions) error {
	password := opts.password
	if password == "" {
		prompted, err := promptPassword(cmd)
		if err != nil {
			return newCommandError("log in", "reading password", err, "Pass --password or run from an interactive terminal.")
		}
		password = prompted
	}

	creds, err := forms.Login(opts.username, password)
	if err != nil {
		return newCommandError("log in", "validating credentials", err, "Provide both --username and a password.")
	}

	return withApp(cmd, rootFlags, "log in", func(ctx context.Context, app *App) error {
		session := app.Store.State().Session
		switch {
		case session.IsAuthenticated:
			return newCommandError("log in", "checking session", errors.New("already signed in"), "Run 'storefront logout' first.")
		case session.IsSkipped:
			// Leaving guest mode goes through the sign-in gate.
			app.Store.Logout()
		}

		if err := app.Store.Login(ctx, app.Client, creds); err != nil {
			return newCommandError("log in", "authenticating with the gateway", errors.New(apperrors.Reason(err)), "Check your username and password and try again.")
		}

		user := app.Store.State().Session.User
		fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.FullName(), user.Username)
		return nil
	})
}

func promptPassword(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return "", errors.New("password is required")
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
	raw, err := readPassword(fd)
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func newSkipCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "skip",
		Short: "Browse as a guest without signing in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootFlags, "skip login", func(_ context.Context, app *App) error {
				app.Store.Skip()
				fmt.Fprintln(cmd.OutOrStdout(), "Browsing as guest")
				return nil
			})
		},
	}
}

func newLogoutCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootFlags, "log out", func(_ context.Context, app *App) error {
				app.Store.Logout()
				fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
				return nil
			})
		},
	}
}

type whoamiOptions struct {
	jsonOutput bool
	remote     bool
}

func newWhoamiCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &whoamiOptions{}

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, rootFlags, "show session", func(ctx context.Context, app *App) error {
				return runWhoami(ctx, cmd, app, opts)
			})
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output the session as JSON")
	cmd.Flags().BoolVar(&opts.remote, "remote", false, "Fetch the profile from the gateway instead of the stored copy")

	return cmd
}

type whoamiPayload struct {
	Status         string             `json:"status"`
	User           *state.UserProfile `json:"user,omitempty"`
	TokenExpiresAt *time.Time         `json:"token_expires_at,omitempty"`
	TokenExpired   bool               `json:"token_expired,omitempty"`
	Theme          string             `json:"theme"`
}

func runWhoami(ctx context.Context, cmd *cobra.Command, app *App, opts *whoamiOptions) error {
	st := app.Store.State()
	session := st.Session

	payload := whoamiPayload{
		Status: sessionStatus(session),
		User:   session.User,
		Theme:  st.Theme.Palette.Name,
	}
	if !session.IsAuthenticated {
		payload.User = nil
	}
	now := time.Now()
	if exp, ok := api.TokenExpiry(session.Token); ok && session.IsAuthenticated {
		payload.TokenExpiresAt = &exp
		payload.TokenExpired = api.TokenExpired(session.Token, now)
	}

	if opts.remote {
		if !session.IsAuthenticated {
			return newCommandError("show session", "fetching remote profile", errors.New("not signed in"), "Run 'storefront login' first.")
		}
		if payload.TokenExpired {
			return newCommandError("show session", "fetching remote profile", errors.New("session token has expired"), "Run 'storefront logout' and then 'storefront login'.")
		}
		user, err := app.Client.CurrentUser(ctx, session.Token)
		if err != nil {
			return newCommandError("show session", "fetching remote profile", errors.New(apperrors.Reason(err)), "Your session may have expired. Run 'storefront login' again.")
		}
		profile := user.Profile()
		payload.User = &profile
	}

	if opts.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), payload)
	}

	out := cmd.OutOrStdout()
	switch payload.Status {
	case "authenticated":
		u := payload.User
		fmt.Fprintf(out, "Signed in as %s (%s)\n", u.Username, valueOrFallback(u.FullName(), "(no name)"))
		fmt.Fprintf(out, "Email:  %s\n", valueOrFallback(u.Email, "(none)"))
		fmt.Fprintf(out, "Gender: %s\n", valueOrFallback(u.Gender, "Not specified"))
		if payload.TokenExpiresAt != nil {
			fmt.Fprintf(out, "Token:  %s\n", formatExpiry(*payload.TokenExpiresAt, now))
		}
	case "guest":
		fmt.Fprintln(out, "Browsing as guest")
	default:
		fmt.Fprintln(out, "Not signed in")
	}
	fmt.Fprintf(out, "Theme:  %s\n", payload.Theme)
	return nil
}

func sessionStatus(s state.SessionState) string {
	switch {
	case s.IsAuthenticated:
		return "authenticated"
	case s.IsSkipped:
		return "guest"
	default:
		return "signed_out"
	}
}

func formatExpiry(exp, now time.Time) string {
	if !exp.After(now) {
		return fmt.Sprintf("expired %s", exp.Format(time.RFC3339))
	}
	return fmt.Sprintf("expires %s (in %s)", exp.Format(time.RFC3339), exp.Sub(now).Round(time.Minute))
}

func valueOrFallback(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
