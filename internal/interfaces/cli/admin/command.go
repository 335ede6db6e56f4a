// Package admin holds operator commands that have no HTTP route: promoting
// users and minting tokens for scripts.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/garagehq/shopapi/internal/application/user/usecases"
	"github.com/garagehq/shopapi/internal/infrastructure/auth"
	"github.com/garagehq/shopapi/internal/infrastructure/repository"
	"github.com/garagehq/shopapi/internal/interfaces/cli/cliutil"
	"github.com/garagehq/shopapi/internal/shared/authorization"
)

var (
	env       string
	configDir string
)

func addEnvFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configDir, "config", "c", "", "Directory holding config.yaml (default: ./configs)")
}

// NewUserCommand returns "user" with its set-role subcommand.
func NewUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	addEnvFlags(cmd)

	var email, role string
	setRole := &cobra.Command{
		Use:   "set-role",
		Short: "Change the role of a user",
		Long:  `Change the role of the user with the given email to user, mechanic or admin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := cliutil.Open(env, configDir)
			if err != nil {
				return err
			}
			defer rt.Close()

			uc := usecases.NewSetUserRoleUseCase(repository.NewUserRepository(rt.DB, rt.Log), rt.Log)
			u, err := uc.Execute(context.Background(), usecases.SetUserRoleCommand{Email: email, Role: role})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "User %d (%s) now has role %s\n", u.ID, u.Email, u.Role)
			return nil
		},
	}
	setRole.Flags().StringVar(&email, "email", "", "Email of the user (required)")
	setRole.Flags().StringVar(&role, "role", "", "New role: user, mechanic or admin (required)")
	_ = setRole.MarkFlagRequired("email")
	_ = setRole.MarkFlagRequired("role")

	cmd.AddCommand(setRole)
	return cmd
}

// NewTokenCommand returns "token" with its issue subcommand.
func NewTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Bearer token tools",
	}
	addEnvFlags(cmd)

	var (
		subject uint
		role    string
		ttl     time.Duration
	)
	issue := &cobra.Command{
		Use:   "issue",
		Short: "Sign a bearer token for a user id",
		Long:  `Sign a token with the configured secret. A zero --ttl uses auth.jwt.token_expires_in.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := cliutil.LoadConfig(env, configDir)
			if err != nil {
				return err
			}

			token, err := IssueToken(auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.TTL()), subject, role, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	issue.Flags().UintVar(&subject, "subject", 0, "User id the token is issued for (required)")
	issue.Flags().StringVar(&role, "role", authorization.RoleUser.String(), "Role claim: user, mechanic or admin")
	issue.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime, e.g. 1h")
	_ = issue.MarkFlagRequired("subject")

	cmd.AddCommand(issue)
	return cmd
}

// IssueToken validates the inputs and signs a token.
func IssueToken(svc *auth.JWTService, subject uint, role string, ttl time.Duration) (string, error) {
	if subject == 0 {
		return "", fmt.Errorf("subject must be a positive user id")
	}
	r := authorization.UserRole(role)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown role %q", role)
	}
	return svc.Issue(subject, r, ttl)
}
