package entitlement

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/pawsit/adapter/cli"
	"github.com/felixgeelhaar/pawsit/internal/entitlement/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var checkUser string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a user's access",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.EntitlementService == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Entitlement check requires database connection.")
			return nil
		}

		if checkUser == "" {
			return fmt.Errorf("--user is required")
		}
		userID, err := uuid.Parse(checkUser)
		if err != nil {
			return fmt.Errorf("invalid user ID: %w", err)
		}

		result := app.EntitlementService.Check(cmd.Context(), userID)

		out := cmd.OutOrStdout()
		if !result.Entitled {
			fmt.Fprintf(out, "Not entitled (%s)\n", result.State)
			return nil
		}

		fmt.Fprintf(out, "Entitled (%s)\n", result.State)
		if result.ExpiresAt != nil {
			fmt.Fprintf(out, "Expires: %s\n", result.ExpiresAt.UTC().Format(time.RFC3339))
		}
		if result.State == domain.AccessTrial {
			fmt.Fprintf(out, "Trial days remaining: %d\n", result.TrialDaysRemaining)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkUser, "user", "", "user ID (required)")
}
