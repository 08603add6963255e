package availability

import (
	"fmt"

	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Cmd is the availability command group.
var Cmd = &cobra.Command{
	Use:   "availability",
	Short: "Inspect sitter availability",
	Long: `Show a sitter's occupied dates and check whether a date range can be booked.

Dates are YYYY-MM-DD calendar days. Windows default to the configured
number of days starting today.`,
}

func init() {
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(checkCmd)
	Cmd.AddCommand(calendarCmd)
}

func parseSitterID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, fmt.Errorf("--sitter is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid sitter ID: %w", err)
	}
	return id, nil
}

func parseOptionalDate(raw, flag string) (*domain.Date, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s: %w", flag, err)
	}
	return &d, nil
}
