package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/felixgeelhaar/pawsit/adapter/api"
	"github.com/spf13/cobra"
)

var (
	serveAddr            string
	serveShutdownTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.ComputeOccupancyHandler == nil || app.EntitlementService == nil {
			return fmt.Errorf("serve requires database connection")
		}

		server := NewAPIServer(app, serveAddr)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-cmd.Context().Done():
		}

		ctx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
		defer cancel()
		return server.Shutdown(ctx)
	},
}

// NewAPIServer builds the HTTP API over the app's handlers. An empty addr
// uses the app's configured address.
func NewAPIServer(app *App, addr string) *api.Server {
	cfg := api.DefaultServerConfig()
	switch {
	case addr != "":
		cfg.Addr = addr
	case app.APIAddr != "":
		cfg.Addr = app.APIAddr
	}

	availability := api.NewAvailabilityHandler(api.AvailabilityHandlerConfig{
		ComputeOccupancy: app.ComputeOccupancyHandler,
		CheckRange:       app.CheckRangeHandler,
		GetCalendar:      app.GetCalendarHandler,
		Logger:           app.Logger,
	})
	entitlement := api.NewEntitlementHandler(app.EntitlementService, app.Logger)

	return api.NewServer(cfg, availability, entitlement, app.Health, app.Logger).WithMetrics(app.Metrics)
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from API_ADDR)")
	serveCmd.Flags().DurationVar(&serveShutdownTimeout, "shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
	rootCmd.AddCommand(serveCmd)
}
