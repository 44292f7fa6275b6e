package cli

import (
	"io"
	"log/slog"

	"github.com/alexanderramin/fuelplan/internal/config"
	"github.com/alexanderramin/fuelplan/internal/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// App holds what the CLI commands need.
type App struct {
	Planner service.PlannerService
	Config  *config.Config
	// Logger is passed to the HTTP server. Nil discards.
	Logger *slog.Logger
	// DefaultFormat applies when --format is not given.
	DefaultFormat OutputFormat
}

// NewRootCmd creates the top-level "fuelplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	format := app.DefaultFormat
	if format == "" {
		format = FormatJSON
	}

	root := &cobra.Command{
		Use:           "fuelplan",
		Short:         "Daily sports-nutrition targets and fueling timelines",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(service.WithRequestID(cmd.Context(), uuid.NewString()))
		},
	}
	root.PersistentFlags().VarP(&format, "format", "o", "Output format: table, json or yaml")

	root.AddCommand(
		newTargetsCmd(app, &format),
		newSkeletonCmd(app, &format),
		newPlanCmd(app, &format),
		newVerifyCmd(app, &format),
		newServeCmd(app),
	)

	return root
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
