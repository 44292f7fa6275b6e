package cli

import (
	"fmt"

	"github.com/alexanderramin/fuelplan/internal/app"
	"github.com/alexanderramin/fuelplan/internal/cli/formatter"
	"github.com/alexanderramin/fuelplan/internal/importer"
	"github.com/spf13/cobra"
)

func loadRequest(path string) (*app.SkeletonRequest, error) {
	if path == "" {
		return nil, fmt.Errorf("--file is required")
	}
	plan, err := importer.LoadPlanFile(path)
	if err != nil {
		return nil, err
	}
	return importer.Convert(plan)
}

func newTargetsCmd(a *App, format *OutputFormat) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "targets",
		Short: "Compute daily macro, hydration and sodium targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(file)
			if err != nil {
				return err
			}
			targets, err := a.Planner.ComputeTargets(cmd.Context(), app.TargetsRequest{
				Athlete:  req.Athlete,
				Workouts: req.Workouts,
			})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), *format, targets, func() string {
				return formatter.FormatTargets(targets)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Plan file (JSON or YAML)")
	return cmd
}

func newSkeletonCmd(a *App, format *OutputFormat) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "skeleton",
		Short: "Lay out the day's fueling timeline",
		Long: "Lay out the day's fueling timeline. Targets in the plan file are used\n" +
			"as given; without them they are computed first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(file)
			if err != nil {
				return err
			}
			sk, err := a.Planner.GenerateSkeleton(cmd.Context(), *req)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), *format, sk, func() string {
				return formatter.FormatSkeleton(sk)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Plan file (JSON or YAML)")
	return cmd
}

func newPlanCmd(a *App, format *OutputFormat) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute targets and the timeline in one step",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := loadRequest(file)
			if err != nil {
				return err
			}
			resp, err := a.Planner.Plan(cmd.Context(), *req)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), *format, resp, func() string {
				return formatter.Header("Targets") + "\n" +
					formatter.FormatTargets(resp.Targets) + "\n" +
					formatter.Header("Timeline") + "\n" +
					formatter.FormatSkeleton(resp.Skeleton)
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Plan file (JSON or YAML)")
	return cmd
}
