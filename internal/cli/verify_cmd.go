package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/fuelplan/internal/app"
	"github.com/alexanderramin/fuelplan/internal/cli/formatter"
	"github.com/alexanderramin/fuelplan/internal/domain"
	"github.com/alexanderramin/fuelplan/internal/importer"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// loadSkeleton reads a skeleton written by "skeleton" or "plan". Plan output
// carries the skeleton under a "skeleton" key.
func loadSkeleton(path string) (*domain.Skeleton, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var wrapped struct {
		Skeleton *domain.Skeleton `json:"skeleton" yaml:"skeleton"`
	}
	var sk domain.Skeleton

	unmarshal := json.Unmarshal
	if importer.FormatForPath(path) == importer.FormatYAML {
		unmarshal = yaml.Unmarshal
	}
	if err := unmarshal(data, &wrapped); err == nil && wrapped.Skeleton != nil {
		return wrapped.Skeleton, nil
	}
	if err := unmarshal(data, &sk); err != nil {
		return nil, fmt.Errorf("parsing skeleton: %w", err)
	}
	return &sk, nil
}

func readNamed(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func newVerifyCmd(a *App, format *OutputFormat) *cobra.Command {
	var skeletonPath, namedPath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a named timeline against its skeleton",
		RunE: func(cmd *cobra.Command, args []string) error {
			if skeletonPath == "" || namedPath == "" {
				return fmt.Errorf("--skeleton and --named are required")
			}
			sk, err := loadSkeleton(skeletonPath)
			if err != nil {
				return err
			}
			named, err := readNamed(namedPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			report, verr := a.Planner.VerifyNaming(cmd.Context(), app.VerifyRequest{Skeleton: sk, Named: named})
			if report != nil {
				if err := render(cmd.OutOrStdout(), *format, report, func() string {
					return formatter.FormatNamingReport(report)
				}); err != nil {
					return err
				}
			}
			return verr
		},
	}

	cmd.Flags().StringVar(&skeletonPath, "skeleton", "", "Skeleton or plan output file (JSON or YAML)")
	cmd.Flags().StringVar(&namedPath, "named", "", "Naming response text file, or - for stdin")
	return cmd
}
