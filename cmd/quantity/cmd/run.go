// Package cmd - scenario commands
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quantity-measurement/core/demo"
	"quantity-measurement/core/scenario"
	"quantity-measurement/internal/logging"
)

var runFormat string

var runCmd = &cobra.Command{
	Use:   "run <file.hcl>",
	Short: "Run a scenario script",
	Long: `Run the compare, convert and add blocks of an HCL scenario file in order.

Example file:
  compare "grams_vs_kilograms" {
    first  = "1000 GRAM"
    second = "1 KILOGRAM"
  }

  add "feet_plus_inches" {
    first  = "1 FEET"
    second = "12 INCHES"
    target = "YARDS"
  }

Failed steps are reported and the command exits with status 1.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := scenario.Load(args[0])
		if err != nil {
			return err
		}
		return runScenario(cmd, file)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in demonstration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenario(cmd, scenario.Builtin())
	},
}

func init() {
	for _, c := range []*cobra.Command{runCmd, demoCmd} {
		c.Flags().StringVarP(&runFormat, "format", "f", "", "output format (cli, json)")
		rootCmd.AddCommand(c)
	}
}

func runScenario(cmd *cobra.Command, file *scenario.File) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logging.Info("running scenario",
		zap.String("scenario", file.Name),
		zap.Int("steps", len(file.Steps())))

	report, err := demo.NewRunner(logging.With(zap.String("scenario", file.Name))).Run(ctx, file)
	if err != nil {
		return err
	}
	if err := render(cmd.OutOrStdout(), runFormat, report); err != nil {
		return err
	}
	return failed(report)
}
