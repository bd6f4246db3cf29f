// Package cmd - single-operation commands
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quantity-measurement/core/demo"
	"quantity-measurement/core/quantity"
	"quantity-measurement/core/scenario"
	"quantity-measurement/internal/logging"
)

var (
	opFormat  string
	addTarget string
)

var compareCmd = &cobra.Command{
	Use:   "compare <value> <unit> <value> <unit>",
	Short: "Check whether two quantities describe the same amount",
	Long: `Compare two quantities after normalizing both units.

Quantities of different kinds are never equal.

Examples:
  quantity compare 1000 GRAM 1 KILOGRAM
  quantity compare 1 FEET 12 INCHES`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, scenario.Step{
			Name:      "compare",
			Operation: scenario.OpCompare,
			First:     args[0] + " " + args[1],
			Second:    args[2] + " " + args[3],
		})
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from> <to>",
	Short: "Convert a value between units of the same kind",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := quantity.ParseValue(args[0])
		if err != nil {
			return err
		}
		return runSingle(cmd, scenario.Step{
			Name:      "convert",
			Operation: scenario.OpConvert,
			Value:     value,
			From:      args[1],
			To:        args[2],
		})
	},
}

var addCmd = &cobra.Command{
	Use:   "add <value> <unit> <value> <unit>",
	Short: "Add two quantities of the same kind",
	Long: `Add two quantities. The sum uses the first operand's unit unless
--target names another unit of the same kind.

Examples:
  quantity add 1 FEET 12 INCHES
  quantity add 1 KILOGRAM 2.20462 POUND --target GRAM`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSingle(cmd, scenario.Step{
			Name:      "add",
			Operation: scenario.OpAdd,
			First:     args[0] + " " + args[1],
			Second:    args[2] + " " + args[3],
			Target:    addTarget,
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{compareCmd, convertCmd, addCmd} {
		c.Flags().StringVarP(&opFormat, "format", "f", "", "output format (cli, json)")
		rootCmd.AddCommand(c)
	}
	addCmd.Flags().StringVarP(&addTarget, "target", "t", "", "unit of the sum (default: first operand's unit)")
}

func runSingle(cmd *cobra.Command, step scenario.Step) error {
	file, err := scenario.NewFile(step.Name, step)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logging.Debug("running operation", zap.String("operation", string(step.Operation)))

	report, err := demo.NewRunner(logging.Logger).Run(ctx, file)
	if err != nil {
		return err
	}
	if err := render(cmd.OutOrStdout(), opFormat, report); err != nil {
		return err
	}
	return failed(report)
}
