// Package cmd provides the CLI commands for quantity.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"quantity-measurement/core/demo"
	"quantity-measurement/core/output"
	"quantity-measurement/internal/config"
	"quantity-measurement/internal/logging"
)

const version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quantity",
	Short: "Compare, convert and add physical quantities",
	Long: `quantity works with weights, lengths and volumes tagged with a unit.

Quantities compare equal when they describe the same amount, whatever
their units. Sums are expressed in the first operand's unit unless a
target unit is given.

Examples:
  quantity compare 1000 GRAM 1 KILOGRAM
  quantity convert 1000 GRAM KILOGRAM
  quantity add 1 FEET 12 INCHES --target YARDS
  quantity run scenarios/demo.hcl --format json`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.quantity-measurement.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	cfg, path, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	logging.Debug("configuration loaded",
		zap.String("path", path),
		zap.String("format", cfg.Output.DefaultFormat),
		zap.Int32("precision", cfg.Output.Precision))
}

// loadConfig reads --config, or the default file when it can be located.
// Without a home directory the built-in defaults are used.
func loadConfig() (*config.Config, string, error) {
	path := cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Default(), "", nil
		}
	}
	cfg, err := config.Load(path)
	return cfg, path, err
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "quantity version %s\n", version)
	},
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

// render writes a report in the requested format, falling back to the
// configured default.
func render(w io.Writer, format string, report *demo.Report) error {
	cfg := config.Get()
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	f, err := output.New(output.Format(format), output.Options{
		Precision: cfg.Output.Precision,
		NoColor:   cfg.Output.NoColor,
		Verbose:   verbose,
	})
	if err != nil {
		return err
	}
	return f.Render(w, report)
}

// failed turns step failures into a command error so the exit status is 1.
func failed(report *demo.Report) error {
	if report.Failures == 0 {
		return nil
	}
	for _, r := range report.Results {
		if r.Failed() {
			return r.Error
		}
	}
	return nil
}
