// Package cmd - units command
package cmd

import (
	"github.com/spf13/cobra"

	"quantity-measurement/core/ui"
	"quantity-measurement/core/units"
	"quantity-measurement/internal/config"
)

var unitsKind string

var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List the supported units",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		kinds := units.Kinds()
		if unitsKind != "" {
			k, err := units.ParseKind(unitsKind)
			if err != nil {
				return err
			}
			kinds = []units.Kind{k}
		}

		w := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
		table := w.NewTable("UNIT", "KIND")
		for _, k := range kinds {
			for _, d := range units.ByKind(k) {
				table.AddRow(d.Name(), k.String())
			}
		}
		table.Render()
		return nil
	},
}

func init() {
	unitsCmd.Flags().StringVarP(&unitsKind, "kind", "k", "", "only list units of this kind (weight, length, volume)")
	rootCmd.AddCommand(unitsCmd)
}
