package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/unitful/internal/config"
	"github.com/conneroisu/unitful/internal/registry"
)

var unitsCmd = &cobra.Command{
	Use:     "units",
	Aliases: []string{"u", "list"},
	Short:   "List all registered units",
	Long: `List every unit the registry knows: catalog name, symbol, the
dimension vector rendered as a unit expression, owning system, and
description.

Examples:
  unitful units                   # List units in table format
  unitful units -f json           # Output as JSON
  unitful units -f yaml           # Output as YAML`,
	RunE: runUnits,
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}

func runUnits(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validateFormat(cfg.Output.Format, []string{"table", "json", "yaml"}); err != nil {
		return err
	}

	reg, err := newRegistry(cfg)
	if err != nil {
		return err
	}
	units := reg.GetAll()

	switch cfg.Output.Format {
	case "json":
		return outputUnitsJSON(units)
	case "yaml":
		return outputUnitsYAML(units)
	default:
		return outputUnitsTable(units)
	}
}

type unitRow struct {
	Name        string `json:"name" yaml:"name"`
	Symbol      string `json:"symbol" yaml:"symbol"`
	Dimension   string `json:"dimension" yaml:"dimension"`
	Vector      string `json:"vector" yaml:"vector"`
	System      string `json:"system" yaml:"system"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func unitRows(units []*registry.UnitInfo) []unitRow {
	rows := make([]unitRow, 0, len(units))
	for _, u := range units {
		rows = append(rows, unitRow{
			Name:        u.Name,
			Symbol:      u.Symbol,
			Dimension:   u.Tag.String(),
			Vector:      u.Tag.Vector().String(),
			System:      u.System,
			Description: u.Description,
		})
	}

	return rows
}

func outputUnitsTable(units []*registry.UnitInfo) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "NAME\tSYMBOL\tDIMENSION\tSYSTEM\tDESCRIPTION")
	for _, row := range unitRows(units) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			row.Name, row.Symbol, row.Dimension, row.System, row.Description)
	}

	return nil
}

func outputUnitsJSON(units []*registry.UnitInfo) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(unitRows(units))
}

func outputUnitsYAML(units []*registry.UnitInfo) error {
	return yaml.NewEncoder(os.Stdout).Encode(unitRows(units))
}
