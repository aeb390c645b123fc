package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/unitful/internal/config"
	"github.com/conneroisu/unitful/si"
	"github.com/conneroisu/unitful/unit"
)

var systemsCmd = &cobra.Command{
	Use:   "systems",
	Short: "List available unit systems",
	Long: `List the built-in SI system and every system defined in the
configuration, with base dimensions and exponent range.`,
	RunE: runSystems,
}

func init() {
	rootCmd.AddCommand(systemsCmd)
}

type systemRow struct {
	Name       string   `json:"name" yaml:"name"`
	Dimensions []string `json:"dimensions" yaml:"dimensions"`
	Low        int8     `json:"low" yaml:"low"`
	High       int8     `json:"high" yaml:"high"`
	Source     string   `json:"source" yaml:"source"`
}

func runSystems(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	rows := []systemRow{systemToRow(si.System, "builtin")}
	for _, def := range cfg.Systems {
		sys, err := def.Build()
		if err != nil {
			return fmt.Errorf("building system %q: %w", def.Name, err)
		}
		rows = append(rows, systemToRow(sys, "config"))
	}

	switch cfg.Output.Format {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rows)
	case "yaml":
		return yaml.NewEncoder(os.Stdout).Encode(rows)
	default:
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		defer w.Flush()

		fmt.Fprintln(w, "NAME\tDIMENSIONS\tRANGE\tSOURCE")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t[%d, %d]\t%s\n",
				row.Name, strings.Join(row.Dimensions, " "), row.Low, row.High, row.Source)
		}
		return nil
	}
}

func systemToRow(sys *unit.System, source string) systemRow {
	bounds := sys.Bounds()

	return systemRow{
		Name:       sys.Name(),
		Dimensions: sys.Dimensions(),
		Low:        bounds.Low,
		High:       bounds.High,
		Source:     source,
	}
}
