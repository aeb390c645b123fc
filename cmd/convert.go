package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/unitful/internal/config"
	"github.com/conneroisu/unitful/unit"
)

var (
	convertFrom string
	convertTo   string
)

var convertCmd = &cobra.Command{
	Use:     "convert <value>",
	Aliases: []string{"c"},
	Short:   "Convert a value between two named units",
	Long: `Convert a value between two registered units sharing the same
physical dimension. Units are looked up by catalog name or symbol;
prefixed symbols like mm, us or kW resolve through the prefix table.
Conversion between different dimensions is rejected.

Examples:
  unitful convert 1500 --from W --to kW    # 1.5
  unitful convert 5 --from m --to mm       # 5000
  unitful convert 3 --from m --to s        # dimension mismatch`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source unit name or symbol")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target unit name or symbol")
	_ = convertCmd.MarkFlagRequired("from")
	_ = convertCmd.MarkFlagRequired("to")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := newLogger(cfg).WithComponent("convert")

	if err := validateFormat(cfg.Output.Format, convertFormats); err != nil {
		return err
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[0], err)
	}

	reg, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	fromTag, err := reg.Resolve(convertFrom)
	if err != nil {
		return err
	}
	toTag, err := reg.Resolve(convertTo)
	if err != nil {
		return err
	}

	logger.Debug(cmd.Context(), "resolved tags",
		"from", fromTag.String(), "to", toTag.String())

	out, err := unit.New(value, fromTag).Convert(toTag)
	if err != nil {
		logger.Error(cmd.Context(), err, "conversion rejected")
		return err
	}

	return writeConversion(os.Stdout, cfg.Output.Format, conversionResult{
		Value:     value,
		From:      convertFrom,
		To:        convertTo,
		Result:    out.Value(),
		Dimension: fromTag.String(),
	})
}

// convertFormats lists the output formats convert accepts, matching
// the global --format help text.
var convertFormats = []string{"table", "json", "yaml"}

type conversionResult struct {
	Value     float64 `json:"value" yaml:"value"`
	From      string  `json:"from" yaml:"from"`
	To        string  `json:"to" yaml:"to"`
	Result    float64 `json:"result" yaml:"result"`
	Dimension string  `json:"dimension" yaml:"dimension"`
}

func writeConversion(w io.Writer, format string, res conversionResult) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(res)
	case "yaml":
		return yaml.NewEncoder(w).Encode(res)
	default:
		_, err := fmt.Fprintf(w, "%g %s = %g %s\n", res.Value, res.From, res.Result, res.To)

		return err
	}
}
