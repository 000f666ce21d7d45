package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"paysim/internal/domain/payroll"
	"paysim/internal/domain/reports"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

type options struct {
	percentage    int
	minPercentage int
	maxPercentage int
	levyBasis     string
	legacyRange   bool
	regime        string
	format        string
	pdfPath       string
}

// NewRootCommand builds the simulator command tree writing to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "simulator",
		Short:         "Compare apprentice gross and net pay under the 2024 and 2025 rules",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentFlags().IntVar(&opts.minPercentage, "min-percentage", payroll.DefaultMinPercentage, "lowest accepted percentage of the reference wage")
	root.PersistentFlags().IntVar(&opts.maxPercentage, "max-percentage", payroll.DefaultMaxPercentage, "highest accepted percentage of the reference wage")
	root.PersistentFlags().StringVar(&opts.levyBasis, "levy-basis", payroll.BasisExcess, "amount the 2025 CSG/CRDS levy applies to: excess or gross")
	root.PersistentFlags().BoolVar(&opts.legacyRange, "legacy-range", false, fmt.Sprintf("cap the percentage at %d like the first version of the tool", payroll.LegacyMaxPercentage))

	compare := &cobra.Command{
		Use:   "compare",
		Short: "Print the contribution table for one pay rate",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd.OutOrStdout(), opts)
		},
	}
	compare.Flags().IntVarP(&opts.percentage, "percentage", "p", payroll.DefaultPercentage, "pay rate as a percentage of the reference wage")
	compare.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format: table, csv or json")
	compare.Flags().StringVar(&opts.pdfPath, "pdf", "", "also write a PDF report to this path")

	compute := &cobra.Command{
		Use:   "compute",
		Short: "Print the pay breakdown of a single regime",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompute(cmd.OutOrStdout(), opts)
		},
	}
	compute.Flags().StringVarP(&opts.regime, "regime", "r", payroll.RegimeKey2025, "regime key: 2024 or 2025")
	compute.Flags().IntVarP(&opts.percentage, "percentage", "p", payroll.DefaultPercentage, "pay rate as a percentage of the reference wage")
	compute.Flags().StringVarP(&opts.format, "format", "f", formatTable, "output format: table, csv or json")

	regimes := &cobra.Command{
		Use:   "regimes",
		Short: "List the regime constants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc, err := newCalculator(opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), reports.NewRegimeViews(calc.Regimes()))
		},
	}

	root.AddCommand(compare, compute, regimes)
	return root
}

func newCalculator(opts *options) (*payroll.Calculator, error) {
	bounds := payroll.Bounds{Min: opts.minPercentage, Max: opts.maxPercentage}
	if opts.legacyRange {
		bounds.Max = min(bounds.Max, payroll.LegacyMaxPercentage)
	}
	return payroll.NewDefaultCalculator(bounds, opts.levyBasis)
}

func runCompare(out io.Writer, opts *options) error {
	calc, err := newCalculator(opts)
	if err != nil {
		return err
	}
	comparison, err := calc.Compare(opts.percentage)
	if err != nil {
		return err
	}

	table := reports.BuildTable(comparison)
	switch strings.ToLower(opts.format) {
	case formatTable:
		if _, err := fmt.Fprintf(out, "Pay rate: %d%% of the reference wage\n\n", comparison.Percentage); err != nil {
			return err
		}
		if err := reports.WriteText(out, table); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "\nContribution difference 2025 - 2024: %s\nNet difference 2025 - 2024: %s\n",
			reports.FormatCurrency(comparison.ContributionDelta()), reports.FormatCurrency(comparison.NetDelta())); err != nil {
			return err
		}
	case formatCSV:
		if err := reports.WriteCSV(out, table); err != nil {
			return err
		}
	case formatJSON:
		if err := writeJSON(out, reports.NewSimulationView(comparison, calc.Bounds())); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}

	if opts.pdfPath != "" {
		if err := writePDFFile(opts.pdfPath, comparison); err != nil {
			return err
		}
	}
	return nil
}

func runCompute(out io.Writer, opts *options) error {
	calc, err := newCalculator(opts)
	if err != nil {
		return err
	}
	regime, err := calc.Regime(opts.regime)
	if err != nil {
		return err
	}
	result, err := calc.Compute(opts.percentage, regime)
	if err != nil {
		return err
	}

	switch strings.ToLower(opts.format) {
	case formatTable:
		if _, err := fmt.Fprintf(out, "Pay rate: %d%% of the reference wage, %s rules\n\n", result.Percentage, result.Label); err != nil {
			return err
		}
		return reports.WriteText(out, reports.BuildResultTable(result))
	case formatCSV:
		return reports.WriteCSV(out, reports.BuildResultTable(result))
	case formatJSON:
		return writeJSON(out, reports.NewResultView(result))
	}
	return fmt.Errorf("unknown format %q", opts.format)
}

func writePDFFile(path string, comparison payroll.Comparison) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create pdf: %w", err)
	}
	if err := reports.WritePDF(f, comparison); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(out io.Writer, value any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
