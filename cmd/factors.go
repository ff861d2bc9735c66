package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/carbon-cli/internal/factors"
)

var factorFlags struct {
	source      string
	category    string
	fuel        string
	region      string
	unit        string
	limit       int
	factorsFile string
	asJSON      bool
}

var factorsCmd = &cobra.Command{
	Use:   "factors [query]",
	Short: "Search the emission factor database",
	Long:  "Searches the embedded factor databases (EPA, eGRID, DEFRA, Ember, USEEIO, EXIOBASE) plus any custom factors file.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := initRegistry(factorFlags.factorsFile)
		if err != nil {
			return err
		}

		src, ok := factors.ParseSource(factorFlags.source)
		if !ok {
			return eris.Errorf("unknown source %q", factorFlags.source)
		}

		var text string
		if len(args) > 0 {
			text = args[0]
		}

		results := reg.Search(factors.Query{
			Text:         text,
			Source:       src,
			Category:     factorFlags.category,
			FuelType:     factorFlags.fuel,
			Region:       factorFlags.region,
			ActivityUnit: factorFlags.unit,
			Limit:        factorFlags.limit,
		})
		if len(results) == 0 {
			fmt.Fprintln(os.Stderr, "No factors found.")
			return nil
		}

		if factorFlags.asJSON {
			return writeIndentedJSON(os.Stdout, results)
		}
		formatFactorsTable(os.Stdout, results)
		return nil
	},
}

func formatFactorsTable(out io.Writer, results []*factors.Factor) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tSOURCE\tCATEGORY\tUNIT\tKG CO2E/UNIT")
	for _, f := range results {
		name := f.Name
		if len(name) > 40 {
			name = name[:37] + "..."
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			f.ID, name, f.Source, f.Category, f.ActivityUnit, formatFactorValue(f))
	}
	_ = w.Flush()
}

// formatFactorValue shows the aggregate CO2e value when the factor has
// one, and the per-gas split otherwise.
func formatFactorValue(f *factors.Factor) string {
	if f.HasCO2e || f.CO2e > 0 {
		return fmt.Sprintf("%.4f", f.CO2e)
	}
	parts := make([]string, 0, 3)
	if f.CO2 > 0 {
		parts = append(parts, fmt.Sprintf("co2=%.4f", f.CO2))
	}
	if f.CH4 > 0 {
		parts = append(parts, fmt.Sprintf("ch4=%.6f", f.CH4))
	}
	if f.N2O > 0 {
		parts = append(parts, fmt.Sprintf("n2o=%.6f", f.N2O))
	}
	return strings.Join(parts, " ")
}

func init() {
	f := factorsCmd.Flags()
	f.StringVar(&factorFlags.source, "source", "", "filter by source (epa_hub, egrid, defra, ember, useeio, exiobase, custom)")
	f.StringVar(&factorFlags.category, "category", "", "filter by category")
	f.StringVar(&factorFlags.fuel, "fuel", "", "filter by fuel type")
	f.StringVar(&factorFlags.region, "region", "", "filter by region")
	f.StringVar(&factorFlags.unit, "unit", "", "filter by activity unit")
	f.IntVar(&factorFlags.limit, "limit", 20, "max results")
	f.StringVar(&factorFlags.factorsFile, "factors-file", "", "custom factors YAML file")
	f.BoolVar(&factorFlags.asJSON, "json", false, "print results as JSON")
	rootCmd.AddCommand(factorsCmd)
}
