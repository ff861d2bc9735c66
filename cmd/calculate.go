package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/carbon-cli/internal/engine"
)

var calcFlags struct {
	scope          string
	scope1Category string
	scope3Category int
	quantity       float64
	unit           string
	fuel           string
	country        string
	gridSubregion  string
	refrigerant    string
	naics          string
	transportMode  string
	wasteType      string
	disposal       string
	customFactor   float64
	gwpAssessment  string
	factorsFile    string
	asJSON         bool
}

var calculateCmd = &cobra.Command{
	Use:   "calculate",
	Short: "Calculate emissions for a single activity",
	Long:  "Builds one activity from flags, resolves an emission factor, and prints the calculated results.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("cli"); err != nil {
			return err
		}

		reg, err := initRegistry(calcFlags.factorsFile)
		if err != nil {
			return err
		}
		calc, err := initCalculator(reg, calcFlags.gwpAssessment)
		if err != nil {
			return err
		}

		a := engine.Activity{
			Scope:           engine.Scope(calcFlags.scope),
			Scope1Category:  engine.Scope1Category(calcFlags.scope1Category),
			Scope3Category:  calcFlags.scope3Category,
			Quantity:        calcFlags.quantity,
			Unit:            calcFlags.unit,
			FuelType:        calcFlags.fuel,
			Country:         calcFlags.country,
			GridSubregion:   calcFlags.gridSubregion,
			RefrigerantType: calcFlags.refrigerant,
			NAICSCode:       calcFlags.naics,
			TransportMode:   calcFlags.transportMode,
			WasteType:       calcFlags.wasteType,
			DisposalMethod:  calcFlags.disposal,
		}
		if calcFlags.naics != "" && a.Scope == engine.Scope3 {
			// Spend-based input: the quantity is the spend amount.
			a.SpendAmount = &calcFlags.quantity
			a.SpendCurrency = calcFlags.unit
		}
		if cmd.Flags().Changed("custom-factor") {
			a.CustomFactor = &calcFlags.customFactor
		}

		if err := engine.Validate(0, a); err != nil {
			return err
		}
		results, err := calc.CalculateSingle(a)
		if err != nil {
			return eris.Wrap(err, "calculate")
		}

		if calcFlags.asJSON {
			return writeIndentedJSON(os.Stdout, results)
		}
		formatResultsTable(os.Stdout, results)
		return nil
	},
}

func init() {
	f := calculateCmd.Flags()
	f.StringVar(&calcFlags.scope, "scope", "", "scope_1, scope_2, or scope_3 (required)")
	f.StringVar(&calcFlags.scope1Category, "category", "", "scope 1 category (stationary_combustion, mobile_combustion, fugitive_emissions, process_emissions)")
	f.IntVar(&calcFlags.scope3Category, "scope3-category", 0, "scope 3 category number (1-15)")
	f.Float64Var(&calcFlags.quantity, "quantity", 0, "activity quantity (required)")
	f.StringVar(&calcFlags.unit, "unit", "", "activity unit (required)")
	f.StringVar(&calcFlags.fuel, "fuel", "", "fuel type (e.g. natural_gas, diesel)")
	f.StringVar(&calcFlags.country, "country", "", "ISO country code for scope 2")
	f.StringVar(&calcFlags.gridSubregion, "grid-subregion", "", "eGRID subregion code for scope 2 (e.g. ERCT)")
	f.StringVar(&calcFlags.refrigerant, "refrigerant", "", "refrigerant type for fugitive emissions (e.g. r-410a)")
	f.StringVar(&calcFlags.naics, "naics", "", "NAICS code for spend-based scope 3")
	f.StringVar(&calcFlags.transportMode, "mode", "", "transport mode for distance-based scope 3")
	f.StringVar(&calcFlags.wasteType, "waste-type", "", "waste type for scope 3 category 5")
	f.StringVar(&calcFlags.disposal, "disposal", "", "disposal method for scope 3 category 5")
	f.Float64Var(&calcFlags.customFactor, "custom-factor", 0, "custom emission factor (kg CO2e per unit)")
	f.StringVar(&calcFlags.gwpAssessment, "gwp", "", "GWP assessment (ar5 or ar6, default from config)")
	f.StringVar(&calcFlags.factorsFile, "factors-file", "", "custom factors YAML file")
	f.BoolVar(&calcFlags.asJSON, "json", false, "print results as JSON")

	_ = calculateCmd.MarkFlagRequired("scope")
	_ = calculateCmd.MarkFlagRequired("quantity")
	_ = calculateCmd.MarkFlagRequired("unit")
	rootCmd.AddCommand(calculateCmd)
}
