package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/carbon-cli/internal/engine"
)

var invFlags struct {
	name          string
	year          int
	format        string
	output        string
	save          bool
	gwpAssessment string
	factorsFile   string
}

// activitiesFile is the accepted input shape. A bare JSON array of
// activities also works.
type activitiesFile struct {
	Name       string            `json:"name,omitempty"`
	Year       int               `json:"year,omitempty"`
	Activities []engine.Activity `json:"activities"`
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory <activities.json>",
	Short: "Calculate a full inventory from an activities file",
	Long:  "Reads a JSON file of activity records, calculates all scopes concurrently, and prints or saves the inventory.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := cfg.Validate("cli"); err != nil {
			return err
		}

		name, year, activities, err := readActivitiesFile(args[0])
		if err != nil {
			return err
		}
		if invFlags.name != "" {
			name = invFlags.name
		}
		if invFlags.year != 0 {
			year = invFlags.year
		}

		reg, err := initRegistry(invFlags.factorsFile)
		if err != nil {
			return err
		}
		calc, err := initCalculator(reg, invFlags.gwpAssessment)
		if err != nil {
			return err
		}

		inv, err := calc.CalculateInventory(ctx, activities, name, year)
		if err != nil {
			return eris.Wrap(err, "inventory")
		}

		if invFlags.save {
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.Migrate(ctx); err != nil {
				return err
			}
			run, err := st.SaveInventory(ctx, inv)
			if err != nil {
				return eris.Wrap(err, "save inventory")
			}
			zap.L().Info("inventory saved", zap.String("run_id", run.ID))
			fmt.Fprintf(os.Stderr, "Saved run %s\n", run.ID)
		}

		out := os.Stdout
		if invFlags.output != "" {
			f, err := os.Create(invFlags.output)
			if err != nil {
				return eris.Wrapf(err, "create output file %s", invFlags.output)
			}
			defer f.Close()
			out = f
		}

		switch invFlags.format {
		case "table":
			formatInventoryTable(out, inv)
			return nil
		case "csv":
			return writeInventoryCSV(out, inv)
		case "json":
			return writeIndentedJSON(out, inv)
		default:
			return eris.Errorf("unknown format %q (want table, csv, or json)", invFlags.format)
		}
	},
}

func readActivitiesFile(path string) (name string, year int, activities []engine.Activity, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, nil, eris.Wrapf(err, "read activities file %s", path)
	}

	var file activitiesFile
	if err := json.Unmarshal(data, &file); err == nil && len(file.Activities) > 0 {
		return file.Name, file.Year, file.Activities, nil
	}

	var bare []engine.Activity
	if err := json.Unmarshal(data, &bare); err != nil {
		return "", 0, nil, eris.Wrapf(err, "parse activities file %s", path)
	}
	return "", 0, bare, nil
}

func init() {
	f := inventoryCmd.Flags()
	f.StringVar(&invFlags.name, "name", "", "inventory name (overrides the file)")
	f.IntVar(&invFlags.year, "year", 0, "reporting year (overrides the file)")
	f.StringVar(&invFlags.format, "format", "table", "output format: table, csv, or json")
	f.StringVar(&invFlags.output, "output", "", "write output to a file instead of stdout")
	f.BoolVar(&invFlags.save, "save", false, "save the inventory as a run in the store")
	f.StringVar(&invFlags.gwpAssessment, "gwp", "", "GWP assessment (ar5 or ar6, default from config)")
	f.StringVar(&invFlags.factorsFile, "factors-file", "", "custom factors YAML file")
	rootCmd.AddCommand(inventoryCmd)
}
