package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/carbon-cli/internal/engine"
	"github.com/sells-group/carbon-cli/internal/export"
)

var exportFlags struct {
	runID  string
	output string
}

var exportCmd = &cobra.Command{
	Use:   "export [inventory.json]",
	Short: "Export an inventory to an xlsx workbook",
	Long:  "Exports an inventory JSON file, or a saved run via --run, to an xlsx workbook with Summary, Results, and Failures sheets.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var inv *engine.Inventory
		switch {
		case exportFlags.runID != "":
			st, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck
			if err := st.Migrate(ctx); err != nil {
				return err
			}
			run, err := st.GetRun(ctx, exportFlags.runID)
			if err != nil {
				return eris.Wrap(err, "export")
			}
			inv = run.Inventory
		case len(args) == 1:
			data, err := os.ReadFile(args[0])
			if err != nil {
				return eris.Wrapf(err, "read inventory file %s", args[0])
			}
			inv = &engine.Inventory{}
			if err := json.Unmarshal(data, inv); err != nil {
				return eris.Wrapf(err, "parse inventory file %s", args[0])
			}
		default:
			return eris.New("provide an inventory JSON file or --run <run-id>")
		}

		if err := export.WriteXLSX(inv, exportFlags.output); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", exportFlags.output)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFlags.runID, "run", "", "export a saved run instead of a file")
	exportCmd.Flags().StringVar(&exportFlags.output, "output", "inventory.xlsx", "output xlsx path")
	rootCmd.AddCommand(exportCmd)
}
