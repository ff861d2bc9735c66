package main

import (
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/carbon-cli/internal/units"
)

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from-unit> <to-unit>",
	Short: "Convert between activity units",
	Long:  "Converts a value between units of the same dimension (energy, volume, mass, or distance).",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return eris.Wrapf(err, "parse value %q", args[0])
		}

		out, err := units.Convert(value, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Printf("%g %s = %g %s\n", value, args[1], out, args[2])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
