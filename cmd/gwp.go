package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/carbon-cli/internal/gwp"
)

var gwpAssessmentFlag string

var gwpCmd = &cobra.Command{
	Use:   "gwp [gas]",
	Short: "Look up Global Warming Potential values",
	Long:  "Shows the 100-year GWP multiplier for a gas, or lists all known gases when no gas is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		assessment, err := gwp.ParseAssessment(gwpAssessmentFlag)
		if err != nil {
			return err
		}

		if len(args) == 1 {
			v, err := gwp.Lookup(args[0], assessment)
			if err != nil {
				return err
			}
			fmt.Printf("%s (%s): %g\n", args[0], assessment, v)
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(w, "GAS\tGWP (%s)\n", assessment)
		for _, g := range gwp.Gases(assessment) {
			v, _ := gwp.Lookup(g, assessment)
			_, _ = fmt.Fprintf(w, "%s\t%g\n", g, v)
		}
		return w.Flush()
	},
}

func init() {
	gwpCmd.Flags().StringVar(&gwpAssessmentFlag, "assessment", "", "IPCC assessment (ar5 or ar6, default ar6)")
	rootCmd.AddCommand(gwpCmd)
}
