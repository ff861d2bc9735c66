package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/carbon-cli/internal/engine"
)

var numPrinter = message.NewPrinter(language.English)

// formatInventoryTable writes a human-readable inventory summary.
func formatInventoryTable(out io.Writer, inv *engine.Inventory) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	name := inv.Name
	if name == "" {
		name = "(unnamed)"
	}
	_, _ = fmt.Fprintf(w, "Inventory:\t%s\n", name)
	if inv.Year != 0 {
		_, _ = fmt.Fprintf(w, "Year:\t%d\n", inv.Year)
	}
	_, _ = fmt.Fprintf(w, "GWP assessment:\t%s\n", strings.ToUpper(string(inv.GWPAssessment)))
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "SCOPE\tRESULTS\tKG CO2E\tT CO2E")
	_, _ = fmt.Fprintln(w, "-----\t-------\t-------\t------")
	writeScopeLine(w, "Scope 1", inv.Scope1)
	writeScopeLine(w, "Scope 2 (location)", inv.Scope2Location)
	writeScopeLine(w, "Scope 2 (market)", inv.Scope2Market)
	writeScopeLine(w, "Scope 3", inv.Scope3)
	_, _ = fmt.Fprintln(w)

	_, _ = numPrinter.Fprintf(w, "Total (location-based):\t%.1f kg\t%.3f t CO2e\n",
		inv.TotalCO2eKG(), inv.TotalCO2eTonnes())
	if n := len(inv.Failures); n > 0 {
		_, _ = fmt.Fprintf(w, "Failed activities:\t%d\n", n)
	}
	_ = w.Flush()

	if len(inv.Failures) > 0 {
		_, _ = fmt.Fprintln(out)
		fw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(fw, "INDEX\tACTIVITY\tERROR")
		for _, f := range inv.Failures {
			label := f.ActivityName
			if label == "" {
				label = f.ActivityID
			}
			_, _ = fmt.Fprintf(fw, "%d\t%s\t%s\n", f.Index, label, f.Error)
		}
		_ = fw.Flush()
	}
}

func writeScopeLine(w io.Writer, label string, st engine.ScopeTotal) {
	_, _ = numPrinter.Fprintf(w, "%s\t%d\t%.1f\t%.3f\n",
		label, len(st.Results), st.TotalCO2eKG, st.TotalCO2eKG/1000.0)
}

// formatResultsTable writes one line per calculation result.
func formatResultsTable(out io.Writer, results []engine.Result) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ACTIVITY\tSCOPE\tMETHOD\tKG CO2E\tFACTOR\tSOURCE")
	for _, r := range results {
		label := r.ActivityName
		if label == "" {
			label = r.ActivityID
		}
		_, _ = numPrinter.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\t%s\n",
			label, r.Scope, r.Scope2Method, r.TotalCO2eKG, r.FactorID, r.FactorSource)
	}
	_ = w.Flush()
}

// writeInventoryCSV writes one row per result across all scope buckets.
func writeInventoryCSV(out io.Writer, inv *engine.Inventory) error {
	w := csv.NewWriter(out)
	header := []string{
		"activity_id", "activity_name", "scope", "category", "method",
		"quantity", "unit", "co2e_kg", "factor_id", "factor_source", "gwp", "notes",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, r := range inv.AllResults() {
		category := string(r.Scope1Category)
		if r.Scope3Category != 0 {
			category = strconv.Itoa(r.Scope3Category)
		}
		row := []string{
			r.ActivityID,
			r.ActivityName,
			string(r.Scope),
			category,
			string(r.Scope2Method),
			strconv.FormatFloat(r.ActivityQuantity, 'f', -1, 64),
			r.ActivityUnit,
			strconv.FormatFloat(r.TotalCO2eKG, 'f', 6, 64),
			r.FactorID,
			string(r.FactorSource),
			string(r.GWPAssessment),
			strings.Join(r.Notes, "; "),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeIndentedJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
