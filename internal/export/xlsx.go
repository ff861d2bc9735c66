// Package export renders a calculated inventory as an xlsx workbook.
package export

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/carbon-cli/internal/engine"
)

// WriteXLSX writes the inventory to path as a workbook with a Summary
// sheet, a Results sheet, and a Failures sheet when any activity failed.
func WriteXLSX(inv *engine.Inventory, path string) error {
	f := xlsx.NewFile()

	if err := addSummarySheet(f, inv); err != nil {
		return err
	}
	if err := addResultsSheet(f, inv); err != nil {
		return err
	}
	if len(inv.Failures) > 0 {
		if err := addFailuresSheet(f, inv); err != nil {
			return err
		}
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save workbook %s", path)
	}
	return nil
}

func addSummarySheet(f *xlsx.File, inv *engine.Inventory) error {
	sheet, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "export: add summary sheet")
	}

	addStringRow(sheet, "Inventory", inv.Name)
	if inv.Year != 0 {
		addStringRow(sheet, "Year", strconv.Itoa(inv.Year))
	}
	addStringRow(sheet, "GWP assessment", strings.ToUpper(string(inv.GWPAssessment)))
	addStringRow(sheet, "Calculated at", inv.CalculatedAt.Format("2006-01-02 15:04:05 MST"))
	sheet.AddRow()

	header := sheet.AddRow()
	for _, h := range []string{"Scope", "Results", "kg CO2e", "t CO2e"} {
		header.AddCell().SetString(h)
	}
	addScopeRow(sheet, "Scope 1", inv.Scope1)
	addScopeRow(sheet, "Scope 2 (location-based)", inv.Scope2Location)
	addScopeRow(sheet, "Scope 2 (market-based)", inv.Scope2Market)
	addScopeRow(sheet, "Scope 3", inv.Scope3)

	sheet.AddRow()
	total := sheet.AddRow()
	total.AddCell().SetString("Grand total (location-based Scope 2)")
	total.AddCell().SetString("")
	total.AddCell().SetFloat(inv.TotalCO2eKG())
	total.AddCell().SetFloat(inv.TotalCO2eTonnes())

	if n := len(inv.Failures); n > 0 {
		failed := sheet.AddRow()
		failed.AddCell().SetString("Failed activities")
		failed.AddCell().SetInt(n)
	}
	return nil
}

func addScopeRow(sheet *xlsx.Sheet, label string, st engine.ScopeTotal) {
	row := sheet.AddRow()
	row.AddCell().SetString(label)
	row.AddCell().SetInt(len(st.Results))
	row.AddCell().SetFloat(st.TotalCO2eKG)
	row.AddCell().SetFloat(st.TotalCO2eKG / 1000.0)
}

func addStringRow(sheet *xlsx.Sheet, cells ...string) {
	row := sheet.AddRow()
	for _, c := range cells {
		row.AddCell().SetString(c)
	}
}

var resultsHeader = []string{
	"Activity ID", "Activity", "Scope", "Category", "Method",
	"Quantity", "Unit", "kg CO2e", "t CO2e",
	"Factor ID", "Factor Source", "GWP", "Notes",
}

func addResultsSheet(f *xlsx.File, inv *engine.Inventory) error {
	sheet, err := f.AddSheet("Results")
	if err != nil {
		return eris.Wrap(err, "export: add results sheet")
	}

	header := sheet.AddRow()
	for _, h := range resultsHeader {
		header.AddCell().SetString(h)
	}

	for _, r := range inv.AllResults() {
		row := sheet.AddRow()
		row.AddCell().SetString(r.ActivityID)
		row.AddCell().SetString(r.ActivityName)
		row.AddCell().SetString(string(r.Scope))
		row.AddCell().SetString(resultCategory(r))
		row.AddCell().SetString(string(r.Scope2Method))
		row.AddCell().SetFloat(r.ActivityQuantity)
		row.AddCell().SetString(r.ActivityUnit)
		row.AddCell().SetFloat(r.TotalCO2eKG)
		row.AddCell().SetFloat(r.TotalCO2eTonnes())
		row.AddCell().SetString(r.FactorID)
		row.AddCell().SetString(string(r.FactorSource))
		row.AddCell().SetString(strings.ToUpper(string(r.GWPAssessment)))
		row.AddCell().SetString(strings.Join(r.Notes, "; "))
	}
	return nil
}

func resultCategory(r engine.Result) string {
	switch {
	case r.Scope1Category != "":
		return string(r.Scope1Category)
	case r.Scope3Category != 0:
		return "category " + strconv.Itoa(r.Scope3Category) +
			" (" + engine.Scope3CategoryName[r.Scope3Category] + ")"
	default:
		return ""
	}
}

func addFailuresSheet(f *xlsx.File, inv *engine.Inventory) error {
	sheet, err := f.AddSheet("Failures")
	if err != nil {
		return eris.Wrap(err, "export: add failures sheet")
	}

	header := sheet.AddRow()
	for _, h := range []string{"Index", "Activity ID", "Activity", "Error"} {
		header.AddCell().SetString(h)
	}
	for _, fail := range inv.Failures {
		row := sheet.AddRow()
		row.AddCell().SetInt(fail.Index)
		row.AddCell().SetString(fail.ActivityID)
		row.AddCell().SetString(fail.ActivityName)
		row.AddCell().SetString(fail.Error)
	}
	return nil
}
