package factors

import "fmt"

// US EPA eGRID 2022 subregion grid intensities, kg CO2e per kWh.
// https://www.epa.gov/egrid

type egridRow struct {
	code, name string
	co2e       float64
}

var egridSubregions = []egridRow{
	{"AKGD", "ASCC Alaska Grid", 0.52},
	{"AKMS", "ASCC Miscellaneous", 0.23},
	{"AZNM", "WECC Southwest", 0.38},
	{"CAMX", "WECC California", 0.24},
	{"ERCT", "ERCOT All", 0.37},
	{"FRCC", "FRCC All", 0.37},
	{"HIMS", "HICC Miscellaneous", 0.51},
	{"HIOA", "HICC Oahu", 0.74},
	{"MROE", "MRO East", 0.56},
	{"MROW", "MRO West", 0.45},
	{"NEWE", "NPCC New England", 0.24},
	{"NWPP", "WECC Northwest", 0.29},
	{"NYCW", "NPCC NYC/Westchester", 0.27},
	{"NYLI", "NPCC Long Island", 0.54},
	{"NYUP", "NPCC Upstate NY", 0.11},
	{"PRMS", "Puerto Rico Miscellaneous", 0.68},
	{"RFCE", "RFC East", 0.30},
	{"RFCM", "RFC Michigan", 0.54},
	{"RFCW", "RFC West", 0.43},
	{"RMPA", "WECC Rockies", 0.51},
	{"SPNO", "SPP North", 0.46},
	{"SPSO", "SPP South", 0.46},
	{"SRMV", "SERC Mississippi Valley", 0.37},
	{"SRMW", "SERC Midwest", 0.61},
	{"SRSO", "SERC South", 0.42},
	{"SRTV", "SERC Tennessee Valley", 0.41},
	{"SRVC", "SERC Virginia/Carolina", 0.30},
}

func egridFactors() []*Factor {
	out := make([]*Factor, 0, len(egridSubregions))
	for _, r := range egridSubregions {
		// Split the published CO2e into its dominant CO2 share and
		// small CH4/N2O contributions.
		out = append(out, &Factor{
			ID:           "egrid_" + lower(r.code),
			Name:         fmt.Sprintf("Electricity - %s (%s)", r.code, r.name),
			Source:       SourceEGRID,
			Category:     "electricity",
			Subcategory:  "grid_electricity",
			Region:       r.code,
			Year:         2022,
			ActivityUnit: "kWh",
			CO2:          r.co2e * 0.994,
			CH4:          r.co2e * 0.0001,
			N2O:          r.co2e * 0.00001,
			Tags:         []string{"electricity", "grid", "us"},
		})
	}
	return out
}
