package factors

import "fmt"

// Ember yearly electricity data, grid intensity in kg CO2e per kWh by
// ISO country code. WORLD carries the global average used as a last
// resort when no country match exists.
// https://ember-climate.org/data/data-catalogue/yearly-electricity-data/

type emberRow struct {
	code, name string
	co2e       float64
}

var emberCountries = []emberRow{
	{"AE", "United Arab Emirates", 0.43},
	{"AR", "Argentina", 0.35},
	{"AT", "Austria", 0.11},
	{"AU", "Australia", 0.55},
	{"BD", "Bangladesh", 0.57},
	{"BE", "Belgium", 0.13},
	{"BG", "Bulgaria", 0.37},
	{"BH", "Bahrain", 0.49},
	{"BO", "Bolivia", 0.42},
	{"BR", "Brazil", 0.10},
	{"BY", "Belarus", 0.40},
	{"CA", "Canada", 0.13},
	{"CH", "Switzerland", 0.04},
	{"CL", "Chile", 0.33},
	{"CN", "China", 0.55},
	{"CO", "Colombia", 0.22},
	{"CR", "Costa Rica", 0.03},
	{"CY", "Cyprus", 0.58},
	{"CZ", "Czechia", 0.41},
	{"DE", "Germany", 0.38},
	{"DK", "Denmark", 0.15},
	{"DO", "Dominican Republic", 0.55},
	{"DZ", "Algeria", 0.49},
	{"EC", "Ecuador", 0.20},
	{"EE", "Estonia", 0.46},
	{"EG", "Egypt", 0.47},
	{"ES", "Spain", 0.17},
	{"ET", "Ethiopia", 0.01},
	{"FI", "Finland", 0.08},
	{"FR", "France", 0.06},
	{"GB", "United Kingdom", 0.21},
	{"GE", "Georgia", 0.13},
	{"GH", "Ghana", 0.36},
	{"GR", "Greece", 0.33},
	{"GT", "Guatemala", 0.33},
	{"HK", "Hong Kong", 0.61},
	{"HN", "Honduras", 0.31},
	{"HR", "Croatia", 0.19},
	{"HU", "Hungary", 0.22},
	{"ID", "Indonesia", 0.68},
	{"IE", "Ireland", 0.28},
	{"IL", "Israel", 0.52},
	{"IN", "India", 0.71},
	{"IQ", "Iraq", 0.57},
	{"IR", "Iran", 0.49},
	{"IS", "Iceland", 0.00},
	{"IT", "Italy", 0.31},
	{"JM", "Jamaica", 0.54},
	{"JO", "Jordan", 0.39},
	{"JP", "Japan", 0.46},
	{"KE", "Kenya", 0.09},
	{"KG", "Kyrgyzstan", 0.11},
	{"KH", "Cambodia", 0.42},
	{"KR", "South Korea", 0.43},
	{"KW", "Kuwait", 0.57},
	{"KZ", "Kazakhstan", 0.64},
	{"LA", "Laos", 0.26},
	{"LB", "Lebanon", 0.56},
	{"LK", "Sri Lanka", 0.45},
	{"LT", "Lithuania", 0.18},
	{"LU", "Luxembourg", 0.12},
	{"LV", "Latvia", 0.12},
	{"LY", "Libya", 0.56},
	{"MA", "Morocco", 0.59},
	{"MD", "Moldova", 0.44},
	{"MK", "North Macedonia", 0.44},
	{"MM", "Myanmar", 0.40},
	{"MN", "Mongolia", 0.78},
	{"MT", "Malta", 0.40},
	{"MX", "Mexico", 0.42},
	{"MY", "Malaysia", 0.58},
	{"MZ", "Mozambique", 0.13},
	{"NG", "Nigeria", 0.40},
	{"NI", "Nicaragua", 0.27},
	{"NL", "Netherlands", 0.27},
	{"NO", "Norway", 0.03},
	{"NP", "Nepal", 0.02},
	{"NZ", "New Zealand", 0.11},
	{"OM", "Oman", 0.48},
	{"PA", "Panama", 0.22},
	{"PE", "Peru", 0.25},
	{"PH", "Philippines", 0.61},
	{"PK", "Pakistan", 0.39},
	{"PL", "Poland", 0.61},
	{"PT", "Portugal", 0.13},
	{"PY", "Paraguay", 0.02},
	{"QA", "Qatar", 0.48},
	{"RO", "Romania", 0.26},
	{"RS", "Serbia", 0.61},
	{"RU", "Russia", 0.36},
	{"SA", "Saudi Arabia", 0.56},
	{"SE", "Sweden", 0.03},
	{"SG", "Singapore", 0.47},
	{"SI", "Slovenia", 0.23},
	{"SK", "Slovakia", 0.13},
	{"SV", "El Salvador", 0.19},
	{"SY", "Syria", 0.54},
	{"TH", "Thailand", 0.50},
	{"TJ", "Tajikistan", 0.08},
	{"TM", "Turkmenistan", 0.49},
	{"TN", "Tunisia", 0.47},
	{"TR", "Turkey", 0.41},
	{"TT", "Trinidad and Tobago", 0.49},
	{"TW", "Taiwan", 0.56},
	{"TZ", "Tanzania", 0.31},
	{"UA", "Ukraine", 0.25},
	{"US", "United States", 0.37},
	{"UY", "Uruguay", 0.12},
	{"UZ", "Uzbekistan", 0.45},
	{"VE", "Venezuela", 0.21},
	{"VN", "Vietnam", 0.47},
	{"ZA", "South Africa", 0.71},
	{"ZM", "Zambia", 0.11},
	{"ZW", "Zimbabwe", 0.54},
	{"WORLD", "Global Average", 0.42},
}

func emberFactors() []*Factor {
	out := make([]*Factor, 0, len(emberCountries))
	for _, r := range emberCountries {
		out = append(out, &Factor{
			ID:           "ember_" + lower(r.code),
			Name:         fmt.Sprintf("Electricity - %s", r.name),
			Source:       SourceEmber,
			Category:     "electricity",
			Subcategory:  "grid_electricity",
			Region:       r.code,
			Year:         2024,
			ActivityUnit: "kWh",
			CO2:          r.co2e * 0.97,
			CH4:          r.co2e * 0.01,
			N2O:          r.co2e * 0.002,
			Tags:         []string{"electricity", "grid", "international"},
		})
	}
	return out
}
