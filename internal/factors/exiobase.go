package factors

import "fmt"

// EXIOBASE 3 multi-regional input-output spend factors, kg CO2e per
// unit of currency by region and sector. Sector intensities are EU
// baselines scaled by a per-region multiplier. The EU region is priced
// in EUR, everything else in USD.
// https://www.exiobase.eu/

type exioRegion struct {
	code, name, currency string
	multiplier           float64
}

var exioRegions = []exioRegion{
	{"EU", "European Union", "EUR", 1.0},
	{"CN", "China", "USD", 1.4},
	{"JP", "Japan", "USD", 0.85},
	{"IN", "India", "USD", 1.6},
	{"BR", "Brazil", "USD", 0.7},
	{"RU", "Russia", "USD", 1.5},
	{"ROW", "Rest of World", "USD", 1.2},
}

type exioSector struct {
	id, name string
	base     float64
}

var exioSectors = []exioSector{
	{"agriculture", "Agriculture and forestry", 1.10},
	{"fishing", "Fishing and aquaculture", 0.90},
	{"mining_coal", "Coal mining", 1.45},
	{"mining_oil_gas", "Oil and gas extraction", 1.15},
	{"mining_metal", "Metal ore mining", 0.90},
	{"food_processing", "Food and beverage processing", 0.55},
	{"textiles", "Textiles and apparel", 0.65},
	{"wood_paper", "Wood and paper products", 0.75},
	{"petroleum_refining", "Petroleum refining", 1.35},
	{"chemicals", "Chemicals and pharmaceuticals", 0.85},
	{"plastics_rubber", "Plastics and rubber products", 0.70},
	{"minerals", "Non-metallic mineral products", 1.05},
	{"steel_metals", "Basic metals and fabricated products", 0.95},
	{"machinery", "Machinery and equipment", 0.35},
	{"electronics", "Electronics and optical products", 0.20},
	{"electrical_equipment", "Electrical equipment", 0.30},
	{"vehicles", "Motor vehicles and transport equipment", 0.35},
	{"other_manufacturing", "Other manufacturing", 0.40},
	{"electricity_gas", "Electricity and gas supply", 2.20},
	{"water_waste", "Water supply and waste management", 0.60},
	{"construction", "Construction", 0.45},
	{"wholesale_retail", "Wholesale and retail trade", 0.12},
	{"land_transport", "Land transport", 0.70},
	{"water_transport", "Water transport", 0.95},
	{"air_transport", "Air transport", 1.50},
	{"warehousing", "Warehousing and logistics", 0.20},
	{"accommodation_food", "Accommodation and food services", 0.30},
	{"information_comm", "Information and communication", 0.07},
	{"financial", "Financial and insurance services", 0.05},
	{"real_estate", "Real estate activities", 0.06},
	{"professional", "Professional and technical services", 0.06},
	{"public_services", "Public administration and education", 0.10},
	{"health_social", "Health and social work", 0.12},
}

func exiobaseFactors() []*Factor {
	out := make([]*Factor, 0, len(exioRegions)*len(exioSectors))
	for _, reg := range exioRegions {
		for _, sec := range exioSectors {
			out = append(out, &Factor{
				ID:           fmt.Sprintf("exio_%s_%s", lower(reg.code), sec.id),
				Name:         fmt.Sprintf("%s - %s", sec.name, reg.name),
				Source:       SourceEXIOBASE,
				Category:     "spend_based",
				Subcategory:  sec.id,
				FuelType:     sec.id,
				Region:       reg.code,
				Year:         2022,
				ActivityUnit: reg.currency,
				CO2e:         round4(sec.base * reg.multiplier),
				HasCO2e:      true,
				Tags:         []string{"spend_based", "mrio", lower(reg.code)},
			})
		}
	}
	return out
}

func round4(v float64) float64 {
	return float64(int64(v*10000+0.5)) / 10000
}
