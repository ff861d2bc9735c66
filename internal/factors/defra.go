package factors

import "strings"

// UK DEFRA/BEIS GHG Conversion Factors for Company Reporting (2025).
// https://www.gov.uk/government/collections/government-conversion-factors-for-company-reporting

func lower(s string) string { return strings.ToLower(s) }

type defraRow struct {
	id, name, category, subcat string
	co2e                       float64
	unit                       string
	tags                       []string
}

var defraTravel = []defraRow{
	{"flight_domestic", "Domestic Flight", "business_travel", "flights", 0.246, "passenger_km", []string{"air"}},
	{"flight_short_haul", "Short-Haul Flight (<3700km)", "business_travel", "flights", 0.156, "passenger_km", []string{"air"}},
	{"flight_long_haul", "Long-Haul Flight (>3700km)", "business_travel", "flights", 0.150, "passenger_km", []string{"air"}},
	{"flight_intl_avg", "International Flight (Average)", "business_travel", "flights", 0.158, "passenger_km", []string{"air"}},
	{"flight_economy", "Flight Economy Class", "business_travel", "flights", 0.148, "passenger_km", []string{"air"}},
	{"flight_business", "Flight Business Class", "business_travel", "flights", 0.429, "passenger_km", []string{"air"}},
	{"flight_first", "Flight First Class", "business_travel", "flights", 0.591, "passenger_km", []string{"air"}},
	{"rail_national", "National Rail", "business_travel", "rail", 0.035, "passenger_km", []string{"rail"}},
	{"rail_intl", "International Rail (Eurostar)", "business_travel", "rail", 0.004, "passenger_km", []string{"rail"}},
	{"rail_light", "Light Rail/Tram", "business_travel", "rail", 0.029, "passenger_km", []string{"rail"}},
	{"taxi", "Taxi (Average)", "business_travel", "road", 0.149, "passenger_km", []string{"road"}},
	{"bus_local", "Local Bus", "business_travel", "road", 0.089, "passenger_km", []string{"road"}},
	{"bus_coach", "Coach", "business_travel", "road", 0.027, "passenger_km", []string{"road"}},
	{"ferry_foot", "Ferry (Foot Passenger)", "business_travel", "sea", 0.019, "passenger_km", []string{"sea"}},
	{"ferry_car", "Ferry (Car Passenger)", "business_travel", "sea", 0.113, "passenger_km", []string{"sea"}},
}

var defraCommute = []defraRow{
	{"car_small", "Small Car (<1.4L)", "commuting", "car", 0.142, "km", []string{"road"}},
	{"car_medium", "Medium Car (1.4-2.0L)", "commuting", "car", 0.170, "km", []string{"road"}},
	{"car_large", "Large Car (>2.0L)", "commuting", "car", 0.209, "km", []string{"road"}},
	{"car_average", "Average Car", "commuting", "car", 0.171, "km", []string{"road"}},
	{"car_electric", "Electric Vehicle (BEV)", "commuting", "car", 0.046, "km", []string{"road", "electric"}},
	{"car_hybrid", "Hybrid Car", "commuting", "car", 0.116, "km", []string{"road", "hybrid"}},
	{"car_phev", "Plug-in Hybrid", "commuting", "car", 0.071, "km", []string{"road", "hybrid"}},
	{"motorbike_small", "Motorbike (<125cc)", "commuting", "motorbike", 0.083, "km", []string{"road"}},
	{"motorbike_medium", "Motorbike (125-500cc)", "commuting", "motorbike", 0.101, "km", []string{"road"}},
	{"motorbike_large", "Motorbike (>500cc)", "commuting", "motorbike", 0.132, "km", []string{"road"}},
	{"bus", "Bus", "commuting", "bus", 0.089, "passenger_km", []string{"road"}},
	{"rail", "National Rail", "commuting", "rail", 0.035, "passenger_km", []string{"rail"}},
	{"underground", "London Underground", "commuting", "rail", 0.028, "passenger_km", []string{"rail"}},
	{"cycling", "Cycling", "commuting", "active", 0.0, "km", []string{"active"}},
	{"walking", "Walking", "commuting", "active", 0.0, "km", []string{"active"}},
	{"ebike", "E-Bike", "commuting", "active", 0.005, "km", []string{"electric"}},
}

var defraFreight = []defraRow{
	{"van_petrol", "Van (Petrol, <1.305t)", "transport", "van", 0.601, "tonne_km", []string{"road"}},
	{"van_diesel", "Van (Diesel, <1.305t)", "transport", "van", 0.577, "tonne_km", []string{"road"}},
	{"van_average", "Van (Average)", "transport", "van", 0.581, "tonne_km", []string{"road"}},
	{"rigid_hgv_small", "Rigid HGV (3.5-7.5t)", "transport", "hgv", 0.494, "tonne_km", []string{"road"}},
	{"rigid_hgv_medium", "Rigid HGV (7.5-17t)", "transport", "hgv", 0.296, "tonne_km", []string{"road"}},
	{"rigid_hgv_large", "Rigid HGV (>17t)", "transport", "hgv", 0.164, "tonne_km", []string{"road"}},
	{"artic_hgv", "Articulated HGV (>33t)", "transport", "hgv", 0.091, "tonne_km", []string{"road"}},
	{"hgv_average", "HGV (All Diesel, Average)", "transport", "hgv", 0.115, "tonne_km", []string{"road"}},
	{"rail_freight", "Rail Freight", "transport", "rail", 0.024, "tonne_km", []string{"rail"}},
	{"sea_container", "Sea Freight (Container)", "transport", "sea", 0.016, "tonne_km", []string{"sea"}},
	{"sea_bulk", "Sea Freight (Bulk Carrier)", "transport", "sea", 0.004, "tonne_km", []string{"sea"}},
	{"sea_tanker", "Sea Freight (Tanker)", "transport", "sea", 0.005, "tonne_km", []string{"sea"}},
	{"air_freight_domestic", "Air Freight (Domestic)", "transport", "air", 2.305, "tonne_km", []string{"air"}},
	{"air_freight_short", "Air Freight (Short-Haul)", "transport", "air", 1.129, "tonne_km", []string{"air"}},
	{"air_freight_long", "Air Freight (Long-Haul)", "transport", "air", 0.602, "tonne_km", []string{"air"}},
}

type defraFuelRow struct {
	id, name, subcat string
	co2e             float64
	unit, fuel       string
	tags             []string
}

var defraFuels = []defraFuelRow{
	{"natural_gas_kwh", "Natural Gas", "gas", 0.183, "kWh", "natural_gas", []string{"gas"}},
	{"natural_gas_m3", "Natural Gas", "gas", 2.02, "m3", "natural_gas", []string{"gas"}},
	{"diesel_litre", "Diesel", "liquid", 2.556, "litre", "diesel", []string{"liquid"}},
	{"petrol_litre", "Petrol (Gasoline)", "liquid", 2.168, "litre", "gasoline", []string{"liquid"}},
	{"lpg_litre", "LPG", "gas", 1.555, "litre", "lpg", []string{"gas"}},
	{"lpg_kwh", "LPG", "gas", 0.214, "kWh", "lpg", []string{"gas"}},
	{"fuel_oil_litre", "Fuel Oil", "liquid", 2.759, "litre", "fuel_oil_no2", []string{"liquid"}},
	{"fuel_oil_kwh", "Fuel Oil", "liquid", 0.267, "kWh", "fuel_oil_no2", []string{"liquid"}},
	{"coal_industrial_kg", "Coal (Industrial)", "solid", 2.167, "kg", "coal_bituminous", []string{"solid"}},
	{"coal_domestic_kg", "Coal (Domestic)", "solid", 2.883, "kg", "coal_bituminous", []string{"solid"}},
	{"wood_logs_kg", "Wood Logs", "solid", 0.058, "kg", "wood", []string{"solid", "biomass"}},
	{"wood_chips_kg", "Wood Chips", "solid", 0.014, "kg", "wood", []string{"solid", "biomass"}},
	{"wood_pellets_kg", "Wood Pellets", "solid", 0.039, "kg", "wood", []string{"solid", "biomass"}},
	{"biogas_kwh", "Biogas", "gas", 0.00022, "kWh", "landfill_gas", []string{"gas", "biomass"}},
	{"biodiesel_litre", "Biodiesel (ME)", "liquid", 0.172, "litre", "b20", []string{"liquid", "biofuel"}},
	{"bioethanol_litre", "Bioethanol", "liquid", 0.024, "litre", "e85", []string{"liquid", "biofuel"}},
	{"red_diesel_litre", "Red Diesel (Gas Oil)", "liquid", 2.556, "litre", "diesel", []string{"liquid"}},
	{"aviation_fuel_litre", "Aviation Turbine Fuel", "liquid", 2.548, "litre", "jet_fuel", []string{"liquid"}},
	{"marine_fuel_litre", "Marine Fuel Oil", "liquid", 2.759, "litre", "residual_fuel_oil", []string{"liquid"}},
}

var defraMaterials = []defraRow{
	{"paper_kg", "Paper (Virgin)", "materials", "paper", 0.919, "kg", []string{"recycling"}},
	{"paper_recycled_kg", "Paper (Recycled)", "materials", "paper", 0.610, "kg", []string{"recycling"}},
	{"cardboard_kg", "Cardboard (Virgin)", "materials", "paper", 0.919, "kg", []string{"recycling"}},
	{"cardboard_recycled_kg", "Cardboard (Recycled)", "materials", "paper", 0.610, "kg", []string{"recycling"}},
	{"plastic_pet_kg", "Plastic (PET)", "materials", "plastic", 2.732, "kg", nil},
	{"plastic_hdpe_kg", "Plastic (HDPE)", "materials", "plastic", 1.578, "kg", nil},
	{"plastic_pvc_kg", "Plastic (PVC)", "materials", "plastic", 2.390, "kg", nil},
	{"plastic_ldpe_kg", "Plastic (LDPE/LLDPE)", "materials", "plastic", 2.082, "kg", nil},
	{"plastic_pp_kg", "Plastic (PP)", "materials", "plastic", 1.498, "kg", nil},
	{"plastic_ps_kg", "Plastic (PS)", "materials", "plastic", 2.830, "kg", nil},
	{"plastic_avg_kg", "Plastic (Average)", "materials", "plastic", 2.289, "kg", nil},
	{"glass_kg", "Glass (Virgin)", "materials", "glass", 0.853, "kg", nil},
	{"glass_recycled_kg", "Glass (Recycled)", "materials", "glass", 0.450, "kg", []string{"recycling"}},
	{"steel_kg", "Steel (Virgin)", "materials", "metal", 1.778, "kg", nil},
	{"steel_recycled_kg", "Steel (Recycled)", "materials", "metal", 0.437, "kg", []string{"recycling"}},
	{"aluminium_kg", "Aluminium (Virgin)", "materials", "metal", 9.167, "kg", nil},
	{"aluminium_recycled_kg", "Aluminium (Recycled)", "materials", "metal", 1.690, "kg", []string{"recycling"}},
	{"copper_kg", "Copper (Virgin)", "materials", "metal", 3.710, "kg", nil},
	{"textiles_kg", "Textiles (Average)", "materials", "textile", 5.340, "kg", nil},
	{"concrete_kg", "Concrete", "materials", "construction", 0.132, "kg", nil},
	{"cement_kg", "Cement", "materials", "construction", 0.740, "kg", nil},
	{"bricks_kg", "Bricks", "materials", "construction", 0.230, "kg", nil},
	{"aggregate_kg", "Aggregate", "materials", "construction", 0.005, "kg", nil},
	{"timber_kg", "Timber", "materials", "construction", 0.263, "kg", nil},
	{"electronics_kg", "Electronic Equipment (Avg)", "materials", "electronics", 5.800, "kg", nil},
	{"batteries_kg", "Batteries", "materials", "electronics", 3.200, "kg", nil},
	{"rubber_kg", "Rubber", "materials", "other", 3.180, "kg", nil},
	{"food_waste_kg", "Food Waste (Average)", "materials", "food", 0.450, "kg", []string{"food"}},
	{"garden_waste_kg", "Garden Waste", "materials", "organic", 0.580, "kg", nil},
}

type defraWasteRow struct {
	id, name, disposal, key string
	co2e                    float64
}

var defraWaste = []defraWasteRow{
	{"landfill_mixed_tonne", "Mixed Waste (Landfill)", "landfill", "mixed_landfill", 446},
	{"landfill_paper_tonne", "Paper/Card (Landfill)", "landfill", "paper_landfill", 1042},
	{"landfill_food_tonne", "Food Waste (Landfill)", "landfill", "food_landfill", 580},
	{"landfill_wood_tonne", "Wood (Landfill)", "landfill", "wood_landfill", 828},
	{"landfill_textiles_tonne", "Textiles (Landfill)", "landfill", "textiles_landfill", 447},
	{"landfill_plastic_tonne", "Plastics (Landfill)", "landfill", "plastic_landfill", 21},
	{"incineration_mixed_tonne", "Mixed Waste (Incineration)", "incineration", "mixed_incineration", 21.35},
	{"incineration_plastic_tonne", "Plastics (Incineration)", "incineration", "plastic_incineration", 2695},
	{"recycling_paper_tonne", "Paper/Card (Recycling)", "recycling", "paper_recycling", 21.35},
	{"recycling_plastic_tonne", "Plastics (Recycling)", "recycling", "plastic_recycling", 21.35},
	{"recycling_glass_tonne", "Glass (Recycling)", "recycling", "glass_recycling", 21.35},
	{"recycling_metal_tonne", "Metals (Recycling)", "recycling", "metal_recycling", 21.35},
	{"composting_food_tonne", "Food Waste (Composting)", "composting", "food_composting", 10.2},
	{"composting_garden_tonne", "Garden Waste (Composting)", "composting", "garden_composting", 10.2},
	{"ad_food_tonne", "Food Waste (Anaerobic Digestion)", "anaerobic_digestion", "food_ad", 10.2},
}

var defraWater = []defraRow{
	{"supply_m3", "Water Supply", "water", "supply", 0.149, "m3", []string{"water"}},
	{"treatment_m3", "Water Treatment", "water", "treatment", 0.272, "m3", []string{"water"}},
}

type defraHotelRow struct {
	id, name, region string
	co2e             float64
}

var defraHotels = []defraHotelRow{
	{"uk_night", "Hotel Stay - UK", "UK", 10.3},
	{"europe_night", "Hotel Stay - Europe (Avg)", "EU", 14.5},
	{"usa_night", "Hotel Stay - USA", "US", 20.4},
	{"asia_night", "Hotel Stay - Asia (Avg)", "ASIA", 15.2},
	{"global_night", "Hotel Stay - Global Average", "GLOBAL", 15.0},
}

func defraFactors() []*Factor {
	var out []*Factor

	agg := func(id, name, category, subcat, fuel, region, unit string, co2e, co2, ch4, n2o float64, tags []string) *Factor {
		return &Factor{
			ID: id, Name: name, Source: SourceDEFRA,
			Category: category, Subcategory: subcat, FuelType: fuel,
			Region: region, Year: 2025, ActivityUnit: unit,
			CO2: co2, CH4: ch4, N2O: n2o,
			CO2e: co2e, HasCO2e: true,
			Tags: tags,
		}
	}

	for _, t := range defraTravel {
		out = append(out, agg("defra_travel_"+t.id, t.name, t.category, t.subcat, "", "UK", t.unit,
			t.co2e, t.co2e*0.95, t.co2e*0.02, t.co2e*0.03, append(t.tags, "business_travel")))
	}
	for _, c := range defraCommute {
		out = append(out, agg("defra_commute_"+c.id, c.name, c.category, c.subcat, "", "UK", c.unit,
			c.co2e, c.co2e*0.95, c.co2e*0.02, c.co2e*0.03, append(c.tags, "commuting")))
	}
	for _, f := range defraFreight {
		out = append(out, agg("defra_freight_"+f.id, f.name, f.category, f.subcat, "", "UK", f.unit,
			f.co2e, f.co2e*0.95, f.co2e*0.01, f.co2e*0.01, append(f.tags, "freight")))
	}
	for _, f := range defraFuels {
		out = append(out, agg("defra_fuel_"+f.id, f.name, "fuels", f.subcat, f.fuel, "UK", f.unit,
			f.co2e, f.co2e*0.96, f.co2e*0.01, f.co2e*0.005, append(f.tags, "fuel")))
	}
	for _, m := range defraMaterials {
		out = append(out, agg("defra_mat_"+m.id, m.name, m.category, m.subcat, "", "UK", m.unit,
			m.co2e, 0, 0, 0, append(m.tags, "material")))
	}
	for _, w := range defraWaste {
		// FuelType carries the "{type}_{disposal}" key the waste
		// resolver matches on.
		out = append(out, agg("defra_waste_"+w.id, w.name, "waste", w.disposal, w.key, "UK", "tonne",
			w.co2e, 0, 0, 0, []string{"waste", w.disposal}))
	}
	for _, w := range defraWater {
		out = append(out, agg("defra_water_"+w.id, w.name, w.category, w.subcat, "", "UK", w.unit,
			w.co2e, 0, 0, 0, w.tags))
	}
	for _, h := range defraHotels {
		out = append(out, agg("defra_hotel_"+h.id, h.name, "hotel_stays", "accommodation", "", h.region, "night",
			h.co2e, 0, 0, 0, []string{"hotel", "accommodation"}))
	}

	out = append(out, &Factor{
		ID: "defra_elec_uk_kwh", Name: "UK Grid Electricity", Source: SourceDEFRA,
		Category: "electricity", Subcategory: "grid_electricity",
		Region: "UK", Year: 2025, ActivityUnit: "kWh",
		CO2: 0.207, CH4: 0.00001, N2O: 0.000001,
		CO2e: 0.212, HasCO2e: true,
		Tags: []string{"electricity", "grid"},
	})

	return out
}
