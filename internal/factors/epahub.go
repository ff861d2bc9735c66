package factors

import "github.com/sells-group/carbon-cli/internal/gwp"

// US EPA Emission Factors Hub (2025): stationary combustion, mobile
// combustion, and fugitive refrigerant factors.
// https://www.epa.gov/climateleadership/ghg-emission-factors-hub

type epaFuelRow struct {
	id, name, fuel  string
	co2, ch4, n2o   float64
	unit, subcat    string
	tags            []string
}

var epaStationary = []epaFuelRow{
	{"natural_gas_therm", "Natural Gas", "natural_gas", 5.302, 0.0001, 0.00001, "therm", "natural_gas", []string{"stationary", "gas"}},
	{"natural_gas_mcf", "Natural Gas", "natural_gas", 53.06, 0.001, 0.0001, "MCF", "natural_gas", []string{"stationary", "gas"}},
	{"natural_gas_mmbtu", "Natural Gas", "natural_gas", 53.06, 0.001, 0.0001, "MMBtu", "natural_gas", []string{"stationary", "gas"}},
	{"natural_gas_ccf", "Natural Gas", "natural_gas", 5.306, 0.0001, 0.00001, "CCF", "natural_gas", []string{"stationary", "gas"}},
	{"natural_gas_kwh", "Natural Gas", "natural_gas", 0.18116, 0.0000034, 0.00000034, "kWh", "natural_gas", []string{"stationary", "gas"}},
	{"diesel_gallon", "Diesel/Distillate Fuel Oil #2", "diesel", 10.21, 0.00041, 0.00008, "gallon", "petroleum", []string{"stationary", "liquid"}},
	{"diesel_mmbtu", "Diesel/Distillate Fuel Oil #2", "diesel", 73.96, 0.003, 0.0006, "MMBtu", "petroleum", []string{"stationary", "liquid"}},
	{"gasoline_gallon", "Motor Gasoline", "gasoline", 8.78, 0.00035, 0.00008, "gallon", "petroleum", []string{"stationary", "liquid"}},
	{"gasoline_mmbtu", "Motor Gasoline", "gasoline", 70.22, 0.003, 0.0006, "MMBtu", "petroleum", []string{"stationary", "liquid"}},
	{"propane_gallon", "Propane", "propane", 5.72, 0.00023, 0.00004, "gallon", "petroleum", []string{"stationary", "gas"}},
	{"propane_mmbtu", "Propane", "propane", 62.87, 0.003, 0.0006, "MMBtu", "petroleum", []string{"stationary", "gas"}},
	{"fuel_oil_6_gallon", "Residual Fuel Oil #6", "fuel_oil_no6", 11.27, 0.00045, 0.00009, "gallon", "petroleum", []string{"stationary", "liquid"}},
	{"fuel_oil_6_mmbtu", "Residual Fuel Oil #6", "fuel_oil_no6", 75.10, 0.003, 0.0006, "MMBtu", "petroleum", []string{"stationary", "liquid"}},
	{"kerosene_gallon", "Kerosene", "kerosene", 10.15, 0.00041, 0.00008, "gallon", "petroleum", []string{"stationary", "liquid"}},
	{"kerosene_mmbtu", "Kerosene", "kerosene", 75.20, 0.003, 0.0006, "MMBtu", "petroleum", []string{"stationary", "liquid"}},
	{"lpg_gallon", "Liquefied Petroleum Gas (LPG)", "lpg", 5.68, 0.00023, 0.00004, "gallon", "petroleum", []string{"stationary", "gas"}},
	{"lpg_mmbtu", "LPG", "lpg", 61.71, 0.003, 0.0006, "MMBtu", "petroleum", []string{"stationary", "gas"}},
	{"fuel_oil_1_gallon", "Distillate Fuel Oil #1", "fuel_oil_no2", 9.96, 0.00040, 0.00008, "gallon", "petroleum", []string{"stationary", "liquid"}},
	{"fuel_oil_4_gallon", "Distillate Fuel Oil #4", "fuel_oil_no2", 10.69, 0.00043, 0.00009, "gallon", "petroleum", []string{"stationary", "liquid"}},
	{"coal_bituminous_ton", "Bituminous Coal", "coal_bituminous", 2328.0, 0.011, 0.016, "short_ton", "coal", []string{"stationary", "solid"}},
	{"coal_bituminous_mmbtu", "Bituminous Coal", "coal_bituminous", 93.28, 0.011, 0.0016, "MMBtu", "coal", []string{"stationary", "solid"}},
	{"coal_anthracite_ton", "Anthracite Coal", "coal_anthracite", 2602.0, 0.011, 0.016, "short_ton", "coal", []string{"stationary", "solid"}},
	{"coal_subbituminous_ton", "Subbituminous Coal", "coal_subbituminous", 1673.0, 0.011, 0.016, "short_ton", "coal", []string{"stationary", "solid"}},
	{"coal_lignite_ton", "Lignite Coal", "coal_subbituminous", 1389.0, 0.011, 0.016, "short_ton", "coal", []string{"stationary", "solid"}},
	{"wood_ton", "Wood and Wood Residuals", "wood", 1640.0, 0.0072, 0.0036, "short_ton", "biomass", []string{"stationary", "solid", "biomass"}},
	{"wood_mmbtu", "Wood and Wood Residuals", "wood", 93.80, 0.0072, 0.0036, "MMBtu", "biomass", []string{"stationary", "solid", "biomass"}},
	{"landfill_gas_scf", "Landfill Gas", "landfill_gas", 0.0545, 0.0000032, 0.0000006, "scf", "gas", []string{"stationary", "gas", "biogas"}},
	{"pet_coke_ton", "Petroleum Coke", "coal_bituminous", 3072.0, 0.012, 0.018, "short_ton", "petroleum", []string{"stationary", "solid"}},
	{"msw_ton", "Municipal Solid Waste", "wood", 902.0, 0.032, 0.004, "short_ton", "waste", []string{"stationary", "solid"}},
	{"tires_ton", "Waste Tires", "diesel", 2407.0, 0.032, 0.004, "short_ton", "waste", []string{"stationary", "solid"}},
	{"jet_fuel_gallon", "Jet Fuel (Kerosene-type)", "jet_fuel", 9.75, 0.00039, 0.00008, "gallon", "petroleum", []string{"stationary", "liquid"}},
	{"e85_gallon", "E85 Ethanol Blend", "e85", 5.75, 0.00023, 0.00005, "gallon", "biofuel", []string{"stationary", "liquid", "biofuel"}},
	{"b20_gallon", "B20 Biodiesel Blend", "b20", 8.17, 0.00033, 0.00007, "gallon", "biofuel", []string{"stationary", "liquid", "biofuel"}},
	{"cng_scf", "Compressed Natural Gas", "cng", 0.0545, 0.0000022, 0.0000004, "scf", "gas", []string{"stationary", "gas"}},
	{"lng_gallon", "Liquefied Natural Gas", "lng", 4.46, 0.00018, 0.00004, "gallon", "gas", []string{"stationary", "liquid"}},
	{"residual_fuel_oil_gallon", "Residual Fuel Oil", "residual_fuel_oil", 11.27, 0.00045, 0.00009, "gallon", "petroleum", []string{"stationary", "liquid"}},
}

var epaMobile = []epaFuelRow{
	{"gasoline_passenger_car_mile", "Gasoline Passenger Car", "gasoline", 0.347, 0.000025, 0.000008, "mile", "passenger_car", []string{"mobile", "road", "gasoline"}},
	{"gasoline_passenger_car_gallon", "Gasoline Passenger Car", "gasoline", 8.78, 0.00035, 0.00022, "gallon", "passenger_car", []string{"mobile", "road", "gasoline"}},
	{"gasoline_light_truck_mile", "Gasoline Light-Duty Truck", "gasoline", 0.462, 0.000032, 0.000010, "mile", "light_truck", []string{"mobile", "road", "gasoline"}},
	{"gasoline_light_truck_gallon", "Gasoline Light-Duty Truck", "gasoline", 8.78, 0.00046, 0.00026, "gallon", "light_truck", []string{"mobile", "road", "gasoline"}},
	{"gasoline_heavy_duty_mile", "Gasoline Heavy-Duty Vehicle", "gasoline", 1.505, 0.000049, 0.000047, "mile", "heavy_duty", []string{"mobile", "road", "gasoline"}},
	{"gasoline_heavy_duty_gallon", "Gasoline Heavy-Duty Vehicle", "gasoline", 8.78, 0.00054, 0.00050, "gallon", "heavy_duty", []string{"mobile", "road", "gasoline"}},
	{"motorcycle_mile", "Motorcycle", "gasoline", 0.186, 0.000021, 0.000006, "mile", "motorcycle", []string{"mobile", "road", "gasoline"}},
	{"motorcycle_gallon", "Motorcycle", "gasoline", 8.78, 0.00035, 0.00008, "gallon", "motorcycle", []string{"mobile", "road", "gasoline"}},
	{"diesel_passenger_car_mile", "Diesel Passenger Car", "diesel", 0.325, 0.000010, 0.000015, "mile", "passenger_car", []string{"mobile", "road", "diesel"}},
	{"diesel_passenger_car_gallon", "Diesel Passenger Car", "diesel", 10.21, 0.00041, 0.00008, "gallon", "passenger_car", []string{"mobile", "road", "diesel"}},
	{"diesel_light_truck_mile", "Diesel Light-Duty Truck", "diesel", 0.440, 0.000012, 0.000018, "mile", "light_truck", []string{"mobile", "road", "diesel"}},
	{"diesel_light_truck_gallon", "Diesel Light-Duty Truck", "diesel", 10.21, 0.00041, 0.00008, "gallon", "light_truck", []string{"mobile", "road", "diesel"}},
	{"diesel_heavy_duty_mile", "Diesel Heavy-Duty Vehicle", "diesel", 1.692, 0.000051, 0.000048, "mile", "heavy_duty", []string{"mobile", "road", "diesel"}},
	{"diesel_heavy_duty_gallon", "Diesel Heavy-Duty Vehicle", "diesel", 10.21, 0.00041, 0.00008, "gallon", "heavy_duty", []string{"mobile", "road", "diesel"}},
	{"gasoline_medium_duty_mile", "Gasoline Medium-Duty Vehicle", "gasoline", 0.826, 0.000038, 0.000025, "mile", "medium_duty", []string{"mobile", "road", "gasoline"}},
	{"diesel_medium_duty_mile", "Diesel Medium-Duty Vehicle", "diesel", 0.910, 0.000030, 0.000032, "mile", "medium_duty", []string{"mobile", "road", "diesel"}},
	{"jet_fuel_gallon", "Jet Fuel (Aviation)", "jet_fuel", 9.75, 0.00005, 0.00009, "gallon", "aviation", []string{"mobile", "aviation"}},
	{"aviation_gasoline_gallon", "Aviation Gasoline", "aviation_gasoline", 8.31, 0.00070, 0.00002, "gallon", "aviation", []string{"mobile", "aviation"}},
	{"marine_diesel_gallon", "Marine Diesel Oil", "diesel", 10.21, 0.00041, 0.00008, "gallon", "marine", []string{"mobile", "marine"}},
	{"marine_residual_gallon", "Marine Residual Fuel Oil", "residual_fuel_oil", 11.27, 0.00045, 0.00009, "gallon", "marine", []string{"mobile", "marine"}},
	{"rail_diesel_gallon", "Rail Diesel", "diesel", 10.21, 0.00041, 0.00008, "gallon", "rail", []string{"mobile", "rail"}},
	{"offroad_gasoline_gallon", "Off-Road Gasoline Equipment", "gasoline", 8.78, 0.00050, 0.00022, "gallon", "off_road", []string{"mobile", "off_road", "gasoline"}},
	{"offroad_diesel_gallon", "Off-Road Diesel Equipment", "diesel", 10.21, 0.00059, 0.00026, "gallon", "off_road", []string{"mobile", "off_road", "diesel"}},
	{"diesel_bus_mile", "Diesel Transit Bus", "diesel", 2.680, 0.000016, 0.000010, "mile", "bus", []string{"mobile", "road", "diesel"}},
	{"cng_bus_mile", "CNG Transit Bus", "cng", 2.364, 0.0372, 0.000010, "mile", "bus", []string{"mobile", "road", "cng"}},
	{"hybrid_car_mile", "Hybrid Passenger Car", "gasoline", 0.213, 0.000015, 0.000005, "mile", "passenger_car", []string{"mobile", "road", "hybrid"}},
}

type epaRefrigerantRow struct {
	id, name string
	co2e     float64
	tags     []string
}

// Refrigerant CO2e values are AR5 100-year GWPs, which the EPA Hub
// publishes as aggregate kg CO2e per kg released.
var epaRefrigerants = []epaRefrigerantRow{
	{"hfc_23", "HFC-23", 12400, []string{"hfc"}},
	{"hfc_32", "HFC-32", 677, []string{"hfc"}},
	{"hfc_125", "HFC-125", 3170, []string{"hfc"}},
	{"hfc_134a", "HFC-134a", 1300, []string{"hfc"}},
	{"hfc_143a", "HFC-143a", 4800, []string{"hfc"}},
	{"hfc_152a", "HFC-152a", 138, []string{"hfc"}},
	{"hfc_227ea", "HFC-227ea", 3350, []string{"hfc"}},
	{"hfc_236fa", "HFC-236fa", 8060, []string{"hfc"}},
	{"hfc_245fa", "HFC-245fa", 858, []string{"hfc"}},
	{"hfc_365mfc", "HFC-365mfc", 804, []string{"hfc"}},
	{"hfc_4310mee", "HFC-43-10mee", 1650, []string{"hfc"}},
	{"pfc_cf4", "CF4 (PFC-14)", 6630, []string{"pfc"}},
	{"pfc_c2f6", "C2F6 (PFC-116)", 11100, []string{"pfc"}},
	{"pfc_c3f8", "C3F8 (PFC-218)", 8900, []string{"pfc"}},
	{"pfc_c4f10", "C4F10 (PFC-3-1-10)", 9200, []string{"pfc"}},
	{"pfc_c5f12", "C5F12 (PFC-4-1-12)", 8550, []string{"pfc"}},
	{"pfc_c6f14", "C6F14 (PFC-5-1-14)", 7910, []string{"pfc"}},
	{"sf6", "Sulfur Hexafluoride (SF6)", 23500, []string{"sf6"}},
	{"nf3", "Nitrogen Trifluoride (NF3)", 16100, []string{"nf3"}},
	{"r404a", "R-404A Blend", 3922, []string{"blend"}},
	{"r407a", "R-407A Blend", 2107, []string{"blend"}},
	{"r407c", "R-407C Blend", 1774, []string{"blend"}},
	{"r410a", "R-410A Blend", 2088, []string{"blend"}},
	{"r507a", "R-507A Blend", 3985, []string{"blend"}},
	{"r508b", "R-508B Blend", 13396, []string{"blend"}},
	{"r22", "R-22 (HCFC-22)", 1760, []string{"hcfc", "legacy"}},
	{"r123", "R-123 (HCFC-123)", 77, []string{"hcfc", "legacy"}},
	{"r11", "R-11 (CFC-11)", 4660, []string{"cfc", "legacy"}},
	{"r12", "R-12 (CFC-12)", 10200, []string{"cfc", "legacy"}},
	{"r113", "R-113 (CFC-113)", 5820, []string{"cfc", "legacy"}},
	{"r114", "R-114 (CFC-114)", 8590, []string{"cfc", "legacy"}},
	{"r141b", "R-141b (HCFC-141b)", 782, []string{"hcfc", "legacy"}},
	{"r142b", "R-142b (HCFC-142b)", 1980, []string{"hcfc", "legacy"}},
	{"r225ca", "R-225ca (HCFC-225ca)", 127, []string{"hcfc", "legacy"}},
	{"r225cb", "R-225cb (HCFC-225cb)", 525, []string{"hcfc", "legacy"}},
	{"r134a_blend", "R-134a Automotive AC", 1300, []string{"hfc", "automotive"}},
	{"r404a_commercial", "R-404A Commercial Refrigeration", 3922, []string{"blend", "commercial"}},
	{"r410a_residential", "R-410A Residential AC", 2088, []string{"blend", "residential"}},
	{"r407c_chillers", "R-407C Chillers", 1774, []string{"blend", "commercial"}},
	{"r32_new", "R-32 Low-GWP Alternative", 677, []string{"hfc", "low_gwp"}},
	{"r1234yf", "R-1234yf (HFO)", 1, []string{"hfo", "low_gwp"}},
	{"r1234ze", "R-1234ze(E) (HFO)", 1, []string{"hfo", "low_gwp"}},
	{"r448a", "R-448A (Solstice N40)", 1273, []string{"blend", "low_gwp"}},
	{"r449a", "R-449A (Opteon XP40)", 1282, []string{"blend", "low_gwp"}},
	{"r452a", "R-452A (Opteon XP44)", 1945, []string{"blend", "low_gwp"}},
	{"r513a", "R-513A (Opteon XP10)", 573, []string{"blend", "low_gwp"}},
	{"r454b", "R-454B (Opteon XL41)", 467, []string{"blend", "low_gwp"}},
	{"r290", "R-290 Propane (Natural Refrigerant)", 3, []string{"natural", "low_gwp"}},
	{"r600a", "R-600a Isobutane", 3, []string{"natural", "low_gwp"}},
	{"r717", "R-717 Ammonia", 0, []string{"natural", "low_gwp"}},
	{"r744", "R-744 CO2 Refrigerant", 1, []string{"natural", "low_gwp"}},
}

func epaHubFactors() []*Factor {
	out := make([]*Factor, 0, len(epaStationary)+len(epaMobile)+len(epaRefrigerants))

	for _, s := range epaStationary {
		out = append(out, &Factor{
			ID:           "epa_stat_" + s.id,
			Name:         s.name + " (Stationary)",
			Source:       SourceEPAHub,
			Category:     "stationary_combustion",
			Subcategory:  s.subcat,
			FuelType:     s.fuel,
			Region:       "US",
			Year:         2025,
			ActivityUnit: s.unit,
			CO2:          s.co2,
			CH4:          s.ch4,
			N2O:          s.n2o,
			Tags:         s.tags,
		})
	}
	for _, m := range epaMobile {
		out = append(out, &Factor{
			ID:           "epa_mob_" + m.id,
			Name:         m.name + " (Mobile)",
			Source:       SourceEPAHub,
			Category:     "mobile_combustion",
			Subcategory:  m.subcat,
			FuelType:     m.fuel,
			Region:       "US",
			Year:         2025,
			ActivityUnit: m.unit,
			CO2:          m.co2,
			CH4:          m.ch4,
			N2O:          m.n2o,
			Tags:         m.tags,
		})
	}
	for _, r := range epaRefrigerants {
		out = append(out, &Factor{
			ID:           "epa_fug_" + r.id,
			Name:         r.name,
			Source:       SourceEPAHub,
			Category:     "fugitive_emissions",
			Subcategory:  "refrigerant",
			Region:       "US",
			Year:         2025,
			ActivityUnit: "kg",
			CO2e:         r.co2e,
			HasCO2e:      true,
			GWP:          gwp.AR5,
			Tags:         append([]string{"fugitive", "refrigerant"}, r.tags...),
		})
	}
	return out
}
