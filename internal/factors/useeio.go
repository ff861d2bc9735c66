package factors

// US EPA USEEIO v1.3 spend-based factors, kg CO2e per USD by NAICS
// sector. FuelType carries the NAICS code the spend resolver keys on.
// https://www.epa.gov/land-research/us-environmentally-extended-input-output-useeio-technical-content

type useeioRow struct {
	naics, name string
	co2e        float64
	subsector   string
}

var useeioSectors = []useeioRow{
	{"1111", "Oilseed farming", 1.20, "Agriculture"},
	{"1112", "Grain farming", 1.10, "Agriculture"},
	{"1113", "Vegetable and melon farming", 0.75, "Agriculture"},
	{"1114", "Fruit and tree nut farming", 0.60, "Agriculture"},
	{"1119", "Other crop farming", 0.95, "Agriculture"},
	{"1121", "Cattle ranching", 1.80, "Agriculture"},
	{"1122", "Hog and pig farming", 1.50, "Agriculture"},
	{"1123", "Poultry and egg production", 1.05, "Agriculture"},
	{"1124", "Sheep and goat farming", 1.60, "Agriculture"},
	{"1125", "Aquaculture", 0.90, "Agriculture"},
	{"1131", "Timber tract operations", 0.30, "Agriculture"},
	{"1132", "Forest nurseries and timber", 0.35, "Agriculture"},
	{"1141", "Fishing", 1.10, "Agriculture"},
	{"1142", "Hunting and trapping", 0.50, "Agriculture"},
	{"1151", "Support activities for crop production", 0.55, "Agriculture"},
	{"1152", "Support activities for animal production", 0.60, "Agriculture"},
	{"2111", "Oil and gas extraction", 1.20, "Mining"},
	{"2121", "Coal mining", 1.50, "Mining"},
	{"2122", "Metal ore mining", 0.95, "Mining"},
	{"2123", "Nonmetallic mineral mining", 0.80, "Mining"},
	{"2131", "Support activities for mining", 0.70, "Mining"},
	{"2211", "Electric power generation", 2.50, "Utilities"},
	{"2212", "Natural gas distribution", 1.80, "Utilities"},
	{"2213", "Water, sewage and other systems", 1.00, "Utilities"},
	{"2361", "Residential building construction", 0.40, "Construction"},
	{"2362", "Nonresidential building construction", 0.45, "Construction"},
	{"2371", "Utility system construction", 0.50, "Construction"},
	{"2372", "Land subdivision", 0.35, "Construction"},
	{"2373", "Highway and street construction", 0.55, "Construction"},
	{"2379", "Other heavy construction", 0.50, "Construction"},
	{"2381", "Building foundation and exterior", 0.38, "Construction"},
	{"2382", "Building equipment contractors", 0.30, "Construction"},
	{"2383", "Building finishing contractors", 0.25, "Construction"},
	{"2389", "Other specialty trade contractors", 0.35, "Construction"},
	{"3111", "Animal food manufacturing", 0.70, "Manufacturing"},
	{"3112", "Grain and oilseed milling", 0.55, "Manufacturing"},
	{"3113", "Sugar and confectionery", 0.50, "Manufacturing"},
	{"3114", "Fruit and vegetable preserving", 0.45, "Manufacturing"},
	{"3115", "Dairy product manufacturing", 0.60, "Manufacturing"},
	{"3116", "Animal slaughtering and processing", 0.75, "Manufacturing"},
	{"3117", "Seafood product preparation", 0.55, "Manufacturing"},
	{"3118", "Bakeries and tortilla manufacturing", 0.40, "Manufacturing"},
	{"3119", "Other food manufacturing", 0.50, "Manufacturing"},
	{"3121", "Beverage manufacturing", 0.35, "Manufacturing"},
	{"3122", "Tobacco manufacturing", 0.25, "Manufacturing"},
	{"3131", "Fiber, yarn, and thread mills", 0.80, "Manufacturing"},
	{"3132", "Fabric mills", 0.75, "Manufacturing"},
	{"3133", "Textile finishing", 0.65, "Manufacturing"},
	{"3141", "Textile furnishings mills", 0.55, "Manufacturing"},
	{"3149", "Other textile product mills", 0.60, "Manufacturing"},
	{"3151", "Apparel knitting mills", 0.50, "Manufacturing"},
	{"3152", "Cut and sew apparel manufacturing", 0.40, "Manufacturing"},
	{"3159", "Apparel accessories manufacturing", 0.45, "Manufacturing"},
	{"3211", "Sawmills and wood preservation", 0.60, "Manufacturing"},
	{"3212", "Veneer and plywood manufacturing", 0.55, "Manufacturing"},
	{"3219", "Other wood product manufacturing", 0.50, "Manufacturing"},
	{"3221", "Pulp, paper, and paperboard mills", 1.10, "Manufacturing"},
	{"3222", "Converted paper product manufacturing", 0.65, "Manufacturing"},
	{"3231", "Printing and related support", 0.30, "Manufacturing"},
	{"3241", "Petroleum and coal products", 1.40, "Manufacturing"},
	{"3251", "Basic chemical manufacturing", 1.20, "Manufacturing"},
	{"3252", "Resin and synthetic rubber", 0.95, "Manufacturing"},
	{"3253", "Pesticide and agricultural chemicals", 0.85, "Manufacturing"},
	{"3254", "Pharmaceutical manufacturing", 0.18, "Manufacturing"},
	{"3255", "Paint and coating manufacturing", 0.60, "Manufacturing"},
	{"3256", "Soap and cleaning compound", 0.45, "Manufacturing"},
	{"3259", "Other chemical manufacturing", 0.70, "Manufacturing"},
	{"3261", "Plastics product manufacturing", 0.75, "Manufacturing"},
	{"3262", "Rubber product manufacturing", 0.65, "Manufacturing"},
	{"3271", "Clay and refractory manufacturing", 0.90, "Manufacturing"},
	{"3272", "Glass and glass product manufacturing", 0.85, "Manufacturing"},
	{"3273", "Cement and concrete manufacturing", 1.30, "Manufacturing"},
	{"3274", "Lime and gypsum manufacturing", 1.50, "Manufacturing"},
	{"3279", "Other nonmetallic mineral products", 0.80, "Manufacturing"},
	{"3311", "Iron and steel mills", 1.00, "Manufacturing"},
	{"3312", "Steel product manufacturing", 0.85, "Manufacturing"},
	{"3313", "Alumina and aluminum production", 0.95, "Manufacturing"},
	{"3314", "Nonferrous metal production", 0.80, "Manufacturing"},
	{"3315", "Foundries", 0.90, "Manufacturing"},
	{"3321", "Forging and stamping", 0.60, "Manufacturing"},
	{"3322", "Cutlery and handtool manufacturing", 0.45, "Manufacturing"},
	{"3323", "Architectural and structural metals", 0.50, "Manufacturing"},
	{"3324", "Boiler, tank, and shipping container", 0.55, "Manufacturing"},
	{"3325", "Hardware manufacturing", 0.40, "Manufacturing"},
	{"3326", "Spring and wire product manufacturing", 0.50, "Manufacturing"},
	{"3327", "Machine shops and threaded products", 0.35, "Manufacturing"},
	{"3328", "Coating, engraving, heat treating", 0.45, "Manufacturing"},
	{"3329", "Other fabricated metal products", 0.40, "Manufacturing"},
	{"3331", "Ag/construction/mining machinery", 0.30, "Manufacturing"},
	{"3332", "Industrial machinery manufacturing", 0.25, "Manufacturing"},
	{"3333", "Commercial/service industry machinery", 0.20, "Manufacturing"},
	{"3334", "HVAC and commercial refrigeration", 0.28, "Manufacturing"},
	{"3335", "Metalworking machinery", 0.22, "Manufacturing"},
	{"3336", "Engine and turbine manufacturing", 0.30, "Manufacturing"},
	{"3339", "Other general purpose machinery", 0.25, "Manufacturing"},
	{"3341", "Computer and peripheral equipment", 0.15, "Manufacturing"},
	{"3342", "Communications equipment", 0.12, "Manufacturing"},
	{"3343", "Audio and video equipment", 0.10, "Manufacturing"},
	{"3344", "Semiconductor manufacturing", 0.25, "Manufacturing"},
	{"3345", "Electronic instruments", 0.13, "Manufacturing"},
	{"3346", "Magnetic and optical media", 0.18, "Manufacturing"},
	{"3351", "Electric lighting equipment", 0.30, "Manufacturing"},
	{"3352", "Household appliance manufacturing", 0.28, "Manufacturing"},
	{"3353", "Electrical equipment manufacturing", 0.25, "Manufacturing"},
	{"3359", "Other electrical equipment", 0.22, "Manufacturing"},
	{"3361", "Motor vehicle manufacturing", 0.25, "Manufacturing"},
	{"3362", "Motor vehicle body and trailer", 0.30, "Manufacturing"},
	{"3363", "Motor vehicle parts manufacturing", 0.35, "Manufacturing"},
	{"3364", "Aerospace product manufacturing", 0.20, "Manufacturing"},
	{"3365", "Railroad rolling stock manufacturing", 0.28, "Manufacturing"},
	{"3366", "Ship and boat building", 0.32, "Manufacturing"},
	{"3369", "Other transportation equipment", 0.25, "Manufacturing"},
	{"3371", "Household and institutional furniture", 0.30, "Manufacturing"},
	{"3372", "Office furniture manufacturing", 0.25, "Manufacturing"},
	{"3391", "Medical equipment and supplies", 0.15, "Manufacturing"},
	{"3399", "Other miscellaneous manufacturing", 0.30, "Manufacturing"},
	{"4231", "Motor vehicle parts wholesale", 0.12, "Trade"},
	{"4232", "Furniture wholesale", 0.10, "Trade"},
	{"4233", "Lumber wholesale", 0.14, "Trade"},
	{"4234", "Professional equipment wholesale", 0.08, "Trade"},
	{"4235", "Metal and mineral wholesale", 0.18, "Trade"},
	{"4236", "Household appliances wholesale", 0.09, "Trade"},
	{"4237", "Hardware and plumbing wholesale", 0.11, "Trade"},
	{"4238", "Machinery wholesale", 0.10, "Trade"},
	{"4239", "Miscellaneous durable goods wholesale", 0.11, "Trade"},
	{"4241", "Paper and packaging wholesale", 0.12, "Trade"},
	{"4242", "Drugs and sundries wholesale", 0.06, "Trade"},
	{"4244", "Grocery wholesale", 0.14, "Trade"},
	{"4245", "Farm product wholesale", 0.16, "Trade"},
	{"4246", "Chemical wholesale", 0.15, "Trade"},
	{"4247", "Petroleum wholesale", 0.20, "Trade"},
	{"4248", "Beer, wine, spirits wholesale", 0.10, "Trade"},
	{"4249", "Miscellaneous nondurable wholesale", 0.11, "Trade"},
	{"4411", "Automobile dealers", 0.08, "Trade"},
	{"4413", "Auto parts and accessories stores", 0.10, "Trade"},
	{"4431", "Electronics and appliance stores", 0.07, "Trade"},
	{"4441", "Building material and supplies", 0.12, "Trade"},
	{"4451", "Grocery stores", 0.15, "Trade"},
	{"4461", "Health and personal care stores", 0.08, "Trade"},
	{"4471", "Gasoline stations", 0.22, "Trade"},
	{"4481", "Clothing stores", 0.06, "Trade"},
	{"4511", "Sporting goods/hobby/book stores", 0.07, "Trade"},
	{"4521", "Department stores", 0.09, "Trade"},
	{"4529", "Other general merchandise stores", 0.10, "Trade"},
	{"4531", "Florists", 0.08, "Trade"},
	{"4539", "Other miscellaneous store retailers", 0.09, "Trade"},
	{"4541", "Electronic shopping and mail-order", 0.05, "Trade"},
	{"4811", "Scheduled air transportation", 1.30, "Transportation"},
	{"4812", "Nonscheduled air transportation", 1.50, "Transportation"},
	{"4821", "Rail transportation", 0.60, "Transportation"},
	{"4831", "Deep sea freight transportation", 0.50, "Transportation"},
	{"4832", "Inland water transportation", 0.55, "Transportation"},
	{"4841", "General freight trucking", 0.80, "Transportation"},
	{"4842", "Specialized freight trucking", 0.75, "Transportation"},
	{"4851", "Urban transit systems", 0.65, "Transportation"},
	{"4852", "Interurban bus transportation", 0.45, "Transportation"},
	{"4853", "Taxi and limousine service", 0.60, "Transportation"},
	{"4854", "School and employee bus", 0.55, "Transportation"},
	{"4859", "Other ground passenger transport", 0.50, "Transportation"},
	{"4861", "Pipeline transportation of crude oil", 0.30, "Transportation"},
	{"4862", "Pipeline transportation of natural gas", 0.35, "Transportation"},
	{"4869", "Other pipeline transportation", 0.32, "Transportation"},
	{"4871", "Scenic and sightseeing transport", 0.40, "Transportation"},
	{"4881", "Support activities for air transport", 0.30, "Transportation"},
	{"4882", "Support activities for rail transport", 0.25, "Transportation"},
	{"4883", "Support for water transportation", 0.28, "Transportation"},
	{"4884", "Support for road transportation", 0.22, "Transportation"},
	{"4885", "Freight transportation arrangement", 0.15, "Transportation"},
	{"4889", "Other transportation support", 0.20, "Transportation"},
	{"4911", "Postal service", 0.18, "Transportation"},
	{"4921", "Couriers and express delivery", 0.25, "Transportation"},
	{"4922", "Local messengers and delivery", 0.30, "Transportation"},
	{"4931", "Warehousing and storage", 0.15, "Transportation"},
	{"5111", "Newspaper, book, directory publishers", 0.10, "Information"},
	{"5112", "Software publishers", 0.04, "Information"},
	{"5121", "Motion picture and video industries", 0.08, "Information"},
	{"5122", "Sound recording industries", 0.05, "Information"},
	{"5151", "Radio and television broadcasting", 0.07, "Information"},
	{"5152", "Cable and subscription programming", 0.06, "Information"},
	{"5171", "Wired telecommunications", 0.08, "Information"},
	{"5172", "Wireless telecommunications", 0.06, "Information"},
	{"5174", "Satellite telecommunications", 0.10, "Information"},
	{"5179", "Other telecommunications", 0.07, "Information"},
	{"5182", "Data processing and hosting", 0.12, "Information"},
	{"5191", "Other information services", 0.05, "Information"},
	{"5211", "Monetary authorities - central bank", 0.03, "Finance"},
	{"5221", "Depository credit intermediation", 0.04, "Finance"},
	{"5222", "Nondepository credit intermediation", 0.03, "Finance"},
	{"5223", "Activities related to credit", 0.03, "Finance"},
	{"5231", "Securities and commodity exchanges", 0.04, "Finance"},
	{"5239", "Other financial investment activities", 0.05, "Finance"},
	{"5241", "Insurance carriers", 0.04, "Finance"},
	{"5242", "Insurance agencies and brokerages", 0.03, "Finance"},
	{"5251", "Insurance and employee benefit funds", 0.03, "Finance"},
	{"5259", "Other investment pools and funds", 0.04, "Finance"},
	{"5311", "Lessors of real estate", 0.08, "Real Estate"},
	{"5312", "Offices of real estate agents", 0.05, "Real Estate"},
	{"5313", "Activities related to real estate", 0.06, "Real Estate"},
	{"5411", "Legal services", 0.05, "Professional"},
	{"5412", "Accounting and bookkeeping", 0.05, "Professional"},
	{"5413", "Architectural and engineering services", 0.06, "Professional"},
	{"5414", "Specialized design services", 0.04, "Professional"},
	{"5415", "Computer systems design", 0.04, "Professional"},
	{"5416", "Management consulting", 0.05, "Professional"},
	{"5417", "Scientific research and development", 0.07, "Professional"},
	{"5418", "Advertising and related services", 0.06, "Professional"},
	{"5419", "Other professional services", 0.05, "Professional"},
	{"5511", "Management of companies", 0.06, "Management"},
	{"5611", "Office administrative services", 0.05, "Admin"},
	{"5612", "Facilities support services", 0.08, "Admin"},
	{"5613", "Employment services", 0.04, "Admin"},
	{"5614", "Business support services", 0.05, "Admin"},
	{"5615", "Travel arrangement services", 0.06, "Admin"},
	{"5616", "Investigation and security services", 0.04, "Admin"},
	{"5617", "Services to buildings and dwellings", 0.07, "Admin"},
	{"5619", "Other support services", 0.05, "Admin"},
	{"5621", "Waste collection", 0.30, "Admin"},
	{"5622", "Waste treatment and disposal", 0.50, "Admin"},
	{"5629", "Remediation services", 0.25, "Admin"},
	{"6111", "Elementary and secondary schools", 0.10, "Education"},
	{"6112", "Junior colleges", 0.12, "Education"},
	{"6113", "Colleges and universities", 0.12, "Education"},
	{"6211", "Offices of physicians", 0.10, "Healthcare"},
	{"6212", "Offices of dentists", 0.08, "Healthcare"},
	{"6213", "Offices of other health practitioners", 0.08, "Healthcare"},
	{"6214", "Outpatient care centers", 0.12, "Healthcare"},
	{"6215", "Medical and diagnostic laboratories", 0.15, "Healthcare"},
	{"6216", "Home health care services", 0.08, "Healthcare"},
	{"6219", "Other ambulatory health care", 0.10, "Healthcare"},
	{"6221", "General medical and surgical hospitals", 0.20, "Healthcare"},
	{"6222", "Psychiatric and substance abuse hospitals", 0.18, "Healthcare"},
	{"6223", "Specialty hospitals", 0.19, "Healthcare"},
	{"6231", "Nursing care facilities", 0.15, "Healthcare"},
	{"6232", "Residential mental health facilities", 0.14, "Healthcare"},
	{"6233", "Continuing care retirement communities", 0.13, "Healthcare"},
	{"6239", "Other residential care facilities", 0.12, "Healthcare"},
	{"6241", "Individual and family services", 0.06, "Healthcare"},
	{"6242", "Community food/housing services", 0.08, "Healthcare"},
	{"6243", "Vocational rehabilitation services", 0.07, "Healthcare"},
	{"6244", "Child day care services", 0.06, "Healthcare"},
	{"7211", "Traveler accommodation", 0.35, "Accommodation"},
	{"7212", "RV parks and recreational camps", 0.25, "Accommodation"},
	{"7213", "Rooming and boarding houses", 0.30, "Accommodation"},
	{"7221", "Full-service restaurants", 0.30, "Food Service"},
	{"7222", "Limited-service eating places", 0.35, "Food Service"},
	{"7223", "Special food services", 0.28, "Food Service"},
	{"7224", "Drinking places (alcoholic beverages)", 0.25, "Food Service"},
	{"7111", "Performing arts companies", 0.06, "Arts"},
	{"7112", "Spectator sports", 0.08, "Arts"},
	{"7113", "Promoters of events", 0.07, "Arts"},
	{"7114", "Agents for artists and performers", 0.04, "Arts"},
	{"7115", "Independent artists and performers", 0.03, "Arts"},
	{"7121", "Museums, historical sites, zoos", 0.08, "Arts"},
	{"7131", "Amusement parks and arcades", 0.12, "Arts"},
	{"7132", "Gambling industries", 0.10, "Arts"},
	{"7139", "Other amusement and recreation", 0.09, "Arts"},
	{"8111", "Automotive repair and maintenance", 0.12, "Services"},
	{"8112", "Electronic equipment repair", 0.08, "Services"},
	{"8113", "Commercial machinery repair", 0.10, "Services"},
	{"8114", "Personal and household goods repair", 0.07, "Services"},
	{"8121", "Personal care services", 0.06, "Services"},
	{"8122", "Death care services", 0.10, "Services"},
	{"8123", "Drycleaning and laundry services", 0.15, "Services"},
	{"8129", "Other personal services", 0.06, "Services"},
}

func useeioFactors() []*Factor {
	out := make([]*Factor, 0, len(useeioSectors))
	for _, s := range useeioSectors {
		out = append(out, &Factor{
			ID:           "useeio_" + s.naics,
			Name:         s.name,
			Source:       SourceUSEEIO,
			Category:     "spend_based",
			Subcategory:  s.subsector,
			FuelType:     s.naics,
			Region:       "US",
			Year:         2023,
			ActivityUnit: "USD",
			CO2e:         s.co2e,
			HasCO2e:      true,
			Tags:         []string{"spend_based", "naics_" + s.naics, lower(s.subsector)},
		})
	}
	return out
}
