package factors

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/carbon-cli/internal/gwp"
)

// customFile is the YAML layout for user-supplied factor files:
//
//	factors:
//	  - id: my_boiler
//	    name: Site Boiler
//	    category: stationary_combustion
//	    fuel_type: natural_gas
//	    co2e_factor: 5.31
//	    activity_unit: therm
type customFile struct {
	Factors []customFactor `yaml:"factors"`
}

type customFactor struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name"`
	Category     string         `yaml:"category"`
	Subcategory  string         `yaml:"subcategory"`
	FuelType     string         `yaml:"fuel_type"`
	Region       string         `yaml:"region"`
	Year         int            `yaml:"year"`
	ActivityUnit string         `yaml:"activity_unit"`
	CO2          float64        `yaml:"co2_factor"`
	CH4          float64        `yaml:"ch4_factor"`
	N2O          float64        `yaml:"n2o_factor"`
	CO2e         *float64       `yaml:"co2e_factor"`
	GWP          gwp.Assessment `yaml:"gwp_assessment"`
	Description  string         `yaml:"description"`
	Tags         []string       `yaml:"tags"`
}

// LoadCustomFile merges user-defined factors from a YAML file into the
// registry. Custom factors rank last in source precedence, so they
// never shadow embedded factors in Find; callers select them by ID,
// by source, or via an activity's custom_factor override.
func (r *Registry) LoadCustomFile(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, eris.Wrapf(err, "factors: read custom file %s", path)
	}

	var cf customFile
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return 0, eris.Wrapf(err, "factors: parse custom file %s", path)
	}

	added := 0
	for i, c := range cf.Factors {
		if c.ID == "" {
			return added, eris.Errorf("factors: custom factor %d missing id", i)
		}
		if c.ActivityUnit == "" {
			return added, eris.Errorf("factors: custom factor %s missing activity_unit", c.ID)
		}
		if c.CO2e == nil && c.CO2 == 0 && c.CH4 == 0 && c.N2O == 0 {
			return added, eris.Errorf("factors: custom factor %s has no emission values", c.ID)
		}
		if c.GWP != "" {
			if _, err := gwp.ParseAssessment(string(c.GWP)); err != nil {
				return added, eris.Wrapf(err, "factors: custom factor %s", c.ID)
			}
		}

		f := &Factor{
			ID:           c.ID,
			Name:         c.Name,
			Source:       SourceCustom,
			Category:     c.Category,
			Subcategory:  c.Subcategory,
			FuelType:     c.FuelType,
			Region:       c.Region,
			Year:         c.Year,
			ActivityUnit: c.ActivityUnit,
			CO2:          c.CO2,
			CH4:          c.CH4,
			N2O:          c.N2O,
			GWP:          c.GWP,
			Description:  c.Description,
			Tags:         c.Tags,
		}
		if c.CO2e != nil {
			f.CO2e = *c.CO2e
			f.HasCO2e = true
		}
		r.Add(f)
		added++
	}
	return added, nil
}
