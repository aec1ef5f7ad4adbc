package catalog

import (
	"fmt"

	"parts-service/internal/domain"

	"gopkg.in/yaml.v3"
)

type yearRange struct {
	MakeID int `yaml:"make_id"`
	From   int `yaml:"from"`
	To     int `yaml:"to"`
}

// Vehicles is the static make/year/model/engine taxonomy.
type Vehicles struct {
	Makes   []domain.VehicleMake   `yaml:"makes"`
	Years   []yearRange            `yaml:"years"`
	Models  []domain.VehicleModel  `yaml:"models"`
	Engines []domain.VehicleEngine `yaml:"engines"`
}

func LoadVehicles() (*Vehicles, error) {
	var v Vehicles
	if err := yaml.Unmarshal(vehiclesYAML, &v); err != nil {
		return nil, fmt.Errorf("catalog: decode vehicles: %w", err)
	}
	return &v, nil
}

// YearsForMake returns the make's model years, newest first.
func (v *Vehicles) YearsForMake(makeID int) []int {
	for _, r := range v.Years {
		if r.MakeID != makeID {
			continue
		}
		years := make([]int, 0, r.To-r.From+1)
		for y := r.To; y >= r.From; y-- {
			years = append(years, y)
		}
		return years
	}
	return []int{}
}
