package vpic

import (
	"strings"
)

// EngineSpec is one engine_specs row. Absent columns are nil.
type EngineSpec struct {
	DisplacementL  *string
	Cylinders      *string
	EngineConfig   *string
	FuelType       *string
	Turbo          *string
	ValveTrain     *string
	HorsepowerFrom *string
	HorsepowerTo   *string
}

// Describe renders a spec as e.g. "2.5L L4 DOHC Turbo 150-180hp".
func (e EngineSpec) Describe() string {
	var parts []string

	if e.DisplacementL != nil {
		parts = append(parts, *e.DisplacementL+"L")
	}

	switch {
	case e.EngineConfig != nil && e.Cylinders != nil:
		parts = append(parts, layoutPrefix(*e.EngineConfig)+*e.Cylinders)
	case e.Cylinders != nil:
		parts = append(parts, *e.Cylinders+"cyl")
	}

	if e.ValveTrain != nil {
		parts = append(parts, *e.ValveTrain)
	}

	if e.Turbo != nil {
		t := *e.Turbo
		if strings.TrimSpace(t) != "" && !strings.EqualFold(t, "NA") && !strings.EqualFold(t, "N/A") {
			parts = append(parts, "Turbo")
		}
	}

	if e.FuelType != nil {
		f := *e.FuelType
		switch {
		case containsFold(f, "Diesel"):
			parts = append(parts, "Diesel")
		case containsFold(f, "Electric"), containsFold(f, "Hybrid"):
			parts = append(parts, f)
		}
	}

	switch {
	case e.HorsepowerFrom != nil && e.HorsepowerTo != nil && *e.HorsepowerFrom != *e.HorsepowerTo:
		parts = append(parts, *e.HorsepowerFrom+"-"+*e.HorsepowerTo+"hp")
	case e.HorsepowerFrom != nil:
		parts = append(parts, *e.HorsepowerFrom+"hp")
	}

	if len(parts) == 0 {
		return "Unknown Engine"
	}
	return strings.Join(parts, " ")
}

func layoutPrefix(config string) string {
	switch {
	case containsFold(config, "In-Line"), containsFold(config, "Inline"):
		return "L"
	case containsFold(config, "V-Type"), containsFold(config, "V-Shaped"):
		return "V"
	case containsFold(config, "Flat"), containsFold(config, "Opposed"):
		return "H"
	case containsFold(config, "Rotary"):
		return "R"
	default:
		return ""
	}
}

// EngineID derives a stable id for the index-th engine of a make/year/model.
func EngineID(makeID, year, modelID, index int) int {
	return makeID*1_000_000 + (year%100)*10_000 + (modelID%100)*100 + index
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
