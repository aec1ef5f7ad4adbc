package vpic

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

func str(v string) *string { return &v }

func TestEngineSpec_Describe(t *testing.T) {
	cases := []struct {
		name string
		spec EngineSpec
	}{
		{"inline four dohc", EngineSpec{DisplacementL: str("1.8"), Cylinders: str("4"), EngineConfig: str("In-Line"), FuelType: str("Gasoline"), ValveTrain: str("DOHC"), HorsepowerFrom: str("132"), HorsepowerTo: str("132")}},
		{"v6 twin turbo range", EngineSpec{DisplacementL: str("3.5"), Cylinders: str("6"), EngineConfig: str("V-Shaped"), FuelType: str("Gasoline"), Turbo: str("Yes"), ValveTrain: str("DOHC"), HorsepowerFrom: str("365"), HorsepowerTo: str("450")}},
		{"boxer four", EngineSpec{DisplacementL: str("2.5"), Cylinders: str("4"), EngineConfig: str("Horizontally Opposed (Boxer)"), FuelType: str("Gasoline"), Turbo: str("NA"), ValveTrain: str("SOHC"), HorsepowerFrom: str("170")}},
		{"rotary", EngineSpec{DisplacementL: str("1.3"), Cylinders: str("2"), EngineConfig: str("Rotary")}},
		{"diesel inline", EngineSpec{DisplacementL: str("2.8"), Cylinders: str("4"), EngineConfig: str("Inline"), FuelType: str("Diesel"), Turbo: str("Yes"), ValveTrain: str("DOHC"), HorsepowerFrom: str("174"), HorsepowerTo: str("201")}},
		{"hybrid", EngineSpec{DisplacementL: str("2.5"), Cylinders: str("4"), EngineConfig: str("In-Line"), FuelType: str("Hybrid"), Turbo: str("N/A"), ValveTrain: str("DOHC")}},
		{"unknown layout", EngineSpec{DisplacementL: str("1.0"), Cylinders: str("3"), EngineConfig: str("W-Type"), Turbo: str(" ")}},
		{"cylinders only", EngineSpec{Cylinders: str("8"), FuelType: str("Flexible Fuel Vehicle (FFV)")}},
		{"electric", EngineSpec{FuelType: str("Electric"), HorsepowerFrom: str("201"), HorsepowerTo: str("201")}},
		{"empty row", EngineSpec{}},
	}

	var buf bytes.Buffer
	for _, c := range cases {
		fmt.Fprintf(&buf, "%s: %s\n", c.name, c.spec.Describe())
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "engine_descriptions", buf.Bytes())
}

func TestEngineID(t *testing.T) {
	assert.Equal(t, 448_156_900, EngineID(448, 2015, 2469, 0))
	assert.Equal(t, 448_156_902, EngineID(448, 2015, 2469, 2))
	assert.Equal(t, 1_240_569, EngineID(1, 2024, 5, 69))
}
