package domain

import (
	"strconv"
	"strings"
)

type VehicleMake struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type VehicleModel struct {
	ID     int    `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	MakeID int    `json:"makeId" yaml:"make_id"`
	Year   int    `json:"year" yaml:"year"`
}

type VehicleEngine struct {
	ID          int    `json:"id" yaml:"id"`
	Description string `json:"description" yaml:"description"`
	ModelID     int    `json:"modelId" yaml:"model_id"`
}

// VehicleSelection is the buyer's make/year/model/engine drill-down.
type VehicleSelection struct {
	Make   *VehicleMake   `json:"make,omitempty"`
	Year   *int           `json:"year,omitempty"`
	Model  *VehicleModel  `json:"model,omitempty"`
	Engine *VehicleEngine `json:"engine,omitempty"`
}

// Breadcrumb renders "Make > Model > Year > Engine", skipping unset levels.
func (s VehicleSelection) Breadcrumb() string {
	var parts []string
	if s.Make != nil {
		parts = append(parts, s.Make.Name)
	}
	if s.Model != nil {
		parts = append(parts, s.Model.Name)
	}
	if s.Year != nil {
		parts = append(parts, strconv.Itoa(*s.Year))
	}
	if s.Engine != nil {
		parts = append(parts, s.Engine.Description)
	}
	return strings.Join(parts, " > ")
}

func (s VehicleSelection) IsComplete() bool {
	return s.Make != nil && s.Year != nil && s.Model != nil && s.Engine != nil
}
