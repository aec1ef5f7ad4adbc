package vehicle

import (
	"context"

	"parts-service/internal/catalog"
	"parts-service/internal/domain"
	"parts-service/internal/infra"
	"parts-service/internal/infra/vpic"
)

var (
	_ Source = (*vpic.Store)(nil)
	_ Source = (*MockSource)(nil)
	_ Source = (*RemoteSource)(nil)
)

// Source is one provider of the make/year/model/engine taxonomy. Ids are only
// meaningful within the source that minted them.
type Source interface {
	Name() string
	Makes(ctx context.Context) ([]domain.VehicleMake, error)
	YearsForMake(ctx context.Context, makeID int) ([]int, error)
	ModelsForMake(ctx context.Context, makeID int) ([]domain.VehicleModel, error)
	ModelsForMakeAndYear(ctx context.Context, makeID, year int) ([]domain.VehicleModel, error)
	EnginesForModel(ctx context.Context, makeID, year, modelID int) ([]domain.VehicleEngine, error)
}

const (
	SourceLocal  = "local"
	SourceRemote = "remote"
	SourceMock   = "mock"
)

// MockSource serves the static taxonomy fixtures. Its engine ids are the ones
// catalog parts list as compatible.
type MockSource struct {
	v *catalog.Vehicles
}

func NewMockSource(v *catalog.Vehicles) *MockSource {
	return &MockSource{v: v}
}

func (m *MockSource) Name() string { return SourceMock }

func (m *MockSource) Makes(ctx context.Context) ([]domain.VehicleMake, error) {
	return append([]domain.VehicleMake{}, m.v.Makes...), nil
}

func (m *MockSource) YearsForMake(ctx context.Context, makeID int) ([]int, error) {
	return m.v.YearsForMake(makeID), nil
}

// ModelsForMake lists each model name once, taking its first fixture entry.
func (m *MockSource) ModelsForMake(ctx context.Context, makeID int) ([]domain.VehicleModel, error) {
	seen := make(map[string]bool)
	out := []domain.VehicleModel{}
	for _, model := range m.v.Models {
		if model.MakeID == makeID && !seen[model.Name] {
			seen[model.Name] = true
			out = append(out, model)
		}
	}
	return out, nil
}

func (m *MockSource) ModelsForMakeAndYear(ctx context.Context, makeID, year int) ([]domain.VehicleModel, error) {
	out := []domain.VehicleModel{}
	for _, model := range m.v.Models {
		if model.MakeID == makeID && model.Year == year {
			out = append(out, model)
		}
	}
	return out, nil
}

func (m *MockSource) EnginesForModel(ctx context.Context, makeID, year, modelID int) ([]domain.VehicleEngine, error) {
	out := []domain.VehicleEngine{}
	for _, e := range m.v.Engines {
		if e.ModelID == modelID {
			out = append(out, e)
		}
	}
	return out, nil
}

const (
	remoteNewestYear = 2025
	remoteOldestYear = 2000
)

var remoteEngines = []string{"1.6L L4 DOHC", "2.0L L4 DOHC", "2.5L L4 DOHC"}

// RemoteSource serves makes and models from the public vehicle API. The API
// has no per-make year list or engine data, so years are a fixed range and
// engines are common configurations keyed off the model id.
type RemoteSource struct {
	api infra.VehicleAPI
}

func NewRemoteSource(api infra.VehicleAPI) *RemoteSource {
	return &RemoteSource{api: api}
}

func (r *RemoteSource) Name() string { return SourceRemote }

func (r *RemoteSource) Makes(ctx context.Context) ([]domain.VehicleMake, error) {
	return r.api.GetAllMakes(ctx)
}

func (r *RemoteSource) YearsForMake(ctx context.Context, makeID int) ([]int, error) {
	years := make([]int, 0, remoteNewestYear-remoteOldestYear+1)
	for y := remoteNewestYear; y >= remoteOldestYear; y-- {
		years = append(years, y)
	}
	return years, nil
}

func (r *RemoteSource) ModelsForMake(ctx context.Context, makeID int) ([]domain.VehicleModel, error) {
	return r.api.GetModelsForMake(ctx, makeID)
}

func (r *RemoteSource) ModelsForMakeAndYear(ctx context.Context, makeID, year int) ([]domain.VehicleModel, error) {
	return r.api.GetModelsForMakeAndYear(ctx, makeID, year)
}

func (r *RemoteSource) EnginesForModel(ctx context.Context, makeID, year, modelID int) ([]domain.VehicleEngine, error) {
	out := make([]domain.VehicleEngine, 0, len(remoteEngines))
	for i, desc := range remoteEngines {
		out = append(out, domain.VehicleEngine{
			ID:          modelID*100 + i + 1,
			Description: desc,
			ModelID:     modelID,
		})
	}
	return out, nil
}
