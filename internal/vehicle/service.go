// Package vehicle is the single entry point for vehicle taxonomy and catalog
// browsing. It picks one taxonomy source the first time makes are requested
// and keeps using it, so that ids from one source are never looked up in
// another.
package vehicle

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"parts-service/internal/domain"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNoSource is returned when every source failed or answered empty.
	ErrNoSource = errors.New("no vehicle source available")
	// ErrUpstream wraps failures of the pinned source.
	ErrUpstream = errors.New("vehicle source failed")
)

var tracer = otel.Tracer("parts-service/vehicle")

type PartsDataService interface {
	GetMakes(ctx context.Context) ([]domain.VehicleMake, error)
	GetYearsForMake(ctx context.Context, makeID int) ([]int, error)
	GetModelsForMake(ctx context.Context, makeID int) ([]domain.VehicleModel, error)
	GetModelsForMakeAndYear(ctx context.Context, makeID, year int) ([]domain.VehicleModel, error)
	GetEnginesForModel(ctx context.Context, makeID, year, modelID int) ([]domain.VehicleEngine, error)
	GetCategoriesForEngine(ctx context.Context, engineID int) ([]domain.PartCategory, error)
	GetPartsForCategory(ctx context.Context, categoryID, engineID int) ([]domain.Part, error)
	GetListingsForPart(ctx context.Context, partID int) ([]domain.VendorListing, error)
	GetVendor(ctx context.Context, vendorID int) (*domain.Vendor, error)
	GetVendors(ctx context.Context) ([]domain.Vendor, error)
	SearchParts(ctx context.Context, query string) ([]domain.Part, error)
	SourceName(ctx context.Context) (string, error)
}

// Catalog is the inventory view the service browses.
type Catalog interface {
	Categories() []domain.PartCategory
	GetPartsForCategory(categoryID int) []domain.Part
	GetListingsForPart(partID int) []domain.VendorListing
	GetVendor(vendorID int) *domain.Vendor
	Vendors() []domain.Vendor
	SearchParts(query string) []domain.Part
}

var _ PartsDataService = (*Service)(nil)

type Service struct {
	catalog Catalog
	sources []Source
	group   singleflight.Group

	mu     sync.RWMutex
	pinned Source
	makes  []domain.VehicleMake
}

// NewService tries sources in the given order; nil entries are skipped.
func NewService(catalog Catalog, sources ...Source) *Service {
	s := &Service{catalog: catalog}
	for _, src := range sources {
		if src != nil {
			s.sources = append(s.sources, src)
		}
	}
	return s
}

// pin returns the selected source, selecting it on first use. Concurrent first
// callers share one selection.
func (s *Service) pin(ctx context.Context) (Source, error) {
	s.mu.RLock()
	src := s.pinned
	s.mu.RUnlock()
	if src != nil {
		return src, nil
	}

	v, err, _ := s.group.Do("select", func() (interface{}, error) {
		s.mu.RLock()
		src := s.pinned
		s.mu.RUnlock()
		if src != nil {
			return src, nil
		}
		return s.selectSource(context.WithoutCancel(ctx))
	})
	if err != nil {
		return nil, err
	}
	return v.(Source), nil
}

func (s *Service) selectSource(ctx context.Context) (Source, error) {
	ctx, span := tracer.Start(ctx, "vehicle.selectSource")
	defer span.End()

	for _, src := range s.sources {
		makes, err := src.Makes(ctx)
		if err != nil {
			log.Printf("vehicle source %s failed: %v", src.Name(), err)
			continue
		}
		if len(makes) == 0 {
			log.Printf("vehicle source %s has no makes", src.Name())
			continue
		}

		s.mu.Lock()
		s.pinned = src
		s.makes = makes
		s.mu.Unlock()

		span.SetAttributes(attribute.String("vehicle.source", src.Name()))
		log.Printf("vehicle source pinned: %s (%d makes)", src.Name(), len(makes))
		return src, nil
	}

	span.SetStatus(codes.Error, ErrNoSource.Error())
	return nil, ErrNoSource
}

func lookup[T any](ctx context.Context, s *Service, op string, fn func(context.Context, Source) (T, error)) (T, error) {
	ctx, span := tracer.Start(ctx, "vehicle."+op)
	defer span.End()

	var zero T
	src, err := s.pin(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return zero, err
	}
	span.SetAttributes(attribute.String("vehicle.source", src.Name()))

	out, err := fn(ctx, src)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return zero, fmt.Errorf("%w: %s: %w", ErrUpstream, src.Name(), err)
	}
	return out, nil
}

// GetMakes returns the makes of the pinned source as captured at selection.
func (s *Service) GetMakes(ctx context.Context) ([]domain.VehicleMake, error) {
	return lookup(ctx, s, "GetMakes", func(context.Context, Source) ([]domain.VehicleMake, error) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return append([]domain.VehicleMake{}, s.makes...), nil
	})
}

func (s *Service) GetYearsForMake(ctx context.Context, makeID int) ([]int, error) {
	return lookup(ctx, s, "GetYearsForMake", func(ctx context.Context, src Source) ([]int, error) {
		return src.YearsForMake(ctx, makeID)
	})
}

func (s *Service) GetModelsForMake(ctx context.Context, makeID int) ([]domain.VehicleModel, error) {
	return lookup(ctx, s, "GetModelsForMake", func(ctx context.Context, src Source) ([]domain.VehicleModel, error) {
		return src.ModelsForMake(ctx, makeID)
	})
}

func (s *Service) GetModelsForMakeAndYear(ctx context.Context, makeID, year int) ([]domain.VehicleModel, error) {
	return lookup(ctx, s, "GetModelsForMakeAndYear", func(ctx context.Context, src Source) ([]domain.VehicleModel, error) {
		return src.ModelsForMakeAndYear(ctx, makeID, year)
	})
}

func (s *Service) GetEnginesForModel(ctx context.Context, makeID, year, modelID int) ([]domain.VehicleEngine, error) {
	return lookup(ctx, s, "GetEnginesForModel", func(ctx context.Context, src Source) ([]domain.VehicleEngine, error) {
		return src.EnginesForModel(ctx, makeID, year, modelID)
	})
}

// SourceName reports which source is pinned, selecting one if needed.
func (s *Service) SourceName(ctx context.Context) (string, error) {
	src, err := s.pin(ctx)
	if err != nil {
		return "", err
	}
	return src.Name(), nil
}

// GetCategoriesForEngine returns the full category tree; categories do not
// depend on the engine.
func (s *Service) GetCategoriesForEngine(ctx context.Context, engineID int) ([]domain.PartCategory, error) {
	return s.catalog.Categories(), nil
}

// GetPartsForCategory returns the category's in-stock parts. Only the mock
// source shares engine ids with the catalog, so engine fit is checked only
// while it is pinned.
func (s *Service) GetPartsForCategory(ctx context.Context, categoryID, engineID int) ([]domain.Part, error) {
	parts := s.catalog.GetPartsForCategory(categoryID)

	name, err := s.SourceName(ctx)
	if err != nil || name != SourceMock {
		return parts, nil
	}
	out := []domain.Part{}
	for _, p := range parts {
		if p.FitsEngine(engineID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) GetListingsForPart(ctx context.Context, partID int) ([]domain.VendorListing, error) {
	return s.catalog.GetListingsForPart(partID), nil
}

func (s *Service) GetVendor(ctx context.Context, vendorID int) (*domain.Vendor, error) {
	return s.catalog.GetVendor(vendorID), nil
}

func (s *Service) GetVendors(ctx context.Context) ([]domain.Vendor, error) {
	return s.catalog.Vendors(), nil
}

func (s *Service) SearchParts(ctx context.Context, query string) ([]domain.Part, error) {
	return s.catalog.SearchParts(query), nil
}
