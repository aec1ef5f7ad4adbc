// Package vpic reads the bundled vPIC vehicle lookup table, a read-only
// SQLite file holding makes, models, model years and engine specifications.
package vpic

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"parts-service/internal/domain"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// ErrUnavailable means no lookup table exists at the configured path.
var ErrUnavailable = errors.New("vpic: lookup table unavailable")

type Store struct {
	db *sql.DB
}

// Open opens an existing lookup table read-only.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, ErrUnavailable
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrUnavailable, path)
		}
		return nil, err
	}

	db, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open lookup table: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to lookup table: %w", err)
	}
	if _, err := db.Exec("SELECT 1 FROM makes LIMIT 1"); err != nil {
		db.Close()
		return nil, fmt.Errorf("lookup table %s has no makes table: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Create builds an empty lookup table at path, used to assemble new tables.
func Create(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lookup table: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Name() string { return "local" }

func (s *Store) Makes(ctx context.Context) ([]domain.VehicleMake, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name FROM makes ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query makes: %w", err)
	}
	defer rows.Close()

	out := []domain.VehicleMake{}
	for rows.Next() {
		var m domain.VehicleMake
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("scan make: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) ModelsForMake(ctx context.Context, makeID int) ([]domain.VehicleModel, error) {
	return s.models(ctx, 0,
		"SELECT id, name FROM models WHERE make_id = ? ORDER BY name", makeID)
}

// YearsForMake lists the model years of any of the make's models, newest first.
func (s *Store) YearsForMake(ctx context.Context, makeID int) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT DISTINCT y.year
		FROM model_years y JOIN models m ON m.id = y.model_id
		WHERE m.make_id = ?
		ORDER BY y.year DESC`, makeID)
	if err != nil {
		return nil, fmt.Errorf("query years: %w", err)
	}
	defer rows.Close()

	out := []int{}
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("scan year: %w", err)
		}
		out = append(out, y)
	}
	return out, rows.Err()
}

func (s *Store) ModelsForMakeAndYear(ctx context.Context, makeID, year int) ([]domain.VehicleModel, error) {
	return s.models(ctx, year, `
		SELECT m.id, m.name
		FROM models m JOIN model_years y ON y.model_id = m.id
		WHERE m.make_id = ? AND y.year = ?
		ORDER BY m.name`, makeID, year)
}

// EngineSpecs returns the raw engine rows for a make, year and model.
func (s *Store) EngineSpecs(ctx context.Context, makeID, year, modelID int) ([]EngineSpec, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT displacement_l, cylinders, engine_config, fuel_type, turbo,
		       valve_train, horsepower_from, horsepower_to
		FROM engine_specs
		WHERE make_id = ? AND year = ? AND model_id = ?
		ORDER BY id`, makeID, year, modelID)
	if err != nil {
		return nil, fmt.Errorf("query engine specs: %w", err)
	}
	defer rows.Close()

	out := []EngineSpec{}
	for rows.Next() {
		var cols [8]sql.NullString
		if err := rows.Scan(&cols[0], &cols[1], &cols[2], &cols[3], &cols[4], &cols[5], &cols[6], &cols[7]); err != nil {
			return nil, fmt.Errorf("scan engine spec: %w", err)
		}
		out = append(out, EngineSpec{
			DisplacementL:  ptr(cols[0]),
			Cylinders:      ptr(cols[1]),
			EngineConfig:   ptr(cols[2]),
			FuelType:       ptr(cols[3]),
			Turbo:          ptr(cols[4]),
			ValveTrain:     ptr(cols[5]),
			HorsepowerFrom: ptr(cols[6]),
			HorsepowerTo:   ptr(cols[7]),
		})
	}
	return out, rows.Err()
}

// EnginesForModel turns the model's engine rows into described engines.
func (s *Store) EnginesForModel(ctx context.Context, makeID, year, modelID int) ([]domain.VehicleEngine, error) {
	specs, err := s.EngineSpecs(ctx, makeID, year, modelID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.VehicleEngine, 0, len(specs))
	for i, spec := range specs {
		out = append(out, domain.VehicleEngine{
			ID:          EngineID(makeID, year, modelID, i),
			Description: spec.Describe(),
			ModelID:     modelID,
		})
	}
	return out, nil
}

func (s *Store) models(ctx context.Context, year int, query string, args ...any) ([]domain.VehicleModel, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query models: %w", err)
	}
	defer rows.Close()

	out := []domain.VehicleModel{}
	for rows.Next() {
		m := domain.VehicleModel{MakeID: args[0].(int), Year: year}
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, fmt.Errorf("scan model: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func ptr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
