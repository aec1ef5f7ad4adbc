// Package catalog loads the seed data the marketplace starts from: vendors, the
// part category tree, catalog parts, vendor listings, demo orders and a static
// vehicle taxonomy used when no other vehicle source answers.
package catalog

import (
	_ "embed"
	"fmt"

	"parts-service/internal/domain"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

//go:embed vehicles.yaml
var vehiclesYAML []byte

//go:embed orders.yaml
var ordersYAML []byte

type Catalog struct {
	Vendors    []domain.Vendor
	Categories []domain.PartCategory
	Parts      []domain.Part
	Listings   []domain.VendorListing
}

type listingRecord struct {
	ID            int             `yaml:"id"`
	PartID        int             `yaml:"part_id"`
	VendorID      int             `yaml:"vendor_id"`
	VendorName    string          `yaml:"vendor_name"`
	BrandName     string          `yaml:"brand_name"`
	PartNumber    string          `yaml:"part_number"`
	Price         decimal.Decimal `yaml:"price"`
	Currency      string          `yaml:"currency"`
	InStock       bool            `yaml:"in_stock"`
	StockQuantity int             `yaml:"stock_quantity"`
	Condition     string          `yaml:"condition"`
}

type catalogFile struct {
	Vendors    []domain.Vendor       `yaml:"vendors"`
	Categories []domain.PartCategory `yaml:"categories"`
	Parts      []domain.Part         `yaml:"parts"`
	Listings   []listingRecord       `yaml:"listings"`
}

// Load parses the embedded seed catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse decodes a catalog document. Listing currency and condition default to
// GHS and New.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	c := &Catalog{
		Vendors:    f.Vendors,
		Categories: f.Categories,
		Parts:      f.Parts,
		Listings:   make([]domain.VendorListing, 0, len(f.Listings)),
	}
	for _, r := range f.Listings {
		l := domain.VendorListing{
			ID:            r.ID,
			PartID:        r.PartID,
			VendorID:      r.VendorID,
			VendorName:    r.VendorName,
			BrandName:     r.BrandName,
			PartNumber:    r.PartNumber,
			Price:         r.Price,
			Currency:      r.Currency,
			InStock:       r.InStock,
			StockQuantity: r.StockQuantity,
			Condition:     r.Condition,
		}
		if l.Currency == "" {
			l.Currency = domain.DefaultCurrency
		}
		if l.Condition == "" {
			l.Condition = domain.DefaultCondition
		}
		c.Listings = append(c.Listings, l)
	}
	return c, nil
}

// MustLoad is Load for process start-up and tests; the embedded file is part of
// the binary so a decode failure is a build defect.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}
