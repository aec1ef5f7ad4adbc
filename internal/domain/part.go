package domain

import "github.com/shopspring/decimal"

type PartCategory struct {
	ID            int            `json:"id" yaml:"id"`
	Name          string         `json:"name" yaml:"name"`
	ParentID      *int           `json:"parentId,omitempty" yaml:"parent_id"`
	Subcategories []PartCategory `json:"subcategories,omitempty" yaml:"subcategories"`
}

type Part struct {
	ID                  int      `json:"id" yaml:"id"`
	Name                string   `json:"name" yaml:"name"`
	PartNumber          string   `json:"partNumber" yaml:"part_number"`
	CategoryID          int      `json:"categoryId" yaml:"category_id"`
	Description         string   `json:"description" yaml:"description"`
	Specifications      []string `json:"specifications" yaml:"specifications"`
	CompatibleEngineIDs []int    `json:"compatibleEngineIds" yaml:"compatible_engine_ids"`
}

// FitsEngine reports whether the part lists engineID as compatible.
func (p Part) FitsEngine(engineID int) bool {
	for _, id := range p.CompatibleEngineIDs {
		if id == engineID {
			return true
		}
	}
	return false
}

// PartWithListings is a search hit: a catalog part together with the in-stock
// offers for it.
type PartWithListings struct {
	Part        Part             `json:"part"`
	Listings    []VendorListing  `json:"listings"`
	LowestPrice *decimal.Decimal `json:"lowestPrice,omitempty"`
	VendorCount int              `json:"vendorCount"`
}
