package inventory

import (
	"strings"

	"parts-service/internal/domain"
)

// SearchParts matches query case-insensitively against part names, part
// numbers and descriptions, then against the vendor part numbers and brand
// names of in-stock listings. Only parts with at least one in-stock listing
// are returned: direct matches first, then listing-only matches, each in
// catalog order. A blank query matches nothing.
func (m *Manager) SearchParts(query string) []domain.Part {
	if strings.TrimSpace(query) == "" {
		return []domain.Part{}
	}
	q := strings.ToLower(query)

	m.mu.RLock()
	defer m.mu.RUnlock()

	stocked := m.inStockPartIDsLocked()
	out := []domain.Part{}
	direct := make(map[int]bool)
	for _, p := range m.parts {
		if !stocked[p.ID] {
			continue
		}
		if containsFold(p.Name, q) || containsFold(p.PartNumber, q) || containsFold(p.Description, q) {
			out = append(out, p)
			direct[p.ID] = true
		}
	}

	viaListing := make(map[int]bool)
	for _, l := range m.listings {
		if l.InStock && (containsFold(l.PartNumber, q) || containsFold(l.BrandName, q)) {
			viaListing[l.PartID] = true
		}
	}
	for _, p := range m.parts {
		if viaListing[p.ID] && !direct[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// SearchPartsWithListings runs SearchParts and attaches each hit's in-stock
// listings, lowest price and number of distinct vendors.
func (m *Manager) SearchPartsWithListings(query string) []domain.PartWithListings {
	if strings.TrimSpace(query) == "" {
		return []domain.PartWithListings{}
	}
	parts := m.SearchParts(query)

	out := make([]domain.PartWithListings, 0, len(parts))
	for _, p := range parts {
		listings := m.GetListingsForPart(p.ID)
		if len(listings) == 0 {
			continue
		}
		lowest := listings[0].Price
		vendors := make(map[int]struct{})
		for _, l := range listings {
			if l.Price.LessThan(lowest) {
				lowest = l.Price
			}
			vendors[l.VendorID] = struct{}{}
		}
		out = append(out, domain.PartWithListings{
			Part:        p,
			Listings:    listings,
			LowestPrice: &lowest,
			VendorCount: len(vendors),
		})
	}
	return out
}

// SearchVendorListings filters one vendor's listings for the dashboard by
// brand, vendor part number or catalog part name. A blank query returns all of
// the vendor's listings.
func (m *Manager) SearchVendorListings(vendorID int, query string) []domain.VendorListing {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return m.GetVendorListings(vendorID)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make(map[int]string, len(m.parts))
	for _, p := range m.parts {
		names[p.ID] = p.Name
	}
	out := []domain.VendorListing{}
	for _, l := range m.listings {
		if l.VendorID != vendorID {
			continue
		}
		if containsFold(l.BrandName, q) || containsFold(l.PartNumber, q) || containsFold(names[l.PartID], q) {
			out = append(out, l)
		}
	}
	return out
}

// containsFold reports whether s contains the already lower-cased needle.
func containsFold(s, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(s), lowerNeedle)
}
