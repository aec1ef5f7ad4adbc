package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_SearchParts(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int
	}{
		{name: "empty query", query: "", want: []int{}},
		{name: "whitespace query", query: "   ", want: []int{}},
		{name: "name match is case insensitive", query: "BRAKE PAD", want: []int{1, 2, 3, 4, 5}},
		{name: "part without stock is excluded", query: "radiator", want: []int{21}},
		{name: "listing brand match", query: "ngk", want: []int{16, 17, 62}},
		{name: "brand only reachable through listing", query: "k&n", want: []int{15}},
		{name: "vendor part number match", query: "04465", want: []int{1}},
		{name: "no match", query: "xyz", want: []int{}},
	}

	m := newTestManager(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.SearchParts(tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, partIDs(got))
		})
	}
}

func TestManager_SearchParts_NoDuplicates(t *testing.T) {
	m := newTestManager(t)

	// "bosch" appears in no part text, so every hit comes from listings.
	hits := partIDs(m.SearchParts("bosch"))
	require.NotEmpty(t, hits)

	seen := map[int]bool{}
	for _, id := range hits {
		assert.False(t, seen[id], "duplicate part %d", id)
		seen[id] = true
	}
}

func TestManager_SearchPartsWithListings(t *testing.T) {
	m := newTestManager(t)

	results := m.SearchPartsWithListings("radiator")
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, 21, r.Part.ID)
	assert.Equal(t, []int{52, 53, 54}, listingIDs(r.Listings))
	require.NotNil(t, r.LowestPrice)
	assert.True(t, decimal.NewFromInt(520).Equal(*r.LowestPrice))
	assert.Equal(t, 3, r.VendorCount)

	assert.Empty(t, m.SearchPartsWithListings("  "))
}

func TestManager_SearchPartsWithListings_NeverEmptyListings(t *testing.T) {
	m := newTestManager(t)
	m.UpdateStockAfterPurchase(52, 1000)

	for _, q := range []string{"brake", "filter", "radiator", "bosch", "a"} {
		for _, r := range m.SearchPartsWithListings(q) {
			assert.NotEmpty(t, r.Listings, "query %q part %d", q, r.Part.ID)
			for _, l := range r.Listings {
				assert.True(t, l.InStock)
			}
		}
	}
}

func TestManager_SearchVendorListings(t *testing.T) {
	m := newTestManager(t)

	assert.Len(t, m.SearchVendorListings(5, ""), 5)
	assert.Equal(t, []int{61}, listingIDs(m.SearchVendorListings(5, "mann")))
	assert.Equal(t, []int{93}, listingIDs(m.SearchVendorListings(5, "se-t291")))
	// catalog part name of listing 93 is "Outer Tie Rod End"
	assert.Equal(t, []int{93}, listingIDs(m.SearchVendorListings(5, "tie rod")))
	assert.Empty(t, m.SearchVendorListings(5, "bosch"))
}
