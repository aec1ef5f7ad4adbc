package http

import (
	"net/http"

	"parts-service/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCategories(c *gin.Context) {
	engineID, _, ok := intQuery(c, "engineId")
	if !ok {
		return
	}
	categories, err := h.vehicles.GetCategoriesForEngine(c.Request.Context(), engineID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategoryParts lists a category's stocked parts. ?engineId= narrows them to
// the selected engine; ?all=true includes parts nobody stocks.
func (h *Handler) GetCategoryParts(c *gin.Context) {
	categoryID, ok := intParam(c, "categoryId")
	if !ok {
		return
	}
	engineID, byEngine, ok := intQuery(c, "engineId")
	if !ok {
		return
	}

	switch {
	case c.Query("all") == "true":
		c.JSON(http.StatusOK, h.inventory.GetAllPartsForCategory(categoryID))
	case byEngine:
		parts, err := h.vehicles.GetPartsForCategory(c.Request.Context(), categoryID, engineID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, parts)
	default:
		c.JSON(http.StatusOK, h.inventory.GetPartsForCategory(categoryID))
	}
}

// GetParts returns the whole catalog, which is what vendors pick from when
// creating a listing.
func (h *Handler) GetParts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.ListableParts())
}

func (h *Handler) GetPart(c *gin.Context) {
	partID, ok := intParam(c, "partId")
	if !ok {
		return
	}
	p := h.inventory.GetPartByID(partID)
	if p == nil {
		writeError(c, services.ErrPartNotFound)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) GetPartListings(c *gin.Context) {
	partID, ok := intParam(c, "partId")
	if !ok {
		return
	}
	if h.inventory.GetPartByID(partID) == nil {
		writeError(c, services.ErrPartNotFound)
		return
	}
	if c.Query("all") == "true" {
		c.JSON(http.StatusOK, h.inventory.GetAllListingsForPart(partID))
		return
	}
	listings, err := h.vehicles.GetListingsForPart(c.Request.Context(), partID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *Handler) Search(c *gin.Context) {
	c.JSON(http.StatusOK, h.inventory.SearchPartsWithListings(c.Query("q")))
}

func (h *Handler) SearchParts(c *gin.Context) {
	parts, err := h.vehicles.SearchParts(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

func (h *Handler) GetVendors(c *gin.Context) {
	vendors, err := h.vehicles.GetVendors(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vendors)
}

func (h *Handler) GetVendor(c *gin.Context) {
	vendorID, ok := intParam(c, "vendorId")
	if !ok {
		return
	}
	v, err := h.vehicles.GetVendor(c.Request.Context(), vendorID)
	if err != nil {
		writeError(c, err)
		return
	}
	if v == nil {
		writeError(c, services.ErrVendorNotFound)
		return
	}
	c.JSON(http.StatusOK, v)
}
