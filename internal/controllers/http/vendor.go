package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"parts-service/internal/domain"
	"parts-service/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetDashboard(c *gin.Context) {
	vendorID, ok := intParam(c, "vendorId")
	if !ok {
		return
	}
	stats, err := h.dashboard.Stats(c.Request.Context(), vendorID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetVendorListings(c *gin.Context) {
	vendorID, ok := intParam(c, "vendorId")
	if !ok {
		return
	}
	listings, err := h.store.VendorListings(vendorID, c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *Handler) CreateListing(c *gin.Context) {
	vendorID, ok := intParam(c, "vendorId")
	if !ok {
		return
	}
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
		return
	}

	l, err := h.store.CreateListing(vendorID, services.ListingInput{
		PartID:        req.PartID,
		BrandName:     req.BrandName,
		PartNumber:    req.PartNumber,
		Price:         req.Price,
		StockQuantity: *req.StockQuantity,
		Condition:     req.Condition,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// UpdateListing replaces price and stock. inStock defaults to stock > 0.
func (h *Handler) UpdateListing(c *gin.Context) {
	vendorID, ok := intParam(c, "vendorId")
	if !ok {
		return
	}
	listingID, ok := intParam(c, "listingId")
	if !ok {
		return
	}
	var req UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
		return
	}
	inStock := *req.StockQuantity > 0
	if req.InStock != nil {
		inStock = *req.InStock
	}

	l, err := h.store.UpdateListing(vendorID, listingID, req.Price, *req.StockQuantity, inStock)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *Handler) DeleteListing(c *gin.Context) {
	vendorID, ok := intParam(c, "vendorId")
	if !ok {
		return
	}
	listingID, ok := intParam(c, "listingId")
	if !ok {
		return
	}
	if err := h.store.RemoveListing(vendorID, listingID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetOrders(c *gin.Context) {
	vendorID, ok := intParam(c, "vendorId")
	if !ok {
		return
	}
	orders, err := h.dashboard.Orders(c.Request.Context(), vendorID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	vendorID, ok := intParam(c, "vendorId")
	if !ok {
		return
	}
	orderID, ok := orderParam(c)
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status := domain.OrderStatus(strings.ToUpper(strings.TrimSpace(req.Status)))
	o, err := h.dashboard.UpdateOrderStatus(c.Request.Context(), vendorID, orderID, status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) GetReceipt(c *gin.Context) {
	vendorID, ok := intParam(c, "vendorId")
	if !ok {
		return
	}
	orderID, ok := orderParam(c)
	if !ok {
		return
	}
	pdf, err := h.dashboard.Receipt(c.Request.Context(), vendorID, orderID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="order-%d.pdf"`, orderID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func orderParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("orderId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "orderId must be a non-negative integer"})
		return 0, false
	}
	return id, true
}
