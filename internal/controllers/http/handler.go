package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"parts-service/internal/inventory"
	"parts-service/internal/services"
	"parts-service/internal/vehicle"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	vehicles  vehicle.PartsDataService
	inventory *inventory.Manager
	store     *services.StoreService
	dashboard *services.DashboardService
	origins   []string
	upgrader  websocket.Upgrader
}

func NewHandler(v vehicle.PartsDataService, inv *inventory.Manager, store *services.StoreService, dashboard *services.DashboardService) *Handler {
	h := &Handler{vehicles: v, inventory: inv, store: store, dashboard: dashboard}
	h.upgrader = websocket.Upgrader{CheckOrigin: h.checkOrigin}
	return h
}

// AllowOrigins sets the browser origins that may open the listing stream.
// "*" allows any origin. Without any, only same-origin pages may connect.
func (h *Handler) AllowOrigins(origins ...string) {
	h.origins = origins
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	v := r.Group("/vehicles")
	v.GET("/source", h.GetSource)
	v.GET("/makes", h.GetMakes)
	v.GET("/makes/:makeId/years", h.GetYears)
	v.GET("/makes/:makeId/models", h.GetModels)
	v.GET("/makes/:makeId/years/:year/models/:modelId/engines", h.GetEngines)

	r.GET("/categories", h.GetCategories)
	r.GET("/categories/:categoryId/parts", h.GetCategoryParts)
	r.GET("/parts", h.GetParts)
	r.GET("/parts/:partId", h.GetPart)
	r.GET("/parts/:partId/listings", h.GetPartListings)
	r.GET("/search", h.Search)
	r.GET("/search/parts", h.SearchParts)

	c := r.Group("/cart", Session())
	c.GET("", h.GetCart)
	c.DELETE("", h.ClearCart)
	c.POST("/items", h.AddCartItem)
	c.PATCH("/items/:itemId", h.UpdateCartItem)
	c.DELETE("/items/:itemId", h.RemoveCartItem)
	c.POST("/checkout", h.Checkout)

	r.GET("/vendors", h.GetVendors)
	vd := r.Group("/vendors/:vendorId")
	vd.GET("", h.GetVendor)
	vd.GET("/dashboard", h.GetDashboard)
	vd.GET("/listings", h.GetVendorListings)
	vd.POST("/listings", h.CreateListing)
	vd.PUT("/listings/:listingId", h.UpdateListing)
	vd.DELETE("/listings/:listingId", h.DeleteListing)
	vd.GET("/orders", h.GetOrders)
	vd.PATCH("/orders/:orderId", h.UpdateOrderStatus)
	vd.GET("/orders/:orderId/receipt", h.GetReceipt)
	vd.GET("/stream", h.StreamListings)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError maps service errors onto HTTP responses. Vehicle source failures
// are logged and reported without detail.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, vehicle.ErrUpstream), errors.Is(err, vehicle.ErrNoSource):
		log.Printf("Vehicle lookup failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load"})
	case errors.Is(err, services.ErrVendorNotFound),
		errors.Is(err, services.ErrListingNotFound),
		errors.Is(err, services.ErrPartNotFound),
		errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidStatusTransition), errors.Is(err, services.ErrOutOfStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidStatus), errors.Is(err, services.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Request %s %s failed: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a non-negative integer"})
		return 0, false
	}
	return v, true
}

// intQuery reads an optional integer query parameter. present is false when
// the parameter is absent; ok is false once a 400 has been written.
func intQuery(c *gin.Context, name string) (v int, present, ok bool) {
	raw, found := c.GetQuery(name)
	if !found || raw == "" {
		return 0, false, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, true, false
	}
	return v, true, true
}
