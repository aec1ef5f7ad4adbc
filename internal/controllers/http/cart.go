package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Cart(sessionID(c)))
}

func (h *Handler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.store.AddToCart(sessionID(c), req.ListingID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateCartItem sets an item's quantity; zero or less removes it.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	itemID, ok := intParam(c, "itemId")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.store.UpdateCartQuantity(sessionID(c), itemID, *req.Quantity))
}

func (h *Handler) RemoveCartItem(c *gin.Context) {
	itemID, ok := intParam(c, "itemId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.store.RemoveFromCart(sessionID(c), itemID))
}

func (h *Handler) ClearCart(c *gin.Context) {
	h.store.ClearCart(sessionID(c))
	c.Status(http.StatusNoContent)
}

func (h *Handler) Checkout(c *gin.Context) {
	evt, err := h.store.Checkout(sessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, evt)
}
