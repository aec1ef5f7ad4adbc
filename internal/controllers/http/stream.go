package http

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"parts-service/internal/domain"
	"parts-service/internal/services"

	"github.com/gin-gonic/gin"
)

const streamWriteTimeout = 10 * time.Second

// checkOrigin admits handshakes without an Origin header (non-browser
// clients), from an allowed origin, or from the serving host itself.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, o := range h.origins {
		if o == "*" || strings.EqualFold(strings.TrimSuffix(o, "/"), origin) {
			return true
		}
	}
	u, err := url.Parse(origin)
	return err == nil && strings.EqualFold(u.Host, r.Host)
}

// StreamListings pushes the vendor's listings over a websocket, once on
// connect and again after every inventory change.
func (h *Handler) StreamListings(c *gin.Context) {
	vendorID, ok := intParam(c, "vendorId")
	if !ok {
		return
	}
	if h.inventory.GetVendor(vendorID) == nil {
		writeError(c, services.ErrVendorNotFound)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Listing stream upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel := h.inventory.Subscribe()
	defer cancel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case snapshot, ok := <-updates:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteJSON(vendorListings(snapshot, vendorID)); err != nil {
				log.Printf("Listing stream for vendor %d closed: %v", vendorID, err)
				return
			}
		}
	}
}

func vendorListings(snapshot []domain.VendorListing, vendorID int) []domain.VendorListing {
	out := []domain.VendorListing{}
	for _, l := range snapshot {
		if l.VendorID == vendorID {
			out = append(out, l)
		}
	}
	return out
}
