package favoritecontroller

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/kiwicar-nz/marketplace-api/middleware"
	"github.com/kiwicar-nz/marketplace-api/models"
	"github.com/kiwicar-nz/marketplace-api/response"
	"gorm.io/gorm"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// PriceAlertEvent is pushed to a user when a favorited listing's price
// drops to or below their target.
type PriceAlertEvent struct {
	Type        string `json:"type"` // always "price_alert"
	ListingID   string `json:"listingId"`
	Title       string `json:"title"`
	NewPrice    int    `json:"newPrice"`
	TargetPrice int    `json:"targetPrice"`
}

// AlertHub tracks the websocket connections of signed-in users.
type AlertHub struct {
	mu      sync.Mutex
	clients map[string]map[*websocket.Conn]bool
}

func NewAlertHub() *AlertHub {
	return &AlertHub{clients: make(map[string]map[*websocket.Conn]bool)}
}

// ServeAlerts upgrades the connection and parks it until the client goes
// away. Browsers cannot set headers on websocket requests, so the token
// arrives as a query parameter.
// GET /api/v1/favorites/ws/alerts?token=...
func (h *AlertHub) ServeAlerts() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := middleware.ParseToken(c.Query("token"))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, err.Error())
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		h.mu.Lock()
		if h.clients[userID] == nil {
			h.clients[userID] = make(map[*websocket.Conn]bool)
		}
		h.clients[userID][conn] = true
		h.mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		h.mu.Lock()
		delete(h.clients[userID], conn)
		if len(h.clients[userID]) == 0 {
			delete(h.clients, userID)
		}
		h.mu.Unlock()
	}
}

// NotifyPriceDrop fires alert events for every favorite of the listing
// whose alert is enabled and whose target is now met. Called after a price
// decrease has been committed; delivery is best effort.
func (h *AlertHub) NotifyPriceDrop(db *gorm.DB, listing *models.Listing) {
	var favorites []models.Favorite
	if err := db.
		Where("listing_id = ? AND price_alert_enabled = ? AND target_price IS NOT NULL AND target_price >= ?",
			listing.ID, true, listing.Price).
		Find(&favorites).Error; err != nil {
		log.Printf("price alerts: failed to load favorites for %s: %v", listing.ID, err)
		return
	}

	for _, fav := range favorites {
		event := PriceAlertEvent{
			Type:        "price_alert",
			ListingID:   listing.ID,
			Title:       listing.Title,
			NewPrice:    listing.Price,
			TargetPrice: *fav.TargetPrice,
		}

		h.mu.Lock()
		for conn := range h.clients[fav.UserID] {
			if err := conn.WriteJSON(event); err != nil {
				conn.Close()
				delete(h.clients[fav.UserID], conn)
			}
		}
		h.mu.Unlock()
	}
}
