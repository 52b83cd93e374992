package devserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsoto007/nush/internal/order"
)

func (s *Server) handleCheckoutConfirm(c *gin.Context) {
	var req struct {
		CartID    string           `json:"cart_id"`
		GuestInfo *order.GuestInfo `json:"guest_info"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", nil)
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rec, ok := s.state.carts[req.CartID]
	if !ok {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Cart not found", nil)
		return
	}
	if len(rec.cart.Items) == 0 {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "Cart is empty",
			gin.H{"cart": "empty"})
		return
	}

	customerID := c.GetString("userID")
	if customerID == "" && req.GuestInfo == nil {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "guest_info is required",
			gin.H{"guest_info": "required"})
		return
	}

	placed := &order.Order{
		ID:           uuid.New().String(),
		RestaurantID: rec.cart.RestaurantID,
		CustomerID:   customerID,
		OrderType:    rec.cart.OrderType,
		Status:       order.StatusCreated,
		Currency:     "usd",
		PlacedAt:     time.Now().UTC().Format(time.RFC3339),
		Items:        rec.cart.Items,
		Totals:       rec.cart.Totals,
	}
	s.state.orders[placed.ID] = placed
	delete(s.state.carts, rec.cart.ID)

	respondOK(c, http.StatusCreated, gin.H{"order": placed})
}

func (s *Server) handleListOrders(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	customerID := c.GetString("userID")
	orders := []order.Order{}
	for _, o := range s.state.orders {
		if o.CustomerID == customerID {
			orders = append(orders, *o)
		}
	}
	respondOK(c, http.StatusOK, gin.H{"orders": orders})
}

func (s *Server) handleGetOrder(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	o, ok := s.state.orders[c.Param("id")]
	if !ok || o.CustomerID != c.GetString("userID") {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"order": o})
}

func (s *Server) handleCancelOrder(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	o, ok := s.state.orders[c.Param("id")]
	if !ok || o.CustomerID != c.GetString("userID") {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Order not found", nil)
		return
	}
	if o.Status != order.StatusCreated && o.Status != order.StatusConfirmed {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "Order can no longer be cancelled",
			gin.H{"status": o.Status})
		return
	}

	o.Status = order.StatusCancelled
	respondOK(c, http.StatusOK, gin.H{"order": o})
}
