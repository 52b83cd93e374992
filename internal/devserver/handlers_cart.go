package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsoto007/nush/internal/cart"
	"github.com/jsoto007/nush/internal/restaurant"
)

// guestCartCookie remembers a guest's cart id across requests.
const guestCartCookie = "nush_cart"

// currentCartRecord finds the caller's cart: signed-in users by customer
// id, guests by cookie. Callers must hold state.mu.
func (s *Server) currentCartRecord(c *gin.Context) *cartRecord {
	if userID := c.GetString("userID"); userID != "" {
		return s.state.cartForCustomer(userID)
	}
	if id, err := c.Cookie(guestCartCookie); err == nil {
		return s.state.carts[id]
	}
	return nil
}

// refreshTotals recomputes the authoritative totals after any mutation,
// re-evaluating the applied promotion against the new subtotal.
func (s *Server) refreshTotals(c *gin.Context, rec *cartRecord) {
	settings, err := s.catalog.Settings(c.Request.Context(), rec.cart.RestaurantID)
	if err != nil {
		settings = ChargeSettings{}
	}
	rec.cart.Totals = computeTotals(rec.cart.Items, settings, rec.cart.Totals.DiscountCents)
}

func (s *Server) handleCurrentCart(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rec := s.currentCartRecord(c)
	if rec == nil {
		respondOK(c, http.StatusOK, gin.H{"cart": nil})
		return
	}
	if scope := c.Query("restaurant_id"); scope != "" && rec.cart.RestaurantID != scope {
		respondOK(c, http.StatusOK, gin.H{"cart": nil})
		return
	}
	respondOK(c, http.StatusOK, gin.H{"cart": rec.cart})
}

func (s *Server) handleCreateCart(c *gin.Context) {
	var req struct {
		RestaurantID string `json:"restaurant_id"`
		OrderType    string `json:"order_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RestaurantID == "" {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "restaurant_id is required", nil)
		return
	}
	if req.OrderType != "" && req.OrderType != "pickup" {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "Only pickup is supported",
			gin.H{"order_type": "pickup_only"})
		return
	}

	target, err := s.catalog.Restaurant(c.Request.Context(), req.RestaurantID)
	if err != nil {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Restaurant not found", nil)
		return
	}
	if target.Status != restaurant.StatusActive {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "Restaurant is not active",
			gin.H{"restaurant": "inactive"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	userID := c.GetString("userID")
	if rec := s.currentCartRecord(c); rec != nil {
		if rec.cart.RestaurantID == req.RestaurantID {
			respondOK(c, http.StatusOK, gin.H{"cart": rec.cart})
			return
		}
		// One restaurant per cart: a new restaurant replaces, never merges.
		delete(s.state.carts, rec.cart.ID)
	}
	if userID != "" {
		s.state.dropCartsForCustomer(userID)
	}

	rec := &cartRecord{
		cart: cart.Cart{
			ID:           uuid.New().String(),
			RestaurantID: req.RestaurantID,
			OrderType:    "pickup",
			Items:        []cart.Item{},
		},
		customerID: userID,
	}
	s.refreshTotals(c, rec)
	s.state.carts[rec.cart.ID] = rec

	if userID == "" {
		c.SetCookie(guestCartCookie, rec.cart.ID, 86400, "/", "", false, true)
	}
	respondOK(c, http.StatusCreated, gin.H{"cart": rec.cart})
}

func (s *Server) handleAddCartItem(c *gin.Context) {
	var req struct {
		CartID     string `json:"cart_id"`
		MenuItemID string `json:"menu_item_id"`
		Quantity   int    `json:"quantity"`
		Notes      string `json:"notes"`
		Options    []struct {
			OptionID      string `json:"option_id"`
			OptionGroupID string `json:"option_group_id"`
		} `json:"options"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", nil)
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	item, itemRestaurantID, err := s.catalog.FindItem(c.Request.Context(), req.MenuItemID)
	if err != nil || !item.IsActive {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "Menu item unavailable",
			gin.H{"menu_item_id": "invalid"})
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rec, ok := s.state.carts[req.CartID]
	if !ok {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Cart not found", nil)
		return
	}
	if itemRestaurantID != rec.cart.RestaurantID {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "Menu item unavailable",
			gin.H{"menu_item_id": "invalid"})
		return
	}

	basePrice := item.BasePriceCents
	if item.PricePickupCents > 0 {
		basePrice = item.PricePickupCents
	}

	line := cart.Item{
		ID:             uuid.New().String(),
		MenuItemID:     item.ID,
		NameSnapshot:   item.Name,
		BasePriceCents: basePrice,
		Quantity:       req.Quantity,
		Notes:          req.Notes,
		Options:        []cart.ItemOption{},
	}

	// Re-resolve every option against the live definition; names and
	// prices are snapshotted server-side, never trusted from the client.
	for _, chosen := range req.Options {
		group, ok := item.Group(chosen.OptionGroupID)
		if !ok {
			respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid option selection",
				gin.H{"options": "invalid"})
			return
		}
		option, ok := group.Option(chosen.OptionID)
		if !ok || !option.IsActive {
			respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid option selection",
				gin.H{"options": "invalid"})
			return
		}
		line.Options = append(line.Options, cart.ItemOption{
			ID:              uuid.New().String(),
			OptionID:        option.ID,
			OptionGroupID:   group.ID,
			NameSnapshot:    option.Name,
			PriceDeltaCents: option.PriceDeltaCents,
		})
	}

	line.TotalPriceCents = line.UnitPriceCents() * int64(line.Quantity)
	rec.cart.Items = append(rec.cart.Items, line)
	s.refreshTotals(c, rec)
	respondOK(c, http.StatusCreated, gin.H{"cart": rec.cart})
}

// findCartLine locates a line across all carts. Callers must hold state.mu.
func (s *state) findCartLine(itemID string) (*cartRecord, int) {
	for _, rec := range s.carts {
		for idx, line := range rec.cart.Items {
			if line.ID == itemID {
				return rec, idx
			}
		}
	}
	return nil, -1
}

func (s *Server) handleUpdateCartItem(c *gin.Context) {
	var req struct {
		Quantity *int    `json:"quantity"`
		Notes    *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", nil)
		return
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rec, idx := s.state.findCartLine(c.Param("itemID"))
	if rec == nil {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Cart item not found", nil)
		return
	}

	if req.Quantity != nil {
		if *req.Quantity < 1 {
			respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "quantity must be at least 1",
				gin.H{"quantity": "minimum"})
			return
		}
		rec.cart.Items[idx].Quantity = *req.Quantity
		rec.cart.Items[idx].TotalPriceCents =
			rec.cart.Items[idx].UnitPriceCents() * int64(*req.Quantity)
	}
	if req.Notes != nil {
		rec.cart.Items[idx].Notes = *req.Notes
	}

	s.refreshTotals(c, rec)
	respondOK(c, http.StatusOK, gin.H{"cart": rec.cart})
}

func (s *Server) handleDeleteCartItem(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	rec, idx := s.state.findCartLine(c.Param("itemID"))
	if rec == nil {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Cart item not found", nil)
		return
	}

	rec.cart.Items = append(rec.cart.Items[:idx], rec.cart.Items[idx+1:]...)
	s.refreshTotals(c, rec)
	respondOK(c, http.StatusOK, gin.H{"cart": rec.cart})
}

func (s *Server) handleClearCart(c *gin.Context) {
	var req struct {
		CartID string `json:"cart_id"`
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

	rec.cart.Items = []cart.Item{}
	rec.cart.Totals.DiscountCents = 0
	s.refreshTotals(c, rec)
	respondOK(c, http.StatusOK, gin.H{"cart": rec.cart})
}

func (s *Server) handleApplyPromo(c *gin.Context) {
	var req struct {
		CartID string `json:"cart_id"`
		Code   string `json:"code"`
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

	p, ok := s.state.findPromo(req.Code)
	if !ok {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Promotion not found", nil)
		return
	}

	subtotal := int64(0)
	for _, line := range rec.cart.Items {
		subtotal += line.UnitPriceCents() * int64(line.Quantity)
	}
	discount := discountFor(p, subtotal)
	if discount <= 0 {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "Promotion not applicable",
			gin.H{"code": "invalid"})
		return
	}

	rec.cart.Totals.DiscountCents = discount
	s.refreshTotals(c, rec)
	respondOK(c, http.StatusOK, gin.H{"cart": rec.cart, "discount_cents": discount})
}
