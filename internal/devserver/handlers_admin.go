package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsoto007/nush/internal/menu"
	"github.com/jsoto007/nush/internal/restaurant"
)

func (s *Server) handleManagedRestaurants(c *gin.Context) {
	// Fixture server: every managed account sees the whole catalog.
	restaurants, err := s.catalog.Restaurants(c.Request.Context())
	if err != nil {
		respondErr(c, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"restaurants": restaurants})
}

func (s *Server) handleUpdateRestaurant(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", nil)
		return
	}

	r, err := s.catalog.UpdateRestaurant(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Restaurant not found", nil)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"restaurant": r})
}

func (s *Server) handleUploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "image is required", nil)
		return
	}
	defer file.Close()

	// Fixture server: accept and discard, answering with a fake URL.
	respondOK(c, http.StatusCreated, gin.H{
		"url": "https://fixtures.nush.dev/images/" + uuid.New().String() + "/" + header.Filename,
	})
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (s *Server) handleListStaff(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	staff := s.state.staff[c.Param("id")]
	if staff == nil {
		staff = []restaurant.StaffMember{}
	}
	respondOK(c, http.StatusOK, gin.H{"staff": staff})
}

func (s *Server) handleAddStaff(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "email is required", nil)
		return
	}
	if req.Role == "" {
		req.Role = "staff"
	}

	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	restaurantID := c.Param("id")
	member := restaurant.StaffMember{
		ID:    uuid.New().String(),
		Email: req.Email,
		Role:  req.Role,
	}
	if acct, ok := s.state.accounts[req.Email]; ok {
		member.Name = acct.user.Name
	}
	s.state.staff[restaurantID] = append(s.state.staff[restaurantID], member)
	respondOK(c, http.StatusCreated, gin.H{"staff_member": member})
}

func (s *Server) handleRemoveStaff(c *gin.Context) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	staffID := c.Param("id")
	for restaurantID, members := range s.state.staff {
		for idx, member := range members {
			if member.ID == staffID {
				s.state.staff[restaurantID] = append(members[:idx], members[idx+1:]...)
				respondOK(c, http.StatusOK, gin.H{})
				return
			}
		}
	}
	respondErr(c, http.StatusNotFound, "NOT_FOUND", "Staff member not found", nil)
}

// --------------------------------------------------
// Menu management
// --------------------------------------------------

// mutateMenus walks every restaurant's menu and applies fn; when fn
// reports a change the menu is written back and the walk stops.
func (s *Server) mutateMenus(c *gin.Context, fn func(restaurantID string, mn *menu.Menu) bool) bool {
	restaurants, err := s.catalog.Restaurants(c.Request.Context())
	if err != nil {
		return false
	}
	for _, r := range restaurants {
		mn, err := s.catalog.MenuFor(c.Request.Context(), r.ID)
		if err != nil {
			continue
		}
		if fn(r.ID, mn) {
			if err := s.catalog.ReplaceMenu(c.Request.Context(), r.ID, mn); err != nil {
				return false
			}
			return true
		}
	}
	return false
}

func (s *Server) handleCreateMenu(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required", nil)
		return
	}

	mn := &menu.Menu{
		ID:         uuid.New().String(),
		Name:       req.Name,
		IsActive:   true,
		Categories: []menu.Category{},
	}
	if err := s.catalog.ReplaceMenu(c.Request.Context(), c.Param("id"), mn); err != nil {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Restaurant not found", nil)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"menu": mn})
}

func (s *Server) handleCreateCategory(c *gin.Context) {
	var req struct {
		Name      string `json:"name"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required", nil)
		return
	}

	category := menu.Category{
		ID:        uuid.New().String(),
		Name:      req.Name,
		SortOrder: req.SortOrder,
		IsActive:  true,
		Items:     []menu.Item{},
	}

	menuID := c.Param("menuID")
	changed := s.mutateMenus(c, func(_ string, mn *menu.Menu) bool {
		if mn.ID != menuID {
			return false
		}
		mn.Categories = append(mn.Categories, category)
		return true
	})
	if !changed {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Menu not found", nil)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"category": category})
}

func (s *Server) handleCreateItem(c *gin.Context) {
	var req struct {
		CategoryID     string `json:"category_id"`
		Name           string `json:"name"`
		Description    string `json:"description"`
		BasePriceCents int64  `json:"base_price_cents"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required", nil)
		return
	}
	if req.BasePriceCents < 0 {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "base_price_cents must not be negative",
			gin.H{"base_price_cents": "negative"})
		return
	}

	item := menu.Item{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Description:    req.Description,
		BasePriceCents: req.BasePriceCents,
		IsActive:       true,
		Tags:           []string{},
		OptionGroups:   []menu.OptionGroup{},
	}

	menuID := c.Param("menuID")
	changed := s.mutateMenus(c, func(_ string, mn *menu.Menu) bool {
		if mn.ID != menuID {
			return false
		}
		for idx := range mn.Categories {
			if mn.Categories[idx].ID == req.CategoryID || req.CategoryID == "" {
				mn.Categories[idx].Items = append(mn.Categories[idx].Items, item)
				return true
			}
		}
		return false
	})
	if !changed {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Menu or category not found", nil)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"item": item})
}

// patchItem applies the editable item fields and returns the updated copy.
func patchItem(item *menu.Item, fields map[string]any) {
	if v, ok := fields["name"].(string); ok && v != "" {
		item.Name = v
	}
	if v, ok := fields["description"].(string); ok {
		item.Description = v
	}
	if v, ok := fields["base_price_cents"].(float64); ok && v >= 0 {
		item.BasePriceCents = int64(v)
	}
	if v, ok := fields["is_active"].(bool); ok {
		item.IsActive = v
	}
}

func (s *Server) updateItemWith(c *gin.Context, itemID string, apply func(*menu.Item)) {
	var updated *menu.Item
	changed := s.mutateMenus(c, func(_ string, mn *menu.Menu) bool {
		for ci := range mn.Categories {
			for ii := range mn.Categories[ci].Items {
				if mn.Categories[ci].Items[ii].ID == itemID {
					apply(&mn.Categories[ci].Items[ii])
					out := mn.Categories[ci].Items[ii]
					updated = &out
					return true
				}
			}
		}
		return false
	})
	if !changed {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Menu item not found", nil)
		return
	}
	respondOK(c, http.StatusOK, gin.H{"item": updated})
}

func (s *Server) handleUpdateItem(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request", nil)
		return
	}
	s.updateItemWith(c, c.Param("itemID"), func(item *menu.Item) {
		patchItem(item, fields)
	})
}

func (s *Server) handleUpdateStock(c *gin.Context) {
	var req struct {
		InStock *bool `json:"in_stock"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.InStock == nil {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "in_stock is required", nil)
		return
	}
	s.updateItemWith(c, c.Param("itemID"), func(item *menu.Item) {
		item.IsActive = *req.InStock
	})
}

func (s *Server) handleCreateOptionGroup(c *gin.Context) {
	var req struct {
		Name       string `json:"name"`
		MinChoices int    `json:"min_choices"`
		MaxChoices int    `json:"max_choices"`
		IsRequired bool   `json:"is_required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required", nil)
		return
	}

	group := menu.OptionGroup{
		ID:         uuid.New().String(),
		Name:       req.Name,
		MinChoices: req.MinChoices,
		MaxChoices: req.MaxChoices,
		IsRequired: req.IsRequired,
		IsActive:   true,
		Options:    []menu.Option{},
	}

	itemID := c.Param("itemID")
	changed := s.mutateMenus(c, func(_ string, mn *menu.Menu) bool {
		for ci := range mn.Categories {
			for ii := range mn.Categories[ci].Items {
				if mn.Categories[ci].Items[ii].ID == itemID {
					mn.Categories[ci].Items[ii].OptionGroups =
						append(mn.Categories[ci].Items[ii].OptionGroups, group)
					return true
				}
			}
		}
		return false
	})
	if !changed {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Menu item not found", nil)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"option_group": group})
}

func (s *Server) handleCreateOption(c *gin.Context) {
	var req struct {
		Name            string `json:"name"`
		PriceDeltaCents int64  `json:"price_delta_cents"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		respondErr(c, http.StatusBadRequest, "VALIDATION_ERROR", "name is required", nil)
		return
	}

	option := menu.Option{
		ID:              uuid.New().String(),
		Name:            req.Name,
		PriceDeltaCents: req.PriceDeltaCents,
		IsActive:        true,
	}

	groupID := c.Param("groupID")
	var found bool
	changed := s.mutateMenus(c, func(_ string, mn *menu.Menu) bool {
		for ci := range mn.Categories {
			for ii := range mn.Categories[ci].Items {
				groups := mn.Categories[ci].Items[ii].OptionGroups
				for gi := range groups {
					if groups[gi].ID == groupID {
						groups[gi].Options = append(groups[gi].Options, option)
						found = true
						return true
					}
				}
			}
		}
		return false
	})
	if !changed || !found {
		respondErr(c, http.StatusNotFound, "NOT_FOUND", "Option group not found", nil)
		return
	}
	respondOK(c, http.StatusCreated, gin.H{"option": option})
}
