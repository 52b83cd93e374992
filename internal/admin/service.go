package admin

import (
	"context"
	"io"

	"github.com/jsoto007/nush/internal/api"
	"github.com/jsoto007/nush/internal/menu"
	"github.com/jsoto007/nush/internal/restaurant"
)

// Service wraps the restaurant back-office endpoints. Every method is a
// plain form-to-endpoint call with no derived state; role checks happen
// server-side.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

// --------------------------------------------------
// Restaurants
// --------------------------------------------------

// ManagedRestaurants lists the restaurants the signed-in user can manage.
func (s *Service) ManagedRestaurants(ctx context.Context) ([]restaurant.Restaurant, error) {
	var payload struct {
		Restaurants []restaurant.Restaurant `json:"restaurants"`
	}
	err := s.client.Get(ctx, "/restaurant-admin/restaurants", &payload)
	if err != nil {
		return nil, err
	}
	return payload.Restaurants, nil
}

// UpdateRestaurant patches restaurant settings. fields carries only the
// keys being changed, matching the settings form.
func (s *Service) UpdateRestaurant(ctx context.Context, restaurantID string, fields map[string]any) (*restaurant.Restaurant, error) {
	var payload struct {
		Restaurant *restaurant.Restaurant `json:"restaurant"`
	}
	err := s.client.Patch(ctx, "/restaurant-admin/restaurants/"+restaurantID, fields, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Restaurant, nil
}

// UploadRestaurantImage uploads a storefront image through the platform API.
func (s *Service) UploadRestaurantImage(ctx context.Context, restaurantID, filename string, file io.Reader) error {
	return s.client.PostMultipart(
		ctx,
		"/restaurant-admin/restaurants/"+restaurantID+"/images",
		nil,
		"image",
		filename,
		file,
		nil,
	)
}

// --------------------------------------------------
// Staff
// --------------------------------------------------

func (s *Service) ListStaff(ctx context.Context, restaurantID string) ([]restaurant.StaffMember, error) {
	var payload struct {
		Staff []restaurant.StaffMember `json:"staff"`
	}
	err := s.client.Get(ctx, "/restaurant-admin/restaurants/"+restaurantID+"/staff", &payload)
	if err != nil {
		return nil, err
	}
	return payload.Staff, nil
}

// AddStaff invites an account to the restaurant's staff.
func (s *Service) AddStaff(ctx context.Context, restaurantID, email, role string) error {
	return s.client.Post(ctx, "/restaurant-admin/restaurants/"+restaurantID+"/staff", map[string]string{
		"email": email,
		"role":  role,
	}, nil)
}

func (s *Service) RemoveStaff(ctx context.Context, staffID string) error {
	return s.client.Delete(ctx, "/restaurant-admin/staff/"+staffID, nil)
}

// --------------------------------------------------
// Menu management
// --------------------------------------------------

func (s *Service) CreateMenu(ctx context.Context, restaurantID, name string) (*menu.Menu, error) {
	var payload struct {
		Menu *menu.Menu `json:"menu"`
	}
	err := s.client.Post(ctx, "/restaurant-admin/restaurants/"+restaurantID+"/menus", map[string]string{
		"name": name,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Menu, nil
}

func (s *Service) CreateCategory(ctx context.Context, menuID, name string, sortOrder int) (*menu.Category, error) {
	var payload struct {
		Category *menu.Category `json:"category"`
	}
	err := s.client.Post(ctx, "/restaurant-admin/menus/"+menuID+"/categories", map[string]any{
		"name":       name,
		"sort_order": sortOrder,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Category, nil
}

func (s *Service) CreateItem(ctx context.Context, menuID string, fields map[string]any) (*menu.Item, error) {
	var payload struct {
		Item *menu.Item `json:"item"`
	}
	err := s.client.Post(ctx, "/restaurant-admin/menus/"+menuID+"/items", fields, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Item, nil
}

func (s *Service) UpdateItem(ctx context.Context, itemID string, fields map[string]any) (*menu.Item, error) {
	var payload struct {
		Item *menu.Item `json:"item"`
	}
	err := s.client.Patch(ctx, "/restaurant-admin/items/"+itemID, fields, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Item, nil
}

func (s *Service) CreateOptionGroup(ctx context.Context, itemID string, fields map[string]any) (*menu.OptionGroup, error) {
	var payload struct {
		Group *menu.OptionGroup `json:"option_group"`
	}
	err := s.client.Post(ctx, "/restaurant-admin/items/"+itemID+"/option-groups", fields, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Group, nil
}

func (s *Service) CreateOption(ctx context.Context, groupID string, fields map[string]any) (*menu.Option, error) {
	var payload struct {
		Option *menu.Option `json:"option"`
	}
	err := s.client.Post(ctx, "/restaurant-admin/option-groups/"+groupID+"/options", fields, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Option, nil
}

// --------------------------------------------------
// Inventory
// --------------------------------------------------

// UpdateStock toggles an item's availability or sets its stock count.
func (s *Service) UpdateStock(ctx context.Context, itemID string, inStock bool, stockCount int) (*menu.Item, error) {
	var payload struct {
		Item *menu.Item `json:"item"`
	}
	err := s.client.Patch(ctx, "/restaurant-admin/items/"+itemID+"/stock", map[string]any{
		"in_stock":    inStock,
		"stock_count": stockCount,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return payload.Item, nil
}
