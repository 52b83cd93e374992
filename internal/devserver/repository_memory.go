package devserver

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jsoto007/nush/internal/menu"
	"github.com/jsoto007/nush/internal/restaurant"
)

// MemoryCatalog is the default fixture store: seeded at startup, mutable
// through the admin endpoints, gone on exit.
type MemoryCatalog struct {
	mu          sync.Mutex
	restaurants []restaurant.Restaurant
	menus       map[string]*menu.Menu
	settings    map[string]ChargeSettings
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		menus:    make(map[string]*menu.Menu),
		settings: make(map[string]ChargeSettings),
	}
}

// AddRestaurant installs a fixture restaurant with its menu and charges.
func (m *MemoryCatalog) AddRestaurant(r restaurant.Restaurant, mn *menu.Menu, s ChargeSettings) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.restaurants = append(m.restaurants, r)
	m.menus[r.ID] = mn
	m.settings[r.ID] = s
}

func (m *MemoryCatalog) Restaurants(ctx context.Context) ([]restaurant.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]restaurant.Restaurant(nil), m.restaurants...), nil
}

func (m *MemoryCatalog) Restaurant(ctx context.Context, id string) (*restaurant.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.restaurants {
		if r.ID == id {
			out := r
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryCatalog) UpdateRestaurant(ctx context.Context, id string, fields map[string]any) (*restaurant.Restaurant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.restaurants {
		if m.restaurants[i].ID == id {
			applyRestaurantFields(&m.restaurants[i], fields)
			out := m.restaurants[i]
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryCatalog) MenuFor(ctx context.Context, restaurantID string) (*menu.Menu, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mn, ok := m.menus[restaurantID]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneMenu(mn), nil
}

func (m *MemoryCatalog) ReplaceMenu(ctx context.Context, restaurantID string, mn *menu.Menu) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.menus[restaurantID]; !ok {
		return ErrNotFound
	}
	m.menus[restaurantID] = cloneMenu(mn)
	return nil
}

func (m *MemoryCatalog) FindItem(ctx context.Context, itemID string) (*menu.Item, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for restaurantID, mn := range m.menus {
		for _, category := range mn.Categories {
			for _, item := range category.Items {
				if item.ID == itemID {
					out := item
					return &out, restaurantID, nil
				}
			}
		}
	}
	return nil, "", ErrNotFound
}

func (m *MemoryCatalog) Settings(ctx context.Context, restaurantID string) (ChargeSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.settings[restaurantID]
	if !ok {
		return ChargeSettings{}, ErrNotFound
	}
	return s, nil
}

// cloneMenu deep-copies via JSON; fixture menus are small and this keeps
// callers from aliasing shared state.
func cloneMenu(mn *menu.Menu) *menu.Menu {
	raw, _ := json.Marshal(mn)
	var out menu.Menu
	_ = json.Unmarshal(raw, &out)
	return &out
}
