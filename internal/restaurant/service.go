package restaurant

import (
	"context"

	"github.com/jsoto007/nush/internal/api"
	"github.com/jsoto007/nush/internal/menu"
)

// Service wraps the public catalog endpoints: listing restaurants and
// fetching a restaurant's active menu.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

func (s *Service) List(ctx context.Context) ([]Restaurant, error) {
	var payload struct {
		Restaurants []Restaurant `json:"restaurants"`
	}
	if err := s.client.Get(ctx, "/restaurants", &payload); err != nil {
		return nil, err
	}
	return payload.Restaurants, nil
}

func (s *Service) Get(ctx context.Context, restaurantID string) (*Restaurant, error) {
	var payload struct {
		Restaurant *Restaurant `json:"restaurant"`
	}
	if err := s.client.Get(ctx, "/restaurants/"+restaurantID, &payload); err != nil {
		return nil, err
	}
	return payload.Restaurant, nil
}

// ActiveMenu fetches the restaurant's currently published menu.
func (s *Service) ActiveMenu(ctx context.Context, restaurantID string) (*menu.Menu, error) {
	var payload struct {
		Menu *menu.Menu `json:"menu"`
	}
	if err := s.client.Get(ctx, "/restaurants/"+restaurantID+"/menu", &payload); err != nil {
		return nil, err
	}
	return payload.Menu, nil
}
