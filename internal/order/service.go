package order

import (
	"context"

	"github.com/jsoto007/nush/internal/api"
)

// Service wraps checkout and order-history endpoints.
type Service struct {
	client *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{client: client}
}

type orderEnvelope struct {
	Order *Order `json:"order"`
}

// ConfirmCheckout places the order for the given cart. guest may be nil
// for signed-in customers.
func (s *Service) ConfirmCheckout(ctx context.Context, cartID string, guest *GuestInfo) (*Order, error) {
	body := map[string]any{"cart_id": cartID}
	if guest != nil {
		body["guest_info"] = guest
	}

	var payload orderEnvelope
	if err := s.client.Post(ctx, "/checkout/confirm", body, &payload); err != nil {
		return nil, err
	}
	return payload.Order, nil
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	var payload struct {
		Orders []Order `json:"orders"`
	}
	if err := s.client.Get(ctx, "/orders", &payload); err != nil {
		return nil, err
	}
	return payload.Orders, nil
}

func (s *Service) Get(ctx context.Context, orderID string) (*Order, error) {
	var payload orderEnvelope
	if err := s.client.Get(ctx, "/orders/"+orderID, &payload); err != nil {
		return nil, err
	}
	return payload.Order, nil
}

// Cancel asks the server to cancel a placed order. Whether cancellation is
// allowed depends on the order's server-side state.
func (s *Service) Cancel(ctx context.Context, orderID string) (*Order, error) {
	var payload orderEnvelope
	if err := s.client.Post(ctx, "/orders/"+orderID+"/cancel", map[string]string{}, &payload); err != nil {
		return nil, err
	}
	return payload.Order, nil
}
