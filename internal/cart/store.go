package cart

import (
	"context"
	"errors"
	"net/url"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jsoto007/nush/internal/api"
	"github.com/jsoto007/nush/internal/menu"
)

var (
	// ErrInvalidSelection is returned when a submission is attempted with
	// unsatisfied option-group constraints. It never reaches the network.
	ErrInvalidSelection = errors.New("select the required options")
)

// cartEnvelope matches the data payload every cart endpoint returns.
// A null cart is a valid "no cart yet" state, not an error.
type cartEnvelope struct {
	Cart *Cart `json:"cart"`
}

// Store owns the active cart for a session. The server is the source of
// truth; the store holds a cached copy that mutating operations update
// optimistically and reconcile against the server response, rolling back
// to the pre-operation snapshot on failure.
//
// Overlapping mutations are handled with a per-request sequence number:
// a response older than the last applied one is discarded instead of
// clobbering newer state.
type Store struct {
	client *api.Client

	mu      sync.Mutex
	cart    *Cart
	seq     uint64
	applied uint64
}

func NewStore(client *api.Client) *Store {
	return &Store{client: client}
}

// Current returns the cart as last seen, or nil when no cart exists.
// The returned value must be treated as read-only.
func (s *Store) Current() *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart
}

// begin snapshots the current cart and allocates a sequence number for the
// operation about to be issued.
func (s *Store) begin() (*Cart, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.cart, s.seq
}

// setOptimistic installs a locally computed preview without touching the
// applied watermark; only server responses advance it.
func (s *Store) setOptimistic(c *Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = c
}

// reconcile installs a server response unless a newer response has already
// been applied.
func (s *Store) reconcile(seq uint64, c *Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.applied {
		log.Warn().Uint64("seq", seq).Uint64("applied", s.applied).
			Msg("discarding stale cart response")
		return
	}
	s.applied = seq
	s.cart = c
}

// rollback restores the pre-operation snapshot unless a newer server
// response arrived while the failed request was in flight.
func (s *Store) rollback(seq uint64, snapshot *Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.applied {
		log.Warn().Uint64("seq", seq).Uint64("applied", s.applied).
			Msg("skipping rollback, newer cart state already applied")
		return
	}
	s.cart = snapshot
}

// --------------------------------------------------
// Fetch
// --------------------------------------------------

// Fetch loads the active cart, optionally scoped to a restaurant. On
// failure the local cart degrades to absent rather than leaving stale data
// visible, and the error is returned for display.
func (s *Store) Fetch(ctx context.Context, restaurantID string) error {
	_, seq := s.begin()

	path := "/cart/current"
	if restaurantID != "" {
		path += "?restaurant_id=" + url.QueryEscape(restaurantID)
	}

	var payload cartEnvelope
	if err := s.client.Get(ctx, path, &payload); err != nil {
		s.reconcile(seq, nil)
		return err
	}
	s.reconcile(seq, payload.Cart)
	return nil
}

// --------------------------------------------------
// Add item
// --------------------------------------------------

// AddItem submits a configured menu item. When no cart exists, or the
// current cart belongs to a different restaurant, a new cart scoped to
// restaurantID is created first and replaces the old one; carts never
// merge across restaurants. Any failure restores the cart to its state
// before the whole operation began.
func (s *Store) AddItem(
	ctx context.Context,
	restaurantID string,
	item menu.Item,
	sel menu.Selection,
	quantity int,
	notes string,
) error {
	if !menu.AllValid(item, sel) {
		return ErrInvalidSelection
	}
	if quantity < 1 {
		quantity = 1
	}

	snapshot, seq := s.begin()

	current := snapshot
	if current == nil || current.RestaurantID != restaurantID {
		var created cartEnvelope
		err := s.client.Post(ctx, "/cart", map[string]any{
			"restaurant_id": restaurantID,
			"order_type":    "pickup",
		}, &created)
		if err != nil {
			s.rollback(seq, snapshot)
			return err
		}
		current = created.Cart
		s.setOptimistic(current)
	}

	var payload cartEnvelope
	err := s.client.Post(ctx, "/cart/items", map[string]any{
		"cart_id":      current.ID,
		"menu_item_id": item.ID,
		"quantity":     quantity,
		"notes":        notes,
		"options":      menu.SubmissionOptions(item, sel),
	}, &payload)
	if err != nil {
		s.rollback(seq, snapshot)
		return err
	}

	s.reconcile(seq, payload.Cart)
	return nil
}

// --------------------------------------------------
// Update quantity
// --------------------------------------------------

// UpdateQuantity changes a line's quantity with an immediate local preview,
// then reconciles against the server response. Quantities at or below zero
// are routed as removal.
func (s *Store) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return s.RemoveItem(ctx, itemID)
	}

	snapshot, seq := s.begin()
	if snapshot == nil {
		return nil
	}

	idx := snapshot.itemIndex(itemID)
	if idx < 0 {
		return nil
	}

	items := append([]Item(nil), snapshot.Items...)
	items[idx].Quantity = quantity
	items[idx].TotalPriceCents = items[idx].UnitPriceCents() * int64(quantity)
	s.setOptimistic(snapshot.withPreviewTotals(items))

	var payload cartEnvelope
	err := s.client.Patch(ctx, "/cart/items/"+itemID, map[string]any{
		"quantity": quantity,
	}, &payload)
	if err != nil {
		s.rollback(seq, snapshot)
		return err
	}

	s.reconcile(seq, payload.Cart)
	return nil
}

// --------------------------------------------------
// Remove item
// --------------------------------------------------

// RemoveItem deletes a line with the same optimistic-preview discipline.
// Removing an id not present in the cart is a local no-op; no request is
// issued.
func (s *Store) RemoveItem(ctx context.Context, itemID string) error {
	snapshot, seq := s.begin()
	if snapshot == nil {
		return nil
	}

	idx := snapshot.itemIndex(itemID)
	if idx < 0 {
		return nil
	}

	items := make([]Item, 0, len(snapshot.Items)-1)
	for _, item := range snapshot.Items {
		if item.ID != itemID {
			items = append(items, item)
		}
	}
	s.setOptimistic(snapshot.withPreviewTotals(items))

	var payload cartEnvelope
	if err := s.client.Delete(ctx, "/cart/items/"+itemID, &payload); err != nil {
		s.rollback(seq, snapshot)
		return err
	}

	s.reconcile(seq, payload.Cart)
	return nil
}

// --------------------------------------------------
// Clear
// --------------------------------------------------

// Clear empties the cart. The local cart goes absent immediately, so a
// failure is reported only after the UI has already shown an empty cart;
// the rollback restores it.
func (s *Store) Clear(ctx context.Context) error {
	snapshot, seq := s.begin()
	if snapshot == nil {
		return nil
	}

	s.setOptimistic(nil)

	var payload cartEnvelope
	err := s.client.Post(ctx, "/cart/clear", map[string]any{
		"cart_id": snapshot.ID,
	}, &payload)
	if err != nil {
		s.rollback(seq, snapshot)
		return err
	}

	s.reconcile(seq, payload.Cart)
	return nil
}

// --------------------------------------------------
// Promotions
// --------------------------------------------------

// ApplyPromo applies a promotion code to the cart. Discounts are computed
// server-side, so there is no optimistic preview; the local cart is only
// replaced on success.
func (s *Store) ApplyPromo(ctx context.Context, code string) error {
	snapshot, seq := s.begin()
	if snapshot == nil {
		return nil
	}

	var payload cartEnvelope
	err := s.client.Post(ctx, "/cart/apply-promo", map[string]any{
		"cart_id": snapshot.ID,
		"code":    code,
	}, &payload)
	if err != nil {
		return err
	}

	s.reconcile(seq, payload.Cart)
	return nil
}
