package order

import "github.com/jsoto007/nush/internal/cart"

// Order statuses as the platform's order lifecycle defines them.
const (
	StatusCreated   = "created"
	StatusConfirmed = "confirmed"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusRefunded  = "refunded"
)

// Order is a placed order: the cart snapshot at checkout time plus
// lifecycle fields. All business state transitions happen server-side.
type Order struct {
	ID           string      `json:"id"`
	RestaurantID string      `json:"restaurant_id"`
	CustomerID   string      `json:"customer_id,omitempty"`
	OrderType    string      `json:"order_type"`
	Status       string      `json:"status"`
	Currency     string      `json:"currency"`
	PlacedAt     string      `json:"placed_at"`
	Items        []cart.Item `json:"items"`
	Totals       cart.Totals `json:"totals"`
}

// GuestInfo identifies an unauthenticated customer at checkout.
type GuestInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}
