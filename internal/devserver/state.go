package devserver

import (
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/jsoto007/nush/internal/auth"
	"github.com/jsoto007/nush/internal/cart"
	"github.com/jsoto007/nush/internal/order"
	"github.com/jsoto007/nush/internal/restaurant"
)

type account struct {
	user         auth.User
	passwordHash []byte
	resetToken   string
}

type promo struct {
	Code          string
	Type          string // "percent" or "fixed"
	Percent       float64
	AmountCents   int64
	MinOrderCents int64
}

type cartRecord struct {
	cart       cart.Cart
	customerID string // empty for guest carts
}

// state is everything the dev server keeps in process: accounts, carts,
// orders, staff rosters, promotions. It resets on restart by design.
type state struct {
	mu       sync.Mutex
	accounts map[string]*account // keyed by email
	byID     map[string]*account
	carts    map[string]*cartRecord
	orders   map[string]*order.Order
	staff    map[string][]restaurant.StaffMember
	promos   map[string]promo
}

func newState() *state {
	s := &state{
		accounts: make(map[string]*account),
		byID:     make(map[string]*account),
		carts:    make(map[string]*cartRecord),
		orders:   make(map[string]*order.Order),
		staff:    make(map[string][]restaurant.StaffMember),
		promos:   make(map[string]promo),
	}

	s.addAccount("owner-1", "Olive Owner", "owner@nush.dev", "password123", auth.RoleRestaurantOwner)
	s.addAccount("customer-1", "Alice Example", "alice@nush.dev", "password123", auth.RoleCustomer)

	s.promos["welcome10"] = promo{
		Code:          "WELCOME10",
		Type:          "percent",
		Percent:       10,
		MinOrderCents: 1000,
	}
	return s
}

func (s *state) addAccount(id, name, email, password, role string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	acct := &account{
		user: auth.User{
			ID:       id,
			Name:     name,
			Email:    email,
			Role:     role,
			IsActive: true,
		},
		passwordHash: hash,
	}
	s.accounts[email] = acct
	s.byID[id] = acct
}

func (s *state) findPromo(code string) (promo, bool) {
	p, ok := s.promos[strings.ToLower(strings.TrimSpace(code))]
	return p, ok
}

// cartForCustomer returns the customer's active cart, if any.
func (s *state) cartForCustomer(customerID string) *cartRecord {
	for _, rec := range s.carts {
		if rec.customerID == customerID {
			return rec
		}
	}
	return nil
}

// dropCartsForCustomer removes every cart owned by the customer. Creating
// a cart for a new restaurant replaces the old one rather than merging.
func (s *state) dropCartsForCustomer(customerID string) {
	for id, rec := range s.carts {
		if rec.customerID == customerID {
			delete(s.carts, id)
		}
	}
}
