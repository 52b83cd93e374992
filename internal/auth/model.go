package auth

// User roles as the platform defines them.
const (
	RoleCustomer        = "customer"
	RoleCourier         = "courier"
	RoleRestaurantOwner = "restaurant_owner"
	RoleStaff           = "staff"
	RoleAdmin           = "admin"
)

// User is the authenticated account as reported by the server.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// CanManage reports whether the user may see back-office screens. This
// gates navigation only; the server re-authorizes every request.
func (u *User) CanManage() bool {
	if u == nil {
		return false
	}
	switch u.Role {
	case RoleRestaurantOwner, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// IsAdmin reports whether the user may see the platform-admin console.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
