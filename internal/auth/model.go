package auth

// Staff roles. Admins manage the catalog, bulk deletes and settlement;
// waiters take orders; couriers handle the delivery views.
const (
	RoleAdmin    = "ADMIN"
	RoleWaiter   = "WAITER"
	RoleDelivery = "DELIVERY"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

// ValidRole reports whether role is one of the known staff roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleWaiter, RoleDelivery:
		return true
	}
	return false
}
