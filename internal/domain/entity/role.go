package entity

// Role is the sole basis for authorization decisions. The set is closed;
// anything outside it is rejected at the boundary.
type Role string

const (
	RoleClient  Role = "client"
	RoleCompany Role = "company"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleClient, RoleCompany, RoleAdmin:
		return true
	}
	return false
}

// In reports whether r is a member of the required role set.
func (r Role) In(required ...Role) bool {
	for _, req := range required {
		if r == req {
			return true
		}
	}
	return false
}
