package staff

import "sala-agenda/internal/pkg/errs"

var ErrInvalidRole = errs.New("invalid staff role")

// Role controls what a staff member can do in the admin screens.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleSala   Role = "sala"   // floor staff: timeline and quick bookings
	RoleLector Role = "lector" // read-only
)

func NewRole(value string) (Role, error) {
	r := Role(value)
	if !r.IsValid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleSala, RoleLector:
		return true
	default:
		return false
	}
}
