package auth

import "fmt"

// Role is the closed set of marketplace roles. Authorization points switch
// on it exhaustively instead of comparing raw strings.
type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleUser, RoleOwner, RoleAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// CanManage reports whether the user may act on resources owned by ownerID.
func (u User) CanManage(ownerID string) bool {
	switch u.Role {
	case RoleAdmin:
		return true
	case RoleOwner, RoleUser:
		return u.ID == ownerID
	default:
		return false
	}
}
