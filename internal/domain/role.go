package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleEmployee:
		return RoleEmployee, nil
	case RoleManager:
		return RoleManager, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) Valid() bool {
	return r == RoleEmployee || r == RoleManager
}

func (r Role) String() string {
	return string(r)
}

// Scan lets gorm read the users.role column straight into a Role.
func (r *Role) Scan(value any) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Role", value)
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("invalid role %q", string(r))
	}
	return string(r), nil
}

// Caller is the authenticated identity the auth middleware hands to services.
type Caller struct {
	UserID string
	Role   Role
}
