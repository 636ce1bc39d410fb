package users

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RolePlayer    Role = "player"
	RoleRecruiter Role = "recruiter"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RolePlayer, RoleRecruiter:
		return r, nil
	}
	return "", ErrUnknownRole
}

// DefaultAvatar is the stock avatar assigned to synthesized identities.
func (r Role) DefaultAvatar() string {
	if r == RoleRecruiter {
		return "https://images.pexels.com/photos/3184298/pexels-photo-3184298.jpeg?auto=compress&cs=tinysrgb&w=400"
	}
	return "https://images.pexels.com/photos/3184302/pexels-photo-3184302.jpeg?auto=compress&cs=tinysrgb&w=400"
}

// User is the authenticated principal. The role never changes after
// creation.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Role      Role
	Avatar    string
	CreatedAt time.Time
}

// IsZero reports whether u is the guest (unauthenticated) identity.
func (u User) IsZero() bool {
	return u.ID == uuid.Nil
}
