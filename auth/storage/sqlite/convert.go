package sqlite

import (
	"esportconnect/auth/users"
	"esportconnect/gen/model"

	"github.com/google/uuid"
)

func convertUser(m model.Users) (users.User, error) {
	id, err := uuid.Parse(m.ID)
	if err != nil {
		return users.User{}, err
	}
	role, err := users.ParseRole(m.Role)
	if err != nil {
		return users.User{}, err
	}
	var avatar string
	if m.Avatar != nil {
		avatar = *m.Avatar
	}
	return users.User{
		ID:        id,
		Username:  m.Username,
		Email:     m.Email,
		Role:      role,
		Avatar:    avatar,
		CreatedAt: m.CreatedAt,
	}, nil
}
