package service

import (
	"encoding/json"
	"time"

	"esportconnect/auth/users"

	"github.com/google/uuid"
)

// sessionRecord is the wire form of the persisted identity. It must
// round-trip exactly through encode and decode.
type sessionRecord struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	Role      users.Role `json:"role"`
	Avatar    string     `json:"avatar,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func encodeRecord(u users.User) ([]byte, error) {
	return json.Marshal(sessionRecord{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	})
}

func decodeRecord(payload []byte) (users.User, error) {
	var rec sessionRecord
	if err := json.Unmarshal(payload, &rec); err != nil {
		return users.User{}, err
	}
	if _, err := users.ParseRole(string(rec.Role)); err != nil {
		return users.User{}, err
	}
	return users.User{
		ID:        rec.ID,
		Username:  rec.Username,
		Email:     rec.Email,
		Role:      rec.Role,
		Avatar:    rec.Avatar,
		CreatedAt: rec.CreatedAt,
	}, nil
}
