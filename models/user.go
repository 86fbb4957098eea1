package models

import "time"

// UserRole представляет роль пользователя, соответствует CHECK в БД.
type UserRole string

const (
	RolePlayer    UserRole = "player"
	RoleOrganizer UserRole = "organizer"
)

func (r UserRole) Valid() bool {
	switch r {
	case RolePlayer, RoleOrganizer:
		return true
	}
	return false
}

type User struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         UserRole    `json:"role"`
	Location     *Coordinate `json:"location,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
