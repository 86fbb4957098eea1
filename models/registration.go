package models

import "time"

// Registration связывает пользователя с турниром.
// Пара (user_id, tournament_id) уникальна на уровне БД.
type Registration struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	TournamentID int       `json:"tournament_id"`
	TeamID       *int      `json:"team_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
