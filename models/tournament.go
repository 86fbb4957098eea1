package models

import "time"

// DateLayout — формат календарной даты турнира (без времени суток).
const DateLayout = "2006-01-02"

// TournamentMode представляет формат участия, соответствует CHECK в БД.
type TournamentMode string

const (
	ModeIndividual TournamentMode = "individual"
	ModeTeam       TournamentMode = "team"
)

func (m TournamentMode) Valid() bool {
	switch m {
	case ModeIndividual, ModeTeam:
		return true
	}
	return false
}

// Tournament представляет турнир. Координата обязательна,
// в отличие от опциональной домашней координаты пользователя.
type Tournament struct {
	ID          int            `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Sport       string         `json:"sport" db:"sport"`
	Date        time.Time      `json:"date" db:"date"`
	EntryFee    float64        `json:"entry_fee" db:"entry_fee"`
	Mode        TournamentMode `json:"mode" db:"mode"`
	Location    Coordinate     `json:"location"`
	OrganizerID *int           `json:"organizer_id,omitempty" db:"organizer_id"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
}
