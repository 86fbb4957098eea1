package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sportsgeo/tournament-finder/models"
)

var (
	ErrRegistrationNotFound          = errors.New("registration not found")
	ErrRegistrationConflict          = errors.New("registration conflict: user already registered for this tournament")
	ErrRegistrationUserInvalid       = errors.New("registration user conflict or invalid")
	ErrRegistrationTeamInvalid       = errors.New("registration team conflict or invalid")
	ErrRegistrationTournamentInvalid = errors.New("registration tournament conflict or invalid")
)

// RegistrationWithTournament — строка выборки "мои регистрации":
// регистрация вместе с её турниром.
type RegistrationWithTournament struct {
	Registration models.Registration
	Tournament   models.Tournament
}

type RegistrationRepository interface {
	// Create вставляет запись. Уникальность пары (user_id, tournament_id)
	// гарантирует constraint БД: он закрывает гонку между предварительной
	// проверкой и вставкой, нарушение маппится в ErrRegistrationConflict.
	Create(ctx context.Context, registration *models.Registration) error
	FindByUserAndTournament(ctx context.Context, userID, tournamentID int) (*models.Registration, error)
	ListByUserWithTournaments(ctx context.Context, userID int) ([]RegistrationWithTournament, error)
}

type postgresRegistrationRepository struct {
	db *sql.DB
}

func NewPostgresRegistrationRepository(db *sql.DB) RegistrationRepository {
	return &postgresRegistrationRepository{db: db}
}

func (r *postgresRegistrationRepository) Create(ctx context.Context, registration *models.Registration) error {
	query := `
		INSERT INTO registrations (user_id, tournament_id, team_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		registration.UserID,
		registration.TournamentID,
		registration.TeamID,
	).Scan(&registration.ID, &registration.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // unique_violation
				if pqErr.Constraint == "registrations_user_id_tournament_id_key" {
					return ErrRegistrationConflict
				}
			case "23503": // foreign_key_violation
				switch pqErr.Constraint {
				case "registrations_user_id_fkey":
					return ErrRegistrationUserInvalid
				case "registrations_team_id_fkey":
					return ErrRegistrationTeamInvalid
				case "registrations_tournament_id_fkey":
					return ErrRegistrationTournamentInvalid
				}
			}
		}
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

func (r *postgresRegistrationRepository) FindByUserAndTournament(ctx context.Context, userID, tournamentID int) (*models.Registration, error) {
	query := `
		SELECT id, user_id, tournament_id, team_id, created_at
		FROM registrations
		WHERE user_id = $1 AND tournament_id = $2`

	reg := &models.Registration{}
	err := r.db.QueryRowContext(ctx, query, userID, tournamentID).Scan(
		&reg.ID,
		&reg.UserID,
		&reg.TournamentID,
		&reg.TeamID,
		&reg.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("failed to find registration: %w", err)
	}
	return reg, nil
}

func (r *postgresRegistrationRepository) ListByUserWithTournaments(ctx context.Context, userID int) ([]RegistrationWithTournament, error) {
	query := `
		SELECT
			r.id, r.user_id, r.tournament_id, r.team_id, r.created_at,
			t.id, t.name, t.sport, t.date, t.entry_fee, t.mode, t.latitude, t.longitude, t.organizer_id, t.created_at
		FROM registrations r
		JOIN tournaments t ON t.id = r.tournament_id
		WHERE r.user_id = $1
		ORDER BY t.date ASC, t.id ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	entries := make([]RegistrationWithTournament, 0)
	for rows.Next() {
		var e RegistrationWithTournament
		scanErr := rows.Scan(
			&e.Registration.ID,
			&e.Registration.UserID,
			&e.Registration.TournamentID,
			&e.Registration.TeamID,
			&e.Registration.CreatedAt,
			&e.Tournament.ID,
			&e.Tournament.Name,
			&e.Tournament.Sport,
			&e.Tournament.Date,
			&e.Tournament.EntryFee,
			&e.Tournament.Mode,
			&e.Tournament.Location.Latitude,
			&e.Tournament.Location.Longitude,
			&e.Tournament.OrganizerID,
			&e.Tournament.CreatedAt,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}
