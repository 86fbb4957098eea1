package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sportsgeo/tournament-finder/models"
)

var ErrTeamCreatorInvalid = errors.New("team creator conflict or invalid")

type TeamRepository interface {
	Create(ctx context.Context, team *models.Team) error
	List(ctx context.Context) ([]models.Team, error)
}

type postgresTeamRepository struct {
	db *sql.DB
}

func NewPostgresTeamRepository(db *sql.DB) TeamRepository {
	return &postgresTeamRepository{db: db}
}

func (r *postgresTeamRepository) Create(ctx context.Context, team *models.Team) error {
	query := `
		INSERT INTO teams (name, sport, skill_level, latitude, longitude, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	var lat, lng sql.NullFloat64
	if team.Location != nil {
		lat = sql.NullFloat64{Float64: team.Location.Latitude, Valid: true}
		lng = sql.NullFloat64{Float64: team.Location.Longitude, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, query,
		team.Name,
		team.Sport,
		team.SkillLevel,
		lat,
		lng,
		team.CreatedBy,
	).Scan(&team.ID, &team.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" && pqErr.Constraint == "teams_created_by_fkey" {
				return ErrTeamCreatorInvalid
			}
		}
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

func (r *postgresTeamRepository) List(ctx context.Context) ([]models.Team, error) {
	query := `
		SELECT id, name, sport, skill_level, latitude, longitude, created_by, created_at
		FROM teams
		ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]models.Team, 0)
	for rows.Next() {
		var team models.Team
		var lat, lng sql.NullFloat64
		scanErr := rows.Scan(
			&team.ID,
			&team.Name,
			&team.Sport,
			&team.SkillLevel,
			&lat,
			&lng,
			&team.CreatedBy,
			&team.CreatedAt,
		)
		if scanErr != nil {
			return nil, scanErr
		}
		if lat.Valid && lng.Valid {
			team.Location = &models.Coordinate{Latitude: lat.Float64, Longitude: lng.Float64}
		}
		teams = append(teams, team)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return teams, nil
}
