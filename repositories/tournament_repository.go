package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/sportsgeo/tournament-finder/models"
)

var (
	ErrTournamentNotFound         = errors.New("tournament not found")
	ErrTournamentOrganizerInvalid = errors.New("tournament organizer conflict or invalid")
)

type TournamentRepository interface {
	Create(ctx context.Context, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	// ListByDate возвращает весь каталог, отсортированный по дате (раньше — первее).
	// Порядок — часть контракта поиска, а не деталь реализации.
	ListByDate(ctx context.Context) ([]models.Tournament, error)
	FindByNameAndDate(ctx context.Context, name string, date time.Time) (*models.Tournament, error)
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

const tournamentColumns = `id, name, sport, date, entry_fee, mode, latitude, longitude, organizer_id, created_at`

func (r *postgresTournamentRepository) Create(ctx context.Context, tournament *models.Tournament) error {
	query := `
		INSERT INTO tournaments (name, sport, date, entry_fee, mode, latitude, longitude, organizer_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		tournament.Name,
		tournament.Sport,
		tournament.Date,
		tournament.EntryFee,
		tournament.Mode,
		tournament.Location.Latitude,
		tournament.Location.Longitude,
		tournament.OrganizerID,
	).Scan(&tournament.ID, &tournament.CreatedAt)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23503" && pqErr.Constraint == "tournaments_organizer_id_fkey" {
				return ErrTournamentOrganizerInvalid
			}
		}
		return fmt.Errorf("failed to create tournament: %w", err)
	}
	return nil
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *postgresTournamentRepository) FindByNameAndDate(ctx context.Context, name string, date time.Time) (*models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments WHERE name = $1 AND date = $2`
	return r.findOne(ctx, query, name, date)
}

func (r *postgresTournamentRepository) ListByDate(ctx context.Context) ([]models.Tournament, error) {
	query := `SELECT ` + tournamentColumns + ` FROM tournaments ORDER BY date ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var t models.Tournament
		if err := r.scanTournament(rows, &t); err != nil {
			return nil, err
		}
		tournaments = append(tournaments, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (r *postgresTournamentRepository) findOne(ctx context.Context, query string, args ...interface{}) (*models.Tournament, error) {
	t := &models.Tournament{}
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := r.scanTournament(row, t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to find tournament: %w", err)
	}
	return t, nil
}

func (r *postgresTournamentRepository) scanTournament(rowScanner interface {
	Scan(dest ...interface{}) error
}, t *models.Tournament) error {
	return rowScanner.Scan(
		&t.ID,
		&t.Name,
		&t.Sport,
		&t.Date,
		&t.EntryFee,
		&t.Mode,
		&t.Location.Latitude,
		&t.Location.Longitude,
		&t.OrganizerID,
		&t.CreatedAt,
	)
}
