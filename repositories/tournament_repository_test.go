package repositories

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/sportsgeo/tournament-finder/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTournamentRepo(t *testing.T) (sqlmock.Sqlmock, TournamentRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return mock, NewPostgresTournamentRepository(db)
}

var tournamentCols = []string{"id", "name", "sport", "date", "entry_fee", "mode", "latitude", "longitude", "organizer_id", "created_at"}

func TestTournamentListByDateOrdersAscending(t *testing.T) {
	mock, repo := newTournamentRepo(t)

	now := time.Now()
	// Порядок по дате — контракт каталога, зашит в запрос
	mock.ExpectQuery(`SELECT (.+) FROM tournaments ORDER BY date ASC`).
		WillReturnRows(sqlmock.NewRows(tournamentCols).
			AddRow(3, "Mumbai Football Cup", "Football", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 500.0, "team", 19.0760, 72.8777, nil, now).
			AddRow(1, "Basketball Championship", "Basketball", time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), 50.0, "team", 40.7128, -74.0060, 2, now))

	tournaments, err := repo.ListByDate(context.Background())
	require.NoError(t, err)
	require.Len(t, tournaments, 2)

	assert.Equal(t, "Mumbai Football Cup", tournaments[0].Name)
	assert.Nil(t, tournaments[0].OrganizerID)
	assert.Equal(t, models.Coordinate{Latitude: 19.0760, Longitude: 72.8777}, tournaments[0].Location)

	require.NotNil(t, tournaments[1].OrganizerID)
	assert.Equal(t, 2, *tournaments[1].OrganizerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTournamentGetByIDNotFound(t *testing.T) {
	mock, repo := newTournamentRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM tournaments WHERE id`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(tournamentCols))

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestTournamentCreateSuccess(t *testing.T) {
	mock, repo := newTournamentRepo(t)

	organizerID := 2
	created := time.Now()
	mock.ExpectQuery("INSERT INTO tournaments").
		WithArgs("City Cup", "Soccer", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), 10.5, "team", 40.7128, -74.0060, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, created))

	tournament := &models.Tournament{
		Name:        "City Cup",
		Sport:       "Soccer",
		Date:        time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		EntryFee:    10.5,
		Mode:        models.ModeTeam,
		Location:    models.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
		OrganizerID: &organizerID,
	}
	require.NoError(t, repo.Create(context.Background(), tournament))
	assert.Equal(t, 11, tournament.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
