package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sportsgeo/tournament-finder/geo"
	"github.com/sportsgeo/tournament-finder/models"
	"github.com/sportsgeo/tournament-finder/repositories"
)

// DefaultSearchRadiusKm применяется, когда вызывающий не указал радиус поиска.
const DefaultSearchRadiusKm = 50.0

type TournamentService interface {
	Create(ctx context.Context, organizerID int, input CreateTournamentInput) (*models.Tournament, error)
	Discover(ctx context.Context, filter DiscoverFilter) ([]TournamentResult, error)
	SeedSampleData(ctx context.Context) (int, error)
}

type CreateTournamentInput struct {
	Name      string   `json:"name"`
	Sport     string   `json:"sport"`
	Date      string   `json:"date"`
	EntryFee  float64  `json:"entry_fee"`
	Mode      string   `json:"mode"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// DiscoverFilter описывает поисковый запрос каталога.
// Origin == nil означает поиск без точки отсчёта: дистанции не считаются
// и радиус игнорируется, каким бы он ни был.
type DiscoverFilter struct {
	Origin   *models.Coordinate
	RadiusKm float64
	Sport    string
}

// TournamentResult — проекция турнира в выдаче поиска.
// DistanceKm равен nil, когда точка отсчёта не задана.
type TournamentResult struct {
	ID         int                   `json:"id"`
	Name       string                `json:"name"`
	Sport      string                `json:"sport"`
	DistanceKm *float64              `json:"distance"`
	Date       string                `json:"date"`
	EntryFee   float64               `json:"entry_fee"`
	Mode       models.TournamentMode `json:"mode"`
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	userRepo       repositories.UserRepository
}

func NewTournamentService(
	tournamentRepo repositories.TournamentRepository,
	userRepo repositories.UserRepository,
) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		userRepo:       userRepo,
	}
}

// Create проверяет права организатора и валидирует payload до какой-либо записи.
func (s *tournamentService) Create(ctx context.Context, organizerID int, input CreateTournamentInput) (*models.Tournament, error) {
	organizer, err := s.userRepo.GetByID(ctx, organizerID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load organizer: %w", err)
	}

	if organizer.Role != models.RoleOrganizer {
		return nil, ErrForbiddenOperation
	}

	name := strings.TrimSpace(input.Name)
	sport := strings.TrimSpace(input.Sport)
	if name == "" || sport == "" {
		return nil, ErrTournamentNameRequired
	}

	date, err := time.Parse(models.DateLayout, input.Date)
	if err != nil {
		return nil, ErrInvalidTournamentDate
	}

	mode := models.TournamentMode(strings.ToLower(strings.TrimSpace(input.Mode)))
	if !mode.Valid() {
		return nil, ErrInvalidTournamentMode
	}

	if input.EntryFee < 0 {
		return nil, ErrNegativeEntryFee
	}

	if input.Latitude == nil || input.Longitude == nil {
		return nil, ErrInvalidCoordinate
	}

	tournament := &models.Tournament{
		Name:        name,
		Sport:       sport,
		Date:        date,
		EntryFee:    input.EntryFee,
		Mode:        mode,
		Location:    models.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude},
		OrganizerID: &organizer.ID,
	}

	if err := s.tournamentRepo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return tournament, nil
}

// Discover применяет фильтры спорта и радиуса к каталогу.
// Каталог приходит из репозитория уже отсортированным по дате,
// фильтрация порядок не меняет.
func (s *tournamentService) Discover(ctx context.Context, filter DiscoverFilter) ([]TournamentResult, error) {
	radius := filter.RadiusKm
	if radius == 0 {
		radius = DefaultSearchRadiusKm
	}
	if radius < 0 {
		return nil, ErrInvalidRadius
	}

	sport := strings.ToLower(strings.TrimSpace(filter.Sport))

	tournaments, err := s.tournamentRepo.ListByDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tournament catalog: %w", err)
	}

	results := make([]TournamentResult, 0)
	for _, t := range tournaments {
		if sport != "" && strings.ToLower(t.Sport) != sport {
			continue
		}

		var distance *float64
		if filter.Origin != nil {
			d := geo.Distance(filter.Origin.Latitude, filter.Origin.Longitude, t.Location.Latitude, t.Location.Longitude)
			if d > radius {
				continue
			}
			rounded := math.Round(d*100) / 100
			distance = &rounded
		}

		results = append(results, TournamentResult{
			ID:         t.ID,
			Name:       t.Name,
			Sport:      t.Sport,
			DistanceKm: distance,
			Date:       t.Date.Format(models.DateLayout),
			EntryFee:   t.EntryFee,
			Mode:       t.Mode,
			Latitude:   t.Location.Latitude,
			Longitude:  t.Location.Longitude,
		})
	}

	return results, nil
}

// SeedSampleData создаёт демонстрационные турниры, пропуская уже существующие.
func (s *tournamentService) SeedSampleData(ctx context.Context) (int, error) {
	samples := []models.Tournament{
		{
			Name:     "Basketball Championship",
			Sport:    "Basketball",
			Date:     time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC),
			EntryFee: 50.0,
			Mode:     models.ModeTeam,
			Location: models.Coordinate{Latitude: 40.7128, Longitude: -74.0060},
		},
		{
			Name:     "Soccer Open Cup",
			Sport:    "Soccer",
			Date:     time.Date(2026, time.March, 25, 0, 0, 0, 0, time.UTC),
			EntryFee: 30.0,
			Mode:     models.ModeTeam,
			Location: models.Coordinate{Latitude: 40.7580, Longitude: -73.9855},
		},
		{
			Name:     "Mumbai Football Cup",
			Sport:    "Football",
			Date:     time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			EntryFee: 500.0,
			Mode:     models.ModeTeam,
			Location: models.Coordinate{Latitude: 19.0760, Longitude: 72.8777},
		},
	}

	created := 0
	for i := range samples {
		sample := samples[i]

		_, err := s.tournamentRepo.FindByNameAndDate(ctx, sample.Name, sample.Date)
		if err == nil {
			continue
		}
		if !errors.Is(err, repositories.ErrTournamentNotFound) {
			return created, fmt.Errorf("failed to check sample tournament: %w", err)
		}

		if err := s.tournamentRepo.Create(ctx, &sample); err != nil {
			return created, fmt.Errorf("failed to create sample tournament: %w", err)
		}
		created++
	}

	return created, nil
}
