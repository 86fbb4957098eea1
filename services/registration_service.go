package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sportsgeo/tournament-finder/models"
	"github.com/sportsgeo/tournament-finder/repositories"
)

type RegistrationService interface {
	Register(ctx context.Context, userID, tournamentID int, teamID *int) (*models.Registration, error)
	ListForUser(ctx context.Context, userID int) ([]RegistrationView, error)
}

// RegistrationView — регистрация, объединённая с данными турнира.
type RegistrationView struct {
	RegistrationID int                   `json:"registration_id"`
	TournamentID   int                   `json:"tournament_id"`
	Name           string                `json:"name"`
	Sport          string                `json:"sport"`
	Date           string                `json:"date"`
	EntryFee       float64               `json:"entry_fee"`
	Mode           models.TournamentMode `json:"mode"`
}

type registrationService struct {
	registrationRepo repositories.RegistrationRepository
	userRepo         repositories.UserRepository
	tournamentRepo   repositories.TournamentRepository
}

func NewRegistrationService(
	registrationRepo repositories.RegistrationRepository,
	userRepo repositories.UserRepository,
	tournamentRepo repositories.TournamentRepository,
) RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		tournamentRepo:   tournamentRepo,
	}
}

// Register проверяет существование пользователя и турнира, затем вставляет запись.
// Предварительная проверка дубликата даёт дружелюбную ошибку в обычном случае,
// но инвариант держит уникальный constraint БД: при гонке двух конкурентных
// запросов проигравший получает тот же ErrRegistrationConflict из вставки.
// team_id сохраняется без сверки вида спорта или режима команды с турниром —
// это осознанное ослабление, FK проверяет лишь существование команды.
func (s *registrationService) Register(ctx context.Context, userID, tournamentID int, teamID *int) (*models.Registration, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to check tournament: %w", err)
	}

	_, err := s.registrationRepo.FindByUserAndTournament(ctx, userID, tournamentID)
	if err == nil {
		return nil, ErrRegistrationConflict
	}
	if !errors.Is(err, repositories.ErrRegistrationNotFound) {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}

	registration := &models.Registration{
		UserID:       userID,
		TournamentID: tournamentID,
		TeamID:       teamID,
	}

	if err := s.registrationRepo.Create(ctx, registration); err != nil {
		switch {
		case errors.Is(err, repositories.ErrRegistrationConflict):
			return nil, ErrRegistrationConflict
		case errors.Is(err, repositories.ErrRegistrationUserInvalid):
			return nil, ErrUserNotFound
		case errors.Is(err, repositories.ErrRegistrationTournamentInvalid):
			return nil, ErrTournamentNotFound
		case errors.Is(err, repositories.ErrRegistrationTeamInvalid):
			return nil, ErrRegistrationTeamInvalid
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	return registration, nil
}

// ListForUser возвращает регистрации пользователя с их турнирами,
// отсортированные по дате турнира.
func (s *registrationService) ListForUser(ctx context.Context, userID int) ([]RegistrationView, error) {
	entries, err := s.registrationRepo.ListByUserWithTournaments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	views := make([]RegistrationView, 0, len(entries))
	for _, e := range entries {
		views = append(views, RegistrationView{
			RegistrationID: e.Registration.ID,
			TournamentID:   e.Tournament.ID,
			Name:           e.Tournament.Name,
			Sport:          e.Tournament.Sport,
			Date:           e.Tournament.Date.Format(models.DateLayout),
			EntryFee:       e.Tournament.EntryFee,
			Mode:           e.Tournament.Mode,
		})
	}
	return views, nil
}
