package services

import (
	"context"
	"sort"
	"time"

	"github.com/sportsgeo/tournament-finder/models"
	"github.com/sportsgeo/tournament-finder/repositories"
)

// In-memory репозитории для тестов сервисного слоя.

type stubUserRepo struct {
	users []models.User
}

func (s *stubUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return repositories.ErrUserEmailConflict
		}
	}
	user.ID = len(s.users) + 1
	user.CreatedAt = time.Now()
	s.users = append(s.users, *user)
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			copied := u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type stubTournamentRepo struct {
	tournaments []models.Tournament
}

func (s *stubTournamentRepo) Create(_ context.Context, t *models.Tournament) error {
	t.ID = len(s.tournaments) + 1
	t.CreatedAt = time.Now()
	s.tournaments = append(s.tournaments, *t)
	return nil
}

func (s *stubTournamentRepo) GetByID(_ context.Context, id int) (*models.Tournament, error) {
	for _, t := range s.tournaments {
		if t.ID == id {
			copied := t
			return &copied, nil
		}
	}
	return nil, repositories.ErrTournamentNotFound
}

func (s *stubTournamentRepo) ListByDate(_ context.Context) ([]models.Tournament, error) {
	listed := make([]models.Tournament, len(s.tournaments))
	copy(listed, s.tournaments)
	sort.SliceStable(listed, func(i, j int) bool {
		if listed[i].Date.Equal(listed[j].Date) {
			return listed[i].ID < listed[j].ID
		}
		return listed[i].Date.Before(listed[j].Date)
	})
	return listed, nil
}

func (s *stubTournamentRepo) FindByNameAndDate(_ context.Context, name string, date time.Time) (*models.Tournament, error) {
	for _, t := range s.tournaments {
		if t.Name == name && t.Date.Equal(date) {
			copied := t
			return &copied, nil
		}
	}
	return nil, repositories.ErrTournamentNotFound
}

type stubRegistrationRepo struct {
	registrations []models.Registration
	tournaments   *stubTournamentRepo

	// createErr подменяет результат Create — имитация нарушения
	// constraint при гонке двух конкурентных вставок.
	createErr error
}

func (s *stubRegistrationRepo) Create(_ context.Context, reg *models.Registration) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, existing := range s.registrations {
		if existing.UserID == reg.UserID && existing.TournamentID == reg.TournamentID {
			return repositories.ErrRegistrationConflict
		}
	}
	reg.ID = len(s.registrations) + 1
	reg.CreatedAt = time.Now()
	s.registrations = append(s.registrations, *reg)
	return nil
}

func (s *stubRegistrationRepo) FindByUserAndTournament(_ context.Context, userID, tournamentID int) (*models.Registration, error) {
	for _, reg := range s.registrations {
		if reg.UserID == userID && reg.TournamentID == tournamentID {
			copied := reg
			return &copied, nil
		}
	}
	return nil, repositories.ErrRegistrationNotFound
}

func (s *stubRegistrationRepo) ListByUserWithTournaments(ctx context.Context, userID int) ([]repositories.RegistrationWithTournament, error) {
	entries := make([]repositories.RegistrationWithTournament, 0)
	for _, reg := range s.registrations {
		if reg.UserID != userID {
			continue
		}
		tournament, err := s.tournaments.GetByID(ctx, reg.TournamentID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, repositories.RegistrationWithTournament{
			Registration: reg,
			Tournament:   *tournament,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Tournament.Date.Before(entries[j].Tournament.Date)
	})
	return entries, nil
}
