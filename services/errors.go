package services

import "errors"

// Общие ошибки, используемые в разных сервисах и маппинге HTTP.
var (
	// Ошибки валидации и бизнес-правил
	ErrValidationFailed        = errors.New("validation failed")
	ErrSignupFieldsRequired    = errors.New("name, email and password are required")
	ErrInvalidRole             = errors.New("role must be player or organizer")
	ErrInvalidCoordinate       = errors.New("latitude and longitude must both be valid numbers")
	ErrTournamentNameRequired  = errors.New("name and sport are required")
	ErrInvalidTournamentDate   = errors.New("date must be a calendar date in YYYY-MM-DD format")
	ErrInvalidTournamentMode   = errors.New("mode must be individual or team")
	ErrNegativeEntryFee        = errors.New("entry fee cannot be negative")
	ErrInvalidRadius           = errors.New("radius must be greater than 0")
	ErrTeamFieldsRequired      = errors.New("team name and sport are required")
	ErrRegistrationTeamInvalid = errors.New("referenced team does not exist")

	// Ресурс не найден
	ErrUserNotFound       = errors.New("user not found")
	ErrTournamentNotFound = errors.New("tournament not found")

	// Ошибки конфликтов
	ErrUserEmailConflict    = errors.New("email already registered")
	ErrRegistrationConflict = errors.New("already registered for this tournament")

	// Ошибки аутентификации и авторизации
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbiddenOperation = errors.New("only organizer can create tournaments")
)
