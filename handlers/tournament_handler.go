package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/sportsgeo/tournament-finder/middleware"
	"github.com/sportsgeo/tournament-finder/models"
	"github.com/sportsgeo/tournament-finder/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
}

func NewTournamentHandler(tournamentService services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: tournamentService}
}

// List обрабатывает GET /tournaments с фильтрами lat/lng/radius/sport.
func (h *TournamentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	radius := services.DefaultSearchRadiusKm
	if radiusStr := query.Get("radius"); radiusStr != "" {
		v, err := strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			badRequestResponse(w, r, errors.New("invalid radius"))
			return
		}
		radius = v
	}
	if radius <= 0 {
		badRequestResponse(w, r, services.ErrInvalidRadius)
		return
	}

	// Точка отсчёта есть только когда переданы обе координаты:
	// одиночный lat или lng трактуется как запрос без локации.
	var origin *models.Coordinate
	latStr, lngStr := query.Get("lat"), query.Get("lng")
	if latStr != "" && lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			badRequestResponse(w, r, errors.New("invalid lat/lng"))
			return
		}
		origin = &models.Coordinate{Latitude: lat, Longitude: lng}
	}

	filter := services.DiscoverFilter{
		Origin:   origin,
		RadiusKm: radius,
		Sport:    query.Get("sport"),
	}

	results, err := h.tournamentService.Discover(r.Context(), filter)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": results}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Create обрабатывает POST /tournaments (только для организаторов).
func (h *TournamentHandler) Create(w http.ResponseWriter, r *http.Request) {
	currentUserID, err := middleware.GetUserIDFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "authentication required to create tournament")
		return
	}

	var input services.CreateTournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	tournament, err := h.tournamentService.Create(r.Context(), currentUserID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"tournament": tournament}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Seed обрабатывает POST /init-data: идемпотентная загрузка демо-данных.
func (h *TournamentHandler) Seed(w http.ResponseWriter, r *http.Request) {
	created, err := h.tournamentService.SeedSampleData(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	response := jsonResponse{
		"message": "sample data processed",
		"created": created,
	}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
