package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sportsgeo/tournament-finder/models"
	"github.com/sportsgeo/tournament-finder/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTournamentService struct {
	lastFilter *services.DiscoverFilter
	results    []services.TournamentResult
	err        error
}

func (s *stubTournamentService) Create(_ context.Context, _ int, _ services.CreateTournamentInput) (*models.Tournament, error) {
	return nil, s.err
}

func (s *stubTournamentService) Discover(_ context.Context, filter services.DiscoverFilter) ([]services.TournamentResult, error) {
	s.lastFilter = &filter
	return s.results, s.err
}

func (s *stubTournamentService) SeedSampleData(_ context.Context) (int, error) {
	return 0, s.err
}

func TestListRejectsMalformedRadius(t *testing.T) {
	svc := &stubTournamentService{}
	h := NewTournamentHandler(svc)

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest("GET", "/tournaments?radius=abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastFilter, "no filtering may happen for a malformed radius")
}

func TestListRejectsNonPositiveRadius(t *testing.T) {
	for _, radius := range []string{"0", "-5"} {
		svc := &stubTournamentService{}
		h := NewTournamentHandler(svc)

		w := httptest.NewRecorder()
		h.List(w, httptest.NewRequest("GET", "/tournaments?radius="+radius, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Nil(t, svc.lastFilter)
	}
}

func TestListDefaultsRadiusTo50(t *testing.T) {
	svc := &stubTournamentService{}
	h := NewTournamentHandler(svc)

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest("GET", "/tournaments?lat=40.7580&lng=-73.9855", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastFilter)
	assert.Equal(t, 50.0, svc.lastFilter.RadiusKm)
	require.NotNil(t, svc.lastFilter.Origin)
	assert.Equal(t, models.Coordinate{Latitude: 40.7580, Longitude: -73.9855}, *svc.lastFilter.Origin)
}

func TestListPartialCoordinateTreatedAsNoOrigin(t *testing.T) {
	for _, query := range []string{"lat=40.7580", "lng=-73.9855"} {
		svc := &stubTournamentService{}
		h := NewTournamentHandler(svc)

		w := httptest.NewRecorder()
		h.List(w, httptest.NewRequest("GET", "/tournaments?"+query, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, svc.lastFilter)
		assert.Nil(t, svc.lastFilter.Origin)
	}
}

func TestListRejectsMalformedCoordinates(t *testing.T) {
	svc := &stubTournamentService{}
	h := NewTournamentHandler(svc)

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest("GET", "/tournaments?lat=north&lng=-73.9855", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastFilter)
}

func TestListReturnsResults(t *testing.T) {
	distance := 5.31
	svc := &stubTournamentService{results: []services.TournamentResult{
		{ID: 1, Name: "Basketball Championship", Sport: "Basketball", DistanceKm: &distance, Date: "2026-03-20", EntryFee: 50, Mode: models.ModeTeam, Latitude: 40.7128, Longitude: -74.0060},
	}}
	h := NewTournamentHandler(svc)

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest("GET", "/tournaments?sport=basketball", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastFilter)
	assert.Equal(t, "basketball", svc.lastFilter.Sport)

	var body struct {
		Tournaments []map[string]interface{} `json:"tournaments"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Tournaments, 1)
	assert.Equal(t, "Basketball Championship", body.Tournaments[0]["name"])
	assert.InDelta(t, 5.31, body.Tournaments[0]["distance"], 0.001)
}

func TestCreateWithoutAuthContext(t *testing.T) {
	h := NewTournamentHandler(&stubTournamentService{})

	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest("POST", "/tournaments", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMapServiceErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrInvalidRadius, http.StatusBadRequest},
		{services.ErrTournamentNotFound, http.StatusNotFound},
		{services.ErrRegistrationConflict, http.StatusConflict},
		{services.ErrForbiddenOperation, http.StatusForbidden},
		{services.ErrInvalidCredentials, http.StatusUnauthorized},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range tests {
		w := httptest.NewRecorder()
		mapServiceErrorToHTTP(w, httptest.NewRequest("GET", "/", nil), tc.err)
		assert.Equalf(t, tc.want, w.Code, "error %v", tc.err)
	}
}
