package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/middleware"
	"tripplanner/pkg/utils"
)

type stubItineraryService struct {
	previewFn    func(request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error)
	generateFn   func(userId string, req request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error)
	reoptimizeFn func(userId, journeyId string, day int, apply bool) (*response_models.ReoptimizeResponse, error)
	reorderFn    func(userId, journeyId string, day int, ids []string) (*response_models.DayPlanResponse, error)
}

func (s *stubItineraryService) Preview(_ context.Context, r request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error) {
	return s.previewFn(r)
}

func (s *stubItineraryService) Generate(_ context.Context, userId string, r request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error) {
	return s.generateFn(userId, r)
}

func (s *stubItineraryService) ReorderDay(_ context.Context, userId, journeyId string, day int, ids []string) (*response_models.DayPlanResponse, error) {
	return s.reorderFn(userId, journeyId, day, ids)
}

func (s *stubItineraryService) AddPoiToDay(context.Context, string, string, int, string, *int) (*response_models.DayPlanResponse, error) {
	return &response_models.DayPlanResponse{}, nil
}

func (s *stubItineraryService) RemovePoiFromDay(context.Context, string, string, int, string) (*response_models.DayPlanResponse, error) {
	return &response_models.DayPlanResponse{}, nil
}

func (s *stubItineraryService) ReoptimizeDay(_ context.Context, userId, journeyId string, day int, apply bool) (*response_models.ReoptimizeResponse, error) {
	return s.reoptimizeFn(userId, journeyId, day, apply)
}

func newItineraryRouter(svc *stubItineraryService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "user-1")
		c.Next()
	})
	ctl := NewItineraryController(svc)
	r.POST("/itineraries/preview", ctl.PreviewItinerary)
	r.POST("/itineraries", ctl.GenerateItinerary)
	r.PUT("/journeys/:journeyId/days/:dayNumber/order", ctl.ReorderDay)
	r.POST("/journeys/:journeyId/days/:dayNumber/reoptimize", ctl.ReoptimizeDay)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

const tripBody = `{"destination":"Hanoi","start_date":"2026-03-01","end_date":"2026-03-02"}`

func TestPreviewItinerary(t *testing.T) {
	svc := &stubItineraryService{
		previewFn: func(r request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error) {
			assert.Equal(t, "Hanoi", r.Destination)
			return &response_models.ItineraryResponse{Destination: r.Destination, TotalDays: 2}, nil
		},
	}
	r := newItineraryRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/itineraries/preview", strings.NewReader(tripBody)))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", decode(t, w).Status)
}

func TestPreviewItinerary_BadBody(t *testing.T) {
	r := newItineraryRouter(&stubItineraryService{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/itineraries/preview", strings.NewReader(`{"destination":"Hanoi"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGenerateItinerary_NoCandidatesIs422(t *testing.T) {
	svc := &stubItineraryService{
		generateFn: func(userId string, _ request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error) {
			assert.Equal(t, "user-1", userId)
			return nil, utils.ErrNoCandidates
		},
	}
	r := newItineraryRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(tripBody)))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "error", decode(t, w).Status)
}

func TestGenerateItinerary_Created(t *testing.T) {
	svc := &stubItineraryService{
		generateFn: func(string, request_models.GenerateItineraryRequest) (*response_models.ItineraryResponse, error) {
			return &response_models.ItineraryResponse{JourneyID: "j-1"}, nil
		},
	}
	r := newItineraryRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(tripBody)))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestReoptimizeDay_Params(t *testing.T) {
	var gotApply bool
	svc := &stubItineraryService{
		reoptimizeFn: func(_, journeyId string, day int, apply bool) (*response_models.ReoptimizeResponse, error) {
			assert.Equal(t, "j-1", journeyId)
			assert.Equal(t, 2, day)
			gotApply = apply
			return &response_models.ReoptimizeResponse{DayNumber: day, Applied: apply}, nil
		},
	}
	r := newItineraryRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/journeys/j-1/days/2/reoptimize?apply=true", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gotApply)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/journeys/j-1/days/0/reoptimize", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/journeys/j-1/days/2/reoptimize?apply=maybe", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReorderDay_ForbiddenMapsTo403(t *testing.T) {
	svc := &stubItineraryService{
		reorderFn: func(_, _ string, _ int, ids []string) (*response_models.DayPlanResponse, error) {
			assert.Equal(t, []string{"a", "b"}, ids)
			return nil, utils.ErrForbidden
		},
	}
	r := newItineraryRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/journeys/j-1/days/1/order", strings.NewReader(`{"poi_ids":["a","b"]}`)))

	assert.Equal(t, http.StatusForbidden, w.Code)
}
