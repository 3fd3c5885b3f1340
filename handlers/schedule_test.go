package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"casavida/models"
	"casavida/services/scheduling"
	"casavida/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine implements scheduling.AvailabilityEngine.
type fakeEngine struct {
	available bool
	availErr  error
	slot      models.Slot
	slotErr   error
}

func (f *fakeEngine) IsAvailable(ctx context.Context, instant time.Time) (bool, error) {
	return f.available, f.availErr
}

func (f *fakeEngine) NextAvailableSlot(ctx context.Context, instant time.Time) (models.Slot, error) {
	return f.slot, f.slotErr
}

// fakeBooking implements scheduling.BookingService.
type fakeBooking struct {
	result models.BookingResult
	err    error
	calls  int
}

func (f *fakeBooking) Book(ctx context.Context, req models.BookingRequest) (models.BookingResult, error) {
	f.calls++
	return f.result, f.err
}

// fakeResolver implements dateparse.Resolver.
type fakeResolver struct {
	at    time.Time
	found bool
	err   error
}

func (f *fakeResolver) Resolve(ctx context.Context, text string, reference time.Time) (time.Time, bool, error) {
	return f.at, f.found, f.err
}

func newTestRouter(t *testing.T, engine *fakeEngine, booking *fakeBooking, resolver *fakeResolver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	schedule := NewScheduleHandler(engine, booking, utils.GetLogger())
	request := NewScheduleRequestHandler(resolver, engine, loc, utils.GetLogger())

	r := gin.New()
	api := r.Group("/api/schedule")
	api.GET("/availability", schedule.GetAvailability)
	api.GET("/next-slot", schedule.GetNextSlot)
	api.POST("/bookings", schedule.CreateBooking)
	api.POST("/requests", request.HandleRequest)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetAvailability(t *testing.T) {
	r := newTestRouter(t, &fakeEngine{available: true}, &fakeBooking{}, &fakeResolver{})

	w := doJSON(t, r, http.MethodGet, "/api/schedule/availability?at=2026-01-05T10:00:00-03:00", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Available bool `json:"available"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
}

func TestGetAvailabilityRejectsBadTimestamp(t *testing.T) {
	r := newTestRouter(t, &fakeEngine{}, &fakeBooking{}, &fakeResolver{})

	w := doJSON(t, r, http.MethodGet, "/api/schedule/availability?at=not-a-time", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNextSlotNotFoundIsNormalOutcome(t *testing.T) {
	r := newTestRouter(t, &fakeEngine{slotErr: scheduling.ErrNoSlotAvailable}, &fakeBooking{}, &fakeResolver{})

	w := doJSON(t, r, http.MethodGet, "/api/schedule/next-slot?after=2026-01-05T10:00:00-03:00", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetNextSlotCalendarDown(t *testing.T) {
	engine := &fakeEngine{slotErr: &scheduling.CalendarUnavailableError{Op: "list events", Err: context.DeadlineExceeded}}
	r := newTestRouter(t, engine, &fakeBooking{}, &fakeResolver{})

	w := doJSON(t, r, http.MethodGet, "/api/schedule/next-slot?after=2026-01-05T10:00:00-03:00", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestCreateBooking(t *testing.T) {
	booking := &fakeBooking{result: models.BookingResult{EventID: "evt-9"}}
	r := newTestRouter(t, &fakeEngine{}, booking, &fakeResolver{})

	w := doJSON(t, r, http.MethodPost, "/api/schedule/bookings", map[string]any{
		"title":       "Apartment viewing",
		"description": "Vila Mariana unit",
		"start":       "2026-01-05T10:00:00-03:00",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.BookingResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "evt-9", resp.EventID)
	assert.Equal(t, 1, booking.calls)
}

func TestCreateBookingInvalidRequest(t *testing.T) {
	booking := &fakeBooking{err: &scheduling.InvalidBookingError{Reason: "title must not be empty"}}
	r := newTestRouter(t, &fakeEngine{}, booking, &fakeResolver{})

	w := doJSON(t, r, http.MethodPost, "/api/schedule/bookings", map[string]any{
		"title":       "",
		"description": "x",
		"start":       "2026-01-05T10:00:00-03:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBookingRemoteWriteFails(t *testing.T) {
	booking := &fakeBooking{err: &scheduling.BookingFailedError{Err: context.DeadlineExceeded}}
	r := newTestRouter(t, &fakeEngine{}, booking, &fakeResolver{})

	w := doJSON(t, r, http.MethodPost, "/api/schedule/bookings", map[string]any{
		"title":       "Apartment viewing",
		"description": "Vila Mariana unit",
		"start":       "2026-01-05T10:00:00-03:00",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
