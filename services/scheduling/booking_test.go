package scheduling

import (
	"context"
	"errors"
	"testing"
	"time"

	"casavida/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingService(t *testing.T, gw *fakeGateway) *DefaultBookingService {
	t.Helper()
	return &DefaultBookingService{Policy: testPolicy(t, 1), Gateway: gw}
}

func validRequest(loc *time.Location) models.BookingRequest {
	return models.BookingRequest{
		Title:       "Apartment viewing",
		Description: "Visit to the Vila Mariana unit",
		Start:       time.Date(2026, 1, 5, 10, 0, 0, 0, loc),
	}
}

func TestBookRejectsInvalidRequestBeforeAnyRemoteCall(t *testing.T) {
	gw := &fakeGateway{insertID: "evt-1"}
	svc := newBookingService(t, gw)
	loc := svc.Policy.Location

	cases := []struct {
		name   string
		mutate func(*models.BookingRequest)
	}{
		{"empty title", func(r *models.BookingRequest) { r.Title = "" }},
		{"blank title", func(r *models.BookingRequest) { r.Title = "   " }},
		{"empty description", func(r *models.BookingRequest) { r.Description = "" }},
		{"zero start", func(r *models.BookingRequest) { r.Start = time.Time{} }},
		{"negative duration", func(r *models.BookingRequest) { r.DurationHours = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest(loc)
			tc.mutate(&req)

			_, err := svc.Book(context.Background(), req)
			var invalid *InvalidBookingError
			require.ErrorAs(t, err, &invalid)
			assert.Zero(t, gw.insertCalls, "invalid requests must never reach the gateway")
		})
	}
}

func TestBookBuildsEventPayload(t *testing.T) {
	gw := &fakeGateway{insertID: "evt-42"}
	svc := newBookingService(t, gw)
	loc := svc.Policy.Location

	result, err := svc.Book(context.Background(), validRequest(loc))
	require.NoError(t, err)
	assert.Equal(t, "evt-42", result.EventID)

	require.Len(t, gw.inserted, 1)
	payload := gw.inserted[0]
	assert.Equal(t, "Apartment viewing", payload.Title)
	assert.Equal(t, "America/Sao_Paulo", payload.TimeZone)
	assert.Equal(t, "2", payload.ColorID)
	// Default duration comes from the policy.
	assert.Equal(t, time.Hour, payload.End.Sub(payload.Start))
}

func TestBookHonorsExplicitDuration(t *testing.T) {
	gw := &fakeGateway{insertID: "evt-7"}
	svc := newBookingService(t, gw)
	req := validRequest(svc.Policy.Location)
	req.DurationHours = 2.5

	_, err := svc.Book(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, gw.inserted, 1)
	assert.Equal(t, 150*time.Minute, gw.inserted[0].End.Sub(gw.inserted[0].Start))
}

func TestBookSurfacesGatewayFailure(t *testing.T) {
	gw := &fakeGateway{insertErr: errors.New("permission denied")}
	svc := newBookingService(t, gw)

	_, err := svc.Book(context.Background(), validRequest(svc.Policy.Location))
	var failed *BookingFailedError
	require.ErrorAs(t, err, &failed)
}

func TestBookRejectsMissingEventID(t *testing.T) {
	// A write that "succeeds" without an id is still a failed booking.
	gw := &fakeGateway{insertID: ""}
	svc := newBookingService(t, gw)

	_, err := svc.Book(context.Background(), validRequest(svc.Policy.Location))
	var failed *BookingFailedError
	require.ErrorAs(t, err, &failed)
}
