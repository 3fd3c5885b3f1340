package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"casavida/models"
	"casavida/utils"

	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleGateway talks to one Google Calendar through the v3 API, authenticated
// with a service-account key file.
type GoogleGateway struct {
	service    *gcal.Service
	calendarID string
	location   *time.Location
}

// NewGoogleGateway builds the calendar service once at process start; the
// resulting gateway is safe for concurrent use.
func NewGoogleGateway(ctx context.Context, credentialsFile, calendarID string, location *time.Location) (*GoogleGateway, error) {
	if calendarID == "" {
		return nil, errors.New("calendar id must be configured")
	}
	service, err := gcal.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gcal.CalendarScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleGateway{service: service, calendarID: calendarID, location: location}, nil
}

// ListBusyIntervals fetches every event overlapping [from, to) and returns
// their time ranges in the gateway's location. All-day events carry only a
// date and are normalized to midnight-to-midnight intervals.
func (g *GoogleGateway) ListBusyIntervals(ctx context.Context, from, to time.Time) ([]models.TimeInterval, error) {
	logger := utils.GetLogger()
	events, err := g.service.Events.List(g.calendarID).
		Context(ctx).
		SingleEvents(true).
		ShowDeleted(false).
		OrderBy("startTime").
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	busy := g.busyIntervals(events.Items)
	logger.Debug("calendar: fetched busy intervals",
		zap.Int("count", len(busy)),
		zap.Time("from", from), zap.Time("to", to))
	return busy, nil
}

// busyIntervals converts raw calendar events to busy intervals, dropping
// cancelled events and events whose times cannot be read.
func (g *GoogleGateway) busyIntervals(items []*gcal.Event) []models.TimeInterval {
	logger := utils.GetLogger()
	var busy []models.TimeInterval
	for _, item := range items {
		if item.Status == "cancelled" {
			continue
		}
		iv, ok := g.eventInterval(item)
		if !ok {
			logger.Warn("calendar: skipping event with unreadable times", zap.String("eventID", item.Id))
			continue
		}
		busy = append(busy, iv)
	}
	return busy
}

func (g *GoogleGateway) eventInterval(item *gcal.Event) (models.TimeInterval, bool) {
	if item.Start == nil || item.End == nil {
		return models.TimeInterval{}, false
	}
	if item.Start.DateTime != "" && item.End.DateTime != "" {
		start, errStart := time.Parse(time.RFC3339, item.Start.DateTime)
		end, errEnd := time.Parse(time.RFC3339, item.End.DateTime)
		if errStart != nil || errEnd != nil {
			return models.TimeInterval{}, false
		}
		return models.TimeInterval{Start: start.In(g.location), End: end.In(g.location)}, true
	}
	// All-day events carry only a date.
	start, errStart := time.ParseInLocation("2006-01-02", item.Start.Date, g.location)
	end, errEnd := time.ParseInLocation("2006-01-02", item.End.Date, g.location)
	if errStart != nil || errEnd != nil {
		return models.TimeInterval{}, false
	}
	return models.TimeInterval{Start: start, End: end}, true
}

// InsertEvent writes one event and returns the id the calendar assigned.
func (g *GoogleGateway) InsertEvent(ctx context.Context, payload models.EventPayload) (string, error) {
	event := &gcal.Event{
		Summary:     payload.Title,
		Description: payload.Description,
		Start: &gcal.EventDateTime{
			DateTime: payload.Start.Format(time.RFC3339),
			TimeZone: payload.TimeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: payload.End.Format(time.RFC3339),
			TimeZone: payload.TimeZone,
		},
		ColorId: payload.ColorID,
	}
	created, err := g.service.Events.Insert(g.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert event: %w", err)
	}
	return created.Id, nil
}
