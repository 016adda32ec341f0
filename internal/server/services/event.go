package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/dmitrijs2005/edvora/internal/server/models"
	"github.com/dmitrijs2005/edvora/internal/server/repositories/events"
)

var clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type EventInput struct {
	Title       *string
	Description *string
	Date        *models.Date
	StartTime   *string
	EndTime     *string
	Type        *string
	Color       *string
}

type EventService struct {
	events events.Repository
}

func NewEventService(repo events.Repository) *EventService {
	return &EventService{events: repo}
}

// List returns all of the user's events, or only those in month when it is
// given as "YYYY-MM".
func (s *EventService) List(ctx context.Context, userID, month string) ([]models.Event, error) {
	if month == "" {
		return s.events.ListForUser(ctx, userID)
	}

	start, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, common.NewValidationError("Invalid month %q, expected YYYY-MM", month)
	}
	from := models.NewDate(start.Year(), start.Month(), 1)
	to := models.Date{Time: from.AddDate(0, 1, 0)}
	return s.events.ListBetween(ctx, userID, from, to)
}

func (s *EventService) Create(ctx context.Context, userID string, in EventInput) (*models.Event, error) {
	if in.Title == nil || strings.TrimSpace(*in.Title) == "" {
		return nil, common.NewValidationError("Title is required")
	}
	if in.Date == nil {
		return nil, common.NewValidationError("Date is required")
	}

	patch, err := in.toPatch()
	if err != nil {
		return nil, err
	}

	event := &models.Event{
		UserID: userID,
		Type:   models.EventTypeClass,
		Color:  models.DefaultEventColor,
	}
	patch.Apply(event)

	return s.events.Create(ctx, event)
}

func (s *EventService) Update(ctx context.Context, userID, id string, in EventInput) (*models.Event, error) {
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, common.NewValidationError("Title cannot be empty")
	}
	patch, err := in.toPatch()
	if err != nil {
		return nil, err
	}
	return s.events.Update(ctx, userID, id, patch)
}

func (s *EventService) Delete(ctx context.Context, userID, id string) error {
	return s.events.Delete(ctx, userID, id)
}

func (in EventInput) toPatch() (models.EventPatch, error) {
	p := models.EventPatch{
		Description: in.Description,
		Date:        in.Date,
	}

	if in.Color != nil && strings.TrimSpace(*in.Color) != "" {
		p.Color = in.Color
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		p.Title = &title
	}
	for _, c := range []struct {
		name string
		in   *string
		out  **string
	}{
		{"startTime", in.StartTime, &p.StartTime},
		{"endTime", in.EndTime, &p.EndTime},
	} {
		if c.in == nil {
			continue
		}
		if *c.in != "" && !clockRe.MatchString(*c.in) {
			return p, common.NewValidationError("Invalid %s %q, expected HH:MM", c.name, *c.in)
		}
		*c.out = c.in
	}
	if in.Type != nil {
		t := models.EventType(*in.Type)
		if !t.Valid() {
			return p, common.NewValidationError("Invalid event type: %s", *in.Type)
		}
		p.Type = &t
	}

	return p, nil
}
