package models

import "time"

type EventType string

const (
	EventTypeClass    EventType = "class"
	EventTypeMeeting  EventType = "meeting"
	EventTypeStudy    EventType = "study"
	EventTypeExam     EventType = "exam"
	EventTypePersonal EventType = "personal"
	EventTypeDeadline EventType = "deadline"
	EventTypeOther    EventType = "other"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeClass, EventTypeMeeting, EventTypeStudy, EventTypeExam,
		EventTypePersonal, EventTypeDeadline, EventTypeOther:
		return true
	}
	return false
}

// DefaultEventColor is the calendar colour used when none is given.
const DefaultEventColor = "#667eea"

// Event is a calendar entry owned by one user. StartTime and EndTime are
// "HH:MM" strings and may be empty.
type Event struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        Date      `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Type        EventType `json:"type"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type EventPatch struct {
	Title       *string
	Description *string
	Date        *Date
	StartTime   *string
	EndTime     *string
	Type        *EventType
	Color       *string
}

func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.StartTime != nil {
		e.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		e.EndTime = *p.EndTime
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
}
