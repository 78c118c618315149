package response_models

import (
	"gainsystem/internal/models/db_models"
)

// Error codes of the event-calendar operations.
const (
	CodeBusinessNotExists             = "BUSINESS_NOT_EXISTS"
	CodeParticipantNotExists          = "PARTICIPANT_NOT_EXISTS"
	CodeEventNotExists                = "EVENT_NOT_EXISTS"
	CodeUpdateInfoIsEmpty             = "UPDATE_INFO_IS_EMPTY"
	CodeParticipantDoesNotBelongToYou = "PARTICIPANT_DOES_NOT_BELONG_TO_YOU"
)

type ParticipantNode struct {
	ID          uint   `json:"id"`
	ClientID    uint   `json:"client_id"`
	ClientEmail string `json:"client_email"`
}

type EventNode struct {
	ID               uint              `json:"id"`
	OwnerID          uint              `json:"owner_id"`
	EventName        string            `json:"event_name"`
	EventDescription string            `json:"event_description"`
	EventDate        string            `json:"event_date"`
	EventFromTime    string            `json:"event_from_time"`
	EventToTime      string            `json:"event_to_time"`
	BusinessID       *uint             `json:"business_id,omitempty"`
	Participants     []ParticipantNode `json:"participants"`
}

func NewEventNode(event *db_models.CalendarEvent) *EventNode {
	if event == nil {
		return nil
	}
	participants := make([]ParticipantNode, 0, len(event.Participants))
	for _, p := range event.Participants {
		participants = append(participants, ParticipantNode{
			ID:          p.ID,
			ClientID:    p.ClientID,
			ClientEmail: p.ClientEmail,
		})
	}
	return &EventNode{
		ID:               event.ID,
		OwnerID:          event.UserID,
		EventName:        event.EventName,
		EventDescription: event.EventDescription,
		EventDate:        event.EventDate.Format("2006-01-02"),
		EventFromTime:    event.EventFromTime,
		EventToTime:      event.EventToTime,
		BusinessID:       event.BusinessID,
		Participants:     participants,
	}
}

type CreateEventNode struct {
	Created bool            `json:"created"`
	Event   *EventNode      `json:"event,omitempty"`
	Error   *OperationError `json:"error,omitempty"`
}

type UpdateEventNode struct {
	Updated bool            `json:"updated"`
	Event   *EventNode      `json:"event,omitempty"`
	Error   *OperationError `json:"error,omitempty"`
}

type DeleteEventNode struct {
	Deleted bool            `json:"deleted"`
	Error   *OperationError `json:"error,omitempty"`
}

type DeleteParticipantNode struct {
	Deleted bool            `json:"deleted"`
	Error   *OperationError `json:"error,omitempty"`
}

// EventsByDateNode groups a day's events under its date.
type EventsByDateNode struct {
	Date string      `json:"date"`
	List []EventNode `json:"list"`
}

type GetEventsNode struct {
	Events []EventsByDateNode `json:"events"`
}
