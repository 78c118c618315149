package services

import (
	"time"

	"gainsystem/internal/models/db_models"
	"gainsystem/internal/models/request_models"
	"gainsystem/internal/models/response_models"
	"gainsystem/internal/repositories"
	"gainsystem/pkg/reqctx"
)

type CalendarService interface {
	CreateEvent(s *reqctx.Session, req *request_models.CreateEventRequest) (*response_models.CreateEventNode, error)
	UpdateEvent(s *reqctx.Session, req *request_models.UpdateEventRequest) (*response_models.UpdateEventNode, error)
	DeleteEvent(s *reqctx.Session, req *request_models.DeleteEventRequest) (*response_models.DeleteEventNode, error)
	DeleteParticipant(s *reqctx.Session, req *request_models.DeleteParticipantRequest) (*response_models.DeleteParticipantNode, error)
	GetEvents(s *reqctx.Session, req *request_models.GetEventsRequest) (*response_models.GetEventsNode, error)
}

type calendarService struct {
	calendar  repositories.CalendarRepository
	clients   repositories.ClientRepository
	ownership repositories.OwnershipRepository
}

func NewCalendarService(
	calendar repositories.CalendarRepository,
	clients repositories.ClientRepository,
	ownership repositories.OwnershipRepository,
) CalendarService {
	return &calendarService{
		calendar:  calendar,
		clients:   clients,
		ownership: ownership,
	}
}

// CreateEvent inserts the event, then attaches a participant per client id.
// A client that is missing or not the caller's is skipped; the event is
// still reported as created, carrying the last such failure. Callers must
// check both the created flag and the error.
func (svc *calendarService) CreateEvent(s *reqctx.Session, req *request_models.CreateEventRequest) (*response_models.CreateEventNode, error) {
	if req.BusinessID != nil {
		owner, err := svc.ownership.IsBusinessOwner(s, s.User.ID, *req.BusinessID)
		if err != nil {
			return nil, err
		}
		if !owner {
			return &response_models.CreateEventNode{
				Error: response_models.NewOperationError(response_models.CodeBusinessNotExists, "business does not exist"),
			}, nil
		}
	}

	event := &db_models.CalendarEvent{
		UserID:           s.User.ID,
		EventName:        req.EventName,
		EventDescription: req.EventDescription,
		EventDate:        req.EventDate.Time,
		EventFromTime:    req.EventFromTime,
		EventToTime:      req.EventToTime,
		BusinessID:       req.BusinessID,
	}
	if err := svc.calendar.InsertEvent(s, event); err != nil {
		return nil, err
	}

	var lastError *response_models.OperationError
	for _, clientID := range req.ClientsID {
		belongs, err := svc.ownership.ClientBelongsToUser(s, s.User.ID, clientID)
		if err != nil {
			return nil, err
		}
		if !belongs {
			lastError = response_models.NewOperationError(response_models.CodeParticipantNotExists, "participant does not exist")
			continue
		}
		client, err := svc.clients.FindByID(s, clientID)
		if err != nil {
			return nil, err
		}
		participant := &db_models.Participant{
			EventID:     event.ID,
			ClientID:    clientID,
			ClientEmail: client.Email,
		}
		if err := svc.calendar.InsertParticipant(s, participant); err != nil {
			return nil, err
		}
	}

	created, err := svc.calendar.FindEventByID(s, event.ID)
	if err != nil {
		return nil, err
	}
	return &response_models.CreateEventNode{
		Created: true,
		Event:   response_models.NewEventNode(created),
		Error:   lastError,
	}, nil
}

func (svc *calendarService) UpdateEvent(s *reqctx.Session, req *request_models.UpdateEventRequest) (*response_models.UpdateEventNode, error) {
	belongs, err := svc.ownership.EventBelongsToUser(s, s.User.ID, req.EventID)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return &response_models.UpdateEventNode{
			Error: response_models.NewOperationError(response_models.CodeEventNotExists, "event does not exist"),
		}, nil
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return &response_models.UpdateEventNode{
			Error: response_models.NewOperationError(response_models.CodeUpdateInfoIsEmpty, "nothing to update"),
		}, nil
	}

	event, err := svc.calendar.UpdateEventFields(s, req.EventID, fields)
	if err != nil {
		return nil, err
	}
	return &response_models.UpdateEventNode{
		Updated: true,
		Event:   response_models.NewEventNode(event),
	}, nil
}

func (svc *calendarService) DeleteEvent(s *reqctx.Session, req *request_models.DeleteEventRequest) (*response_models.DeleteEventNode, error) {
	belongs, err := svc.ownership.EventBelongsToUser(s, s.User.ID, req.EventID)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return &response_models.DeleteEventNode{
			Error: response_models.NewOperationError(response_models.CodeEventNotExists, "event does not exist"),
		}, nil
	}

	deleted, err := svc.calendar.DeleteEvent(s, req.EventID)
	if err != nil {
		return nil, err
	}
	return &response_models.DeleteEventNode{Deleted: deleted}, nil
}

func (svc *calendarService) DeleteParticipant(s *reqctx.Session, req *request_models.DeleteParticipantRequest) (*response_models.DeleteParticipantNode, error) {
	exists, err := svc.calendar.ParticipantExists(s, req.ParticipantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return &response_models.DeleteParticipantNode{
			Error: response_models.NewOperationError(response_models.CodeParticipantNotExists, "participant does not exist"),
		}, nil
	}
	belongs, err := svc.ownership.ParticipantBelongsToUser(s, s.User.ID, req.ParticipantID)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return &response_models.DeleteParticipantNode{
			Error: response_models.NewOperationError(response_models.CodeParticipantDoesNotBelongToYou, "participant does not belong to you"),
		}, nil
	}

	deleted, err := svc.calendar.DeleteParticipant(s, req.ParticipantID)
	if err != nil {
		return nil, err
	}
	return &response_models.DeleteParticipantNode{Deleted: deleted}, nil
}

// GetEvents returns the subject's events grouped by day, in date order.
func (svc *calendarService) GetEvents(s *reqctx.Session, req *request_models.GetEventsRequest) (*response_models.GetEventsNode, error) {
	var from, to *time.Time
	if req.DateFrom != nil {
		from = &req.DateFrom.Time
	}
	if req.DateTo != nil {
		to = &req.DateTo.Time
	}

	events, err := svc.calendar.ListEvents(s, s.User.ID, from, to)
	if err != nil {
		return nil, err
	}

	groups := make([]response_models.EventsByDateNode, 0)
	index := map[string]int{}
	for i := range events {
		date := events[i].EventDate.Format("2006-01-02")
		node := *response_models.NewEventNode(&events[i])
		if pos, ok := index[date]; ok {
			groups[pos].List = append(groups[pos].List, node)
			continue
		}
		index[date] = len(groups)
		groups = append(groups, response_models.EventsByDateNode{
			Date: date,
			List: []response_models.EventNode{node},
		})
	}
	return &response_models.GetEventsNode{Events: groups}, nil
}
