package request_models

type CreateEventRequest struct {
	EventName        string `json:"event_name" binding:"required"`
	EventDescription string `json:"event_description"`
	EventDate        Date   `json:"event_date" binding:"required"`
	EventFromTime    string `json:"event_from_time"`
	EventToTime      string `json:"event_to_time"`
	BusinessID       *uint  `json:"business_id"`
	ClientsID        []uint `json:"clients_id"`
}

type UpdateEventRequest struct {
	EventID          uint    `json:"event_id" binding:"required"`
	EventName        *string `json:"event_name"`
	EventDescription *string `json:"event_description"`
	EventDate        *Date   `json:"event_date"`
	EventFromTime    *string `json:"event_from_time"`
	EventToTime      *string `json:"event_to_time"`
	BusinessID       *uint   `json:"business_id"`
}

func (r *UpdateEventRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.EventName != nil {
		fields["event_name"] = *r.EventName
	}
	if r.EventDescription != nil {
		fields["event_description"] = *r.EventDescription
	}
	if r.EventDate != nil {
		fields["event_date"] = r.EventDate.Time
	}
	if r.EventFromTime != nil {
		fields["event_from_time"] = *r.EventFromTime
	}
	if r.EventToTime != nil {
		fields["event_to_time"] = *r.EventToTime
	}
	if r.BusinessID != nil {
		fields["business_id"] = *r.BusinessID
	}
	return fields
}

type DeleteEventRequest struct {
	EventID uint `json:"event_id" binding:"required"`
}

type DeleteParticipantRequest struct {
	ParticipantID uint `json:"participant_id" binding:"required"`
}

type GetEventsRequest struct {
	DateFrom *Date `json:"date_from"`
	DateTo   *Date `json:"date_to"`
}
