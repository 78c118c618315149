package services

import (
	"testing"
	"time"

	"gainsystem/internal/models/db_models"
	"gainsystem/internal/models/request_models"
	"gainsystem/internal/models/response_models"
)

func day(value string) request_models.Date {
	parsed, _ := time.Parse("2006-01-02", value)
	return request_models.Date{Time: parsed}
}

func TestCreateEventPartialParticipants(t *testing.T) {
	db := newTestDB(t)
	svc := newCalendarService()
	user := createUser(t, db, "anna@example.com")
	client := createClient(t, db, user.ID, "alice")
	sess := newSession(db, user)

	// One valid client and one unknown id: the event is still created,
	// carrying the last failure.
	node, err := svc.CreateEvent(sess, &request_models.CreateEventRequest{
		EventName: "Meeting",
		EventDate: day("2026-09-01"),
		ClientsID: []uint{client.ID, 999},
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if !node.Created {
		t.Fatal("expected created despite participant failure")
	}
	if node.Error == nil || node.Error.Code != response_models.CodeParticipantNotExists {
		t.Fatalf("expected PARTICIPANT_NOT_EXISTS, got %+v", node.Error)
	}
	if len(node.Event.Participants) != 1 {
		t.Fatalf("expected one attached participant, got %d", len(node.Event.Participants))
	}
	if node.Event.Participants[0].ClientEmail != client.Email {
		t.Fatalf("participant email mismatch: %+v", node.Event.Participants[0])
	}
}

func TestCreateEventForeignBusiness(t *testing.T) {
	db := newTestDB(t)
	svc := newCalendarService()
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, owner.ID, scopeType.ID)
	sess := newSession(db, other)

	node, err := svc.CreateEvent(sess, &request_models.CreateEventRequest{
		EventName:  "Meeting",
		EventDate:  day("2026-09-01"),
		BusinessID: &business.ID,
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	if node.Created {
		t.Fatal("expected rejection")
	}
	if node.Error == nil || node.Error.Code != response_models.CodeBusinessNotExists {
		t.Fatalf("expected BUSINESS_NOT_EXISTS, got %+v", node.Error)
	}
}

func TestUpdateEventNotOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newCalendarService()
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	event := &db_models.CalendarEvent{UserID: owner.ID, EventName: "Meeting", EventDate: day("2026-09-01").Time}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}
	sess := newSession(db, other)

	name := "Hijacked"
	node, err := svc.UpdateEvent(sess, &request_models.UpdateEventRequest{EventID: event.ID, EventName: &name})
	if err != nil {
		t.Fatalf("update event: %v", err)
	}
	if node.Error == nil || node.Error.Code != response_models.CodeEventNotExists {
		t.Fatalf("expected EVENT_NOT_EXISTS, got %+v", node.Error)
	}
}

func TestDeleteParticipantOtherUser(t *testing.T) {
	db := newTestDB(t)
	svc := newCalendarService()
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	client := createClient(t, db, owner.ID, "alice")
	event := &db_models.CalendarEvent{UserID: owner.ID, EventName: "Meeting", EventDate: day("2026-09-01").Time}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("create event: %v", err)
	}
	participant := &db_models.Participant{EventID: event.ID, ClientID: client.ID, ClientEmail: client.Email}
	if err := db.Create(participant).Error; err != nil {
		t.Fatalf("create participant: %v", err)
	}
	sess := newSession(db, other)

	node, err := svc.DeleteParticipant(sess, &request_models.DeleteParticipantRequest{ParticipantID: participant.ID})
	if err != nil {
		t.Fatalf("delete participant: %v", err)
	}
	if node.Error == nil || node.Error.Code != response_models.CodeParticipantDoesNotBelongToYou {
		t.Fatalf("expected PARTICIPANT_DOES_NOT_BELONG_TO_YOU, got %+v", node.Error)
	}
}

func TestGetEventsGroupedByDate(t *testing.T) {
	db := newTestDB(t)
	svc := newCalendarService()
	user := createUser(t, db, "anna@example.com")
	sess := newSession(db, user)

	for _, event := range []*db_models.CalendarEvent{
		{UserID: user.ID, EventName: "Morning", EventDate: day("2026-09-01").Time},
		{UserID: user.ID, EventName: "Evening", EventDate: day("2026-09-01").Time},
		{UserID: user.ID, EventName: "Later", EventDate: day("2026-09-03").Time},
	} {
		if err := db.Create(event).Error; err != nil {
			t.Fatalf("create event: %v", err)
		}
	}

	node, err := svc.GetEvents(sess, &request_models.GetEventsRequest{})
	if err != nil {
		t.Fatalf("get events: %v", err)
	}
	if len(node.Events) != 2 {
		t.Fatalf("expected two date groups, got %d", len(node.Events))
	}
	if node.Events[0].Date != "2026-09-01" || len(node.Events[0].List) != 2 {
		t.Fatalf("first group wrong: %+v", node.Events[0])
	}
	if node.Events[1].Date != "2026-09-03" || len(node.Events[1].List) != 1 {
		t.Fatalf("second group wrong: %+v", node.Events[1])
	}
}

func TestGetEventsDateBounds(t *testing.T) {
	db := newTestDB(t)
	svc := newCalendarService()
	user := createUser(t, db, "anna@example.com")
	sess := newSession(db, user)

	for _, value := range []string{"2026-09-01", "2026-09-05", "2026-09-10"} {
		event := &db_models.CalendarEvent{UserID: user.ID, EventName: value, EventDate: day(value).Time}
		if err := db.Create(event).Error; err != nil {
			t.Fatalf("create event: %v", err)
		}
	}

	from := day("2026-09-02")
	to := day("2026-09-09")
	node, err := svc.GetEvents(sess, &request_models.GetEventsRequest{DateFrom: &from, DateTo: &to})
	if err != nil {
		t.Fatalf("get events: %v", err)
	}
	if len(node.Events) != 1 || node.Events[0].Date != "2026-09-05" {
		t.Fatalf("bounds not applied: %+v", node.Events)
	}
}
