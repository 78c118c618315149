package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"gainsystem/internal/models/db_models"
	"gainsystem/pkg/reqctx"
)

type CalendarRepository interface {
	InsertEvent(s *reqctx.Session, event *db_models.CalendarEvent) error
	FindEventByID(s *reqctx.Session, eventID uint) (*db_models.CalendarEvent, error)
	UpdateEventFields(s *reqctx.Session, eventID uint, fields map[string]any) (*db_models.CalendarEvent, error)
	DeleteEvent(s *reqctx.Session, eventID uint) (bool, error)
	ListEvents(s *reqctx.Session, userID uint, from, to *time.Time) ([]db_models.CalendarEvent, error)

	InsertParticipant(s *reqctx.Session, participant *db_models.Participant) error
	ParticipantExists(s *reqctx.Session, participantID uint) (bool, error)
	DeleteParticipant(s *reqctx.Session, participantID uint) (bool, error)
}

type calendarRepository struct{}

func NewCalendarRepository() CalendarRepository {
	return &calendarRepository{}
}

func (r *calendarRepository) InsertEvent(s *reqctx.Session, event *db_models.CalendarEvent) error {
	return s.DB().Create(event).Error
}

func (r *calendarRepository) FindEventByID(s *reqctx.Session, eventID uint) (*db_models.CalendarEvent, error) {
	var event db_models.CalendarEvent
	err := s.DB().Preload("Participants").First(&event, "id = ?", eventID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *calendarRepository) UpdateEventFields(s *reqctx.Session, eventID uint, fields map[string]any) (*db_models.CalendarEvent, error) {
	if err := s.DB().Model(&db_models.CalendarEvent{}).Where("id = ?", eventID).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindEventByID(s, eventID)
}

func (r *calendarRepository) DeleteEvent(s *reqctx.Session, eventID uint) (bool, error) {
	result := s.DB().Delete(&db_models.CalendarEvent{}, "id = ?", eventID)
	return result.RowsAffected > 0, result.Error
}

// ListEvents returns the user's events, optionally bounded by date. The
// result is ordered so date grouping downstream is stable.
func (r *calendarRepository) ListEvents(s *reqctx.Session, userID uint, from, to *time.Time) ([]db_models.CalendarEvent, error) {
	query := s.DB().Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("event_date >= ?", *from)
	}
	if to != nil {
		query = query.Where("event_date <= ?", *to)
	}

	var events []db_models.CalendarEvent
	err := query.Order("event_date").Preload("Participants").Find(&events).Error
	return events, err
}

func (r *calendarRepository) InsertParticipant(s *reqctx.Session, participant *db_models.Participant) error {
	return s.DB().Create(participant).Error
}

func (r *calendarRepository) ParticipantExists(s *reqctx.Session, participantID uint) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.Participant{}).
		Where("id = ?", participantID).
		Count(&count).Error
	return count > 0, err
}

func (r *calendarRepository) DeleteParticipant(s *reqctx.Session, participantID uint) (bool, error) {
	result := s.DB().Delete(&db_models.Participant{}, "id = ?", participantID)
	return result.RowsAffected > 0, result.Error
}
