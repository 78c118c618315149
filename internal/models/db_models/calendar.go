package db_models

import "time"

type CalendarEvent struct {
	BaseModel
	UserID           uint `gorm:"index"`
	EventName        string
	EventDescription string `gorm:"size:1024"`
	EventDate        time.Time
	EventFromTime    string `gorm:"size:16"`
	EventToTime      string `gorm:"size:16"`
	BusinessID       *uint  `gorm:"index"`

	Participants []Participant `gorm:"foreignKey:EventID"`
}

type Participant struct {
	BaseModel
	EventID     uint `gorm:"index"`
	ClientID    uint `gorm:"index"`
	ClientEmail string

	Client Client `gorm:"foreignKey:ClientID"`
}
