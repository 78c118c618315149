package db_models

import "time"

type User struct {
	BaseModel
	FirstName      string
	SecondName     string
	MiddleName     string
	Email          string `gorm:"uniqueIndex;size:255"`
	Phone          string
	PasswordHash   string
	Birthday       *time.Time
	ProfilePicture string
	AccountStatus  AccountStatus `gorm:"size:32;default:not_active"`

	Businesses []Business      `gorm:"foreignKey:UserID"`
	Events     []CalendarEvent `gorm:"foreignKey:UserID"`
	Clients    []Client        `gorm:"foreignKey:UserID"`
	Devices    []Device        `gorm:"foreignKey:UserID"`

	Credential *ThirdPartyCredential `gorm:"foreignKey:UserID"`
}

// ThirdPartyCredential stores the external identity attached to a user.
// The uid may be empty for users registered with email and password only.
type ThirdPartyCredential struct {
	BaseModel
	UserID    uint   `gorm:"uniqueIndex"`
	GoogleUID string `gorm:"index;size:255"`
}

// RefreshToken rows are rotated in place: a refresh overwrites Token and
// ExpiresAt on the existing row instead of inserting a new one.
type RefreshToken struct {
	BaseModel
	UserID    uint   `gorm:"index"`
	Token     string `gorm:"uniqueIndex;size:255"`
	ExpiresAt time.Time
}

type Device struct {
	BaseModel
	UserID             uint   `gorm:"index"`
	DeviceID           string `gorm:"index;size:255"`
	LastAuthentication time.Time
}
