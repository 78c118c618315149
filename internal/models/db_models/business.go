package db_models

import "time"

// ScopeTypeBusiness is the catalog of business categories. Rows are never
// deleted, only hidden.
type ScopeTypeBusiness struct {
	BaseModel
	Name        string `gorm:"size:255"`
	Description string `gorm:"size:3000"`
	Hide        bool   `gorm:"default:false"`
}

type Business struct {
	BaseModel
	UserID         uint `gorm:"index"`
	Title          string
	ScopeTypeID    uint           `gorm:"index"`
	TypeBusiness   BusinessType   `gorm:"size:32;default:individual"`
	StatusBusiness BusinessStatus `gorm:"size:32;default:not_active"`
	Description    string         `gorm:"size:4000"`
	Address        string
	Region         string
	City           string
	Latitude       float64
	Longitude      float64
	Email          string
	Phone          string
	Website        string
	OperationHours string
	LogoPicture    string

	Owner     User              `gorm:"foreignKey:UserID"`
	ScopeType ScopeTypeBusiness `gorm:"foreignKey:ScopeTypeID"`
	Roles     []BusinessRole    `gorm:"foreignKey:BusinessID"`
	Team      []TeamMember      `gorm:"foreignKey:BusinessID"`
}

type BusinessRole struct {
	BaseModel
	BusinessID  uint       `gorm:"index"`
	Name        string     `gorm:"size:255"`
	Description string     `gorm:"size:4000"`
	Access      RoleAccess `gorm:"size:32;default:read_only"`

	Business Business `gorm:"foreignKey:BusinessID"`
}

// TeamMember links a business, a role and optionally a user. UserID stays
// nil for invites addressed to an email that has no account yet; it is
// filled in when a matching user registers.
type TeamMember struct {
	BaseModel
	UserID       *uint  `gorm:"index"`
	BusinessID   uint   `gorm:"index"`
	RoleID       uint   `gorm:"index"`
	Email        string `gorm:"index;size:255"`
	DateFrom     *time.Time
	DateTo       *time.Time
	Description  string     `gorm:"size:4000"`
	MemberType   MemberType `gorm:"size:32;default:staff"`
	MemberStatus bool       `gorm:"default:false"`

	Business Business     `gorm:"foreignKey:BusinessID"`
	Role     BusinessRole `gorm:"foreignKey:RoleID"`
}

// Client belongs to the business owner directly, not to a business.
type Client struct {
	BaseModel
	UserID       uint `gorm:"index"`
	Name         string
	UserType     BusinessType `gorm:"size:32;default:individual"`
	Status       ClientStatus `gorm:"size:32;default:new"`
	Region       string
	City         string
	Address      string
	Email        string
	Phone        string
	Latitude     float64
	Longitude    float64
	ClientUserID *uint
	Description  string `gorm:"size:4000"`
	Birthday     *time.Time

	Attributes []ClientAttribute `gorm:"foreignKey:ClientID"`
}

type ClientAttribute struct {
	BaseModel
	ClientID       uint   `gorm:"index"`
	AttributeKey   string `gorm:"size:255"`
	AttributeValue string `gorm:"size:255"`
}
