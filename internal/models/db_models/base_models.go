package db_models

import (
	"time"

	"gorm.io/gorm"
)

type BaseModel struct {
	ID        uint  `gorm:"primaryKey;autoIncrement"`
	CreatedAt int64 `gorm:"autoCreateTime"`
	UpdatedAt int64 `gorm:"autoUpdateTime"`
}

// Hooks to manage int64 timestamps
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().Unix()
	b.CreatedAt = now
	b.UpdatedAt = now
	return nil
}

func (b *BaseModel) BeforeUpdate(tx *gorm.DB) error {
	b.UpdatedAt = time.Now().Unix()
	return nil
}

// All lists every entity in dependency order, for schema setup in tests and
// local bootstrap. Production migrations are managed outside the process.
func All() []any {
	return []any{
		&User{},
		&ThirdPartyCredential{},
		&RefreshToken{},
		&Device{},
		&ScopeTypeBusiness{},
		&Business{},
		&BusinessRole{},
		&TeamMember{},
		&Client{},
		&ClientAttribute{},
		&CalendarEvent{},
		&Participant{},
		&FinancialBusiness{},
		&ExpenseCategory{},
		&AccrualCategory{},
		&FinancialTag{},
		&FinancialTransaction{},
		&TransactionTag{},
	}
}
