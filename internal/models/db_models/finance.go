package db_models

import "time"

// FinancialBusiness is the financial account of a business: one per
// business by convention, created together with it.
type FinancialBusiness struct {
	BaseModel
	BusinessID  uint `gorm:"index"`
	TotalAmount float64

	Business          Business               `gorm:"foreignKey:BusinessID"`
	AccrualCategories []AccrualCategory      `gorm:"foreignKey:FinancialBusinessID"`
	ExpenseCategories []ExpenseCategory      `gorm:"foreignKey:FinancialBusinessID"`
	Tags              []FinancialTag         `gorm:"foreignKey:FinancialBusinessID"`
	Transactions      []FinancialTransaction `gorm:"foreignKey:FinancialBusinessID"`
}

type AccrualCategory struct {
	BaseModel
	FinancialBusinessID uint          `gorm:"index"`
	Title               string        `gorm:"size:255"`
	Color               CategoryColor `gorm:"size:32;default:green"`
	Image               string
}

type ExpenseCategory struct {
	BaseModel
	FinancialBusinessID uint          `gorm:"index"`
	Title               string        `gorm:"size:255"`
	Color               CategoryColor `gorm:"size:32;default:red"`
	Image               string
}

type FinancialTag struct {
	BaseModel
	FinancialBusinessID uint   `gorm:"index"`
	Name                string `gorm:"index;size:255"`
}

// FinancialTransaction is identified by a random HashID besides its row id;
// tag associations reference the hash, not the numeric id.
type FinancialTransaction struct {
	BaseModel
	FinancialBusinessID uint            `gorm:"index"`
	HashID              string          `gorm:"uniqueIndex;size:255"`
	TransactionType     TransactionType `gorm:"size:32;default:accrual"`
	ExpenseCategoryID   *uint
	AccrualCategoryID   *uint
	Amount              float64
	Date                time.Time
	Comment             string `gorm:"size:255"`

	Tags []TransactionTag `gorm:"foreignKey:TransactionHashID;references:HashID"`
}

type TransactionTag struct {
	BaseModel
	TransactionHashID string `gorm:"index;size:255"`
	TagID             uint   `gorm:"index"`

	Tag FinancialTag `gorm:"foreignKey:TagID"`
}
