package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"gainsystem/internal/models/db_models"
	"gainsystem/pkg/reqctx"
)

// TransactionFilter narrows a transaction history query. Nil bounds are
// ignored.
type TransactionFilter struct {
	FinancialBusinessID uint
	CreatedFrom         *time.Time
	CreatedTo           *time.Time
	AmountGTE           *float64
	AmountLTE           *float64
}

type FinanceRepository interface {
	HashExists(s *reqctx.Session, hashID string) (bool, error)
	InsertTransaction(s *reqctx.Session, transaction *db_models.FinancialTransaction) error
	FindTransactionByID(s *reqctx.Session, transactionID uint) (*db_models.FinancialTransaction, error)
	UpdateTransactionFields(s *reqctx.Session, transactionID uint, fields map[string]any) (*db_models.FinancialTransaction, error)
	ListTransactions(s *reqctx.Session, filter TransactionFilter) ([]db_models.FinancialTransaction, error)
	InsertTransactionTag(s *reqctx.Session, tag *db_models.TransactionTag) error

	TagNameExists(s *reqctx.Session, name string) (bool, error)
	InsertTag(s *reqctx.Session, tag *db_models.FinancialTag) error
	FindTagByID(s *reqctx.Session, tagID uint) (*db_models.FinancialTag, error)
	UpdateTagFields(s *reqctx.Session, tagID uint, fields map[string]any) (*db_models.FinancialTag, error)
	DeleteTag(s *reqctx.Session, tagID uint) (bool, error)
	ListTags(s *reqctx.Session, financialBusinessID uint) ([]db_models.FinancialTag, error)
}

type financeRepository struct{}

func NewFinanceRepository() FinanceRepository {
	return &financeRepository{}
}

func (r *financeRepository) HashExists(s *reqctx.Session, hashID string) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.FinancialTransaction{}).
		Where("hash_id = ?", hashID).
		Count(&count).Error
	return count > 0, err
}

func (r *financeRepository) InsertTransaction(s *reqctx.Session, transaction *db_models.FinancialTransaction) error {
	return s.DB().Create(transaction).Error
}

func (r *financeRepository) FindTransactionByID(s *reqctx.Session, transactionID uint) (*db_models.FinancialTransaction, error) {
	var transaction db_models.FinancialTransaction
	err := s.DB().Preload("Tags").First(&transaction, "id = ?", transactionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transaction, nil
}

func (r *financeRepository) UpdateTransactionFields(s *reqctx.Session, transactionID uint, fields map[string]any) (*db_models.FinancialTransaction, error) {
	if err := s.DB().Model(&db_models.FinancialTransaction{}).Where("id = ?", transactionID).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindTransactionByID(s, transactionID)
}

func (r *financeRepository) ListTransactions(s *reqctx.Session, filter TransactionFilter) ([]db_models.FinancialTransaction, error) {
	query := s.DB().Where("financial_business_id = ?", filter.FinancialBusinessID)
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", filter.CreatedFrom.Unix())
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", filter.CreatedTo.Unix())
	}
	if filter.AmountGTE != nil {
		query = query.Where("amount >= ?", *filter.AmountGTE)
	}
	if filter.AmountLTE != nil {
		query = query.Where("amount <= ?", *filter.AmountLTE)
	}

	var transactions []db_models.FinancialTransaction
	err := query.Order("date").Preload("Tags").Find(&transactions).Error
	return transactions, err
}

func (r *financeRepository) InsertTransactionTag(s *reqctx.Session, tag *db_models.TransactionTag) error {
	return s.DB().Create(tag).Error
}

func (r *financeRepository) TagNameExists(s *reqctx.Session, name string) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.FinancialTag{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

func (r *financeRepository) InsertTag(s *reqctx.Session, tag *db_models.FinancialTag) error {
	return s.DB().Create(tag).Error
}

func (r *financeRepository) FindTagByID(s *reqctx.Session, tagID uint) (*db_models.FinancialTag, error) {
	var tag db_models.FinancialTag
	err := s.DB().First(&tag, "id = ?", tagID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *financeRepository) UpdateTagFields(s *reqctx.Session, tagID uint, fields map[string]any) (*db_models.FinancialTag, error) {
	if err := s.DB().Model(&db_models.FinancialTag{}).Where("id = ?", tagID).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindTagByID(s, tagID)
}

func (r *financeRepository) DeleteTag(s *reqctx.Session, tagID uint) (bool, error) {
	result := s.DB().Delete(&db_models.FinancialTag{}, "id = ?", tagID)
	return result.RowsAffected > 0, result.Error
}

func (r *financeRepository) ListTags(s *reqctx.Session, financialBusinessID uint) ([]db_models.FinancialTag, error) {
	var tags []db_models.FinancialTag
	err := s.DB().Where("financial_business_id = ?", financialBusinessID).Find(&tags).Error
	return tags, err
}
