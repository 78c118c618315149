package repositories

import (
	"errors"

	"gorm.io/gorm"

	"gainsystem/internal/models/db_models"
	"gainsystem/pkg/reqctx"
)

type BusinessRepository interface {
	ScopeTypeExists(s *reqctx.Session, scopeTypeID uint) (bool, error)
	ListScopeTypes(s *reqctx.Session) ([]db_models.ScopeTypeBusiness, error)
	Insert(s *reqctx.Session, business *db_models.Business) error
	FindByID(s *reqctx.Session, id uint) (*db_models.Business, error)
	UpdateFields(s *reqctx.Session, businessID uint, fields map[string]any) (*db_models.Business, error)
	Delete(s *reqctx.Session, businessID uint) (bool, error)
	InsertFinancialBusiness(s *reqctx.Session, account *db_models.FinancialBusiness) error
}

type businessRepository struct{}

func NewBusinessRepository() BusinessRepository {
	return &businessRepository{}
}

func (r *businessRepository) ScopeTypeExists(s *reqctx.Session, scopeTypeID uint) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.ScopeTypeBusiness{}).
		Where("id = ?", scopeTypeID).
		Count(&count).Error
	return count > 0, err
}

func (r *businessRepository) ListScopeTypes(s *reqctx.Session) ([]db_models.ScopeTypeBusiness, error) {
	var types []db_models.ScopeTypeBusiness
	err := s.DB().Find(&types).Error
	return types, err
}

func (r *businessRepository) Insert(s *reqctx.Session, business *db_models.Business) error {
	return s.DB().Create(business).Error
}

func (r *businessRepository) FindByID(s *reqctx.Session, id uint) (*db_models.Business, error) {
	var business db_models.Business
	err := s.DB().First(&business, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) UpdateFields(s *reqctx.Session, businessID uint, fields map[string]any) (*db_models.Business, error) {
	if err := s.DB().Model(&db_models.Business{}).Where("id = ?", businessID).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(s, businessID)
}

// Delete removes the row if it exists and reports whether anything was
// deleted.
func (r *businessRepository) Delete(s *reqctx.Session, businessID uint) (bool, error) {
	result := s.DB().Delete(&db_models.Business{}, "id = ?", businessID)
	return result.RowsAffected > 0, result.Error
}

func (r *businessRepository) InsertFinancialBusiness(s *reqctx.Session, account *db_models.FinancialBusiness) error {
	return s.DB().Create(account).Error
}
