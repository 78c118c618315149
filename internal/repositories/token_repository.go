package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"gainsystem/internal/models/db_models"
	"gainsystem/pkg/reqctx"
)

type TokenRepository interface {
	Exists(s *reqctx.Session, token string) (bool, error)
	Find(s *reqctx.Session, token string) (*db_models.RefreshToken, error)
	Insert(s *reqctx.Session, userID uint, token string, expiresAt time.Time) (*db_models.RefreshToken, error)
	Rotate(s *reqctx.Session, id uint, newToken string, expiresAt time.Time) (*db_models.RefreshToken, error)
}

type tokenRepository struct{}

func NewTokenRepository() TokenRepository {
	return &tokenRepository{}
}

func (r *tokenRepository) Exists(s *reqctx.Session, token string) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.RefreshToken{}).
		Where("token = ?", token).
		Count(&count).Error
	return count > 0, err
}

func (r *tokenRepository) Find(s *reqctx.Session, token string) (*db_models.RefreshToken, error) {
	var row db_models.RefreshToken
	err := s.DB().First(&row, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *tokenRepository) Insert(s *reqctx.Session, userID uint, token string, expiresAt time.Time) (*db_models.RefreshToken, error) {
	row := &db_models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	}
	if err := s.DB().Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// Rotate overwrites the value and expiry of an existing row, preserving its
// identity. A new row is never created on refresh.
func (r *tokenRepository) Rotate(s *reqctx.Session, id uint, newToken string, expiresAt time.Time) (*db_models.RefreshToken, error) {
	err := s.DB().Model(&db_models.RefreshToken{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"token":      newToken,
			"expires_at": expiresAt,
		}).Error
	if err != nil {
		return nil, err
	}

	var row db_models.RefreshToken
	if err := s.DB().First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
