package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"gainsystem/internal/models/db_models"
	"gainsystem/pkg/reqctx"
)

type UserRepository interface {
	FindByEmail(s *reqctx.Session, email string) (*db_models.User, error)
	FindByID(s *reqctx.Session, id uint) (*db_models.User, error)
	Insert(s *reqctx.Session, user *db_models.User) error
	UpdateFields(s *reqctx.Session, userID uint, fields map[string]any) (*db_models.User, error)
	UpsertDevice(s *reqctx.Session, userID uint, deviceID string) error
	LinkPendingTeamMembers(s *reqctx.Session, user *db_models.User) error
	FindCredentialByUID(s *reqctx.Session, uid string) (*db_models.ThirdPartyCredential, error)
	FindCredentialByUserID(s *reqctx.Session, userID uint) (*db_models.ThirdPartyCredential, error)
	InsertCredential(s *reqctx.Session, credential *db_models.ThirdPartyCredential) error
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func (r *userRepository) FindByEmail(s *reqctx.Session, email string) (*db_models.User, error) {
	var user db_models.User
	err := s.DB().First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(s *reqctx.Session, id uint) (*db_models.User, error) {
	var user db_models.User
	err := s.DB().First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Insert(s *reqctx.Session, user *db_models.User) error {
	return s.DB().Create(user).Error
}

// UpdateFields applies a partial update and reloads the row so callers see
// exactly what the store persisted.
func (r *userRepository) UpdateFields(s *reqctx.Session, userID uint, fields map[string]any) (*db_models.User, error) {
	if err := s.DB().Model(&db_models.User{}).Where("id = ?", userID).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(s, userID)
}

// UpsertDevice inserts an unseen device or refreshes its owner and
// last-authentication timestamp.
func (r *userRepository) UpsertDevice(s *reqctx.Session, userID uint, deviceID string) error {
	var device db_models.Device
	err := s.DB().First(&device, "device_id = ?", deviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.DB().Create(&db_models.Device{
			UserID:             userID,
			DeviceID:           deviceID,
			LastAuthentication: time.Now(),
		}).Error
	}
	if err != nil {
		return err
	}

	return s.DB().Model(&db_models.Device{}).
		Where("device_id = ?", deviceID).
		Updates(map[string]any{
			"user_id":             userID,
			"last_authentication": time.Now(),
		}).Error
}

// LinkPendingTeamMembers attaches the user to invites addressed to their
// email before the account existed. Runs once at registration; no later
// linking happens automatically.
func (r *userRepository) LinkPendingTeamMembers(s *reqctx.Session, user *db_models.User) error {
	return s.DB().Model(&db_models.TeamMember{}).
		Where("email = ? AND user_id IS NULL", user.Email).
		Update("user_id", user.ID).Error
}

func (r *userRepository) FindCredentialByUID(s *reqctx.Session, uid string) (*db_models.ThirdPartyCredential, error) {
	var credential db_models.ThirdPartyCredential
	err := s.DB().First(&credential, "google_uid = ?", uid).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &credential, nil
}

func (r *userRepository) FindCredentialByUserID(s *reqctx.Session, userID uint) (*db_models.ThirdPartyCredential, error) {
	var credential db_models.ThirdPartyCredential
	err := s.DB().First(&credential, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &credential, nil
}

func (r *userRepository) InsertCredential(s *reqctx.Session, credential *db_models.ThirdPartyCredential) error {
	return s.DB().Create(credential).Error
}
