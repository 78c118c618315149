package repositories

import (
	"errors"

	"gorm.io/gorm"

	"gainsystem/internal/models/db_models"
	"gainsystem/pkg/reqctx"
)

type ClientRepository interface {
	Insert(s *reqctx.Session, client *db_models.Client) error
	FindByID(s *reqctx.Session, clientID uint) (*db_models.Client, error)
	Exists(s *reqctx.Session, clientID uint) (bool, error)
	UpdateFields(s *reqctx.Session, clientID uint, fields map[string]any) (*db_models.Client, error)
	Delete(s *reqctx.Session, clientID uint) (bool, error)
	ListByUser(s *reqctx.Session, userID uint) ([]db_models.Client, error)

	InsertAttribute(s *reqctx.Session, attribute *db_models.ClientAttribute) error
	FindAttributeByID(s *reqctx.Session, attributeID uint) (*db_models.ClientAttribute, error)
	UpdateAttributeFields(s *reqctx.Session, attributeID uint, fields map[string]any) (*db_models.ClientAttribute, error)
	DeleteAttribute(s *reqctx.Session, attributeID uint) (bool, error)
}

type clientRepository struct{}

func NewClientRepository() ClientRepository {
	return &clientRepository{}
}

func (r *clientRepository) Insert(s *reqctx.Session, client *db_models.Client) error {
	return s.DB().Create(client).Error
}

func (r *clientRepository) FindByID(s *reqctx.Session, clientID uint) (*db_models.Client, error) {
	var client db_models.Client
	err := s.DB().Preload("Attributes").First(&client, "id = ?", clientID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Exists(s *reqctx.Session, clientID uint) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.Client{}).
		Where("id = ?", clientID).
		Count(&count).Error
	return count > 0, err
}

func (r *clientRepository) UpdateFields(s *reqctx.Session, clientID uint, fields map[string]any) (*db_models.Client, error) {
	if err := s.DB().Model(&db_models.Client{}).Where("id = ?", clientID).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindByID(s, clientID)
}

func (r *clientRepository) Delete(s *reqctx.Session, clientID uint) (bool, error) {
	result := s.DB().Delete(&db_models.Client{}, "id = ?", clientID)
	return result.RowsAffected > 0, result.Error
}

func (r *clientRepository) ListByUser(s *reqctx.Session, userID uint) ([]db_models.Client, error) {
	var clients []db_models.Client
	err := s.DB().Preload("Attributes").Where("user_id = ?", userID).Find(&clients).Error
	return clients, err
}

func (r *clientRepository) InsertAttribute(s *reqctx.Session, attribute *db_models.ClientAttribute) error {
	return s.DB().Create(attribute).Error
}

func (r *clientRepository) FindAttributeByID(s *reqctx.Session, attributeID uint) (*db_models.ClientAttribute, error) {
	var attribute db_models.ClientAttribute
	err := s.DB().First(&attribute, "id = ?", attributeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *clientRepository) UpdateAttributeFields(s *reqctx.Session, attributeID uint, fields map[string]any) (*db_models.ClientAttribute, error) {
	if err := s.DB().Model(&db_models.ClientAttribute{}).Where("id = ?", attributeID).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindAttributeByID(s, attributeID)
}

func (r *clientRepository) DeleteAttribute(s *reqctx.Session, attributeID uint) (bool, error) {
	result := s.DB().Delete(&db_models.ClientAttribute{}, "id = ?", attributeID)
	return result.RowsAffected > 0, result.Error
}
