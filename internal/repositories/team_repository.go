package repositories

import (
	"errors"

	"gorm.io/gorm"

	"gainsystem/internal/models/db_models"
	"gainsystem/pkg/reqctx"
)

// TeamRepository covers business roles and team memberships.
type TeamRepository interface {
	InsertRole(s *reqctx.Session, role *db_models.BusinessRole) error
	FindRoleByID(s *reqctx.Session, roleID uint) (*db_models.BusinessRole, error)
	UpdateRoleFields(s *reqctx.Session, roleID uint, fields map[string]any) (*db_models.BusinessRole, error)
	DeleteRole(s *reqctx.Session, roleID uint) (bool, error)

	InsertMember(s *reqctx.Session, member *db_models.TeamMember) error
	FindMemberByID(s *reqctx.Session, memberID uint) (*db_models.TeamMember, error)
	UpdateMemberFields(s *reqctx.Session, memberID uint, fields map[string]any) (*db_models.TeamMember, error)
	DeleteMember(s *reqctx.Session, memberID uint) (bool, error)
	MemberExists(s *reqctx.Session, businessID, userID uint) (bool, error)
	ListTeam(s *reqctx.Session, businessID uint) ([]db_models.TeamMember, error)
}

type teamRepository struct{}

func NewTeamRepository() TeamRepository {
	return &teamRepository{}
}

func (r *teamRepository) InsertRole(s *reqctx.Session, role *db_models.BusinessRole) error {
	return s.DB().Create(role).Error
}

func (r *teamRepository) FindRoleByID(s *reqctx.Session, roleID uint) (*db_models.BusinessRole, error) {
	var role db_models.BusinessRole
	err := s.DB().First(&role, "id = ?", roleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *teamRepository) UpdateRoleFields(s *reqctx.Session, roleID uint, fields map[string]any) (*db_models.BusinessRole, error) {
	if err := s.DB().Model(&db_models.BusinessRole{}).Where("id = ?", roleID).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindRoleByID(s, roleID)
}

func (r *teamRepository) DeleteRole(s *reqctx.Session, roleID uint) (bool, error) {
	result := s.DB().Delete(&db_models.BusinessRole{}, "id = ?", roleID)
	return result.RowsAffected > 0, result.Error
}

func (r *teamRepository) InsertMember(s *reqctx.Session, member *db_models.TeamMember) error {
	return s.DB().Create(member).Error
}

func (r *teamRepository) FindMemberByID(s *reqctx.Session, memberID uint) (*db_models.TeamMember, error) {
	var member db_models.TeamMember
	err := s.DB().First(&member, "id = ?", memberID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *teamRepository) UpdateMemberFields(s *reqctx.Session, memberID uint, fields map[string]any) (*db_models.TeamMember, error) {
	if err := s.DB().Model(&db_models.TeamMember{}).Where("id = ?", memberID).Updates(fields).Error; err != nil {
		return nil, err
	}
	return r.FindMemberByID(s, memberID)
}

func (r *teamRepository) DeleteMember(s *reqctx.Session, memberID uint) (bool, error) {
	result := s.DB().Delete(&db_models.TeamMember{}, "id = ?", memberID)
	return result.RowsAffected > 0, result.Error
}

// MemberExists reports whether the user already belongs to the business team.
func (r *teamRepository) MemberExists(s *reqctx.Session, businessID, userID uint) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.TeamMember{}).
		Where("business_id = ? AND user_id = ?", businessID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *teamRepository) ListTeam(s *reqctx.Session, businessID uint) ([]db_models.TeamMember, error) {
	var team []db_models.TeamMember
	err := s.DB().Where("business_id = ?", businessID).Find(&team).Error
	return team, err
}
