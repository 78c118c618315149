package repositories

import (
	"gainsystem/internal/models/db_models"
	"gainsystem/pkg/reqctx"
)

// OwnershipRepository answers whether a user controls a target entity by
// walking its ownership chain down to the root owner. Every check is a
// single joined query; a missing intermediate row yields false, never an
// error. The repository is read-only.
type OwnershipRepository interface {
	IsBusinessOwner(s *reqctx.Session, userID, businessID uint) (bool, error)
	IsRoleOwner(s *reqctx.Session, userID, roleID uint) (bool, error)
	IsTeamMemberOwner(s *reqctx.Session, userID, teamMemberID uint) (bool, error)
	IsTeamMemberRoleOwner(s *reqctx.Session, userID, teamMemberID uint) (bool, error)
	IsFinancialBusinessOwner(s *reqctx.Session, userID, financialBusinessID uint) (bool, error)
	ClientBelongsToUser(s *reqctx.Session, userID, clientID uint) (bool, error)
	EventBelongsToUser(s *reqctx.Session, userID, eventID uint) (bool, error)
	ParticipantBelongsToUser(s *reqctx.Session, userID, participantID uint) (bool, error)
	TagBelongsToUser(s *reqctx.Session, userID, tagID uint) (bool, error)
}

type ownershipRepository struct{}

func NewOwnershipRepository() OwnershipRepository {
	return &ownershipRepository{}
}

func (r *ownershipRepository) IsBusinessOwner(s *reqctx.Session, userID, businessID uint) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.Business{}).
		Where("id = ? AND user_id = ?", businessID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ownershipRepository) IsRoleOwner(s *reqctx.Session, userID, roleID uint) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.BusinessRole{}).
		Joins("JOIN businesses ON businesses.id = business_roles.business_id").
		Where("business_roles.id = ? AND businesses.user_id = ?", roleID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ownershipRepository) IsTeamMemberOwner(s *reqctx.Session, userID, teamMemberID uint) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.TeamMember{}).
		Joins("JOIN businesses ON businesses.id = team_members.business_id").
		Where("team_members.id = ? AND businesses.user_id = ?", teamMemberID, userID).
		Count(&count).Error
	return count > 0, err
}

// IsTeamMemberRoleOwner resolves ownership through the member's role rather
// than its business link. The two agree for consistent data but are checked
// independently by the team-member mutations.
func (r *ownershipRepository) IsTeamMemberRoleOwner(s *reqctx.Session, userID, teamMemberID uint) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.TeamMember{}).
		Joins("JOIN business_roles ON business_roles.id = team_members.role_id").
		Joins("JOIN businesses ON businesses.id = business_roles.business_id").
		Where("team_members.id = ? AND businesses.user_id = ?", teamMemberID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ownershipRepository) IsFinancialBusinessOwner(s *reqctx.Session, userID, financialBusinessID uint) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.FinancialBusiness{}).
		Joins("JOIN businesses ON businesses.id = financial_businesses.business_id").
		Where("financial_businesses.id = ? AND businesses.user_id = ?", financialBusinessID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ownershipRepository) ClientBelongsToUser(s *reqctx.Session, userID, clientID uint) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.Client{}).
		Where("id = ? AND user_id = ?", clientID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ownershipRepository) EventBelongsToUser(s *reqctx.Session, userID, eventID uint) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.CalendarEvent{}).
		Where("id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ownershipRepository) ParticipantBelongsToUser(s *reqctx.Session, userID, participantID uint) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.Participant{}).
		Joins("JOIN calendar_events ON calendar_events.id = participants.event_id").
		Where("participants.id = ? AND calendar_events.user_id = ?", participantID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *ownershipRepository) TagBelongsToUser(s *reqctx.Session, userID, tagID uint) (bool, error) {
	var count int64
	err := s.DB().Model(&db_models.FinancialTag{}).
		Joins("JOIN financial_businesses ON financial_businesses.id = financial_tags.financial_business_id").
		Joins("JOIN businesses ON businesses.id = financial_businesses.business_id").
		Where("financial_tags.id = ? AND businesses.user_id = ?", tagID, userID).
		Count(&count).Error
	return count > 0, err
}
