package services

import (
	"testing"

	"gainsystem/internal/models/db_models"
	"gainsystem/internal/models/request_models"
	"gainsystem/internal/models/response_models"
)

func TestCreateBusinessUnknownScopeType(t *testing.T) {
	db := newTestDB(t)
	svc := newBusinessService()
	user := createUser(t, db, "owner@example.com")
	sess := newSession(db, user)

	node, err := svc.CreateBusiness(sess, &request_models.CreateBusinessRequest{
		ScopeTypeID: 999,
		Title:       "Shop",
	})
	if err != nil {
		t.Fatalf("create business: %v", err)
	}
	if node.Created {
		t.Fatal("expected failure")
	}
	if node.Error == nil || node.Error.Code != response_models.CodeScopedBusinessTypeNotFound {
		t.Fatalf("expected SCOPED_BUSINESS_TYPE_NOT_FOUND, got %+v", node.Error)
	}
}

func TestCreateBusinessOpensFinancialAccount(t *testing.T) {
	db := newTestDB(t)
	svc := newBusinessService()
	user := createUser(t, db, "owner@example.com")
	scopeType := createScopeType(t, db)
	sess := newSession(db, user)

	node, err := svc.CreateBusiness(sess, &request_models.CreateBusinessRequest{
		ScopeTypeID: scopeType.ID,
		Title:       "Shop",
	})
	if err != nil {
		t.Fatalf("create business: %v", err)
	}
	if !node.Created {
		t.Fatalf("expected created, got %+v", node.Error)
	}

	var count int64
	db.Model(&db_models.FinancialBusiness{}).Where("business_id = ?", node.Business.ID).Count(&count)
	if count != 1 {
		t.Fatalf("expected one financial account, got %d", count)
	}
}

func TestUpdateBusinessNotOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newBusinessService()
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, owner.ID, scopeType.ID)
	sess := newSession(db, other)

	title := "Hijacked"
	node, err := svc.UpdateBusiness(sess, &request_models.UpdateBusinessRequest{
		BusinessID: business.ID,
		Title:      &title,
	})
	if err != nil {
		t.Fatalf("update business: %v", err)
	}
	if node.Error == nil || node.Error.Code != response_models.CodeUserIsNotOwnerBusiness {
		t.Fatalf("expected USER_IS_NOT_OWNER_BUSINESS, got %+v", node.Error)
	}
}

func TestUpdateBusinessEmptyFields(t *testing.T) {
	db := newTestDB(t)
	svc := newBusinessService()
	owner := createUser(t, db, "owner@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, owner.ID, scopeType.ID)
	sess := newSession(db, owner)

	node, err := svc.UpdateBusiness(sess, &request_models.UpdateBusinessRequest{BusinessID: business.ID})
	if err != nil {
		t.Fatalf("update business: %v", err)
	}
	if node.Error == nil || node.Error.Code != response_models.CodeNotUpdated {
		t.Fatalf("expected NOT_UPDATED, got %+v", node.Error)
	}
}

func TestUpdateRoleEmptyFieldsBeforeOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := newBusinessService()
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, owner.ID, scopeType.ID)
	role := &db_models.BusinessRole{BusinessID: business.ID, Name: "Staff"}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("create role: %v", err)
	}
	sess := newSession(db, other)

	// An empty payload answers NOT_UPDATED even for a non-owner.
	empty, err := svc.UpdateRole(sess, &request_models.UpdateRoleRequest{RoleID: role.ID})
	if err != nil {
		t.Fatalf("update role: %v", err)
	}
	if empty.Error == nil || empty.Error.Code != response_models.CodeNotUpdated {
		t.Fatalf("expected NOT_UPDATED, got %+v", empty.Error)
	}

	name := "Lead"
	node, err := svc.UpdateRole(sess, &request_models.UpdateRoleRequest{RoleID: role.ID, Name: &name})
	if err != nil {
		t.Fatalf("update role: %v", err)
	}
	if node.Error == nil || node.Error.Code != response_models.CodeUserIsNotOwnerRole {
		t.Fatalf("expected USER_IS_NOT_OWNER_ROLE, got %+v", node.Error)
	}
}

func TestDeleteBusiness(t *testing.T) {
	db := newTestDB(t)
	svc := newBusinessService()
	owner := createUser(t, db, "owner@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, owner.ID, scopeType.ID)
	sess := newSession(db, owner)

	node, err := svc.DeleteBusiness(sess, &request_models.DeleteBusinessRequest{BusinessID: business.ID})
	if err != nil {
		t.Fatalf("delete business: %v", err)
	}
	if !node.Deleted {
		t.Fatalf("expected deleted, got %+v", node.Error)
	}

	var count int64
	db.Model(&db_models.Business{}).Count(&count)
	if count != 0 {
		t.Fatalf("business row still present")
	}
}

func TestAddTeamMemberPendingInvite(t *testing.T) {
	db := newTestDB(t)
	svc := newBusinessService()
	owner := createUser(t, db, "owner@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, owner.ID, scopeType.ID)
	role := &db_models.BusinessRole{BusinessID: business.ID, Name: "Staff"}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("create role: %v", err)
	}
	sess := newSession(db, owner)

	node, err := svc.AddTeamMember(sess, &request_models.AddTeamMemberRequest{
		BusinessID: business.ID,
		RoleID:     role.ID,
		Email:      "future@example.com",
	})
	if err != nil {
		t.Fatalf("add member: %v", err)
	}
	if !node.Added {
		t.Fatalf("expected added, got %+v", node.Error)
	}
	if node.TeamMember.UserID != nil {
		t.Fatal("invite for unknown email must keep the user link empty")
	}
}

func TestAddTeamMemberAlreadyExists(t *testing.T) {
	db := newTestDB(t)
	svc := newBusinessService()
	owner := createUser(t, db, "owner@example.com")
	staff := createUser(t, db, "staff@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, owner.ID, scopeType.ID)
	role := &db_models.BusinessRole{BusinessID: business.ID, Name: "Staff"}
	if err := db.Create(role).Error; err != nil {
		t.Fatalf("create role: %v", err)
	}
	sess := newSession(db, owner)

	first, err := svc.AddTeamMember(sess, &request_models.AddTeamMemberRequest{
		BusinessID: business.ID,
		RoleID:     role.ID,
		Email:      staff.Email,
	})
	if err != nil || !first.Added {
		t.Fatalf("first add failed: %v %+v", err, first)
	}

	second, err := svc.AddTeamMember(sess, &request_models.AddTeamMemberRequest{
		BusinessID: business.ID,
		RoleID:     role.ID,
		Email:      staff.Email,
	})
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if second.Error == nil || second.Error.Code != response_models.CodeTeamMemberExists {
		t.Fatalf("expected TEAM_MEMBER_EXISTS, got %+v", second.Error)
	}
}

func TestGetTeamEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newBusinessService()
	owner := createUser(t, db, "owner@example.com")
	scopeType := createScopeType(t, db)
	business := createBusiness(t, db, owner.ID, scopeType.ID)
	sess := newSession(db, owner)

	node, err := svc.GetTeam(sess, &request_models.BusinessTeamRequest{BusinessID: business.ID})
	if err != nil {
		t.Fatalf("get team: %v", err)
	}
	if node.Error == nil || node.Error.Code != response_models.CodeTeamIsEmpty {
		t.Fatalf("expected TEAM_IS_EMPTY, got %+v", node.Error)
	}
}

func TestDeleteClientOtherUser(t *testing.T) {
	db := newTestDB(t)
	svc := newBusinessService()
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	client := createClient(t, db, owner.ID, "alice")
	sess := newSession(db, other)

	node, err := svc.DeleteClient(sess, &request_models.DeleteClientRequest{ClientID: client.ID})
	if err != nil {
		t.Fatalf("delete client: %v", err)
	}
	if node.Error == nil || node.Error.Code != response_models.CodeClientDoesNotBelongToYou {
		t.Fatalf("expected CLIENT_DOES_NOT_BELONG_TO_YOU, got %+v", node.Error)
	}

	var count int64
	db.Model(&db_models.Client{}).Count(&count)
	if count != 1 {
		t.Fatal("client must survive a rejected delete")
	}
}

func TestClientAttributes(t *testing.T) {
	db := newTestDB(t)
	svc := newBusinessService()
	owner := createUser(t, db, "owner@example.com")
	client := createClient(t, db, owner.ID, "alice")
	sess := newSession(db, owner)

	added, err := svc.AddClientAttribute(sess, &request_models.AddClientAttributeRequest{
		ClientID:       client.ID,
		AttributeKey:   "telegram",
		AttributeValue: "@alice",
	})
	if err != nil {
		t.Fatalf("add attribute: %v", err)
	}
	if !added.Added || len(added.Client.Attributes) != 1 {
		t.Fatalf("attribute not attached: %+v", added)
	}

	missing, err := svc.UpdateClientAttribute(sess, &request_models.UpdateClientAttributeRequest{ClientAttributeID: 999})
	if err != nil {
		t.Fatalf("update attribute: %v", err)
	}
	if missing.Error == nil || missing.Error.Code != response_models.CodeClientAttributeNotFound {
		t.Fatalf("expected CLIENT_ATTRIBUTE_NOT_FOUND, got %+v", missing.Error)
	}
}
