package services

import (
	"time"

	"gainsystem/internal/models/db_models"
	"gainsystem/internal/models/request_models"
	"gainsystem/internal/models/response_models"
	"gainsystem/internal/repositories"
	"gainsystem/pkg/reqctx"
)

// BusinessService covers businesses, roles, team members, clients and
// client attributes. Every mutation resolves ownership of its target before
// touching it; a failed check is a domain outcome, never a fatal error.
type BusinessService interface {
	GetScopeTypes(s *reqctx.Session) ([]response_models.ScopeTypeNode, error)
	CreateBusiness(s *reqctx.Session, req *request_models.CreateBusinessRequest) (*response_models.CreateBusinessNode, error)
	UpdateBusiness(s *reqctx.Session, req *request_models.UpdateBusinessRequest) (*response_models.UpdateBusinessNode, error)
	DeleteBusiness(s *reqctx.Session, req *request_models.DeleteBusinessRequest) (*response_models.DeleteBusinessNode, error)

	CreateRole(s *reqctx.Session, req *request_models.CreateRoleRequest) (*response_models.CreateRoleNode, error)
	UpdateRole(s *reqctx.Session, req *request_models.UpdateRoleRequest) (*response_models.UpdateRoleNode, error)
	DeleteRole(s *reqctx.Session, req *request_models.DeleteRoleRequest) (*response_models.DeleteRoleNode, error)

	AddTeamMember(s *reqctx.Session, req *request_models.AddTeamMemberRequest) (*response_models.AddTeamMemberNode, error)
	UpdateTeamMember(s *reqctx.Session, req *request_models.UpdateTeamMemberRequest) (*response_models.UpdateTeamMemberNode, error)
	GetTeam(s *reqctx.Session, req *request_models.BusinessTeamRequest) (*response_models.BusinessTeamNode, error)
	DeleteTeamMember(s *reqctx.Session, req *request_models.DeleteTeamMemberRequest) (*response_models.DeleteTeamMemberNode, error)

	AddClient(s *reqctx.Session, req *request_models.AddClientRequest) (*response_models.AddClientNode, error)
	UpdateClient(s *reqctx.Session, req *request_models.UpdateClientRequest) (*response_models.UpdateClientNode, error)
	DeleteClient(s *reqctx.Session, req *request_models.DeleteClientRequest) (*response_models.DeleteClientNode, error)
	GetClients(s *reqctx.Session) ([]response_models.ClientNode, error)

	AddClientAttribute(s *reqctx.Session, req *request_models.AddClientAttributeRequest) (*response_models.AddClientAttributeNode, error)
	UpdateClientAttribute(s *reqctx.Session, req *request_models.UpdateClientAttributeRequest) (*response_models.UpdateClientAttributeNode, error)
	DeleteClientAttribute(s *reqctx.Session, req *request_models.DeleteClientAttributeRequest) (*response_models.DeleteClientAttributeNode, error)
}

type businessService struct {
	businesses repositories.BusinessRepository
	team       repositories.TeamRepository
	clients    repositories.ClientRepository
	users      repositories.UserRepository
	ownership  repositories.OwnershipRepository
}

func NewBusinessService(
	businesses repositories.BusinessRepository,
	team repositories.TeamRepository,
	clients repositories.ClientRepository,
	users repositories.UserRepository,
	ownership repositories.OwnershipRepository,
) BusinessService {
	return &businessService{
		businesses: businesses,
		team:       team,
		clients:    clients,
		users:      users,
		ownership:  ownership,
	}
}

func (svc *businessService) GetScopeTypes(s *reqctx.Session) ([]response_models.ScopeTypeNode, error) {
	types, err := svc.businesses.ListScopeTypes(s)
	if err != nil {
		return nil, err
	}
	return response_models.NewScopeTypeNodes(types), nil
}

func (svc *businessService) CreateBusiness(s *reqctx.Session, req *request_models.CreateBusinessRequest) (*response_models.CreateBusinessNode, error) {
	known, err := svc.businesses.ScopeTypeExists(s, req.ScopeTypeID)
	if err != nil {
		return nil, err
	}
	if !known {
		return &response_models.CreateBusinessNode{
			Error: response_models.NewOperationError(response_models.CodeScopedBusinessTypeNotFound, "scoped business type not found"),
		}, nil
	}

	business := &db_models.Business{
		UserID:         s.User.ID,
		Title:          req.Title,
		ScopeTypeID:    req.ScopeTypeID,
		Description:    req.Description,
		Address:        req.Address,
		Region:         req.Region,
		City:           req.City,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Email:          req.Email,
		Phone:          req.Phone,
		Website:        req.Website,
		OperationHours: req.OperationHours,
		LogoPicture:    req.LogoPicture,
	}
	if req.TypeBusiness != "" {
		business.TypeBusiness = db_models.BusinessType(req.TypeBusiness)
	}
	if err := svc.businesses.Insert(s, business); err != nil {
		return nil, err
	}

	// Every business carries exactly one financial account, opened with it.
	if err := svc.businesses.InsertFinancialBusiness(s, &db_models.FinancialBusiness{BusinessID: business.ID}); err != nil {
		return nil, err
	}

	return &response_models.CreateBusinessNode{
		Created:  true,
		Business: response_models.NewBusinessNode(business),
	}, nil
}

func (svc *businessService) UpdateBusiness(s *reqctx.Session, req *request_models.UpdateBusinessRequest) (*response_models.UpdateBusinessNode, error) {
	owner, err := svc.ownership.IsBusinessOwner(s, s.User.ID, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return &response_models.UpdateBusinessNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerBusiness, "you are not the owner of this business"),
		}, nil
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return &response_models.UpdateBusinessNode{
			Error: response_models.NewOperationError(response_models.CodeNotUpdated, "nothing to update"),
		}, nil
	}

	business, err := svc.businesses.UpdateFields(s, req.BusinessID, fields)
	if err != nil {
		return nil, err
	}
	return &response_models.UpdateBusinessNode{
		Updated:  true,
		Business: response_models.NewBusinessNode(business),
	}, nil
}

func (svc *businessService) DeleteBusiness(s *reqctx.Session, req *request_models.DeleteBusinessRequest) (*response_models.DeleteBusinessNode, error) {
	owner, err := svc.ownership.IsBusinessOwner(s, s.User.ID, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return &response_models.DeleteBusinessNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerBusiness, "you are not the owner of this business"),
		}, nil
	}

	deleted, err := svc.businesses.Delete(s, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return &response_models.DeleteBusinessNode{
			Error: response_models.NewOperationError(response_models.CodeNotDeleted, "business was not deleted"),
		}, nil
	}
	return &response_models.DeleteBusinessNode{Deleted: true}, nil
}

func (svc *businessService) CreateRole(s *reqctx.Session, req *request_models.CreateRoleRequest) (*response_models.CreateRoleNode, error) {
	owner, err := svc.ownership.IsBusinessOwner(s, s.User.ID, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return &response_models.CreateRoleNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerBusiness, "you are not the owner of this business"),
		}, nil
	}

	role := &db_models.BusinessRole{
		BusinessID:  req.BusinessID,
		Name:        req.Name,
		Description: req.Description,
	}
	if req.Access != "" {
		role.Access = db_models.RoleAccess(req.Access)
	}
	if err := svc.team.InsertRole(s, role); err != nil {
		return nil, err
	}
	return &response_models.CreateRoleNode{
		Created: true,
		Role:    response_models.NewRoleNode(role),
	}, nil
}

// UpdateRole reports an empty payload before the ownership result, so a
// non-owner sending nothing still sees NOT_UPDATED.
func (svc *businessService) UpdateRole(s *reqctx.Session, req *request_models.UpdateRoleRequest) (*response_models.UpdateRoleNode, error) {
	fields := req.Fields()
	if len(fields) == 0 {
		return &response_models.UpdateRoleNode{
			Error: response_models.NewOperationError(response_models.CodeNotUpdated, "nothing to update"),
		}, nil
	}

	owner, err := svc.ownership.IsRoleOwner(s, s.User.ID, req.RoleID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return &response_models.UpdateRoleNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerRole, "you are not the owner of this role"),
		}, nil
	}

	role, err := svc.team.UpdateRoleFields(s, req.RoleID, fields)
	if err != nil {
		return nil, err
	}
	return &response_models.UpdateRoleNode{
		Updated: true,
		Role:    response_models.NewRoleNode(role),
	}, nil
}

func (svc *businessService) DeleteRole(s *reqctx.Session, req *request_models.DeleteRoleRequest) (*response_models.DeleteRoleNode, error) {
	owner, err := svc.ownership.IsRoleOwner(s, s.User.ID, req.RoleID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return &response_models.DeleteRoleNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerRole, "you are not the owner of this role"),
		}, nil
	}

	deleted, err := svc.team.DeleteRole(s, req.RoleID)
	if err != nil {
		return nil, err
	}
	return &response_models.DeleteRoleNode{Deleted: deleted}, nil
}

// AddTeamMember stores the invite even when no account matches the email
// yet; the user link stays empty until a matching registration happens.
func (svc *businessService) AddTeamMember(s *reqctx.Session, req *request_models.AddTeamMemberRequest) (*response_models.AddTeamMemberNode, error) {
	owner, err := svc.ownership.IsBusinessOwner(s, s.User.ID, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return &response_models.AddTeamMemberNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerBusiness, "you are not the owner of this business"),
		}, nil
	}
	roleOwner, err := svc.ownership.IsRoleOwner(s, s.User.ID, req.RoleID)
	if err != nil {
		return nil, err
	}
	if !roleOwner {
		return &response_models.AddTeamMemberNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerRole, "you are not the owner of this role"),
		}, nil
	}

	var userID *uint
	user, err := svc.users.FindByEmail(s, req.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		exists, err := svc.team.MemberExists(s, req.BusinessID, user.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return &response_models.AddTeamMemberNode{
				Error: response_models.NewOperationError(response_models.CodeTeamMemberExists, "user is already a member of this business"),
			}, nil
		}
		userID = &user.ID
	}

	member := &db_models.TeamMember{
		UserID:      userID,
		BusinessID:  req.BusinessID,
		RoleID:      req.RoleID,
		Email:       req.Email,
		DateFrom:    dateValue(req.DateFrom),
		DateTo:      dateValue(req.DateTo),
		Description: req.Description,
	}
	if req.MemberType != "" {
		member.MemberType = db_models.MemberType(req.MemberType)
	}
	if err := svc.team.InsertMember(s, member); err != nil {
		return nil, err
	}
	return &response_models.AddTeamMemberNode{
		Added:      true,
		TeamMember: response_models.NewTeamMemberNode(member),
	}, nil
}

func (svc *businessService) UpdateTeamMember(s *reqctx.Session, req *request_models.UpdateTeamMemberRequest) (*response_models.UpdateTeamMemberNode, error) {
	owner, err := svc.ownership.IsTeamMemberOwner(s, s.User.ID, req.TeamMemberID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return &response_models.UpdateTeamMemberNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerBusiness, "you are not the owner of this business"),
		}, nil
	}

	if req.UserID != nil {
		user, err := svc.users.FindByID(s, *req.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return &response_models.UpdateTeamMemberNode{
				Error: response_models.NewOperationError(response_models.CodeUserNotExists, "user does not exist"),
			}, nil
		}
	}
	if req.RoleID != nil {
		roleOwner, err := svc.ownership.IsRoleOwner(s, s.User.ID, *req.RoleID)
		if err != nil {
			return nil, err
		}
		if !roleOwner {
			return &response_models.UpdateTeamMemberNode{
				Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerRole, "you are not the owner of this role"),
			}, nil
		}
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return &response_models.UpdateTeamMemberNode{
			Error: response_models.NewOperationError(response_models.CodeNotUpdated, "nothing to update"),
		}, nil
	}

	member, err := svc.team.UpdateMemberFields(s, req.TeamMemberID, fields)
	if err != nil {
		return nil, err
	}
	return &response_models.UpdateTeamMemberNode{
		Updated:    true,
		TeamMember: response_models.NewTeamMemberNode(member),
	}, nil
}

func (svc *businessService) GetTeam(s *reqctx.Session, req *request_models.BusinessTeamRequest) (*response_models.BusinessTeamNode, error) {
	owner, err := svc.ownership.IsBusinessOwner(s, s.User.ID, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return &response_models.BusinessTeamNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerBusiness, "you are not the owner of this business"),
		}, nil
	}

	team, err := svc.team.ListTeam(s, req.BusinessID)
	if err != nil {
		return nil, err
	}
	if len(team) == 0 {
		return &response_models.BusinessTeamNode{
			Error: response_models.NewOperationError(response_models.CodeTeamIsEmpty, "business has no team members"),
		}, nil
	}
	return &response_models.BusinessTeamNode{Team: response_models.NewTeamMemberNodes(team)}, nil
}

// DeleteTeamMember resolves ownership through the member's role chain, not
// its direct business link.
func (svc *businessService) DeleteTeamMember(s *reqctx.Session, req *request_models.DeleteTeamMemberRequest) (*response_models.DeleteTeamMemberNode, error) {
	owner, err := svc.ownership.IsTeamMemberRoleOwner(s, s.User.ID, req.TeamMemberID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return &response_models.DeleteTeamMemberNode{
			Error: response_models.NewOperationError(response_models.CodeUserIsNotOwnerBusiness, "you are not the owner of this business"),
		}, nil
	}

	deleted, err := svc.team.DeleteMember(s, req.TeamMemberID)
	if err != nil {
		return nil, err
	}
	return &response_models.DeleteTeamMemberNode{Deleted: deleted}, nil
}

func (svc *businessService) AddClient(s *reqctx.Session, req *request_models.AddClientRequest) (*response_models.AddClientNode, error) {
	client := &db_models.Client{
		UserID:       s.User.ID,
		Name:         req.Name,
		Region:       req.Region,
		City:         req.City,
		Address:      req.Address,
		Email:        req.Email,
		Phone:        req.Phone,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		ClientUserID: req.ClientUserID,
		Description:  req.Description,
		Birthday:     dateValue(req.Birthday),
	}
	if req.UserType != "" {
		client.UserType = db_models.BusinessType(req.UserType)
	}
	if req.Status != "" {
		client.Status = db_models.ClientStatus(req.Status)
	}
	if err := svc.clients.Insert(s, client); err != nil {
		return nil, err
	}
	return &response_models.AddClientNode{
		Added:  true,
		Client: response_models.NewClientNode(client),
	}, nil
}

func (svc *businessService) UpdateClient(s *reqctx.Session, req *request_models.UpdateClientRequest) (*response_models.UpdateClientNode, error) {
	if operationError, err := svc.checkClient(s, req.ClientID); err != nil || operationError != nil {
		return &response_models.UpdateClientNode{Error: operationError}, err
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return &response_models.UpdateClientNode{
			Error: response_models.NewOperationError(response_models.CodeClientInfoIsEmpty, "nothing to update"),
		}, nil
	}

	client, err := svc.clients.UpdateFields(s, req.ClientID, fields)
	if err != nil {
		return nil, err
	}
	return &response_models.UpdateClientNode{
		Updated: true,
		Client:  response_models.NewClientNode(client),
	}, nil
}

func (svc *businessService) DeleteClient(s *reqctx.Session, req *request_models.DeleteClientRequest) (*response_models.DeleteClientNode, error) {
	if operationError, err := svc.checkClient(s, req.ClientID); err != nil || operationError != nil {
		return &response_models.DeleteClientNode{Error: operationError}, err
	}

	deleted, err := svc.clients.Delete(s, req.ClientID)
	if err != nil {
		return nil, err
	}
	return &response_models.DeleteClientNode{Deleted: deleted}, nil
}

func (svc *businessService) GetClients(s *reqctx.Session) ([]response_models.ClientNode, error) {
	clients, err := svc.clients.ListByUser(s, s.User.ID)
	if err != nil {
		return nil, err
	}
	return response_models.NewClientNodes(clients), nil
}

func (svc *businessService) AddClientAttribute(s *reqctx.Session, req *request_models.AddClientAttributeRequest) (*response_models.AddClientAttributeNode, error) {
	if operationError, err := svc.checkClient(s, req.ClientID); err != nil || operationError != nil {
		return &response_models.AddClientAttributeNode{Error: operationError}, err
	}

	attribute := &db_models.ClientAttribute{
		ClientID:       req.ClientID,
		AttributeKey:   req.AttributeKey,
		AttributeValue: req.AttributeValue,
	}
	if err := svc.clients.InsertAttribute(s, attribute); err != nil {
		return nil, err
	}
	client, err := svc.clients.FindByID(s, req.ClientID)
	if err != nil {
		return nil, err
	}
	return &response_models.AddClientAttributeNode{
		Added:  true,
		Client: response_models.NewClientNode(client),
	}, nil
}

func (svc *businessService) UpdateClientAttribute(s *reqctx.Session, req *request_models.UpdateClientAttributeRequest) (*response_models.UpdateClientAttributeNode, error) {
	attribute, err := svc.clients.FindAttributeByID(s, req.ClientAttributeID)
	if err != nil {
		return nil, err
	}
	if attribute == nil {
		return &response_models.UpdateClientAttributeNode{
			Error: response_models.NewOperationError(response_models.CodeClientAttributeNotFound, "client attribute not found"),
		}, nil
	}
	belongs, err := svc.ownership.ClientBelongsToUser(s, s.User.ID, attribute.ClientID)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return &response_models.UpdateClientAttributeNode{
			Error: response_models.NewOperationError(response_models.CodeClientDoesNotBelongToYou, "client does not belong to you"),
		}, nil
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return &response_models.UpdateClientAttributeNode{
			Error: response_models.NewOperationError(response_models.CodeClientAttributeIsEmpty, "nothing to update"),
		}, nil
	}

	if _, err := svc.clients.UpdateAttributeFields(s, req.ClientAttributeID, fields); err != nil {
		return nil, err
	}
	client, err := svc.clients.FindByID(s, attribute.ClientID)
	if err != nil {
		return nil, err
	}
	return &response_models.UpdateClientAttributeNode{
		Updated: true,
		Client:  response_models.NewClientNode(client),
	}, nil
}

func (svc *businessService) DeleteClientAttribute(s *reqctx.Session, req *request_models.DeleteClientAttributeRequest) (*response_models.DeleteClientAttributeNode, error) {
	attribute, err := svc.clients.FindAttributeByID(s, req.ClientAttributeID)
	if err != nil {
		return nil, err
	}
	if attribute == nil {
		return &response_models.DeleteClientAttributeNode{
			Error: response_models.NewOperationError(response_models.CodeClientAttributeNotFound, "client attribute not found"),
		}, nil
	}
	belongs, err := svc.ownership.ClientBelongsToUser(s, s.User.ID, attribute.ClientID)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return &response_models.DeleteClientAttributeNode{
			Error: response_models.NewOperationError(response_models.CodeClientDoesNotBelongToYou, "client does not belong to you"),
		}, nil
	}

	deleted, err := svc.clients.DeleteAttribute(s, req.ClientAttributeID)
	if err != nil {
		return nil, err
	}
	return &response_models.DeleteClientAttributeNode{Deleted: deleted}, nil
}

// checkClient verifies the client exists and belongs to the subject. It
// returns the domain error to embed, or a fatal error.
func (svc *businessService) checkClient(s *reqctx.Session, clientID uint) (*response_models.OperationError, error) {
	exists, err := svc.clients.Exists(s, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return response_models.NewOperationError(response_models.CodeClientNotFound, "client not found"), nil
	}
	belongs, err := svc.ownership.ClientBelongsToUser(s, s.User.ID, clientID)
	if err != nil {
		return nil, err
	}
	if !belongs {
		return response_models.NewOperationError(response_models.CodeClientDoesNotBelongToYou, "client does not belong to you"), nil
	}
	return nil, nil
}

func dateValue(d *request_models.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
