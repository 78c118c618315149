package response_models

import (
	"gainsystem/internal/models/db_models"
)

// Error codes of the business segment operations.
const (
	CodeScopedBusinessTypeNotFound = "SCOPED_BUSINESS_TYPE_NOT_FOUND"
	CodeUserIsNotOwnerBusiness     = "USER_IS_NOT_OWNER_BUSINESS"
	CodeUserIsNotOwnerRole         = "USER_IS_NOT_OWNER_ROLE"
	CodeNotUpdated                 = "NOT_UPDATED"
	CodeNotDeleted                 = "NOT_DELETED"
	CodeTeamMemberExists           = "TEAM_MEMBER_EXISTS"
	CodeUserNotExists              = "USER_NOT_EXISTS"
	CodeTeamIsEmpty                = "TEAM_IS_EMPTY"
	CodeClientNotFound             = "CLIENT_NOT_FOUND"
	CodeClientDoesNotBelongToYou   = "CLIENT_DOES_NOT_BELONG_TO_YOU"
	CodeClientInfoIsEmpty          = "CLIENT_INFO_IS_EMPTY"
	CodeClientAttributeNotFound    = "CLIENT_ATTRIBUTE_NOT_FOUND"
	CodeClientAttributeIsEmpty     = "CLIENT_ATTRIBUTE_IS_EMPTY"
)

type ScopeTypeNode struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Hide        bool   `json:"hide"`
}

func NewScopeTypeNodes(types []db_models.ScopeTypeBusiness) []ScopeTypeNode {
	nodes := make([]ScopeTypeNode, 0, len(types))
	for _, t := range types {
		nodes = append(nodes, ScopeTypeNode{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Hide:        t.Hide,
		})
	}
	return nodes
}

type BusinessNode struct {
	ID             uint                     `json:"id"`
	OwnerID        uint                     `json:"owner_id"`
	Title          string                   `json:"title"`
	ScopeTypeID    uint                     `json:"scope_type_id"`
	TypeBusiness   db_models.BusinessType   `json:"type_business"`
	StatusBusiness db_models.BusinessStatus `json:"status_business"`
	Description    string                   `json:"description"`
	Address        string                   `json:"address"`
	Region         string                   `json:"region"`
	City           string                   `json:"city"`
	Email          string                   `json:"email"`
	Phone          string                   `json:"phone"`
	Website        string                   `json:"website"`
	OperationHours string                   `json:"operation_hours"`
}

func NewBusinessNode(business *db_models.Business) *BusinessNode {
	if business == nil {
		return nil
	}
	return &BusinessNode{
		ID:             business.ID,
		OwnerID:        business.UserID,
		Title:          business.Title,
		ScopeTypeID:    business.ScopeTypeID,
		TypeBusiness:   business.TypeBusiness,
		StatusBusiness: business.StatusBusiness,
		Description:    business.Description,
		Address:        business.Address,
		Region:         business.Region,
		City:           business.City,
		Email:          business.Email,
		Phone:          business.Phone,
		Website:        business.Website,
		OperationHours: business.OperationHours,
	}
}

type RoleNode struct {
	ID          uint                 `json:"id"`
	BusinessID  uint                 `json:"business_id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Access      db_models.RoleAccess `json:"access"`
}

func NewRoleNode(role *db_models.BusinessRole) *RoleNode {
	if role == nil {
		return nil
	}
	return &RoleNode{
		ID:          role.ID,
		BusinessID:  role.BusinessID,
		Name:        role.Name,
		Description: role.Description,
		Access:      role.Access,
	}
}

type TeamMemberNode struct {
	ID           uint                 `json:"id"`
	UserID       *uint                `json:"user_id"`
	BusinessID   uint                 `json:"business_id"`
	RoleID       uint                 `json:"role_id"`
	Email        string               `json:"email"`
	Description  string               `json:"description"`
	MemberType   db_models.MemberType `json:"member_type"`
	MemberStatus bool                 `json:"member_status"`
}

func NewTeamMemberNode(member *db_models.TeamMember) *TeamMemberNode {
	if member == nil {
		return nil
	}
	return &TeamMemberNode{
		ID:           member.ID,
		UserID:       member.UserID,
		BusinessID:   member.BusinessID,
		RoleID:       member.RoleID,
		Email:        member.Email,
		Description:  member.Description,
		MemberType:   member.MemberType,
		MemberStatus: member.MemberStatus,
	}
}

func NewTeamMemberNodes(members []db_models.TeamMember) []TeamMemberNode {
	nodes := make([]TeamMemberNode, 0, len(members))
	for i := range members {
		nodes = append(nodes, *NewTeamMemberNode(&members[i]))
	}
	return nodes
}

type ClientAttributeNode struct {
	ID             uint   `json:"id"`
	AttributeKey   string `json:"attribute_key"`
	AttributeValue string `json:"attribute_value"`
}

type ClientNode struct {
	ID          uint                   `json:"id"`
	OwnerID     uint                   `json:"owner_id"`
	Name        string                 `json:"name"`
	UserType    db_models.BusinessType `json:"user_type"`
	Status      db_models.ClientStatus `json:"status"`
	Region      string                 `json:"region"`
	City        string                 `json:"city"`
	Address     string                 `json:"address"`
	Email       string                 `json:"email"`
	Phone       string                 `json:"phone"`
	Description string                 `json:"description"`
	Attributes  []ClientAttributeNode  `json:"attributes"`
}

func NewClientNode(client *db_models.Client) *ClientNode {
	if client == nil {
		return nil
	}
	attributes := make([]ClientAttributeNode, 0, len(client.Attributes))
	for _, a := range client.Attributes {
		attributes = append(attributes, ClientAttributeNode{
			ID:             a.ID,
			AttributeKey:   a.AttributeKey,
			AttributeValue: a.AttributeValue,
		})
	}
	return &ClientNode{
		ID:          client.ID,
		OwnerID:     client.UserID,
		Name:        client.Name,
		UserType:    client.UserType,
		Status:      client.Status,
		Region:      client.Region,
		City:        client.City,
		Address:     client.Address,
		Email:       client.Email,
		Phone:       client.Phone,
		Description: client.Description,
		Attributes:  attributes,
	}
}

func NewClientNodes(clients []db_models.Client) []ClientNode {
	nodes := make([]ClientNode, 0, len(clients))
	for i := range clients {
		nodes = append(nodes, *NewClientNode(&clients[i]))
	}
	return nodes
}

type CreateBusinessNode struct {
	Created  bool            `json:"created"`
	Business *BusinessNode   `json:"business,omitempty"`
	Error    *OperationError `json:"error,omitempty"`
}

type UpdateBusinessNode struct {
	Updated  bool            `json:"updated"`
	Business *BusinessNode   `json:"business,omitempty"`
	Error    *OperationError `json:"error,omitempty"`
}

type DeleteBusinessNode struct {
	Deleted bool            `json:"deleted"`
	Error   *OperationError `json:"error,omitempty"`
}

type CreateRoleNode struct {
	Created bool            `json:"created"`
	Role    *RoleNode       `json:"role,omitempty"`
	Error   *OperationError `json:"error,omitempty"`
}

type UpdateRoleNode struct {
	Updated bool            `json:"updated"`
	Role    *RoleNode       `json:"role,omitempty"`
	Error   *OperationError `json:"error,omitempty"`
}

type DeleteRoleNode struct {
	Deleted bool            `json:"deleted"`
	Error   *OperationError `json:"error,omitempty"`
}

type AddTeamMemberNode struct {
	Added      bool            `json:"added"`
	TeamMember *TeamMemberNode `json:"team_member,omitempty"`
	Error      *OperationError `json:"error,omitempty"`
}

type UpdateTeamMemberNode struct {
	Updated    bool            `json:"updated"`
	TeamMember *TeamMemberNode `json:"team_member,omitempty"`
	Error      *OperationError `json:"error,omitempty"`
}

type BusinessTeamNode struct {
	Team  []TeamMemberNode `json:"team,omitempty"`
	Error *OperationError  `json:"error,omitempty"`
}

type DeleteTeamMemberNode struct {
	Deleted bool            `json:"deleted"`
	Error   *OperationError `json:"error,omitempty"`
}

type AddClientNode struct {
	Added  bool            `json:"added"`
	Client *ClientNode     `json:"client,omitempty"`
	Error  *OperationError `json:"error,omitempty"`
}

type UpdateClientNode struct {
	Updated bool            `json:"updated"`
	Client  *ClientNode     `json:"client,omitempty"`
	Error   *OperationError `json:"error,omitempty"`
}

type DeleteClientNode struct {
	Deleted bool            `json:"deleted"`
	Error   *OperationError `json:"error,omitempty"`
}

type AddClientAttributeNode struct {
	Added  bool            `json:"added"`
	Client *ClientNode     `json:"client,omitempty"`
	Error  *OperationError `json:"error,omitempty"`
}

type UpdateClientAttributeNode struct {
	Updated bool            `json:"updated"`
	Client  *ClientNode     `json:"client,omitempty"`
	Error   *OperationError `json:"error,omitempty"`
}

type DeleteClientAttributeNode struct {
	Deleted bool            `json:"deleted"`
	Error   *OperationError `json:"error,omitempty"`
}
