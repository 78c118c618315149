package request_models

type CreateBusinessRequest struct {
	ScopeTypeID    uint    `json:"scope_type_id" binding:"required"`
	Title          string  `json:"title" binding:"required"`
	TypeBusiness   string  `json:"type_business"`
	Description    string  `json:"description"`
	Address        string  `json:"address"`
	Region         string  `json:"region"`
	City           string  `json:"city"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Website        string  `json:"website"`
	OperationHours string  `json:"operation_hours"`
	LogoPicture    string  `json:"logo_picture"`
}

type UpdateBusinessRequest struct {
	BusinessID     uint     `json:"business_id" binding:"required"`
	Title          *string  `json:"title"`
	ScopeTypeID    *uint    `json:"scope_type_id"`
	TypeBusiness   *string  `json:"type_business"`
	StatusBusiness *string  `json:"status_business"`
	Description    *string  `json:"description"`
	Address        *string  `json:"address"`
	Region         *string  `json:"region"`
	City           *string  `json:"city"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	Website        *string  `json:"website"`
	OperationHours *string  `json:"operation_hours"`
	LogoPicture    *string  `json:"logo_picture"`
}

func (r *UpdateBusinessRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.ScopeTypeID != nil {
		fields["scope_type_id"] = *r.ScopeTypeID
	}
	if r.TypeBusiness != nil {
		fields["type_business"] = *r.TypeBusiness
	}
	if r.StatusBusiness != nil {
		fields["status_business"] = *r.StatusBusiness
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Address != nil {
		fields["address"] = *r.Address
	}
	if r.Region != nil {
		fields["region"] = *r.Region
	}
	if r.City != nil {
		fields["city"] = *r.City
	}
	if r.Latitude != nil {
		fields["latitude"] = *r.Latitude
	}
	if r.Longitude != nil {
		fields["longitude"] = *r.Longitude
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.Website != nil {
		fields["website"] = *r.Website
	}
	if r.OperationHours != nil {
		fields["operation_hours"] = *r.OperationHours
	}
	if r.LogoPicture != nil {
		fields["logo_picture"] = *r.LogoPicture
	}
	return fields
}

type DeleteBusinessRequest struct {
	BusinessID uint `json:"business_id" binding:"required"`
}

type CreateRoleRequest struct {
	BusinessID  uint   `json:"business_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Access      string `json:"access"`
}

type UpdateRoleRequest struct {
	RoleID      uint    `json:"role_id" binding:"required"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Access      *string `json:"access"`
}

func (r *UpdateRoleRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Access != nil {
		fields["access"] = *r.Access
	}
	return fields
}

type DeleteRoleRequest struct {
	RoleID uint `json:"role_id" binding:"required"`
}

type AddTeamMemberRequest struct {
	BusinessID  uint   `json:"business_id" binding:"required"`
	RoleID      uint   `json:"role_id" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	DateFrom    *Date  `json:"date_from"`
	DateTo      *Date  `json:"date_to"`
	Description string `json:"description"`
	MemberType  string `json:"member_type"`
}

type UpdateTeamMemberRequest struct {
	TeamMemberID uint    `json:"team_member_id" binding:"required"`
	UserID       *uint   `json:"user_id"`
	RoleID       *uint   `json:"role_id"`
	DateFrom     *Date   `json:"date_from"`
	DateTo       *Date   `json:"date_to"`
	Description  *string `json:"description"`
	MemberType   *string `json:"member_type"`
	MemberStatus *bool   `json:"member_status"`
}

func (r *UpdateTeamMemberRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.UserID != nil {
		fields["user_id"] = *r.UserID
	}
	if r.RoleID != nil {
		fields["role_id"] = *r.RoleID
	}
	if r.DateFrom != nil {
		fields["date_from"] = r.DateFrom.Time
	}
	if r.DateTo != nil {
		fields["date_to"] = r.DateTo.Time
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.MemberType != nil {
		fields["member_type"] = *r.MemberType
	}
	if r.MemberStatus != nil {
		fields["member_status"] = *r.MemberStatus
	}
	return fields
}

type BusinessTeamRequest struct {
	BusinessID uint `json:"business_id" binding:"required"`
}

type DeleteTeamMemberRequest struct {
	TeamMemberID uint `json:"team_member_id" binding:"required"`
}

type AddClientRequest struct {
	Name         string  `json:"name" binding:"required"`
	UserType     string  `json:"user_type"`
	Status       string  `json:"status"`
	Region       string  `json:"region"`
	City         string  `json:"city"`
	Address      string  `json:"address"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	ClientUserID *uint   `json:"client_user_id"`
	Description  string  `json:"description"`
	Birthday     *Date   `json:"birthday"`
}

type UpdateClientRequest struct {
	ClientID     uint     `json:"client_id" binding:"required"`
	Name         *string  `json:"name"`
	UserType     *string  `json:"user_type"`
	Status       *string  `json:"status"`
	Region       *string  `json:"region"`
	City         *string  `json:"city"`
	Address      *string  `json:"address"`
	Email        *string  `json:"email"`
	Phone        *string  `json:"phone"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	ClientUserID *uint    `json:"client_user_id"`
	Description  *string  `json:"description"`
	Birthday     *Date    `json:"birthday"`
}

func (r *UpdateClientRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.UserType != nil {
		fields["user_type"] = *r.UserType
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	if r.Region != nil {
		fields["region"] = *r.Region
	}
	if r.City != nil {
		fields["city"] = *r.City
	}
	if r.Address != nil {
		fields["address"] = *r.Address
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.Latitude != nil {
		fields["latitude"] = *r.Latitude
	}
	if r.Longitude != nil {
		fields["longitude"] = *r.Longitude
	}
	if r.ClientUserID != nil {
		fields["client_user_id"] = *r.ClientUserID
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Birthday != nil {
		fields["birthday"] = r.Birthday.Time
	}
	return fields
}

type DeleteClientRequest struct {
	ClientID uint `json:"client_id" binding:"required"`
}

type AddClientAttributeRequest struct {
	ClientID       uint   `json:"client_id" binding:"required"`
	AttributeKey   string `json:"attribute_key" binding:"required"`
	AttributeValue string `json:"attribute_value"`
}

type UpdateClientAttributeRequest struct {
	ClientAttributeID uint    `json:"client_attribute_id" binding:"required"`
	AttributeKey      *string `json:"attribute_key"`
	AttributeValue    *string `json:"attribute_value"`
}

func (r *UpdateClientAttributeRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.AttributeKey != nil {
		fields["attribute_key"] = *r.AttributeKey
	}
	if r.AttributeValue != nil {
		fields["attribute_value"] = *r.AttributeValue
	}
	return fields
}

type DeleteClientAttributeRequest struct {
	ClientAttributeID uint `json:"client_attribute_id" binding:"required"`
}
