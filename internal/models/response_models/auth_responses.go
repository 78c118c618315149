package response_models

import (
	"gainsystem/internal/models/db_models"
)

// Error codes of the identity operations.
const (
	CodeEmailTaken       = "EMAIL_TAKEN"
	CodeWrongCredentials = "WRONG_CREDENTIALS"
	CodeUIDExists        = "UID_EXISTS"
	CodeTokenExpired     = "EXPIRED"
	CodeTokenInvalid     = "INVALID"
	CodeEmptyFields      = "EMPTY_FIELDS"
)

type UserNode struct {
	ID             uint                    `json:"id"`
	Email          string                  `json:"email"`
	FirstName      string                  `json:"first_name"`
	SecondName     string                  `json:"second_name"`
	MiddleName     string                  `json:"middle_name"`
	Phone          string                  `json:"phone"`
	ProfilePicture string                  `json:"profile_picture"`
	AccountStatus  db_models.AccountStatus `json:"account_status"`
}

func NewUserNode(user *db_models.User) *UserNode {
	if user == nil {
		return nil
	}
	return &UserNode{
		ID:             user.ID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		SecondName:     user.SecondName,
		MiddleName:     user.MiddleName,
		Phone:          user.Phone,
		ProfilePicture: user.ProfilePicture,
		AccountStatus:  user.AccountStatus,
	}
}

type RegistrationNode struct {
	Success      bool            `json:"registration_success"`
	Token        string          `json:"token,omitempty"`
	RefreshToken string          `json:"token_refresh,omitempty"`
	User         *UserNode       `json:"user,omitempty"`
	Error        *OperationError `json:"error,omitempty"`
}

type AuthenticationNode struct {
	Success      bool            `json:"authentication_status"`
	Token        string          `json:"token,omitempty"`
	RefreshToken string          `json:"token_refresh,omitempty"`
	Error        *OperationError `json:"error,omitempty"`
}

type ThirdPartyAuthenticationNode struct {
	Success      bool            `json:"status"`
	Token        string          `json:"token,omitempty"`
	RefreshToken string          `json:"token_refresh,omitempty"`
	Error        *OperationError `json:"error,omitempty"`
}

type RefreshTokenNode struct {
	AccessToken  string          `json:"access_token,omitempty"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	Error        *OperationError `json:"error,omitempty"`
}

type GetMeNode struct {
	User *UserNode `json:"user"`
}

type UpdateUserNode struct {
	Updated bool            `json:"updated"`
	User    *UserNode       `json:"user,omitempty"`
	Error   *OperationError `json:"error,omitempty"`
}
