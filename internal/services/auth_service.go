package services

import (
	"time"

	"gainsystem/internal/auth"
	"gainsystem/internal/models/db_models"
	"gainsystem/internal/models/request_models"
	"gainsystem/internal/models/response_models"
	"gainsystem/internal/repositories"
	"gainsystem/pkg/config"
	"gainsystem/pkg/reqctx"
	"gainsystem/pkg/utils"
)

// AuthService covers registration, the three authentication flows and the
// profile operations of the base segment.
type AuthService interface {
	Register(s *reqctx.Session, req *request_models.RegistrationRequest) (*response_models.RegistrationNode, error)
	Authenticate(s *reqctx.Session, req *request_models.AuthenticationRequest) (*response_models.AuthenticationNode, error)
	ThirdPartyAuthenticate(s *reqctx.Session, req *request_models.ThirdPartyRequest) (*response_models.ThirdPartyAuthenticationNode, error)
	Refresh(s *reqctx.Session, req *request_models.RefreshRequest) (*response_models.RefreshTokenNode, error)
	GetMe(s *reqctx.Session) (*response_models.GetMeNode, error)
	UpdateUser(s *reqctx.Session, req *request_models.UpdateUserRequest) (*response_models.UpdateUserNode, error)
}

type authService struct {
	cfg    *config.Config
	jwt    *auth.JWTManager
	users  repositories.UserRepository
	tokens repositories.TokenRepository
}

func NewAuthService(
	cfg *config.Config,
	jwtManager *auth.JWTManager,
	users repositories.UserRepository,
	tokens repositories.TokenRepository,
) AuthService {
	return &authService{
		cfg:    cfg,
		jwt:    jwtManager,
		users:  users,
		tokens: tokens,
	}
}

func (svc *authService) Register(s *reqctx.Session, req *request_models.RegistrationRequest) (*response_models.RegistrationNode, error) {
	existing, err := svc.users.FindByEmail(s, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &response_models.RegistrationNode{
			Error: response_models.NewOperationError(response_models.CodeEmailTaken, "user with this email already exists"),
		}, nil
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	firstName, secondName := req.Names()
	user := &db_models.User{
		Email:         req.Email,
		PasswordHash:  hash,
		FirstName:     firstName,
		SecondName:    secondName,
		Phone:         req.Phone,
		AccountStatus: db_models.AccountActive,
	}
	if err := svc.users.Insert(s, user); err != nil {
		return nil, err
	}
	if err := svc.users.InsertCredential(s, &db_models.ThirdPartyCredential{UserID: user.ID, GoogleUID: req.UID}); err != nil {
		return nil, err
	}
	if req.DeviceID != "" {
		if err := svc.users.UpsertDevice(s, user.ID, req.DeviceID); err != nil {
			return nil, err
		}
	}
	if err := svc.users.LinkPendingTeamMembers(s, user); err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := svc.issueTokens(s, user)
	if err != nil {
		return nil, err
	}

	return &response_models.RegistrationNode{
		Success:      true,
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         response_models.NewUserNode(user),
	}, nil
}

// Authenticate answers the same error for an unknown email and a wrong
// password so the response does not reveal which accounts exist.
func (svc *authService) Authenticate(s *reqctx.Session, req *request_models.AuthenticationRequest) (*response_models.AuthenticationNode, error) {
	wrongCredentials := &response_models.AuthenticationNode{
		Error: response_models.NewOperationError(response_models.CodeWrongCredentials, "wrong email or password"),
	}

	user, err := svc.users.FindByEmail(s, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return wrongCredentials, nil
	}
	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return wrongCredentials, nil
	}

	accessToken, refreshToken, err := svc.issueTokens(s, user)
	if err != nil {
		return nil, err
	}

	return &response_models.AuthenticationNode{
		Success:      true,
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ThirdPartyAuthenticate resolves the account by email. A known email
// signs in only when its stored provider uid equals the presented one; a
// new email gets an account unless another user already holds the uid.
func (svc *authService) ThirdPartyAuthenticate(s *reqctx.Session, req *request_models.ThirdPartyRequest) (*response_models.ThirdPartyAuthenticationNode, error) {
	user, err := svc.users.FindByEmail(s, req.Email)
	if err != nil {
		return nil, err
	}

	if user != nil {
		credential, err := svc.users.FindCredentialByUserID(s, user.ID)
		if err != nil {
			return nil, err
		}
		if credential == nil || credential.GoogleUID != req.UID {
			return &response_models.ThirdPartyAuthenticationNode{
				Error: response_models.NewOperationError(response_models.CodeWrongCredentials, "wrong credentials"),
			}, nil
		}
		if fields := req.ProfileFields(); len(fields) > 0 {
			user, err = svc.users.UpdateFields(s, user.ID, fields)
			if err != nil {
				return nil, err
			}
		}
	} else {
		taken, err := svc.users.FindCredentialByUID(s, req.UID)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return &response_models.ThirdPartyAuthenticationNode{
				Error: response_models.NewOperationError(response_models.CodeUIDExists, "uid exists"),
			}, nil
		}

		firstName, secondName := req.Names()
		user = &db_models.User{
			Email:          req.Email,
			FirstName:      firstName,
			SecondName:     secondName,
			ProfilePicture: req.ProfilePicture,
			AccountStatus:  db_models.AccountActive,
		}
		if err := svc.users.Insert(s, user); err != nil {
			return nil, err
		}
		if err := svc.users.InsertCredential(s, &db_models.ThirdPartyCredential{UserID: user.ID, GoogleUID: req.UID}); err != nil {
			return nil, err
		}
		if err := svc.users.LinkPendingTeamMembers(s, user); err != nil {
			return nil, err
		}
	}

	if req.DeviceID != "" {
		if err := svc.users.UpsertDevice(s, user.ID, req.DeviceID); err != nil {
			return nil, err
		}
	}

	accessToken, refreshToken, err := svc.issueTokens(s, user)
	if err != nil {
		return nil, err
	}

	return &response_models.ThirdPartyAuthenticationNode{
		Success:      true,
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh rotates the presented token in place. A second refresh with the
// old value therefore fails as invalid.
func (svc *authService) Refresh(s *reqctx.Session, req *request_models.RefreshRequest) (*response_models.RefreshTokenNode, error) {
	row, err := svc.tokens.Find(s, req.RefreshToken)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return &response_models.RefreshTokenNode{
			Error: response_models.NewOperationError(response_models.CodeTokenInvalid, "refresh token is invalid"),
		}, nil
	}
	if time.Now().After(row.ExpiresAt) {
		return &response_models.RefreshTokenNode{
			Error: response_models.NewOperationError(response_models.CodeTokenExpired, "refresh token has expired"),
		}, nil
	}

	user, err := svc.users.FindByID(s, row.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &response_models.RefreshTokenNode{
			Error: response_models.NewOperationError(response_models.CodeTokenInvalid, "refresh token is invalid"),
		}, nil
	}

	accessToken, err := svc.jwt.Generate(user.Email)
	if err != nil {
		return nil, err
	}
	newValue, err := svc.uniqueRefreshValue(s)
	if err != nil {
		return nil, err
	}
	rotated, err := svc.tokens.Rotate(s, row.ID, newValue, time.Now().Add(svc.cfg.RefreshTokenTTL))
	if err != nil {
		return nil, err
	}

	return &response_models.RefreshTokenNode{
		AccessToken:  accessToken,
		RefreshToken: rotated.Token,
	}, nil
}

func (svc *authService) GetMe(s *reqctx.Session) (*response_models.GetMeNode, error) {
	if !s.Authenticated() {
		return nil, utils.ErrInvalidToken
	}
	return &response_models.GetMeNode{User: response_models.NewUserNode(s.User)}, nil
}

func (svc *authService) UpdateUser(s *reqctx.Session, req *request_models.UpdateUserRequest) (*response_models.UpdateUserNode, error) {
	if !s.Authenticated() {
		return nil, utils.ErrInvalidToken
	}

	fields := req.Fields()
	if len(fields) == 0 {
		return &response_models.UpdateUserNode{
			Error: response_models.NewOperationError(response_models.CodeEmptyFields, "nothing to update"),
		}, nil
	}

	updated, err := svc.users.UpdateFields(s, s.User.ID, fields)
	if err != nil {
		return nil, err
	}
	return &response_models.UpdateUserNode{
		Updated: true,
		User:    response_models.NewUserNode(updated),
	}, nil
}

// issueTokens builds the access/refresh pair for a subject. The refresh
// value is regenerated until it does not collide with a stored one.
func (svc *authService) issueTokens(s *reqctx.Session, user *db_models.User) (string, string, error) {
	accessToken, err := svc.jwt.Generate(user.Email)
	if err != nil {
		return "", "", err
	}
	value, err := svc.uniqueRefreshValue(s)
	if err != nil {
		return "", "", err
	}
	row, err := svc.tokens.Insert(s, user.ID, value, time.Now().Add(svc.cfg.RefreshTokenTTL))
	if err != nil {
		return "", "", err
	}
	return accessToken, row.Token, nil
}

func (svc *authService) uniqueRefreshValue(s *reqctx.Session) (string, error) {
	for {
		value, err := utils.GenerateSecureToken(svc.cfg.RefreshTokenBytes)
		if err != nil {
			return "", err
		}
		taken, err := svc.tokens.Exists(s, value)
		if err != nil {
			return "", err
		}
		if !taken {
			return value, nil
		}
	}
}
