package services

import (
	"context"

	"github.com/pkg/errors"

	"task-manager/backend/logging"
	"task-manager/backend/models"
	"task-manager/backend/utils"
)

const (
	userConflict       = "User already exists"
	invalidCredentials = "Invalid email or password"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type AuthService struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewAuthService(users UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	_, err := s.users.FindByEmail(ctx, in.Email)
	found, err := exists(err)
	if err != nil {
		return nil, errors.Wrap(err, "check user email")
	}
	if found {
		return nil, NewError(ErrorCodeConflict, userConflict)
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: in.Name, Email: in.Email, Password: hashed}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, classify(err, invalidCredentials, userConflict)
	}

	logging.Logger.Infof("Event ID: USER_REGISTERED, Description: User %s registered", user.ID.Hex())
	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, in.Email)
	found, err := exists(err)
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	if !found || !utils.CheckPassword(user.Password, in.Password) {
		logging.Logger.Warnf("Event ID: LOGIN_FAILED, Description: Failed login for '%s'", in.Email)
		return nil, NewError(ErrorCodeUnauthorized, invalidCredentials)
	}

	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := s.tokens.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, errors.Wrap(err, "issue token")
	}
	return &AuthResult{Token: token, User: *user}, nil
}
