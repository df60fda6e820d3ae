package service

import (
	"context"
	"errors"

	"solarflow/internal/model"
	"solarflow/internal/util"

	"go.uber.org/zap"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Insert(ctx context.Context, u *model.User) error
}

type AuthService struct {
	users     UserRepo
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthService(users UserRepo, jwtSecret string, logger *zap.Logger) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, logger: logger}
}

// Login verifies credentials and returns a signed token plus the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if user == nil || !util.CheckPassword(password, user.PasswordHash) {
		s.logger.Warn("Login rejected", zap.String("email", email))
		return "", nil, ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user.ID, user.Name, user.Role, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role),
	)
	return token, user, nil
}

// Register creates a user with a hashed password. Role defaults to employee.
func (s *AuthService) Register(ctx context.Context, name, email, password, role string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := util.HashPassword(password)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = "employee"
	}

	user := &model.User{
		ID:           util.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
