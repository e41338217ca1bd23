package service

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"restaurant-pos/internal/auth"
	"restaurant-pos/internal/entity"
	"restaurant-pos/internal/repository"
)

var authLogger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// UserStore is the identity-lookup capability the auth flow needs.
type UserStore interface {
	GetUserByName(ctx context.Context, name string) (*entity.User, string, error)
	GetUserByID(ctx context.Context, id int) (*entity.User, error)
	GetUsers(ctx context.Context) ([]entity.User, error)
}

type AuthService struct {
	users  UserStore
	secret []byte
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(users UserStore, secret []byte) *AuthService {
	return &AuthService{users: users, secret: secret}
}

// Login checks the password against the stored bcrypt hash and issues a
// bearer token bound to the user name.
func (s *AuthService) Login(ctx context.Context, name, password string) (*entity.User, string, error) {
	user, hashed, err := s.users.GetUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		authLogger.Error().Err(err).Msgf("Error getting user %s", name)
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.NewToken(user.Name, s.secret)
	if err != nil {
		authLogger.Error().Err(err).Msg("Error creating token")
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id int) (*entity.User, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			authLogger.Error().Err(err).Msgf("Error getting user by ID %d", id)
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) GetUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.users.GetUsers(ctx)
	if err != nil {
		authLogger.Error().Err(err).Msg("Error listing users")
		return nil, err
	}

	return users, nil
}
