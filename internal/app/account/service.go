package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/apoorvrathore077/high-stake-dice-backend/internal/auth"
	"github.com/apoorvrathore077/high-stake-dice-backend/internal/store"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Store is the user persistence surface the service needs.
type Store interface {
	CreateUser(ctx context.Context, p store.CreateUserParams) (store.User, error)
	GetUserByID(ctx context.Context, id string) (store.User, error)
	GetUserByEmail(ctx context.Context, email string) (store.User, error)
}

type Service struct {
	store          Store
	tokens         *auth.TokenService
	initialBalance int64
}

func NewService(st Store, tokens *auth.TokenService, initialBalance int64) *Service {
	return &Service{store: st, tokens: tokens, initialBalance: initialBalance}
}

func (s *Service) Signup(ctx context.Context, username, email, password string) (*SignupResponse, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.store.CreateUser(ctx, store.CreateUserParams{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Balance:      s.initialBalance,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailTaken):
			return nil, ErrEmailTaken
		case errors.Is(err, store.ErrUsernameTaken):
			return nil, ErrUsernameTaken
		default:
			return nil, fmt.Errorf("create user: %w", err)
		}
	}

	log.Info().Str("user_id", u.ID).Str("username", u.Username).Msg("user registered")
	return &SignupResponse{ID: u.ID, Username: u.Username, Email: u.Email}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}

	u, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// same error as a bad password, nothing about account
			// existence leaks
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(u.ID, u.Username)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &LoginResponse{
		Token: token,
		User: Profile{
			ID:        u.ID,
			Username:  u.Username,
			Email:     u.Email,
			Balance:   u.Balance,
			CreatedAt: u.CreatedAt,
		},
	}, nil
}

func (s *Service) Profile(ctx context.Context, userID string) (*Profile, error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}
	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return &Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Balance:   u.Balance,
		CreatedAt: u.CreatedAt,
	}, nil
}
