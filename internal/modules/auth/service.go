package auth

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains the signup/login/logout/refresh business logic.
type Service struct {
	users  UserRepositoryInterface
	tokens *TokenService
}

func NewService(users UserRepositoryInterface, tokens *TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

func (s *Service) Tokens() *TokenService { return s.tokens }

// Signup creates the user and establishes a session. Token issuance or
// persistence failures fail the whole call: no tokens leave this
// function unless the refresh token is already stored.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*domain.User, *TokenPair, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user := &domain.User{
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := s.establishSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	user.PasswordHash = ""
	return user, pair, nil
}

// Login verifies credentials and establishes a session. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, *TokenPair, error) {
	if strings.TrimSpace(req.Email) == "" {
		return nil, nil, ErrMissingEmail
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.establishSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	user.PasswordHash = ""
	return user, pair, nil
}

// Logout decodes the refresh token for its user id and drops the
// stored value. An already-revoked token is not an error.
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.DecodeRefresh(refreshToken)
	if err != nil {
		return err
	}
	return s.tokens.Revoke(ctx, claims.UserID)
}

// RotateAccess mints a new access token against a still-valid refresh
// token. See TokenService.RotateAccess for the rules.
func (s *Service) RotateAccess(ctx context.Context, refreshToken string) (string, error) {
	return s.tokens.RotateAccess(ctx, refreshToken)
}

func (s *Service) CurrentUser(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

func (s *Service) establishSession(ctx context.Context, userID int64) (*TokenPair, error) {
	access, refresh, err := s.tokens.Issue(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.Persist(ctx, userID, refresh); err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
