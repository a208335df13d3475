package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"storefront/internal/cache"
	"storefront/internal/pkg/jwt"

	"gorm.io/gorm"
)

const refreshKeyPrefix = "refreshToken:"

func refreshKey(userID int64) string {
	return fmt.Sprintf("%s%d", refreshKeyPrefix, userID)
}

// TokenService mints, persists, and validates the access/refresh token
// pair for a user id. Access tokens are stateless; the refresh token is
// tracked in the token store so it can be checked and revoked.
type TokenService struct {
	users   UserRepositoryInterface
	store   cache.TokenStore
	access  *jwt.Signer
	refresh *jwt.Signer
}

func NewTokenService(users UserRepositoryInterface, store cache.TokenStore, access, refresh *jwt.Signer) *TokenService {
	return &TokenService{
		users:   users,
		store:   store,
		access:  access,
		refresh: refresh,
	}
}

// Issue signs a fresh access/refresh pair for the user. Pure
// generation: nothing is persisted here.
func (s *TokenService) Issue(ctx context.Context, userID int64) (accessToken, refreshToken string, err error) {
	if _, err = s.users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", ErrUserNotFound
		}
		return "", "", err
	}

	accessToken, err = s.access.Generate(userID)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = s.refresh.Generate(userID)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// Persist stores the refresh token as the single valid value for the
// user, expiring with the token itself. Overwrites any prior value, so
// only the most recently issued refresh token is accepted afterward.
func (s *TokenService) Persist(ctx context.Context, userID int64, refreshToken string) error {
	return s.store.Set(ctx, refreshKey(userID), refreshToken, s.refresh.TTL())
}

// RotateAccess verifies the presented refresh token against its
// signature, expiry, and the stored value, then mints a new access
// token. The refresh token itself is NOT rotated: it stays valid until
// its own expiry or logout.
func (s *TokenService) RotateAccess(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.refresh.Validate(refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	stored, err := s.store.Get(ctx, refreshKey(claims.UserID))
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return "", ErrInvalidToken
		}
		return "", err
	}
	if subtle.ConstantTimeCompare([]byte(stored), []byte(refreshToken)) != 1 {
		return "", ErrInvalidToken
	}

	return s.access.Generate(claims.UserID)
}

// DecodeRefresh verifies the token signature and expiry and returns
// its claims without consulting the store.
func (s *TokenService) DecodeRefresh(refreshToken string) (*jwt.Claims, error) {
	claims, err := s.refresh.Validate(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Revoke removes the stored refresh token, so refresh attempts fail
// until the next login.
func (s *TokenService) Revoke(ctx context.Context, userID int64) error {
	return s.store.Del(ctx, refreshKey(userID))
}
