package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/domain"
	"storefront/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubUserGetter struct {
	users map[int64]*domain.User
}

func (s *stubUserGetter) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, errors.New("record not found")
}

func protectedRouter(signer *jwt.Signer, users UserGetter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Protect(signer, users))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64("user_id"),
			"role":    c.GetString("role"),
		})
	})
	return router
}

func TestProtect_ValidCookie(t *testing.T) {
	signer := jwt.New("test-secret-123", time.Hour)
	token, _ := signer.Generate(42)
	users := &stubUserGetter{users: map[int64]*domain.User{
		42: {ID: 42, Email: "a@x.com", Role: domain.RoleCustomer},
	}}

	router := protectedRouter(signer, users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "customer")
}

func TestProtect_BearerFallback(t *testing.T) {
	signer := jwt.New("test-secret-123", time.Hour)
	token, _ := signer.Generate(42)
	users := &stubUserGetter{users: map[int64]*domain.User{42: {ID: 42}}}

	router := protectedRouter(signer, users)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtect_NoToken(t *testing.T) {
	signer := jwt.New("secret", time.Hour)
	router := protectedRouter(signer, &stubUserGetter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no access token provided")
}

func TestProtect_InvalidToken(t *testing.T) {
	signer := jwt.New("right-secret", time.Hour)
	forged, _ := jwt.New("wrong-secret", time.Hour).Generate(42)
	router := protectedRouter(signer, &stubUserGetter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: forged})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid access token")
}

func TestProtect_UserGone(t *testing.T) {
	signer := jwt.New("secret", time.Hour)
	token, _ := signer.Generate(7)
	router := protectedRouter(signer, &stubUserGetter{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
