package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beacon-cms/beacon/internal/infrastructure/auth"
	sharedConfig "github.com/beacon-cms/beacon/internal/shared/config"
)

func newAuthTestRouter(t *testing.T, adminCfg sharedConfig.AdminConfig) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtSvc := auth.NewJWTService("test-secret", 60)
	hasher := auth.NewBcryptPasswordHasher(4)
	handler := NewAuthHandler(jwtSvc, hasher, adminCfg)

	router := gin.New()
	router.POST("/api/admin/auth/login", handler.Login)
	return router
}

func adminConfigWithPassword(t *testing.T, email, password string) sharedConfig.AdminConfig {
	t.Helper()
	hash, err := auth.NewBcryptPasswordHasher(4).Hash(password)
	require.NoError(t, err)
	return sharedConfig.AdminConfig{Email: email, PasswordHash: hash, BcryptCost: 4}
}

func postLogin(router *gin.Engine, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_Login_Success(t *testing.T) {
	cfg := adminConfigWithPassword(t, "admin@example.com", "correct-horse")
	router := newAuthTestRouter(t, cfg)

	w := postLogin(router, gin.H{"email": "admin@example.com", "password": "correct-horse"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			ExpiresIn   int64  `json:"expires_in"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.AccessToken)
	assert.Equal(t, "Bearer", resp.Data.TokenType)
	assert.Equal(t, int64(3600), resp.Data.ExpiresIn)

	// token round-trips through the verifier
	claims, err := auth.NewJWTService("test-secret", 60).Verify(resp.Data.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	cfg := adminConfigWithPassword(t, "admin@example.com", "correct-horse")
	router := newAuthTestRouter(t, cfg)

	w := postLogin(router, gin.H{"email": "admin@example.com", "password": "battery-staple"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_WrongEmail(t *testing.T) {
	cfg := adminConfigWithPassword(t, "admin@example.com", "correct-horse")
	router := newAuthTestRouter(t, cfg)

	w := postLogin(router, gin.H{"email": "intruder@example.com", "password": "correct-horse"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_UnconfiguredAdmin(t *testing.T) {
	router := newAuthTestRouter(t, sharedConfig.AdminConfig{})

	w := postLogin(router, gin.H{"email": "admin@example.com", "password": "anything"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_InvalidBody(t *testing.T) {
	cfg := adminConfigWithPassword(t, "admin@example.com", "correct-horse")
	router := newAuthTestRouter(t, cfg)

	w := postLogin(router, gin.H{"email": "not-an-email", "password": "x"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
