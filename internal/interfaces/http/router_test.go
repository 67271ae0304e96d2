package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"tally/internal/infrastructure/config"
	"tally/internal/infrastructure/persistence/models"
	sharedConfig "tally/internal/shared/config"
	"tally/internal/shared/logger"
	"tally/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope mirrors utils.APIResponse with a raw payload.
type envelope struct {
	Success bool            `json:"success"`
	Payload json.RawMessage `json:"payload"`
	Message string          `json:"message"`
}

type profilePayload struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	CounterValue int    `json:"counterValue"`
}

func setupTestRouter(t *testing.T) *gin.Engine {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.UserModel{}, &models.SessionModel{}))

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Auth: sharedConfig.AuthConfig{
			Session: sharedConfig.SessionConfig{TTLSeconds: 3600},
			Cookie:  sharedConfig.CookieConfig{Path: "/", SameSite: "Lax"},
		},
	}

	quiet := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))

	router := NewRouter(cfg, db, quiet)
	router.SetupRoutes()
	return router.Engine()
}

// do sends a JSON request, attaching the session cookie when given.
func do(t *testing.T, engine *gin.Engine, method, path string, body interface{}, cookie *http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBytes)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return w, resp
}

func extractSessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == utils.SessionCookie && cookie.MaxAge >= 0 {
			return cookie
		}
	}
	return nil
}

func signup(t *testing.T, engine *gin.Engine, name, email, password string) *http.Cookie {
	t.Helper()
	w, resp := do(t, engine, http.MethodPost, "/api/signup", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	}, nil)
	require.True(t, resp.Success, "signup failed: %s", resp.Message)
	cookie := extractSessionCookie(w)
	require.NotNil(t, cookie)
	return cookie
}

func TestRouter_SignupFlow(t *testing.T) {
	engine := setupTestRouter(t)

	w, resp := do(t, engine, http.MethodPost, "/api/signup", gin.H{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret1",
	}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, resp.Success)

	var profile profilePayload
	require.NoError(t, json.Unmarshal(resp.Payload, &profile))
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "alice@example.com", profile.Email)
	assert.Equal(t, "user", profile.Role)
	assert.Equal(t, 0, profile.CounterValue)

	// Signup leaves the caller logged in.
	cookie := extractSessionCookie(w)
	require.NotNil(t, cookie)
	_, resp = do(t, engine, http.MethodGet, "/api/auth", nil, cookie)
	assert.True(t, resp.Success)

	// A second signup with the same email is refused.
	_, resp = do(t, engine, http.MethodPost, "/api/signup", gin.H{
		"name":     "Impostor",
		"email":    "alice@example.com",
		"password": "other1",
	}, nil)
	assert.False(t, resp.Success)
	assert.Equal(t, "this email address is already registered", resp.Message)
}

func TestRouter_LoginLogoutFlow(t *testing.T) {
	engine := setupTestRouter(t)
	signup(t, engine, "Alice", "alice@example.com", "secret1")

	// Wrong password is refused without detail.
	_, resp := do(t, engine, http.MethodPost, "/api/login", gin.H{
		"email":    "alice@example.com",
		"password": "wrong",
	}, nil)
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid email or password", resp.Message)

	// Correct credentials issue a fresh session.
	w, resp := do(t, engine, http.MethodPost, "/api/login", gin.H{
		"email":    "alice@example.com",
		"password": "secret1",
	}, nil)
	require.True(t, resp.Success)
	cookie := extractSessionCookie(w)
	require.NotNil(t, cookie)

	// The session answers /api/auth.
	_, resp = do(t, engine, http.MethodGet, "/api/auth", nil, cookie)
	require.True(t, resp.Success)
	assert.Equal(t, "authenticated", resp.Message)

	// Logout invalidates it.
	_, resp = do(t, engine, http.MethodPost, "/api/logout", nil, cookie)
	require.True(t, resp.Success)

	_, resp = do(t, engine, http.MethodGet, "/api/auth", nil, cookie)
	assert.False(t, resp.Success)
	assert.Equal(t, "not authenticated", resp.Message)

	// A repeated logout still succeeds.
	_, resp = do(t, engine, http.MethodPost, "/api/logout", nil, cookie)
	assert.True(t, resp.Success)
}

func TestRouter_SingleActiveSession(t *testing.T) {
	engine := setupTestRouter(t)
	firstCookie := signup(t, engine, "Alice", "alice@example.com", "secret1")

	// A second login supersedes the signup session.
	w, resp := do(t, engine, http.MethodPost, "/api/login", gin.H{
		"email":    "alice@example.com",
		"password": "secret1",
	}, nil)
	require.True(t, resp.Success)
	secondCookie := extractSessionCookie(w)
	require.NotNil(t, secondCookie)
	require.NotEqual(t, firstCookie.Value, secondCookie.Value)

	_, resp = do(t, engine, http.MethodGet, "/api/auth", nil, firstCookie)
	assert.False(t, resp.Success, "old session should be dead")

	_, resp = do(t, engine, http.MethodGet, "/api/auth", nil, secondCookie)
	assert.True(t, resp.Success)
}

func TestRouter_CounterFlow(t *testing.T) {
	engine := setupTestRouter(t)
	cookie := signup(t, engine, "Alice", "alice@example.com", "secret1")

	// Unauthenticated update is refused.
	_, resp := do(t, engine, http.MethodPost, "/api/counter", gin.H{"counterValue": 1}, nil)
	assert.False(t, resp.Success)
	assert.Contains(t, resp.Message, "authentication required")

	// Authenticated update round-trips the value.
	_, resp = do(t, engine, http.MethodPost, "/api/counter", gin.H{"counterValue": 42}, cookie)
	require.True(t, resp.Success)

	var profile profilePayload
	require.NoError(t, json.Unmarshal(resp.Payload, &profile))
	assert.Equal(t, 42, profile.CounterValue)

	// The stored value survives into the next profile read.
	_, resp = do(t, engine, http.MethodGet, "/api/auth", nil, cookie)
	require.True(t, resp.Success)
	require.NoError(t, json.Unmarshal(resp.Payload, &profile))
	assert.Equal(t, 42, profile.CounterValue)

	// Zero is accepted.
	_, resp = do(t, engine, http.MethodPost, "/api/counter", gin.H{"counterValue": 0}, cookie)
	require.True(t, resp.Success)
	require.NoError(t, json.Unmarshal(resp.Payload, &profile))
	assert.Equal(t, 0, profile.CounterValue)
}

func TestRouter_ChangePasswordFlow(t *testing.T) {
	engine := setupTestRouter(t)
	cookie := signup(t, engine, "Alice", "alice@example.com", "secret1")

	// Wrong current password is refused.
	_, resp := do(t, engine, http.MethodPost, "/api/change-password", gin.H{
		"currentPassword":    "wrong1",
		"newPassword":        "newsecret",
		"confirmNewPassword": "newsecret",
	}, cookie)
	assert.False(t, resp.Success)
	assert.Equal(t, "current password is incorrect", resp.Message)

	// Valid change succeeds and the session survives.
	_, resp = do(t, engine, http.MethodPost, "/api/change-password", gin.H{
		"currentPassword":    "secret1",
		"newPassword":        "newsecret",
		"confirmNewPassword": "newsecret",
	}, cookie)
	require.True(t, resp.Success)

	_, resp = do(t, engine, http.MethodGet, "/api/auth", nil, cookie)
	assert.True(t, resp.Success)

	// Old password no longer logs in; the new one does.
	_, resp = do(t, engine, http.MethodPost, "/api/login", gin.H{
		"email":    "alice@example.com",
		"password": "secret1",
	}, nil)
	assert.False(t, resp.Success)

	_, resp = do(t, engine, http.MethodPost, "/api/login", gin.H{
		"email":    "alice@example.com",
		"password": "newsecret",
	}, nil)
	assert.True(t, resp.Success)
}

func TestRouter_PasswordStrengthEndpoint(t *testing.T) {
	engine := setupTestRouter(t)

	// No session required.
	_, resp := do(t, engine, http.MethodPost, "/api/password-strength", gin.H{
		"password": "Abcdefg1!2345",
	}, nil)
	require.True(t, resp.Success)

	var payload struct {
		Score    int      `json:"score"`
		Level    string   `json:"level"`
		Feedback []string `json:"feedback"`
	}
	require.NoError(t, json.Unmarshal(resp.Payload, &payload))
	assert.Equal(t, 10, payload.Score)
	assert.Equal(t, "very strong", payload.Level)
	assert.Empty(t, payload.Feedback)
}

func TestRouter_UnknownEndpoint(t *testing.T) {
	engine := setupTestRouter(t)

	w, resp := do(t, engine, http.MethodGet, "/api/nope", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "endpoint not found", resp.Message)
}
