package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/gundex/core/internal/database"
	"github.com/gundex/core/internal/middleware"
	"github.com/gundex/core/internal/models"
	"github.com/gundex/core/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	r := gin.New()
	r.HandleMethodNotAllowed = true
	api := r.Group("/api/v1", middleware.OptionalAuth())
	NewHandler(NewService(db)).RegisterRoutes(api)
	return r, db
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rdr = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func registerPayload(username string) gin.H {
	return gin.H{
		"username":         username,
		"email":            username + "@example.com",
		"password":         "s3cret-pass",
		"confirm_password": "s3cret-pass",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	r, db := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", registerPayload("edelweiss"), nil)
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "edelweiss", body["username"])

	// Password is stored hashed, never verbatim.
	var u models.UserAccount
	require.NoError(t, db.First(&u, "username = ?", "edelweiss").Error)
	assert.NotEqual(t, "s3cret-pass", u.Password)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "edelweiss", "password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	token := decodeBody(t, w)["token"].(string)
	claims, err := jwt.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", registerPayload("edelweiss"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "edelweiss", "password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	// The message must not reveal which credential was wrong.
	assert.Equal(t, "invalid username or password", decodeBody(t, w)["message"])
}

func TestRegisterPasswordMismatch(t *testing.T) {
	r, _ := setupTest(t)

	payload := registerPayload("edelweiss")
	payload["confirm_password"] = "different"

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", payload, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r, db := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", registerPayload("edelweiss"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/register", registerPayload("edelweiss"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.UserAccount{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegisterSanitizesUsername(t *testing.T) {
	r, db := setupTest(t)

	payload := registerPayload("x")
	payload["username"] = "<script>alert(1)</script>trailrunner"
	payload["bio"] = "<img src=x onerror=alert(1)>weekend hiker"

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var u models.UserAccount
	require.NoError(t, db.First(&u, "username = ?", "trailrunner").Error)
	assert.Equal(t, "weekend hiker", u.Bio)
}

func TestRegisterAsAdminCarriesCapability(t *testing.T) {
	r, _ := setupTest(t)

	payload := registerPayload("gatekeeper")
	payload["register_as_admin"] = true

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "gatekeeper", "password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	claims, err := jwt.Parse(decodeBody(t, w)["token"].(string))
	require.NoError(t, err)
	assert.True(t, claims.IsAdmin)
}

func TestSessionEndpoint(t *testing.T) {
	r, _ := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", registerPayload("edelweiss"), nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{
		"username": "edelweiss", "password": "s3cret-pass",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	token := decodeBody(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/session", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "edelweiss", decodeBody(t, w)["username"])

	// Anonymous session probe is a 200 with an empty body, not an error.
	w = doJSON(t, r, http.MethodGet, "/api/v1/auth/session", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
