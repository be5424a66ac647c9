package wishlist

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

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
	NewHandler(NewService(db)).RegisterRoutes(api, middleware.Auth())
	return r, db
}

func createUser(t *testing.T, db *gorm.DB, username string) *models.UserAccount {
	t.Helper()
	u := models.UserAccount{Username: username, Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func createMountain(t *testing.T, db *gorm.DB, name string) *models.Mountain {
	t.Helper()
	m := models.Mountain{Name: name, Province: "West Java", Elevation: 2500}
	require.NoError(t, db.Create(&m).Error)
	return &m
}

func bearerFor(t *testing.T, u *models.UserAccount) string {
	t.Helper()
	token, err := jwt.Sign(u.ID, u.IsAdmin, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
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

func TestAddThenExists(t *testing.T) {
	r, db := setupTest(t)
	u := createUser(t, db, "hiker")
	m := createMountain(t, db, "Gede")
	hdr := map[string]string{"Authorization": bearerFor(t, u)}
	payload := gin.H{"mountain_id": m.ID}

	w := doJSON(t, r, http.MethodPost, "/api/v1/wishlist", payload, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", decodeBody(t, w)["status"])

	w = doJSON(t, r, http.MethodPost, "/api/v1/wishlist", payload, hdr)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "exists", decodeBody(t, w)["status"])

	var count int64
	require.NoError(t, db.Model(&models.WishlistItem{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddUnknownMountain(t *testing.T) {
	r, db := setupTest(t)
	u := createUser(t, db, "hiker")

	w := doJSON(t, r, http.MethodPost, "/api/v1/wishlist", gin.H{"mountain_id": "nope"}, map[string]string{
		"Authorization": bearerFor(t, u),
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddValidation(t *testing.T) {
	r, db := setupTest(t)
	u := createUser(t, db, "hiker")

	w := doJSON(t, r, http.MethodPost, "/api/v1/wishlist", gin.H{"mountain_id": " "}, map[string]string{
		"Authorization": bearerFor(t, u),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListShowsMountainDetails(t *testing.T) {
	r, db := setupTest(t)
	u := createUser(t, db, "hiker")
	m := createMountain(t, db, "Gede")
	hdr := map[string]string{"Authorization": bearerFor(t, u)}

	w := doJSON(t, r, http.MethodPost, "/api/v1/wishlist", gin.H{"mountain_id": m.ID}, hdr)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/wishlist", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)

	items := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "Gede", item["name"])
	assert.Equal(t, m.ID, item["mountain_id"])
}

func TestListScopedToOwner(t *testing.T) {
	r, db := setupTest(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	m := createMountain(t, db, "Gede")

	w := doJSON(t, r, http.MethodPost, "/api/v1/wishlist", gin.H{"mountain_id": m.ID}, map[string]string{
		"Authorization": bearerFor(t, alice),
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/v1/wishlist", nil, map[string]string{
		"Authorization": bearerFor(t, bob),
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["data"])
}

func TestRemoveTwice(t *testing.T) {
	r, db := setupTest(t)
	u := createUser(t, db, "hiker")
	m := createMountain(t, db, "Gede")
	hdr := map[string]string{"Authorization": bearerFor(t, u)}

	w := doJSON(t, r, http.MethodPost, "/api/v1/wishlist", gin.H{"mountain_id": m.ID}, hdr)
	require.Equal(t, http.StatusOK, w.Code)

	var item models.WishlistItem
	require.NoError(t, db.First(&item, "user_id = ?", u.ID).Error)

	w = doJSON(t, r, http.MethodPost, "/api/v1/wishlist/"+item.ID+"/delete", nil, hdr)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/v1/wishlist/"+item.ID+"/delete", nil, hdr)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoutesRequireAuth(t *testing.T) {
	r, _ := setupTest(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/wishlist", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
