package pagination

import (
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/gundex/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Mountain{}))
	return db
}

func seedMountains(t *testing.T, db *gorm.DB, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		m := models.Mountain{Name: "Peak", Province: "Province", Elevation: 1000 + i}
		require.NoError(t, db.Create(&m).Error)
	}
}

func testContext(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestWindowHasMore(t *testing.T) {
	db := setupDB(t)
	const total = 5
	seedMountains(t, db, total)

	for page := 1; page <= 4; page++ {
		for limit := 1; limit <= 3; limit++ {
			var rows []models.Mountain
			hasMore, err := Window(db.Model(&models.Mountain{}), Query{Page: page, Size: limit}, &rows)
			require.NoError(t, err)

			assert.Equal(t, page*limit < total, hasMore, "page=%d limit=%d", page, limit)

			want := total - (page-1)*limit
			if want < 0 {
				want = 0
			}
			if want > limit {
				want = limit
			}
			assert.Len(t, rows, want, "page=%d limit=%d", page, limit)
		}
	}
}

func TestWindowPastEnd(t *testing.T) {
	db := setupDB(t)
	seedMountains(t, db, 2)

	var rows []models.Mountain
	hasMore, err := Window(db.Model(&models.Mountain{}), Query{Page: 9, Size: 10}, &rows)
	require.NoError(t, err)
	assert.False(t, hasMore)
	assert.Empty(t, rows)
}

func TestStrictDefaults(t *testing.T) {
	q, err := Strict(testContext(t, ""), 6)
	require.NoError(t, err)
	assert.Equal(t, Query{Page: 1, Size: 6}, q)
}

func TestStrictRejectsNonPositive(t *testing.T) {
	for _, raw := range []string{"limit=0", "page=0", "limit=-3", "page=-1&limit=2", "limit=abc"} {
		_, err := Strict(testContext(t, raw), 6)
		assert.ErrorIs(t, err, ErrInvalidWindow, "query %q", raw)
	}
}

func TestStrictClampsOversizedLimit(t *testing.T) {
	q, err := Strict(testContext(t, "limit=5000"), 6)
	require.NoError(t, err)
	assert.Equal(t, MaxSize, q.Size)
}

func TestPaginateMetadata(t *testing.T) {
	db := setupDB(t)
	seedMountains(t, db, 7)

	var rows []models.Mountain
	pag, err := Paginate(db.Model(&models.Mountain{}), Query{Page: 2, Size: 3}, &rows)
	require.NoError(t, err)

	assert.Equal(t, int64(7), pag.Total)
	assert.Equal(t, 3, pag.TotalPage)
	assert.True(t, pag.HasNextPage)
	assert.Len(t, rows, 3)
}
