package pagination

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gundex/core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	DefaultPage = 1
	DefaultSize = 10
	MaxSize     = 100
)

// ErrInvalidWindow is returned when page or limit is not a positive integer.
var ErrInvalidWindow = errors.New("page and limit must be positive")

// Query holds parsed pagination parameters.
type Query struct {
	Page int
	Size int
}

// FromContext extracts pagination params from the request, clamping them to
// sane values. Used by feeds where a sloppy param should not be an error.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	size := parseIntOr(c.DefaultQuery("size", "10"), DefaultSize)

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	return Query{Page: page, Size: size}
}

// Strict parses page and limit without clamping: zero or negative values are
// rejected so they never reach a SQL OFFSET/LIMIT.
func Strict(c *gin.Context, defaultLimit int) (Query, error) {
	page := parseIntOr(c.DefaultQuery("page", "1"), 0)
	size := parseIntOr(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)), 0)

	if page < 1 || size < 1 {
		return Query{}, ErrInvalidWindow
	}
	if size > MaxSize {
		size = MaxSize
	}
	return Query{Page: page, Size: size}, nil
}

// Paginate applies limit/offset to a GORM query and returns the pagination
// metadata used by feed endpoints.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}

	offset := (q.Page - 1) * q.Size
	if err := db.Offset(offset).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	totalPage := int((total + int64(q.Size) - 1) / int64(q.Size))

	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   totalPage,
		Size:        q.Size,
		HasNextPage: q.Page < totalPage,
	}, nil
}

// Window fetches the slice [(page-1)*size, page*size) and reports whether
// rows remain past it: has_more iff page*size < total at query time. The
// count and the slice are not snapshot-consistent under concurrent writes.
func Window[T any](db *gorm.DB, q Query, dest *[]T) (bool, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return false, err
	}

	offset := (q.Page - 1) * q.Size
	if err := db.Offset(offset).Limit(q.Size).Find(dest).Error; err != nil {
		return false, err
	}

	return int64(q.Page)*int64(q.Size) < total, nil
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
