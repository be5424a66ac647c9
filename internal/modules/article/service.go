package article

import (
	"errors"
	"strings"

	"github.com/gundex/core/internal/database"
	"github.com/gundex/core/internal/models"
	"github.com/gundex/core/internal/pkg/pagination"
	"github.com/gundex/core/internal/pkg/response"
	"github.com/gundex/core/internal/pkg/sanitize"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Feed identifies one of the article orderings.
type Feed string

const (
	FeedLatest      Feed = "latest"
	FeedPopular     Feed = "popular"
	FeedHottest     Feed = "hottest"
	FeedRecommended Feed = "recommended"
)

type Service struct {
	db            *gorm.DB
	recommendSize int
}

func NewService(db *gorm.DB, recommendSize int) *Service {
	if recommendSize <= 0 {
		recommendSize = 4
	}
	return &Service{db: db, recommendSize: recommendSize}
}

// List returns a paginated latest-first feed.
func (s *Service) List(q pagination.Query) ([]models.Article, response.Pagination, error) {
	tx := s.db.Model(&models.Article{}).Order("created_at DESC")

	var articles []models.Article
	pag, err := pagination.Paginate(tx, q, &articles)
	return articles, pag, err
}

// FeedOf returns a fixed-size feed in the requested ordering. The
// recommended feed is an unseeded random sample, re-drawn on every call.
func (s *Service) FeedOf(feed Feed, limit int) ([]models.Article, error) {
	if limit <= 0 {
		limit = s.recommendSize
	}

	tx := s.db.Model(&models.Article{})
	switch feed {
	case FeedPopular:
		tx = tx.Order("view_count DESC, created_at DESC")
	case FeedHottest:
		tx = tx.Order("like_count DESC, created_at DESC")
	case FeedRecommended:
		tx = tx.Order(database.RandomOrderExpr(s.db)).Limit(s.recommendSize)
	default:
		tx = tx.Order("created_at DESC")
	}
	if feed != FeedRecommended {
		tx = tx.Limit(limit)
	}

	var articles []models.Article
	return articles, tx.Find(&articles).Error
}

// GetAndCountView fetches an article after atomically recording one view.
// The increment is an in-place expression, not read-modify-write, so
// concurrent detail hits never lose updates.
func (s *Service) GetAndCountView(id string) (*models.Article, error) {
	res := s.db.Model(&models.Article{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return s.GetByID(id)
}

// GetByID fetches a single article or nil when unknown.
func (s *Service) GetByID(id string) (*models.Article, error) {
	var a models.Article
	if err := s.db.First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// Create publishes an article with sanitized text fields.
func (s *Service) Create(dto *CreateArticleDTO) (*models.Article, error) {
	a := models.Article{
		Title:       sanitize.Text(dto.Title),
		Description: sanitize.Text(dto.Description),
		Image:       strings.TrimSpace(dto.Image),
	}
	if err := s.db.Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Update patches an article by ID.
func (s *Service) Update(id string, dto *UpdateArticleDTO) (*models.Article, error) {
	a, err := s.GetByID(id)
	if err != nil || a == nil {
		return a, err
	}

	updates := map[string]interface{}{}
	if dto.Title != nil {
		updates["title"] = sanitize.Text(*dto.Title)
	}
	if dto.Description != nil {
		updates["description"] = sanitize.Text(*dto.Description)
	}
	if dto.Image != nil {
		updates["image"] = strings.TrimSpace(*dto.Image)
	}

	if len(updates) == 0 {
		return a, nil
	}
	if err := s.db.Model(a).Updates(updates).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an article and its like rows. Reports whether a row was
// actually deleted so a second delete of the same id maps to not-found.
func (s *Service) Delete(id string) (bool, error) {
	deleted := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", id).Delete(&models.ArticleLike{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Article{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}

// ToggleLike atomically flips (user, article) like membership and keeps the
// counter column in step, all inside one transaction. Returns the new
// membership state and total. A nil article pointer result means the
// article does not exist.
func (s *Service) ToggleLike(userID, articleID string) (liked bool, total int, found bool, err error) {
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var a models.Article
		if err := tx.Select("id").First(&a, "id = ?", articleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		res := tx.Where("user_id = ? AND article_id = ?", userID, articleID).
			Delete(&models.ArticleLike{})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			liked = false
			if err := tx.Model(&models.Article{}).Where("id = ? AND like_count > 0", articleID).
				UpdateColumn("like_count", gorm.Expr("like_count - 1")).Error; err != nil {
				return err
			}
		} else {
			// The unique pair index makes the concurrent double-insert a
			// no-op instead of an error.
			ins := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.ArticleLike{UserID: userID, ArticleID: articleID})
			if ins.Error != nil {
				return ins.Error
			}
			liked = true
			if ins.RowsAffected > 0 {
				if err := tx.Model(&models.Article{}).Where("id = ?", articleID).
					UpdateColumn("like_count", gorm.Expr("like_count + 1")).Error; err != nil {
					return err
				}
			}
		}

		var refreshed models.Article
		if err := tx.Select("like_count").First(&refreshed, "id = ?", articleID).Error; err != nil {
			return err
		}
		total = refreshed.LikeCount
		return nil
	})
	return liked, total, found, err
}
