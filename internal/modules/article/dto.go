package article

import (
	"time"

	"github.com/gundex/core/internal/models"
	"github.com/gundex/core/internal/pkg/markdown"
)

// CreateArticleDTO is the request body for publishing an article.
type CreateArticleDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// UpdateArticleDTO is the request body for editing an article (all fields
// optional).
type UpdateArticleDTO struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// articleResponse is the feed/detail projection.
type articleResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	HTML        string    `json:"html,omitempty"`
	Image       string    `json:"image"`
	Views       int       `json:"views"`
	TotalLikes  int       `json:"total_likes"`
	Created     time.Time `json:"created_at"`
	Modified    time.Time `json:"updated_at"`
}

func toResponse(a *models.Article) articleResponse {
	return articleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Image:       a.Image,
		Views:       a.ViewCount,
		TotalLikes:  a.LikeCount,
		Created:     a.CreatedAt,
		Modified:    a.UpdatedAt,
	}
}

// toDetailResponse adds the rendered HTML fragment AJAX consumers embed
// directly.
func toDetailResponse(a *models.Article) articleResponse {
	resp := toResponse(a)
	resp.HTML = markdown.Render(a.Description)
	return resp
}
