package article

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gundex/core/internal/middleware"
	"github.com/gundex/core/internal/pkg/pagination"
	"github.com/gundex/core/internal/pkg/response"
)

const defaultFeedLimit = 6

// Handler handles article HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts article routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	a := rg.Group("/articles")

	a.GET("", h.list)
	a.GET("/popular", h.feed(FeedPopular))
	a.GET("/hottest", h.feed(FeedHottest))
	a.GET("/recommended", h.feed(FeedRecommended))
	a.GET("/:id", h.get)

	a.POST("/:id/like", authMW, h.like)

	admin := a.Group("", authMW, middleware.RequireAdmin())
	admin.POST("", h.create)
	admin.POST("/:id", middleware.RequireAJAX(), h.update)
	admin.PUT("/:id", middleware.RequireAJAX(), h.update)
	admin.POST("/:id/delete", h.delete)
	admin.DELETE("/:id", h.delete)
}

// list GET /articles
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)

	articles, pag, err := h.svc.List(q)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	items := make([]articleResponse, len(articles))
	for i, a := range articles {
		items[i] = toResponse(&a)
	}
	response.Paged(c, items, pag)
}

// feed GET /articles/{popular,hottest,recommended}
func (h *Handler) feed(feed Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		q, err := pagination.Strict(c, defaultFeedLimit)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		articles, err := h.svc.FeedOf(feed, q.Size)
		if err != nil {
			response.InternalError(c, err)
			return
		}

		items := make([]articleResponse, len(articles))
		for i, a := range articles {
			items[i] = toResponse(&a)
		}
		response.OK(c, items)
	}
}

// get GET /articles/:id — a detail read is also one view.
func (h *Handler) get(c *gin.Context) {
	a, err := h.svc.GetAndCountView(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFoundMsg(c, "article not found")
		return
	}
	response.OK(c, toDetailResponse(a))
}

// like POST /articles/:id/like  [auth]
func (h *Handler) like(c *gin.Context) {
	liked, total, found, err := h.svc.ToggleLike(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !found {
		response.NotFoundMsg(c, "article not found")
		return
	}
	response.OK(c, gin.H{"liked": liked, "total_likes": total})
}

// create POST /articles  [admin]
func (h *Handler) create(c *gin.Context) {
	var dto CreateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if fields := validateArticle(dto.Title, dto.Description); len(fields) > 0 {
		response.ValidationFailed(c, fields)
		return
	}

	a, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{
		"status":  "success",
		"message": "article created",
		"id":      a.ID,
		"data":    toResponse(a),
	})
}

// update POST|PUT /articles/:id  [admin, AJAX only]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var fields []response.FieldError
	if dto.Title != nil && strings.TrimSpace(*dto.Title) == "" {
		fields = append(fields, response.FieldError{Field: "title", Message: "title is required"})
	}
	if dto.Description != nil && strings.TrimSpace(*dto.Description) == "" {
		fields = append(fields, response.FieldError{Field: "description", Message: "description is required"})
	}
	if len(fields) > 0 {
		response.ValidationFailed(c, fields)
		return
	}

	a, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if a == nil {
		response.NotFoundMsg(c, "article not found")
		return
	}
	response.OK(c, gin.H{
		"status":  "success",
		"message": "article updated",
		"data":    toResponse(a),
	})
}

// delete POST /articles/:id/delete | DELETE /articles/:id  [admin]
func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.svc.Delete(id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFoundMsg(c, "article not found")
		return
	}
	response.OK(c, gin.H{"status": "success", "id": id})
}

func validateArticle(title, description string) []response.FieldError {
	var fields []response.FieldError
	if strings.TrimSpace(title) == "" {
		fields = append(fields, response.FieldError{Field: "title", Message: "title is required"})
	}
	if strings.TrimSpace(description) == "" {
		fields = append(fields, response.FieldError{Field: "description", Message: "description is required"})
	}
	return fields
}
