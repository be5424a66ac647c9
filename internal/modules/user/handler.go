package user

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gundex/core/internal/middleware"
	"github.com/gundex/core/internal/pkg/response"
)

// UpdateProfileDTO is the request body for editing one's own profile.
type UpdateProfileDTO struct {
	Username *string `json:"username"`
	Bio      *string `json:"bio"`
}

type profileResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Bio      string `json:"bio"`
	IsAdmin  bool   `json:"is_admin"`
}

// Handler handles profile HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts profile routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	u := rg.Group("/user", authMW)

	u.GET("", h.me)
	u.POST("", h.update)
	u.PATCH("", h.update)
}

// me GET /user  [auth]
func (h *Handler) me(c *gin.Context) {
	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}
	response.OK(c, profileResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Bio:      u.Bio,
		IsAdmin:  u.IsAdmin,
	})
}

// update POST|PATCH /user  [auth]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateProfileDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.svc.UpdateProfile(middleware.CurrentUserID(c), &dto)
	if err != nil {
		if errors.Is(err, errUsernameTaken) {
			response.Conflict(c, "username already taken")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}
	if u == nil {
		response.NotFound(c)
		return
	}

	response.OK(c, gin.H{
		"status":  "success",
		"message": "profile updated",
		"data": profileResponse{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
			Bio:      u.Bio,
			IsAdmin:  u.IsAdmin,
		},
	})
}
