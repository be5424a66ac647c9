package wishlist

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gundex/core/internal/middleware"
	"github.com/gundex/core/internal/pkg/response"
)

// Handler handles wishlist HTTP requests. Every route requires auth and is
// scoped to the caller's own rows.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts wishlist routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	w := rg.Group("/wishlist", authMW)

	w.GET("", h.list)
	w.POST("", h.add)
	w.POST("/:id/delete", h.remove)
	w.DELETE("/:id", h.remove)
}

// list GET /wishlist
func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	resp := make([]wishlistResponse, len(items))
	for i, item := range items {
		resp[i] = toResponse(&item)
	}
	response.OK(c, resp)
}

// add POST /wishlist — repeat adds answer "exists" instead of erroring, so
// the client never has to track membership itself.
func (h *Handler) add(c *gin.Context) {
	var dto AddWishlistDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if strings.TrimSpace(dto.MountainID) == "" {
		response.ValidationFailed(c, []response.FieldError{
			{Field: "mountain_id", Message: "mountain_id is required"},
		})
		return
	}

	added, err := h.svc.Add(middleware.CurrentUserID(c), dto.MountainID)
	if err != nil {
		if errors.Is(err, errUnknownMountain) {
			response.NotFoundMsg(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	if !added {
		response.OK(c, gin.H{"status": "exists"})
		return
	}
	response.OK(c, gin.H{"status": "success"})
}

// remove POST /wishlist/:id/delete | DELETE /wishlist/:id
func (h *Handler) remove(c *gin.Context) {
	id := c.Param("id")
	removed, err := h.svc.Remove(middleware.CurrentUserID(c), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !removed {
		response.NotFoundMsg(c, "wishlist item not found")
		return
	}
	response.OK(c, gin.H{"status": "success", "id": id})
}
