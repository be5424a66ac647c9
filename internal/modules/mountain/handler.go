package mountain

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gundex/core/internal/middleware"
	"github.com/gundex/core/internal/pkg/pagination"
	"github.com/gundex/core/internal/pkg/response"
)

const defaultCatalogueLimit = 6

// Handler handles mountain catalogue HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts mountain routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	m := rg.Group("/mountains")

	m.GET("", h.list)
	m.GET("/:id", h.get)

	admin := m.Group("", authMW, middleware.RequireAdmin())
	admin.POST("", h.create)
	admin.POST("/:id", middleware.RequireAJAX(), h.update)
	admin.PUT("/:id", middleware.RequireAJAX(), h.update)
	admin.POST("/:id/delete", h.delete)
	admin.DELETE("/:id", h.delete)
}

// list GET /mountains
func (h *Handler) list(c *gin.Context) {
	q, err := pagination.Strict(c, defaultCatalogueLimit)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var lq ListQuery
	if err := c.ShouldBindQuery(&lq); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	mountains, hasMore, err := h.svc.List(q, lq.Q)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	results := make([]mountainResponse, len(mountains))
	for i, m := range mountains {
		results[i] = toResponse(&m)
	}
	response.Window(c, results, hasMore)
}

// get GET /mountains/:id
func (h *Handler) get(c *gin.Context) {
	m, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "mountain not found")
		return
	}
	response.OK(c, toResponse(m))
}

// create POST /mountains  [admin]
func (h *Handler) create(c *gin.Context) {
	var dto CreateMountainDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if fields := validateMountain(dto.Name, dto.Province, dto.Elevation); len(fields) > 0 {
		response.ValidationFailed(c, fields)
		return
	}

	m, err := h.svc.Create(&dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{
		"status":  "success",
		"message": "mountain created",
		"id":      m.ID,
		"data":    toResponse(m),
	})
}

// update POST|PUT /mountains/:id  [admin, AJAX only]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateMountainDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var fields []response.FieldError
	if dto.Name != nil && strings.TrimSpace(*dto.Name) == "" {
		fields = append(fields, response.FieldError{Field: "name", Message: "name is required"})
	}
	if dto.Province != nil && strings.TrimSpace(*dto.Province) == "" {
		fields = append(fields, response.FieldError{Field: "province", Message: "province is required"})
	}
	if dto.Elevation != nil && *dto.Elevation < 0 {
		fields = append(fields, response.FieldError{Field: "elevation", Message: "elevation must not be negative"})
	}
	if len(fields) > 0 {
		response.ValidationFailed(c, fields)
		return
	}

	m, err := h.svc.Update(c.Param("id"), &dto)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if m == nil {
		response.NotFoundMsg(c, "mountain not found")
		return
	}
	response.OK(c, gin.H{
		"status":  "success",
		"message": "mountain updated",
		"data":    toResponse(m),
	})
}

// delete POST /mountains/:id/delete | DELETE /mountains/:id  [admin]
func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.svc.Delete(id)
	if err != nil {
		if errors.Is(err, errMountainInUse) {
			response.Conflict(c, "mountain cannot be deleted while hike logs reference it")
			return
		}
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFoundMsg(c, "mountain not found")
		return
	}
	response.OK(c, gin.H{"status": "success", "id": id})
}

func validateMountain(name, province string, elevation int) []response.FieldError {
	var fields []response.FieldError
	if strings.TrimSpace(name) == "" {
		fields = append(fields, response.FieldError{Field: "name", Message: "name is required"})
	}
	if strings.TrimSpace(province) == "" {
		fields = append(fields, response.FieldError{Field: "province", Message: "province is required"})
	}
	if elevation < 0 {
		fields = append(fields, response.FieldError{Field: "elevation", Message: "elevation must not be negative"})
	}
	return fields
}
