package hikelog

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gundex/core/internal/middleware"
	"github.com/gundex/core/internal/pkg/response"
	"github.com/gundex/core/internal/pkg/sanitize"
)

// Handler handles hike log HTTP requests. Every route requires auth and is
// scoped to the caller's own rows.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts hike log routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	l := rg.Group("/hike-logs", authMW)

	l.GET("", h.list)
	l.GET("/:id", h.get)
	l.POST("", h.create)
	l.POST("/:id", middleware.RequireAJAX(), h.update)
	l.PUT("/:id", middleware.RequireAJAX(), h.update)
	l.POST("/:id/delete", h.delete)
	l.DELETE("/:id", h.delete)
}

// list GET /hike-logs
func (h *Handler) list(c *gin.Context) {
	logs, err := h.svc.List(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}

	items := make([]hikeLogResponse, len(logs))
	for i, l := range logs {
		items[i] = toResponse(&l)
	}
	response.OK(c, items)
}

// get GET /hike-logs/:id
func (h *Handler) get(c *gin.Context) {
	l, err := h.svc.GetByID(middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if l == nil {
		response.NotFoundMsg(c, "hike log not found")
		return
	}
	response.OK(c, toResponse(l))
}

// create POST /hike-logs
func (h *Handler) create(c *gin.Context) {
	var dto CreateHikeLogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	fields, start, end := validateCreate(&dto)
	if len(fields) > 0 {
		response.ValidationFailed(c, fields)
		return
	}

	l, err := h.svc.Create(middleware.CurrentUserID(c), &dto, start, end)
	if err != nil {
		switch {
		case errors.Is(err, errDuplicateTrip):
			response.Conflict(c, err.Error())
		case errors.Is(err, errUnknownMountain):
			response.NotFoundMsg(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, gin.H{
		"status":  "success",
		"message": "hike log created",
		"id":      l.ID,
		"data":    toResponse(l),
	})
}

// update POST|PUT /hike-logs/:id  [AJAX only]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateHikeLogDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	fields, updates := validateUpdate(&dto)
	if len(fields) > 0 {
		response.ValidationFailed(c, fields)
		return
	}

	l, err := h.svc.Update(middleware.CurrentUserID(c), c.Param("id"), updates)
	if err != nil {
		switch {
		case errors.Is(err, errDuplicateTrip):
			response.Conflict(c, err.Error())
		case errors.Is(err, errDateOrder):
			response.ValidationFailed(c, []response.FieldError{
				{Field: "end_date", Message: errDateOrder.Error()},
			})
		case errors.Is(err, errUnknownMountain):
			response.NotFoundMsg(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	if l == nil {
		response.NotFoundMsg(c, "hike log not found")
		return
	}
	response.OK(c, gin.H{
		"status":  "success",
		"message": "hike log updated",
		"data":    toResponse(l),
	})
}

// delete POST /hike-logs/:id/delete | DELETE /hike-logs/:id
func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.svc.Delete(middleware.CurrentUserID(c), id)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if !deleted {
		response.NotFoundMsg(c, "hike log not found")
		return
	}
	response.OK(c, gin.H{"status": "success", "id": id})
}

func validateCreate(dto *CreateHikeLogDTO) (fields []response.FieldError, start time.Time, end *time.Time) {
	if strings.TrimSpace(dto.MountainID) == "" {
		fields = append(fields, response.FieldError{Field: "mountain_id", Message: "mountain_id is required"})
	}

	if strings.TrimSpace(dto.StartDate) == "" {
		fields = append(fields, response.FieldError{Field: "start_date", Message: "start_date is required"})
	} else {
		var err error
		start, err = time.Parse(dateLayout, dto.StartDate)
		if err != nil {
			fields = append(fields, response.FieldError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		}
	}

	if strings.TrimSpace(dto.EndDate) != "" {
		t, err := time.Parse(dateLayout, dto.EndDate)
		if err != nil {
			fields = append(fields, response.FieldError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
		} else if !start.IsZero() && t.Before(start) {
			fields = append(fields, response.FieldError{Field: "end_date", Message: "end_date must not be before start_date"})
		} else {
			end = &t
		}
	}

	if dto.TeamSize != nil && *dto.TeamSize < 1 {
		fields = append(fields, response.FieldError{Field: "team_size", Message: "team_size must be at least 1"})
	}
	if dto.Rating != nil && (*dto.Rating < 1 || *dto.Rating > 5) {
		fields = append(fields, response.FieldError{Field: "rating", Message: "rating must be between 1 and 5"})
	}
	return fields, start, end
}

func validateUpdate(dto *UpdateHikeLogDTO) (fields []response.FieldError, updates map[string]interface{}) {
	updates = map[string]interface{}{}

	if dto.MountainID != nil {
		if strings.TrimSpace(*dto.MountainID) == "" {
			fields = append(fields, response.FieldError{Field: "mountain_id", Message: "mountain_id is required"})
		} else {
			updates["mountain_id"] = *dto.MountainID
		}
	}

	var start time.Time
	if dto.StartDate != nil {
		t, err := time.Parse(dateLayout, *dto.StartDate)
		if err != nil {
			fields = append(fields, response.FieldError{Field: "start_date", Message: "start_date must be YYYY-MM-DD"})
		} else {
			start = t
			updates["start_date"] = t
		}
	}

	if dto.EndDate != nil {
		if strings.TrimSpace(*dto.EndDate) == "" {
			updates["end_date"] = nil
		} else {
			t, err := time.Parse(dateLayout, *dto.EndDate)
			if err != nil {
				fields = append(fields, response.FieldError{Field: "end_date", Message: "end_date must be YYYY-MM-DD"})
			} else if !start.IsZero() && t.Before(start) {
				fields = append(fields, response.FieldError{Field: "end_date", Message: "end_date must not be before start_date"})
			} else {
				updates["end_date"] = t
			}
		}
	}

	if dto.Notes != nil {
		updates["notes"] = sanitize.Text(*dto.Notes)
	}
	if dto.SummitReached != nil {
		updates["summit_reached"] = *dto.SummitReached
	}
	if dto.TeamSize != nil {
		if *dto.TeamSize < 1 {
			fields = append(fields, response.FieldError{Field: "team_size", Message: "team_size must be at least 1"})
		} else {
			updates["team_size"] = *dto.TeamSize
		}
	}
	if dto.Rating != nil {
		if *dto.Rating < 1 || *dto.Rating > 5 {
			fields = append(fields, response.FieldError{Field: "rating", Message: "rating must be between 1 and 5"})
		} else {
			updates["rating"] = *dto.Rating
		}
	}
	return fields, updates
}
