package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/gundex/core/internal/middleware"
	jwtpkg "github.com/gundex/core/internal/pkg/jwt"
	"github.com/gundex/core/internal/pkg/response"
)

// Handler handles authentication HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

// RegisterRoutes mounts auth routes onto the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	a := rg.Group("/auth")

	a.POST("/register", h.register)
	a.POST("/login", h.login)
	a.GET("/session", middleware.OptionalAuth(), h.session)
}

// register POST /auth/register
func (h *Handler) register(c *gin.Context) {
	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.svc.Register(&dto)
	if err != nil {
		switch {
		case errors.Is(err, errPasswordMismatch), errors.Is(err, errUsernameEmpty):
			response.BadRequest(c, err.Error())
		case errors.Is(err, errUsernameTaken):
			response.Conflict(c, "username already taken")
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Created(c, gin.H{
		"status":   "success",
		"message":  "account created",
		"id":       u.ID,
		"username": u.Username,
	})
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.svc.Login(dto.Username, dto.Password)
	if err != nil {
		if errors.Is(err, errUserNotFound) || errors.Is(err, errWrongPassword) {
			response.ForbiddenMsg(c, "invalid username or password")
			return
		}
		response.InternalError(c, err)
		return
	}

	token, err := jwtpkg.Sign(u.ID, u.IsAdmin, sessionTTL)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.OK(c, loginResponse{Token: token})
}

// session GET /auth/session  [optional auth]
func (h *Handler) session(c *gin.Context) {
	if !middleware.IsAuthenticated(c) {
		response.OK(c, nil)
		return
	}

	u, err := h.svc.GetByID(middleware.CurrentUserID(c))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if u == nil {
		response.OK(c, nil)
		return
	}
	response.OK(c, sessionResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Bio:      u.Bio,
		IsAdmin:  u.IsAdmin,
	})
}
