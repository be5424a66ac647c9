package app

import (
	"github.com/gin-gonic/gin"
	"github.com/gundex/core/internal/middleware"
	"github.com/gundex/core/internal/modules/article"
	"github.com/gundex/core/internal/modules/auth"
	"github.com/gundex/core/internal/modules/hikelog"
	"github.com/gundex/core/internal/modules/mountain"
	"github.com/gundex/core/internal/modules/user"
	"github.com/gundex/core/internal/modules/wishlist"
	pkgredis "github.com/gundex/core/internal/pkg/redis"
	"github.com/gundex/core/internal/pkg/response"
)

func (a *App) registerRoutes(rc *pkgredis.Client) {
	r := a.router
	db := a.db
	authMW := middleware.Auth()

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	r.GET("/healthz", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1", middleware.OptionalAuth())
	if rc != nil {
		api.Use(middleware.RateLimit(rc.Raw()))
		api.Use(middleware.Idempotence(rc.Raw()))
	}

	auth.NewHandler(auth.NewService(db)).RegisterRoutes(api)
	user.NewHandler(user.NewService(db)).RegisterRoutes(api, authMW)
	mountain.NewHandler(mountain.NewService(db)).RegisterRoutes(api, authMW)
	article.NewHandler(article.NewService(db, a.cfg.RecommendSize)).RegisterRoutes(api, authMW)
	hikelog.NewHandler(hikelog.NewService(db)).RegisterRoutes(api, authMW)
	wishlist.NewHandler(wishlist.NewService(db)).RegisterRoutes(api, authMW)
}
