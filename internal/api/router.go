package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vivuconnect/internal/api/controllers"
	"vivuconnect/internal/config"
	"vivuconnect/pkg/middleware"
	"vivuconnect/pkg/utils"
)

// NewRouter builds the engine with the shared middleware chain and all routes.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	issuer *utils.TokenIssuer,
	connectController *controllers.ConnectController,
	curationController *controllers.CurationController,
	healthController *controllers.HealthController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.Server.CORSAllowedOrigins))

	RegisterRoutes(r, cfg, issuer, connectController, curationController, healthController)
	return r
}

func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	issuer *utils.TokenIssuer,
	connectController *controllers.ConnectController,
	curationController *controllers.CurationController,
	healthController *controllers.HealthController,
) {
	r.GET("/healthz", healthController.Healthz)

	auth := middleware.JWTAuthMiddleware(issuer)

	connect := r.Group("/connect")
	connect.Use(middleware.RateLimit(cfg.Server.RateLimitPerSec, cfg.Server.RateLimitBurst))
	{
		connect.GET("/checkins/active", connectController.GetActiveCheckIns)
		connect.GET("/events/:eventId/participants", connectController.ListParticipants)
		connect.GET("/feed", connectController.GetFeed)
		connect.GET("/venues/live", connectController.GetLiveVenues)
		connect.GET("/curation", curationController.GetCurationItems)

		authed := connect.Group("", auth)
		authed.POST("/checkins", connectController.CheckIn)
		authed.GET("/checkins/me", connectController.GetMyCheckIns)
		authed.POST("/events/:eventId/join", connectController.JoinEvent)
		authed.POST("/events/:eventId/leave", connectController.LeaveEvent)
		authed.GET("/events/:eventId/joined", connectController.IsJoined)
	}

	admin := r.Group("/admin", auth, middleware.AdminOnly())
	admin.PUT("/connect/curation", curationController.UpsertCurationItem)
	admin.GET("/connect/curation", curationController.ListAllCurationItems)
}
