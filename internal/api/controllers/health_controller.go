package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vivuconnect/pkg/utils"
)

type HealthController struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewHealthController(db *gorm.DB, logger *zap.Logger) *HealthController {
	return &HealthController{db: db, logger: logger}
}

// Healthz godoc
// @Summary Liveness and database reachability
// @Tags Health
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /healthz [get]
func (h *HealthController) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Warn("health check failed", zap.Error(err))
		utils.RespondError(c, http.StatusServiceUnavailable, utils.CodeInternal, "Database unreachable")
		return
	}

	utils.RespondSuccess(c, gin.H{"database": "ok"}, "OK")
}
