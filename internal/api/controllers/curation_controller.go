package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vivuconnect/internal/models/request_models"
	"vivuconnect/internal/services"
	"vivuconnect/pkg/middleware"
	"vivuconnect/pkg/utils"
)

type CurationController struct {
	curationService services.CurationServiceInterface
	logger          *zap.Logger
}

func NewCurationController(curationService services.CurationServiceInterface, logger *zap.Logger) *CurationController {
	return &CurationController{
		curationService: curationService,
		logger:          logger,
	}
}

// GetCurationItems godoc
// @Summary Active curated highlights
// @Description Active items inside their time window, highest priority first.
// @Tags Connect
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /connect/curation [get]
func (cc *CurationController) GetCurationItems(c *gin.Context) {
	items, err := cc.curationService.GetActiveCurationItems(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, items, "Curation items fetched successfully")
}

// UpsertCurationItem godoc
// @Summary Create or patch a curated highlight
// @Description Keyed by pinId. Only the fields present in the body are changed.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.UpsertCurationRequest true "Curation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /admin/connect/curation [put]
func (cc *CurationController) UpsertCurationItem(c *gin.Context) {
	var req request_models.UpsertCurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeInvalidInput, "Invalid request format")
		return
	}

	adminID := c.GetString(middleware.ContextUserID)
	if !utils.IsAdmin(c.GetString(middleware.ContextRole)) {
		utils.HandleServiceError(c, cc.logger, utils.ErrPermissionDenied)
		return
	}

	item, err := cc.curationService.UpsertCurationItem(c.Request.Context(), adminID, req)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, item, "Curation item saved successfully")
}

// ListAllCurationItems godoc
// @Summary All curated highlights, including inactive and out-of-window ones
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /admin/connect/curation [get]
func (cc *CurationController) ListAllCurationItems(c *gin.Context) {
	items, err := cc.curationService.ListAllCurationItems(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, items, "Curation items fetched successfully")
}
