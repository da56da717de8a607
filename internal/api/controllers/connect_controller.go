package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vivuconnect/internal/models/db_models"
	"vivuconnect/internal/models/request_models"
	"vivuconnect/internal/models/response_models"
	"vivuconnect/internal/services"
	"vivuconnect/pkg/middleware"
	"vivuconnect/pkg/utils"
)

type ConnectController struct {
	checkInService  services.CheckInServiceInterface
	joinService     services.JoinServiceInterface
	activityService services.ActivityServiceInterface
	venueService    services.VenueServiceInterface
	logger          *zap.Logger
}

func NewConnectController(
	checkInService services.CheckInServiceInterface,
	joinService services.JoinServiceInterface,
	activityService services.ActivityServiceInterface,
	venueService services.VenueServiceInterface,
	logger *zap.Logger,
) *ConnectController {
	return &ConnectController{
		checkInService:  checkInService,
		joinService:     joinService,
		activityService: activityService,
		venueService:    venueService,
		logger:          logger,
	}
}

// CheckIn godoc
// @Summary Check in at a place, activity or event
// @Description Creates the caller's presence at a pin or refreshes its 4 hour expiry. Admins may pass userId to act for another user.
// @Tags Connect
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CheckInRequest true "Check-in payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /connect/checkins [post]
func (cc *ConnectController) CheckIn(c *gin.Context) {
	var req request_models.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeInvalidInput, "Invalid request format")
		return
	}

	userID, err := actorFor(c, req.UserID)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	checkIn, err := cc.checkInService.CheckIn(c.Request.Context(), userID, req.PinID, db_models.PinType(req.PinType))
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, checkIn, "Checked in successfully")
}

// GetActiveCheckIns godoc
// @Summary List active check-ins
// @Tags Connect
// @Produce json
// @Param region query string false "Region filter"
// @Param limit query int false "Max results (capped at 500)"
// @Success 200 {object} utils.APIResponse
// @Router /connect/checkins/active [get]
func (cc *ConnectController) GetActiveCheckIns(c *gin.Context) {
	region, limit, ok := listParams(c)
	if !ok {
		return
	}

	checkIns, err := cc.checkInService.GetActiveCheckIns(c.Request.Context(), region, limit)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, checkIns, "Active check-ins fetched successfully")
}

// GetMyCheckIns godoc
// @Summary List the caller's active check-ins
// @Tags Connect
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /connect/checkins/me [get]
func (cc *ConnectController) GetMyCheckIns(c *gin.Context) {
	userID, err := actorFor(c, "")
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	checkIns, err := cc.checkInService.GetUserActiveCheckIns(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, checkIns, "Active check-ins fetched successfully")
}

// JoinEvent godoc
// @Summary Join an event
// @Tags Connect
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param request body request_models.JoinEventRequest false "Optional on-behalf-of user"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /connect/events/{eventId}/join [post]
func (cc *ConnectController) JoinEvent(c *gin.Context) {
	userID, ok := cc.joinActor(c)
	if !ok {
		return
	}

	join, err := cc.joinService.JoinEvent(c.Request.Context(), userID, c.Param("eventId"))
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, join, "Joined event successfully")
}

// LeaveEvent godoc
// @Summary Leave an event
// @Tags Connect
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param request body request_models.JoinEventRequest false "Optional on-behalf-of user"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /connect/events/{eventId}/leave [post]
func (cc *ConnectController) LeaveEvent(c *gin.Context) {
	userID, ok := cc.joinActor(c)
	if !ok {
		return
	}

	join, err := cc.joinService.LeaveEvent(c.Request.Context(), userID, c.Param("eventId"))
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, join, "Left event successfully")
}

// IsJoined godoc
// @Summary Check whether a user has joined an event
// @Tags Connect
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Param userId query string false "User to check (owner or admin)"
// @Success 200 {object} utils.APIResponse
// @Router /connect/events/{eventId}/joined [get]
func (cc *ConnectController) IsJoined(c *gin.Context) {
	userID, err := actorFor(c, c.Query("userId"))
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	eventID := c.Param("eventId")
	joined, err := cc.joinService.IsJoined(c.Request.Context(), userID, eventID)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, response_models.JoinState{
		EventID: eventID,
		UserID:  userID,
		Joined:  joined,
	}, "Join state fetched successfully")
}

// ListParticipants godoc
// @Summary List users currently joined to an event
// @Tags Connect
// @Produce json
// @Param eventId path string true "Event ID"
// @Param limit query int false "Max results (default 50, max 200)"
// @Success 200 {object} utils.APIResponse
// @Router /connect/events/{eventId}/participants [get]
func (cc *ConnectController) ListParticipants(c *gin.Context) {
	limit, ok := limitParam(c)
	if !ok {
		return
	}

	joins, err := cc.joinService.ListParticipants(c.Request.Context(), c.Param("eventId"), limit)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, joins, "Participants fetched successfully")
}

// GetFeed godoc
// @Summary Recent activity feed
// @Description Newest first. Expired check-ins are left out; joins and leaves never expire.
// @Tags Connect
// @Produce json
// @Param region query string false "Region filter"
// @Param limit query int false "Max results (default 50, max 100)"
// @Success 200 {object} utils.APIResponse
// @Router /connect/feed [get]
func (cc *ConnectController) GetFeed(c *gin.Context) {
	region, limit, ok := listParams(c)
	if !ok {
		return
	}

	feed, err := cc.activityService.GetActiveFeed(c.Request.Context(), region, limit)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, feed, "Feed fetched successfully")
}

// GetLiveVenues godoc
// @Summary Busiest pins right now
// @Tags Connect
// @Produce json
// @Param region query string false "Region filter"
// @Param limit query int false "Max results (default 50, max 100)"
// @Success 200 {object} utils.APIResponse
// @Router /connect/venues/live [get]
func (cc *ConnectController) GetLiveVenues(c *gin.Context) {
	region, limit, ok := listParams(c)
	if !ok {
		return
	}

	venues, err := cc.venueService.GetLiveVenues(c.Request.Context(), region, limit)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return
	}

	utils.RespondSuccess(c, venues, "Live venues fetched successfully")
}

func (cc *ConnectController) joinActor(c *gin.Context) (string, bool) {
	var req request_models.JoinEventRequest
	// The body is optional; an empty one, chunked or not, binds to nothing.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeInvalidInput, "Invalid request format")
		return "", false
	}

	userID, err := actorFor(c, req.UserID)
	if err != nil {
		utils.HandleServiceError(c, cc.logger, err)
		return "", false
	}
	return userID, true
}

// actorFor resolves the authenticated caller against an optional target user.
func actorFor(c *gin.Context, requested string) (string, error) {
	return utils.ResolveActor(
		c.GetString(middleware.ContextUserID),
		c.GetString(middleware.ContextRole),
		requested,
	)
}

func listParams(c *gin.Context) (*string, int, bool) {
	limit, ok := limitParam(c)
	if !ok {
		return nil, 0, false
	}
	var region *string
	if r, exists := c.GetQuery("region"); exists {
		region = &r
	}
	return region, limit, true
}

// limitParam reads ?limit. Absent means the service default.
func limitParam(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeInvalidInput, "limit must be a positive integer")
		return 0, false
	}
	return limit, true
}
