package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/swiftbill/invoicing_app/internal/core/ports/services"
	"github.com/swiftbill/invoicing_app/internal/dto"
	"github.com/swiftbill/invoicing_app/internal/middleware"
)

// businessProfileHandler handles the singleton business profile document.
type businessProfileHandler struct {
	profileService portssvc.BusinessProfileSvcFacade
}

func newBusinessProfileHandler(ps portssvc.BusinessProfileSvcFacade) *businessProfileHandler {
	return &businessProfileHandler{profileService: ps}
}

func registerBusinessProfileRoutes(rg *gin.RouterGroup, profileService portssvc.BusinessProfileSvcFacade) {
	h := newBusinessProfileHandler(profileService)

	rg.GET("/business-profile", h.getBusinessProfile)
	rg.PUT("/business-profile", h.updateBusinessProfile)
}

// getBusinessProfile godoc
// @Summary Get the business profile
// @Description Returns the stored profile, or an empty default when none was saved yet
// @Tags business-profile
// @Produce json
// @Success 200 {object} dto.BusinessProfileResponse
// @Failure 500 {object} map[string]string "Failed to retrieve business profile"
// @Router /business-profile [get]
func (h *businessProfileHandler) getBusinessProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profile, err := h.profileService.GetBusinessProfile(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get business profile from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve business profile"})
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessProfileResponse(profile))
}

// updateBusinessProfile godoc
// @Summary Replace the business profile
// @Tags business-profile
// @Accept json
// @Produce json
// @Param profile body dto.UpdateBusinessProfileRequest true "Profile details"
// @Success 200 {object} dto.BusinessProfileResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to update business profile"
// @Router /business-profile [put]
func (h *businessProfileHandler) updateBusinessProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateBusinessProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBusinessProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.profileService.UpdateBusinessProfile(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to update business profile in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update business profile"})
		return
	}

	logger.Info("Business profile updated successfully")
	c.JSON(http.StatusOK, dto.ToBusinessProfileResponse(profile))
}
