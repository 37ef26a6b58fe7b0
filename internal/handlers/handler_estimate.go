package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swiftbill/invoicing_app/internal/apperrors"
	"github.com/swiftbill/invoicing_app/internal/core/domain"
	portssvc "github.com/swiftbill/invoicing_app/internal/core/ports/services"
	"github.com/swiftbill/invoicing_app/internal/dto"
	"github.com/swiftbill/invoicing_app/internal/middleware"
)

// estimateHandler handles HTTP requests related to estimates, including
// conversion into invoices.
type estimateHandler struct {
	estimateService portssvc.EstimateSvcFacade
}

func newEstimateHandler(es portssvc.EstimateSvcFacade) *estimateHandler {
	return &estimateHandler{estimateService: es}
}

// registerEstimateRoutes registers routes related to estimates.
func registerEstimateRoutes(rg *gin.RouterGroup, estimateService portssvc.EstimateSvcFacade) {
	h := newEstimateHandler(estimateService)

	estimates := rg.Group("/estimates")
	{
		estimates.POST("", h.createEstimate)
		estimates.GET("", h.listEstimates)
		estimates.GET("/:estimateID", h.getEstimate)
		estimates.PUT("/:estimateID", h.updateEstimate)
		estimates.DELETE("/:estimateID", h.deleteEstimate)
		estimates.PUT("/:estimateID/status", h.updateEstimateStatus)
		estimates.POST("/:estimateID/convert", h.convertEstimate)
	}
}

// createEstimate godoc
// @Summary Create a new estimate
// @Tags estimates
// @Accept json
// @Produce json
// @Param estimate body dto.CreateEstimateRequest true "Estimate details"
// @Success 201 {object} dto.EstimateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create estimate"
// @Router /estimates [post]
func (h *estimateHandler) createEstimate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEstimate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	estimate, err := h.estimateService.CreateEstimate(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create estimate in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create estimate"})
		return
	}

	logger.Info("Estimate created successfully", slog.String("estimate_id", estimate.ID), slog.String("document_number", estimate.DocumentNumber))
	c.JSON(http.StatusCreated, dto.ToEstimateResponse(estimate))
}

// listEstimates godoc
// @Summary List all estimates
// @Tags estimates
// @Produce json
// @Success 200 {array} dto.EstimateResponse
// @Failure 500 {object} map[string]string "Failed to list estimates"
// @Router /estimates [get]
func (h *estimateHandler) listEstimates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	estimates, err := h.estimateService.ListEstimates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list estimates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list estimates"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListEstimateResponse(estimates))
}

// getEstimate godoc
// @Summary Get an estimate by ID
// @Tags estimates
// @Produce json
// @Param estimateID path string true "Estimate ID"
// @Success 200 {object} dto.EstimateResponse
// @Failure 404 {object} map[string]string "Estimate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve estimate"
// @Router /estimates/{estimateID} [get]
func (h *estimateHandler) getEstimate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estimateID := c.Param("estimateID")

	estimate, err := h.estimateService.GetEstimateByID(c.Request.Context(), estimateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}
		logger.Error("Failed to get estimate from service", slog.String("estimate_id", estimateID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve estimate"})
		return
	}
	c.JSON(http.StatusOK, dto.ToEstimateResponse(estimate))
}

// updateEstimate godoc
// @Summary Replace an estimate
// @Tags estimates
// @Accept json
// @Produce json
// @Param estimateID path string true "Estimate ID"
// @Param estimate body dto.UpdateEstimateRequest true "Estimate details"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Estimate not found"
// @Failure 500 {object} map[string]string "Failed to update estimate"
// @Router /estimates/{estimateID} [put]
func (h *estimateHandler) updateEstimate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estimateID := c.Param("estimateID")

	var req dto.UpdateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEstimate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	estimate, err := h.estimateService.UpdateEstimate(c.Request.Context(), estimateID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}
		logger.Error("Failed to update estimate in service", slog.String("estimate_id", estimateID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update estimate"})
		return
	}

	logger.Info("Estimate updated successfully", slog.String("estimate_id", estimateID))
	c.JSON(http.StatusOK, dto.ToEstimateResponse(estimate))
}

// updateEstimateStatus godoc
// @Summary Update an estimate's status
// @Tags estimates
// @Accept json
// @Produce json
// @Param estimateID path string true "Estimate ID"
// @Param status body dto.UpdateEstimateStatusRequest true "New status"
// @Success 200 {object} dto.EstimateResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 404 {object} map[string]string "Estimate not found"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Router /estimates/{estimateID}/status [put]
func (h *estimateHandler) updateEstimateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estimateID := c.Param("estimateID")

	var req dto.UpdateEstimateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateEstimateStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	estimate, err := h.estimateService.UpdateEstimateStatus(c.Request.Context(), estimateID, domain.EstimateStatus(req.Status))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}
		logger.Error("Failed to update estimate status in service", slog.String("estimate_id", estimateID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update estimate status"})
		return
	}

	logger.Info("Estimate status updated", slog.String("estimate_id", estimateID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToEstimateResponse(estimate))
}

// convertEstimate godoc
// @Summary Convert an estimate into a draft invoice
// @Description Creates a draft invoice copied from the estimate (due in 30 days) and marks the estimate accepted. Not idempotent: converting twice yields two invoices.
// @Tags estimates
// @Produce json
// @Param estimateID path string true "Estimate ID"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 404 {object} map[string]string "Estimate not found"
// @Failure 500 {object} map[string]string "Failed to convert estimate"
// @Router /estimates/{estimateID}/convert [post]
func (h *estimateHandler) convertEstimate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estimateID := c.Param("estimateID")

	invoice, err := h.estimateService.ConvertToInvoice(c.Request.Context(), estimateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}
		logger.Error("Failed to convert estimate in service", slog.String("estimate_id", estimateID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert estimate"})
		return
	}

	logger.Info("Estimate converted to invoice", slog.String("estimate_id", estimateID), slog.String("invoice_id", invoice.ID), slog.String("document_number", invoice.DocumentNumber))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// deleteEstimate godoc
// @Summary Delete an estimate
// @Description Removes the estimate; invoices previously derived from it are untouched
// @Tags estimates
// @Produce json
// @Param estimateID path string true "Estimate ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} map[string]string "Estimate not found"
// @Failure 500 {object} map[string]string "Failed to delete estimate"
// @Router /estimates/{estimateID} [delete]
func (h *estimateHandler) deleteEstimate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	estimateID := c.Param("estimateID")

	if err := h.estimateService.DeleteEstimate(c.Request.Context(), estimateID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Estimate not found"})
			return
		}
		logger.Error("Failed to delete estimate in service", slog.String("estimate_id", estimateID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete estimate"})
		return
	}

	logger.Info("Estimate deleted successfully", slog.String("estimate_id", estimateID))
	c.JSON(http.StatusOK, gin.H{"id": estimateID, "deleted": true})
}
