package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Bugian/unit-conversion-api/internal/apperrors"
	portssvc "github.com/Bugian/unit-conversion-api/internal/core/ports/services"
	"github.com/Bugian/unit-conversion-api/internal/dto"
	"github.com/Bugian/unit-conversion-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// allowedConvertMethods is advertised on OPTIONS /convert.
var allowedConvertMethods = strings.Join([]string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
	http.MethodDelete, http.MethodHead, http.MethodOptions,
}, ", ")

// conversionHandler handles HTTP requests related to unit conversions.
type conversionHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newConversionHandler creates a new conversionHandler.
func newConversionHandler(cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		conversionService: cs,
	}
}

// RegisterConversionRoutes registers the /convert routes.
func RegisterConversionRoutes(r gin.IRouter, conversionService portssvc.ConversionSvcFacade) {
	h := newConversionHandler(conversionService)

	jsonBody := middleware.RequireJSON()
	convert := r.Group("/convert")
	{
		convert.GET("", h.listConversions)
		convert.POST("", jsonBody, h.createConversion)
		convert.OPTIONS("", h.optionsConversions)
		convert.GET("/:id", h.getConversion)
		convert.HEAD("/:id", h.headConversion)
		convert.PUT("/:id", jsonBody, h.replaceConversion)
		convert.PATCH("/:id", jsonBody, h.patchConversion)
		convert.DELETE("/:id", h.deleteConversion)
	}
}

// conversionID parses the :id path parameter. Anything that is not an integer
// cannot name a conversion, so the caller answers 404.
func conversionID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Conversion not found"})
}

// respondServiceError maps a service error onto its HTTP status.
func respondServiceError(c *gin.Context, logger *slog.Logger, err error, action string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Conversion not found", slog.String("error", err.Error()))
		respondNotFound(c)
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnsupportedMediaType):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": err.Error()})
	default:
		logger.Error("Conversion service failure", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// listConversions godoc
// @Summary List conversions
// @Description Returns every stored conversion in creation order
// @Tags conversions
// @Produce  json
// @Success 200 {array} dto.ConversionResponse
// @Failure 500 {object} map[string]string "Failed to list conversions"
// @Router /convert [get]
func (h *conversionHandler) listConversions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	conversions, err := h.conversionService.ListConversions(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "list conversions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListConversionResponse(conversions))
}

// getConversion godoc
// @Summary Get a conversion
// @Description Retrieves one stored conversion by id
// @Tags conversions
// @Produce  json
// @Param   id path int true "Conversion ID"
// @Success 200 {object} dto.ConversionResponse
// @Failure 404 {object} map[string]string "Conversion not found"
// @Failure 500 {object} map[string]string "Failed to retrieve conversion"
// @Router /convert/{id} [get]
func (h *conversionHandler) getConversion(c *gin.Context) {
	id, ok := conversionID(c)
	if !ok {
		respondNotFound(c)
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.Int64("conversion_id", id))

	conversion, err := h.conversionService.GetConversionByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "retrieve conversion")
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}

// headConversion godoc
// @Summary Check a conversion exists
// @Description Answers 200 with no body when the conversion exists
// @Tags conversions
// @Param   id path int true "Conversion ID"
// @Success 200 "Conversion exists"
// @Failure 404 "Conversion not found"
// @Router /convert/{id} [head]
func (h *conversionHandler) headConversion(c *gin.Context) {
	id, ok := conversionID(c)
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	if _, err := h.conversionService.GetConversionByID(c.Request.Context(), id); err != nil {
		status := apperrors.StatusCode(err)
		if status >= http.StatusInternalServerError {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to check conversion",
				slog.Int64("conversion_id", id), slog.String("error", err.Error()))
		}
		c.Status(status)
		return
	}

	c.Status(http.StatusOK)
}

// createConversion godoc
// @Summary Create a conversion
// @Description Converts a value between two units of the same type and stores the result
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   conversion body dto.CreateConversionRequest true "Conversion input"
// @Success 201 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 415 {object} map[string]string "Body is not JSON"
// @Failure 500 {object} map[string]string "Failed to create conversion"
// @Router /convert [post]
func (h *conversionHandler) createConversion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateConversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	conversion, err := h.conversionService.CreateConversion(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, logger, err, "create conversion")
		return
	}

	logger.Info("Conversion created", slog.Int64("conversion_id", conversion.ConversionID))
	c.JSON(http.StatusCreated, dto.ToConversionResponse(conversion))
}

// replaceConversion godoc
// @Summary Replace a conversion
// @Description Updates a conversion; omitted fields keep their current value and the result is recomputed
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   id path int true "Conversion ID"
// @Param   conversion body dto.ReplaceConversionRequest true "Fields to replace"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Conversion not found"
// @Failure 415 {object} map[string]string "Body is not JSON"
// @Failure 500 {object} map[string]string "Failed to update conversion"
// @Router /convert/{id} [put]
func (h *conversionHandler) replaceConversion(c *gin.Context) {
	id, ok := conversionID(c)
	if !ok {
		respondNotFound(c)
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.Int64("conversion_id", id))

	var req dto.ReplaceConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReplaceConversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	conversion, err := h.conversionService.ReplaceConversion(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, logger, err, "update conversion")
		return
	}

	logger.Info("Conversion replaced")
	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}

// patchConversion godoc
// @Summary Partially update a conversion
// @Description Updates any of from, to and value; the unit type follows the stored source unit
// @Tags conversions
// @Accept  json
// @Produce  json
// @Param   id path int true "Conversion ID"
// @Param   conversion body dto.PatchConversionRequest true "Fields to change"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Conversion not found"
// @Failure 415 {object} map[string]string "Body is not JSON"
// @Failure 500 {object} map[string]string "Failed to update conversion"
// @Router /convert/{id} [patch]
func (h *conversionHandler) patchConversion(c *gin.Context) {
	id, ok := conversionID(c)
	if !ok {
		respondNotFound(c)
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.Int64("conversion_id", id))

	var req dto.PatchConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PatchConversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	conversion, err := h.conversionService.PartialUpdateConversion(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, logger, err, "update conversion")
		return
	}

	logger.Info("Conversion patched")
	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}

// deleteConversion godoc
// @Summary Delete a conversion
// @Description Removes a conversion. Deleting an id that does not exist also succeeds.
// @Tags conversions
// @Produce  json
// @Param   id path int true "Conversion ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} map[string]string "Id is not an integer"
// @Failure 500 {object} map[string]string "Failed to delete conversion"
// @Router /convert/{id} [delete]
func (h *conversionHandler) deleteConversion(c *gin.Context) {
	id, ok := conversionID(c)
	if !ok {
		respondNotFound(c)
		return
	}
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.Int64("conversion_id", id))

	deleted, err := h.conversionService.DeleteConversion(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, logger, err, "delete conversion")
		return
	}

	logger.Info("Delete handled", slog.Bool("deleted", deleted))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Conversia cu ID %d a fost stearsa", id)})
}

// optionsConversions godoc
// @Summary Describe the /convert resource
// @Description Lists the methods supported on /convert
// @Tags conversions
// @Success 200 "Allow header lists supported methods"
// @Router /convert [options]
func (h *conversionHandler) optionsConversions(c *gin.Context) {
	c.Header("Allow", allowedConvertMethods)
	c.Header("Access-Control-Allow-Methods", allowedConvertMethods)
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.Status(http.StatusOK)
}
