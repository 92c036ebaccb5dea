package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	itinerarydto "parksexplorer/internal/application/itinerary/dto"
	"parksexplorer/internal/interfaces/http/middleware"
	"parksexplorer/internal/shared/constants"
	"parksexplorer/internal/shared/logger"
	"parksexplorer/internal/shared/utils"
)

type ItineraryHandler struct {
	service itineraryService
	logger  logger.Interface
}

func NewItineraryHandler(service itineraryService) *ItineraryHandler {
	return &ItineraryHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

func (h *ItineraryHandler) Generate(c *gin.Context) {
	var req itinerarydto.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for generate itinerary", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Generate(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Itinerary generated successfully")
}

func (h *ItineraryHandler) ListUserItineraries(c *gin.Context) {
	result, err := h.service.ListByOwner(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ItineraryHandler) Update(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}

	var req itinerarydto.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update itinerary", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Update(c.Request.Context(), middleware.UserID(c), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ItineraryHandler) Delete(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), middleware.UserID(c), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *ItineraryHandler) DownloadPDF(c *gin.Context) {
	id, ok := itineraryID(c)
	if !ok {
		return
	}

	data, filename, err := h.service.RenderPDF(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header(constants.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, constants.ContentTypePDF, data)
}

func itineraryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid itinerary ID")
		return 0, false
	}
	return uint(id), true
}
