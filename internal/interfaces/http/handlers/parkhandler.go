package handlers

import (
	"github.com/gin-gonic/gin"

	"parksexplorer/internal/shared/logger"
	"parksexplorer/internal/shared/utils"
)

type ParkHandler struct {
	service parkService
	logger  logger.Interface
}

func NewParkHandler(service parkService) *ParkHandler {
	return &ParkHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

func (h *ParkHandler) ListParks(c *gin.Context) {
	page := utils.ParseOffsetPage(c)

	result, err := h.service.List(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ParkHandler) SearchParks(c *gin.Context) {
	result, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ParkHandler) GetParkByCode(c *gin.Context) {
	result, err := h.service.GetByParkCode(c.Request.Context(), c.Param("parkcode"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ParkHandler) GetPark(c *gin.Context) {
	result, err := h.service.GetByID(c.Request.Context(), c.Param("park_id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ParkHandler) GetNPSDetails(c *gin.Context) {
	result, err := h.service.GetNPSDetails(c.Request.Context(), c.Param("park_id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ParkHandler) GetDescription(c *gin.Context) {
	result, err := h.service.Describe(c.Request.Context(), c.Param("park_id"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ParkHandler) GetActivities(c *gin.Context) {
	result, err := h.service.RecommendActivities(c.Request.Context(), c.Param("park_id"), c.Query("season"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
