package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactdto "parksexplorer/internal/application/contact/dto"
	"parksexplorer/internal/interfaces/http/middleware"
	"parksexplorer/internal/shared/logger"
	"parksexplorer/internal/shared/utils"
)

type ContactHandler struct {
	service contactService
	logger  logger.Interface
}

func NewContactHandler(service contactService) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactdto.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for contact submission", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Submit(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message received")
}
