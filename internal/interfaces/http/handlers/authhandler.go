package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "parksexplorer/internal/application/auth/dto"
	"parksexplorer/internal/interfaces/http/middleware"
	"parksexplorer/internal/shared/logger"
	"parksexplorer/internal/shared/utils"
)

type AuthHandler struct {
	service authService
	logger  logger.Interface
}

func NewAuthHandler(service authService) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.NewLogger(),
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req authdto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for sign up", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), middleware.AccessToken(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	result, err := h.service.GetProfile(c.Request.Context(), middleware.AccessToken(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
