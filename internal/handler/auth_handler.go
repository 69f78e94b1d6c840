package handler

import (
	"net/http"

	"school_manager/internal/model"
	"school_manager/internal/service"
	"school_manager/internal/validation"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service   service.AuthService
	validator *validation.Validator
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, v *validation.Validator) *AuthHandler {
	return &AuthHandler{service: s, validator: v}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := h.validator.Body(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  newUserResponse(user),
	})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}
}
