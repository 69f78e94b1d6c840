package handler

import (
	"net/http"

	"school_manager/internal/middleware"
	"school_manager/internal/model"
	"school_manager/internal/service"
	"school_manager/internal/validation"

	"github.com/gin-gonic/gin"
)

// MessageHandler serves /classmessage.
type MessageHandler struct {
	service   service.MessageService
	validator *validation.Validator
}

func NewMessageHandler(s service.MessageService, v *validation.Validator) *MessageHandler {
	return &MessageHandler{service: s, validator: v}
}

func (h *MessageHandler) Create(c *gin.Context) {
	var req model.CreateMessageRequest
	if err := h.validator.Body(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}
	msg, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *MessageHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *MessageHandler) ListByClass(c *gin.Context) {
	var p classParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	list, err := h.service.ListByClass(c.Request.Context(), p.ClassID.Int64())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *MessageHandler) Get(c *gin.Context) {
	var p idParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	msg, err := h.service.Get(c.Request.Context(), p.ID.Int64())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *MessageHandler) Update(c *gin.Context) {
	var p idParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	var req model.UpdateMessageRequest
	if err := h.validator.Patch(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}
	msg, err := h.service.Update(c.Request.Context(), p.ID.Int64(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *MessageHandler) Delete(c *gin.Context) {
	var p idParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), p.ID.Int64()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MessageHandler) RegisterMessageRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/classmessage", authMW)
	{
		g.POST("", middleware.RoleMiddleware(model.Staff), h.Create)
		g.GET("", middleware.RoleMiddleware(model.Members), h.List)
		g.GET("/class/:class_id", middleware.RoleMiddleware(model.Members), h.ListByClass)
		g.GET("/:id", middleware.RoleMiddleware(model.Members), h.Get)
		g.PUT("/:id", middleware.RoleMiddleware(model.Staff), h.Update)
		g.DELETE("/:id", middleware.RoleMiddleware(model.Staff), h.Delete)
	}
}
