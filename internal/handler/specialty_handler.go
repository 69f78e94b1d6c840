package handler

import (
	"net/http"

	"school_manager/internal/middleware"
	"school_manager/internal/model"
	"school_manager/internal/service"
	"school_manager/internal/validation"

	"github.com/gin-gonic/gin"
)

type SpecialtyHandler struct {
	service   service.SpecialtyService
	validator *validation.Validator
}

func NewSpecialtyHandler(s service.SpecialtyService, v *validation.Validator) *SpecialtyHandler {
	return &SpecialtyHandler{service: s, validator: v}
}

func (h *SpecialtyHandler) Create(c *gin.Context) {
	var req model.SpecialtyRequest
	if err := h.validator.Body(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}
	sp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sp)
}

func (h *SpecialtyHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SpecialtyHandler) Get(c *gin.Context) {
	var p idParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	sp, err := h.service.Get(c.Request.Context(), p.ID.Int64())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *SpecialtyHandler) Update(c *gin.Context) {
	var p idParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	var req model.SpecialtyRequest
	if err := h.validator.Body(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}
	sp, err := h.service.Update(c.Request.Context(), p.ID.Int64(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *SpecialtyHandler) Delete(c *gin.Context) {
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

func (h *SpecialtyHandler) RegisterSpecialtyRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/specialties", authMW)
	{
		g.POST("", middleware.RoleMiddleware(model.AdminOnly), h.Create)
		g.GET("", middleware.RoleMiddleware(model.Members), h.List)
		g.GET("/:id", middleware.RoleMiddleware(model.Members), h.Get)
		g.PUT("/:id", middleware.RoleMiddleware(model.AdminOnly), h.Update)
		g.DELETE("/:id", middleware.RoleMiddleware(model.AdminOnly), h.Delete)
	}
}
