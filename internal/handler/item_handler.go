package handler

import (
	"net/http"

	"school_manager/internal/middleware"
	"school_manager/internal/model"
	"school_manager/internal/service"
	"school_manager/internal/validation"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	service   service.ItemService
	validator *validation.Validator
}

func NewItemHandler(s service.ItemService, v *validation.Validator) *ItemHandler {
	return &ItemHandler{service: s, validator: v}
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req model.CreateItemRequest
	if err := h.validator.Body(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}
	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ItemHandler) Get(c *gin.Context) {
	var p idParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	item, err := h.service.Get(c.Request.Context(), p.ID.Int64())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Update(c *gin.Context) {
	var p idParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	var req model.UpdateItemRequest
	if err := h.validator.Patch(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}
	item, err := h.service.Update(c.Request.Context(), p.ID.Int64(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItemHandler) Delete(c *gin.Context) {
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

func (h *ItemHandler) RegisterItemRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/item", authMW, middleware.RoleMiddleware(model.AdminOnly))
	{
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}
