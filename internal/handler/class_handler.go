package handler

import (
	"net/http"

	"school_manager/internal/middleware"
	"school_manager/internal/model"
	"school_manager/internal/repository"
	"school_manager/internal/service"
	"school_manager/internal/validation"

	"github.com/gin-gonic/gin"
)

type ClassHandler struct {
	service   service.ClassService
	validator *validation.Validator
}

func NewClassHandler(s service.ClassService, v *validation.Validator) *ClassHandler {
	return &ClassHandler{service: s, validator: v}
}

func (h *ClassHandler) Create(c *gin.Context) {
	var req model.CreateClassRequest
	if err := h.validator.Body(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}
	class, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, class)
}

func (h *ClassHandler) List(c *gin.Context) {
	h.list(c, repository.ClassFilter{})
}

func (h *ClassHandler) ListByTeacher(c *gin.Context) {
	var p teacherParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	h.list(c, repository.ClassFilter{TeacherID: p.TeacherID.Int64()})
}

func (h *ClassHandler) ListBySpecialty(c *gin.Context) {
	var p specialtyParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	h.list(c, repository.ClassFilter{SpecialtyID: p.SpecialtyID.Int64()})
}

func (h *ClassHandler) ListByDay(c *gin.Context) {
	var p dayParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	h.list(c, repository.ClassFilter{Day: p.Day})
}

func (h *ClassHandler) list(c *gin.Context, filter repository.ClassFilter) {
	classes, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) Get(c *gin.Context) {
	var p idParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	class, err := h.service.Get(c.Request.Context(), p.ID.Int64())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) Update(c *gin.Context) {
	var p idParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	var req model.UpdateClassRequest
	if err := h.validator.Patch(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}
	class, err := h.service.Update(c.Request.Context(), p.ID.Int64(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *ClassHandler) Delete(c *gin.Context) {
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

// RegisterClassRoutes registers class routes
func (h *ClassHandler) RegisterClassRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/classes", authMW)
	{
		g.POST("", middleware.RoleMiddleware(model.AdminOnly), h.Create)
		g.GET("", middleware.RoleMiddleware(model.Members), h.List)
		g.GET("/teacher/:teacher_id", middleware.RoleMiddleware(model.Members), h.ListByTeacher)
		g.GET("/day/:day", middleware.RoleMiddleware(model.Members), h.ListByDay)
		g.GET("/specialty/:specialty_id", middleware.RoleMiddleware(model.Members), h.ListBySpecialty)
		g.GET("/:id", middleware.RoleMiddleware(model.Members), h.Get)
		g.PUT("/:id", middleware.RoleMiddleware(model.AdminOnly), h.Update)
		g.DELETE("/:id", middleware.RoleMiddleware(model.AdminOnly), h.Delete)
	}
}
