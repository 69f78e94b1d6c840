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

type AttendanceHandler struct {
	service   service.AttendanceService
	validator *validation.Validator
}

func NewAttendanceHandler(s service.AttendanceService, v *validation.Validator) *AttendanceHandler {
	return &AttendanceHandler{service: s, validator: v}
}

func (h *AttendanceHandler) Create(c *gin.Context) {
	var req model.CreateAttendanceRequest
	if err := h.validator.Body(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}
	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AttendanceHandler) List(c *gin.Context) {
	h.list(c, repository.AttendanceFilter{})
}

func (h *AttendanceHandler) ListByStudent(c *gin.Context) {
	var p studentParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	h.list(c, repository.AttendanceFilter{StudentID: p.StudentID.Int64()})
}

func (h *AttendanceHandler) ListByStudentClass(c *gin.Context) {
	var p studentClassParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	h.list(c, repository.AttendanceFilter{StudentID: p.StudentID.Int64(), ClassID: p.ClassID.Int64()})
}

func (h *AttendanceHandler) ListByClass(c *gin.Context) {
	var p classParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	h.list(c, repository.AttendanceFilter{ClassID: p.ClassID.Int64()})
}

func (h *AttendanceHandler) ListByClassDate(c *gin.Context) {
	var p classDateParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	h.list(c, repository.AttendanceFilter{ClassID: p.ClassID.Int64(), Date: p.Date})
}

func (h *AttendanceHandler) list(c *gin.Context, filter repository.AttendanceFilter) {
	records, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *AttendanceHandler) Get(c *gin.Context) {
	var p idParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	a, err := h.service.Get(c.Request.Context(), p.ID.Int64())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AttendanceHandler) Update(c *gin.Context) {
	var p idParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	var req model.UpdateAttendanceRequest
	if err := h.validator.Patch(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}
	a, err := h.service.Update(c.Request.Context(), p.ID.Int64(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *AttendanceHandler) Delete(c *gin.Context) {
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

func (h *AttendanceHandler) RegisterAttendanceRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/attendance", authMW)
	{
		g.POST("", middleware.RoleMiddleware(model.Staff), h.Create)
		g.GET("", middleware.RoleMiddleware(model.Staff), h.List)
		g.GET("/student/:student_id", middleware.RoleMiddleware(model.Members), h.ListByStudent)
		g.GET("/student/:student_id/class/:class_id", middleware.RoleMiddleware(model.Members), h.ListByStudentClass)
		g.GET("/class/:class_id", middleware.RoleMiddleware(model.Staff), h.ListByClass)
		g.GET("/class/:class_id/date/:date", middleware.RoleMiddleware(model.Staff), h.ListByClassDate)
		g.GET("/:id", middleware.RoleMiddleware(model.Staff), h.Get)
		g.PUT("/:id", middleware.RoleMiddleware(model.Staff), h.Update)
		g.DELETE("/:id", middleware.RoleMiddleware(model.Staff), h.Delete)
	}
}
