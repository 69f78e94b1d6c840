package handler

import (
	"net/http"

	"school_manager/internal/middleware"
	"school_manager/internal/model"
	"school_manager/internal/service"
	"school_manager/internal/validation"

	"github.com/gin-gonic/gin"
)

// EnrollmentHandler serves /studentclass.
type EnrollmentHandler struct {
	service   service.EnrollmentService
	validator *validation.Validator
}

func NewEnrollmentHandler(s service.EnrollmentService, v *validation.Validator) *EnrollmentHandler {
	return &EnrollmentHandler{service: s, validator: v}
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req model.EnrollmentRequest
	if err := h.validator.Body(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}
	e, err := h.service.Enroll(c.Request.Context(), req.StudentID.Int64(), req.ClassID.Int64())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EnrollmentHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *EnrollmentHandler) ListByStudent(c *gin.Context) {
	var p studentParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	list, err := h.service.ListByStudent(c.Request.Context(), p.StudentID.Int64())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *EnrollmentHandler) ListByClass(c *gin.Context) {
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

// Unenroll takes the pair in the body rather than the path.
func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	var req model.EnrollmentRequest
	if err := h.validator.Body(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}
	if err := h.service.Unenroll(c.Request.Context(), req.StudentID.Int64(), req.ClassID.Int64()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EnrollmentHandler) RegisterEnrollmentRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/studentclass", authMW)
	{
		g.POST("", middleware.RoleMiddleware(model.Members), h.Enroll)
		g.GET("", middleware.RoleMiddleware(model.Staff), h.List)
		g.GET("/student/:student_id", middleware.RoleMiddleware(model.Members), h.ListByStudent)
		g.GET("/class/:class_id", middleware.RoleMiddleware(model.Staff), h.ListByClass)
		g.DELETE("", middleware.RoleMiddleware(model.Staff), h.Unenroll)
	}
}
