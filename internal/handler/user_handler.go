package handler

import (
	"net/http"

	"school_manager/internal/middleware"
	"school_manager/internal/model"
	"school_manager/internal/service"
	"school_manager/internal/validation"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service   service.UserService
	validator *validation.Validator
}

func NewUserHandler(s service.UserService, v *validation.Validator) *UserHandler {
	return &UserHandler{service: s, validator: v}
}

// Create is open for self-registration as a student or other. Creating an
// admin or a teacher needs an admin token.
func (h *UserHandler) Create(c *gin.Context) {
	var req model.CreateUserRequest
	if err := h.validator.Body(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}

	if req.RoleID != nil && (*req.RoleID == model.RoleAdmin || *req.RoleID == model.RoleTeacher) {
		claims, ok := middleware.ClaimsFromContext(c)
		if !ok || claims.RoleID != model.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "only an admin can create admin or teacher accounts"})
			return
		}
	}

	user, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newUserResponse(user))
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponses(users))
}

func (h *UserHandler) listByRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := h.service.ListByRole(c.Request.Context(), role)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, newUserResponses(users))
	}
}

func (h *UserHandler) Get(c *gin.Context) {
	var p idParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	user, err := h.service.Get(c.Request.Context(), p.ID.Int64())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) Update(c *gin.Context) {
	var p idParam
	if err := bindParams(c, h.validator, &p); err != nil {
		respondError(c, err)
		return
	}
	var req model.UpdateUserRequest
	if err := h.validator.Patch(c.Request.Body, &req); err != nil {
		respondError(c, err)
		return
	}
	user, err := h.service.Update(c.Request.Context(), p.ID.Int64(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newUserResponse(user))
}

func (h *UserHandler) Delete(c *gin.Context) {
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

// RegisterUserRoutes registers user routes. optionalAuthMW lets an admin
// token reach Create without making the route private.
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW, optionalAuthMW gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("", optionalAuthMW, h.Create)
		users.GET("", authMW, middleware.RoleMiddleware(model.Staff), h.List)
		users.GET("/teachers", authMW, middleware.RoleMiddleware(model.Members), h.listByRole(model.RoleTeacher))
		users.GET("/students", authMW, middleware.RoleMiddleware(model.Staff), h.listByRole(model.RoleStudent))
		users.GET("/:id", authMW, middleware.RoleMiddleware(model.Members), h.Get)
		users.PUT("/:id", authMW, middleware.RoleMiddleware(model.AdminOnly), h.Update)
		users.DELETE("/:id", authMW, middleware.RoleMiddleware(model.AdminOnly), h.Delete)
	}
}
