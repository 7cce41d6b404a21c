package handler

import (
	"net/http"
	"time"

	"github.com/foodexpress/foodexpress-api/internal/apperr"
	"github.com/foodexpress/foodexpress-api/internal/audit"
	"github.com/foodexpress/foodexpress-api/internal/middleware"
	"github.com/foodexpress/foodexpress-api/internal/service"
	"github.com/foodexpress/foodexpress-api/internal/utils"
	"github.com/foodexpress/foodexpress-api/internal/validation"
	"github.com/foodexpress/foodexpress-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	userService *service.UserService
	auditLog    *audit.Log
	jwtSecret   string
	jwtExpiry   time.Duration
}

func NewUserHandler(userService *service.UserService, auditLog *audit.Log, jwtSecret string, jwtExpiry time.Duration) *UserHandler {
	return &UserHandler{
		userService: userService,
		auditLog:    auditLog,
		jwtSecret:   jwtSecret,
		jwtExpiry:   jwtExpiry,
	}
}

// Register handles POST /api/users (public self-service registration).
func (h *UserHandler) Register(c *gin.Context) {
	var req validation.UserRegistrationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest("Invalid JSON payload"))
		return
	}

	if err := validation.ValidateUserRegistration(&req); err != nil {
		c.Error(err)
		return
	}

	logger.Log.Info("User registration attempt",
		zap.String("username", req.Username),
		zap.String("ip", c.ClientIP()),
	)

	user, err := h.userService.Register(req.Email, req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login handles POST /api/users/login. A missing user and a wrong
// password produce the identical 401 message so callers cannot probe
// which emails are registered.
func (h *UserHandler) Login(c *gin.Context) {
	var req validation.UserLoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest("Invalid JSON payload"))
		return
	}

	if err := validation.ValidateUserLogin(&req); err != nil {
		c.Error(err)
		return
	}

	user, err := h.userService.GetByEmail(req.Email)
	if err != nil {
		c.Error(err)
		return
	}
	if user == nil {
		c.Error(apperr.Unauthorized("Invalid email or password"))
		return
	}

	valid, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !valid {
		logger.Log.Warn("Login failed",
			zap.String("email", req.Email),
			zap.String("ip", c.ClientIP()),
		)
		c.Error(apperr.Unauthorized("Invalid email or password"))
		return
	}

	token, err := utils.GenerateToken(user, h.jwtSecret, h.jwtExpiry)
	if err != nil {
		c.Error(apperr.Internal(err))
		return
	}

	logger.Log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// GetAll handles GET /api/users (admin only).
func (h *UserHandler) GetAll(c *gin.Context) {
	users, err := h.userService.GetAll()
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetByID handles GET /api/users/:id (admin or self).
func (h *UserHandler) GetByID(c *gin.Context) {
	user, err := h.userService.GetByID(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Update handles PUT /api/users/:id (admin or self).
func (h *UserHandler) Update(c *gin.Context) {
	var req validation.UserUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest("Invalid JSON payload"))
		return
	}

	if err := validation.ValidateUserUpdate(&req); err != nil {
		c.Error(err)
		return
	}

	user, err := h.userService.Update(c.Param("id"), service.UserPatch{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Roles:    req.Roles,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.recordAudit(c, "update", user.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

// Delete handles DELETE /api/users/:id (admin or self). Deletion is
// permanent and immediate.
func (h *UserHandler) Delete(c *gin.Context) {
	user, err := h.userService.Delete(c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	h.recordAudit(c, "delete", user.ID)

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
		"user":    user,
	})
}

func (h *UserHandler) recordAudit(c *gin.Context, action, resourceID string) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		return
	}
	if err := h.auditLog.Record(principal.ID, principal.Username, action, "user", resourceID); err != nil {
		logger.Log.Warn("Failed to record audit entry", zap.Error(err))
	}
}
