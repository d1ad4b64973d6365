package handlers

import (
	"errors"
	"net/http"

	"camerastore/middleware"
	"camerastore/models"
	"camerastore/services/user"
	"camerastore/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves login/logout and the admin users screen.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// Login handles POST /api/auth/login.
func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONValidationError(c, utils.T(c, utils.MsgMissingFields), []string{"email", "password"})
		return
	}

	resp, err := h.UserService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, utils.T(c, utils.MsgInvalidCredentials), "")
			return
		}
		getLogger(c).Error("Login failed", zap.Error(err))
		internalError(c, utils.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":     resp.Token,
		"expiresAt": resp.ExpiresAt,
		"user":      resp.User,
		"redirect":  utils.Redirect(utils.DashboardPath, 0),
	})
}

// Logout handles POST /api/auth/logout.
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.UserService.Logout(c.Request.Context(), middleware.SessionToken(c)); err != nil {
		getLogger(c).Error("Logout failed", zap.Error(err))
		internalError(c, utils.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  utils.T(c, utils.MsgLoggedOut),
		"redirect": utils.Redirect(utils.LoginPath, 0),
	})
}

// Me handles GET /api/auth/me.
func (h *UserHandler) Me(c *gin.Context) {
	s, _ := middleware.CurrentSession(c)
	u, err := h.UserService.GetUser(c.Request.Context(), s.UserID)
	if err != nil {
		h.writeError(c, err, utils.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": s, "user": u})
}

// ListUsers handles GET /api/admin/users.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.UserService.ListUsers(c.Request.Context())
	if err != nil {
		h.writeError(c, err, utils.MsgUsersLoadFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users, "count": len(users)})
}

// CreateUser handles POST /api/admin/users.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.UserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.T(c, utils.MsgValidation), err.Error())
		return
	}

	u, err := h.UserService.CreateUser(c.Request.Context(), input)
	if err != nil {
		h.writeError(c, err, utils.MsgInternal)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": utils.T(c, utils.MsgUserCreated), "user": u})
}

// DeleteUser handles DELETE /api/admin/users/:id?confirm=true.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	s, _ := middleware.CurrentSession(c)
	if err := h.UserService.DeleteUser(c.Request.Context(), s, c.Param("id")); err != nil {
		h.writeError(c, err, utils.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": utils.T(c, utils.MsgUserDeleted)})
}

func (h *UserHandler) writeError(c *gin.Context, err error, storeMsg string) {
	if writeValidationError(c, err) {
		return
	}
	var forbidden user.DeleteForbiddenError
	switch {
	case errors.As(err, &forbidden):
		utils.JSONError(c, http.StatusForbidden, utils.T(c, utils.MsgUserDeleteForbidden), forbidden.Reason)
	case errors.Is(err, user.ErrUserExists):
		utils.JSONError(c, http.StatusConflict, utils.T(c, utils.MsgUserExists), "")
	case errors.Is(err, user.ErrUserNotFound):
		utils.JSONErrorWithRedirect(c, http.StatusNotFound, utils.T(c, utils.MsgUserNotFound), adminRedirect())
	default:
		getLogger(c).Error("User operation failed", zap.String("path", c.FullPath()), zap.Error(err))
		internalError(c, storeMsg)
	}
}
