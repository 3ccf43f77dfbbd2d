package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector-api/internal/application"
	"github.com/oksasatya/devconnector-api/internal/interface/middleware"
	"github.com/oksasatya/devconnector-api/pkg/response"
	"github.com/oksasatya/devconnector-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.UserService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth. The error body is identical for an unknown
// email and a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, validation.Items(err))
		return
	}

	_, token, err := h.Svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Errors(c, http.StatusBadRequest, response.Items("invalid credentials"))
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Me handles GET /api/auth and returns the caller's own record, password
// hash excluded.
func (h *AuthHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.CtxUserIDKey)
	u, err := h.Svc.GetUser(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Msg(c, http.StatusNotFound, "user not found")
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("fetch current user failed")
		}
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, u)
}
