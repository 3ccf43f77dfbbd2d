package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/devconnector-api/internal/application"
	"github.com/oksasatya/devconnector-api/internal/infrastructure/github"
	"github.com/oksasatya/devconnector-api/pkg/response"
)

type GithubHandler struct {
	Svc    *application.GithubService
	Logger *logrus.Logger
}

func NewGithubHandler(svc *application.GithubService, logger *logrus.Logger) *GithubHandler {
	return &GithubHandler{Svc: svc, Logger: logger}
}

// Repos handles GET /api/profile/github/:username. Any upstream failure maps
// to 404, the contract the frontend relies on.
func (h *GithubHandler) Repos(c *gin.Context) {
	username := c.Param("username")
	repos, err := h.Svc.Repositories(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, github.ErrNotFound) {
			response.Msg(c, http.StatusNotFound, "no github profile found")
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("username", username).Error("github lookup failed")
		}
		response.ServerError(c)
		return
	}
	c.JSON(http.StatusOK, repos)
}
