package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/devconnector-api/internal/container"
	handlers "github.com/oksasatya/devconnector-api/internal/interface/http"
	"github.com/oksasatya/devconnector-api/internal/interface/middleware"
)

// GithubModule wires the public GitHub repository proxy.

type GithubModule struct {
	Handler *handlers.GithubHandler
}

func NewGithubModule(h *handlers.GithubHandler) *GithubModule {
	return &GithubModule{Handler: h}
}

func (m *GithubModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.GET("/profile/github/:username", limiter, m.Handler.Repos)
}
