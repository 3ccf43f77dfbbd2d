package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/devconnector-api/internal/container"
	handlers "github.com/oksasatya/devconnector-api/internal/interface/http"
	"github.com/oksasatya/devconnector-api/internal/interface/middleware"
)

// UserModule wires registration.
// Public: POST /api/users

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil) // 10 req/min per IP
	rg.POST("/users", registerLimiter, m.Handler.Register)
}
