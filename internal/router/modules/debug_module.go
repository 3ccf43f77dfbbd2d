package modules

import (
	"expvar"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/devconnector-api/internal/container"
	"github.com/oksasatya/devconnector-api/internal/interface/middleware"
)

// DebugModule exposes process counters at /debug/vars. Internal callers skip
// the limiter; everyone else shares a small per-IP window.
type DebugModule struct{}

func NewDebugModule() *DebugModule { return &DebugModule{} }

func (m *DebugModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/debug/vars", rl, gin.WrapH(expvar.Handler()))
}
