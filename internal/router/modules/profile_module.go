package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/devconnector-api/internal/container"
	handlers "github.com/oksasatya/devconnector-api/internal/interface/http"
	"github.com/oksasatya/devconnector-api/internal/interface/middleware"
	"github.com/oksasatya/devconnector-api/pkg/helpers"
)

// ProfileModule wires the profile CRUD surface and its sub-record routes.
// Public: GET /api/profile, GET /api/profile/user/:user_id,
//         GET /api/profile/search
// Protected: everything touching the caller's own profile.

type ProfileModule struct {
	Handler *handlers.ProfileHandler
	JWT     *helpers.JWTManager
}

func NewProfileModule(h *handlers.ProfileHandler, jwt *helpers.JWTManager) *ProfileModule {
	return &ProfileModule{Handler: h, JWT: jwt}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	publicLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/profile", publicLimiter, m.Handler.List)
	rg.GET("/profile/search", publicLimiter, m.Handler.Search)
	rg.GET("/profile/user/:user_id", publicLimiter, m.Handler.GetByUser)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/profile/me", m.Handler.Me)
		auth.POST("/profile", m.Handler.Upsert)
		auth.DELETE("/profile", m.Handler.Delete)
		auth.PUT("/profile/experience", m.Handler.AddExperience)
		auth.DELETE("/profile/experience/:exp_id", m.Handler.RemoveExperience)
		auth.PUT("/profile/education", m.Handler.AddEducation)
		auth.DELETE("/profile/education/:edu_id", m.Handler.RemoveEducation)
	}
}
