package router

import "github.com/gin-gonic/gin"

// Module is one feature area's route set. Each module attaches its own
// handlers and per-route middleware under the shared API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
