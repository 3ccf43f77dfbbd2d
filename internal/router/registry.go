package router

import "github.com/gin-gonic/gin"

// Registry collects feature modules and mounts them under a common base path
// once RegisterAll runs. Group middleware added through Use applies to every
// module route.
type Registry struct {
	Engine *gin.Engine
	API    *gin.RouterGroup

	groupMW []gin.HandlerFunc
	modules []Module
}

func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, API: engine.Group("/api")}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.groupMW = append(r.groupMW, mw...)
}

func (r *Registry) Add(mods ...Module) {
	r.modules = append(r.modules, mods...)
}

func (r *Registry) RegisterAll() {
	r.API.Use(r.groupMW...)
	for _, m := range r.modules {
		m.Register(r.API)
	}
}
