package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yared-h/maze-quest/api/i"
)

// Router manages the HTTP server and the controllers mounted on it.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
	}
}

// Run starts the HTTP server and mounts every controller under the base
// URL's /v1 group.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	router := gin.Default()

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.Register(v1)
			}
		}
	}

	return router.Run(r.addr)
}
