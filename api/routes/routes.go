package routes

import (
	"net/http"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/handlers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

func NewRouter(engine *gin.Engine, middleware ...gin.HandlerFunc) *Router {
	return &Router{
		api:    engine.Group("/api/v1", middleware...),
		Engine: engine,
	}
}

func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.LineupHandler:
			r.registerLineupHandler(handler)
		case *handlers.LeaderboardHandler:
			r.registerLeaderboardHandler(handler)
		}
	}
}

// Register the lineup handler.
func (r *Router) registerLineupHandler(handler *handlers.LineupHandler) {
	day := r.api.Group("/tournaments/:tid/days/:dateKey")
	{
		day.PUT("/lineup", handler.PutLineup)
		day.GET("/lineup", handler.GetLineup)
		day.GET("/lock", handler.GetLockStatus)
	}
}

// Register the leaderboard handler.
func (r *Router) registerLeaderboardHandler(handler *handlers.LeaderboardHandler) {
	day := r.api.Group("/tournaments/:tid/days/:dateKey")
	{
		day.GET("/leaderboard", handler.GetLeaderboard)
		day.POST("/rescore", handler.PostRescore)
	}
}

// Expose a plain http handler, used for the metrics endpoint.
func (r *Router) Handle(path string, handler http.Handler) {
	r.Engine.GET(path, gin.WrapH(handler))
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
