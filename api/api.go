package main

import (
	"log"

	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/modules"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/api/routes"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/config"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/database"
	"github.com/TheyCallMeKWAM/International-Fantasy-2025/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := redis.NewClient(cfg)
	defer redisClient.Close()

	// Create a module with all necessary handlers.
	module := modules.NewModule(cfg, db, redisClient)
	defer module.Close()

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router, module.Verifier.Middleware())
	router.SetupRoutes(
		module.LineupHandler,
		module.LeaderboardHandler,
	)
	router.Handle("/metrics", module.Metrics.Handler())

	// Start the server.
	log.Printf("Serving api on %s.", cfg.HTTP.Addr)
	if err := router.Run(cfg.HTTP.Addr); err != nil {
		log.Fatalf("Api server stopped: %v", err)
	}
}
