package main

import (
	"fmt"
	"os"
	"time"

	"github.com/poketrainer/backend-go/internal/api"
	"github.com/poketrainer/backend-go/internal/config"
	"github.com/poketrainer/backend-go/internal/database"
	"github.com/poketrainer/backend-go/internal/database/repository"
	"github.com/poketrainer/backend-go/internal/database/service"
	"github.com/poketrainer/backend-go/internal/handler"
	"github.com/poketrainer/backend-go/internal/logger"
	"github.com/poketrainer/backend-go/internal/middleware"
	"github.com/poketrainer/backend-go/internal/pokeapi"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Go] Starting Poketrainer API...",
		"catalog", cfg.PokeAPIBaseURL,
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)
	pokemonRepo := repository.NewPokemonRepository(db)

	// 5. Initialize Pokemon Catalog Client
	pokeClient := pokeapi.NewClient(cfg.PokeAPIBaseURL, time.Duration(cfg.PokeAPITimeout)*time.Second)

	// 6. Initialize Services
	userService := service.NewUserService(userRepo, appLogger)
	pokemonService := service.NewPokemonService(userRepo, pokemonRepo, pokeClient, appLogger)

	// 7. Initialize Rate Limiter
	rateLimiter, err := middleware.NewRateLimiter(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, using no-op rate limiter", "error", err)
		rateLimiter = middleware.NewNoOpRateLimiter(appLogger)
	}
	defer rateLimiter.Close()

	// 8. Initialize Handlers & Router
	userHandler := handler.NewUserHandler(userService, appLogger)
	pokemonHandler := handler.NewPokemonHandler(pokemonService, appLogger)

	r := api.SetupRouter(userHandler, pokemonHandler, rateLimiter, appLogger)

	// 9. Start HTTP Server
	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [Go] HTTP Server running on port...", "port", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
