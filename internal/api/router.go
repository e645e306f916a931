package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/poketrainer/backend-go/internal/handler"
	"github.com/poketrainer/backend-go/internal/middleware"
)

func SetupRouter(
	userHandler *handler.UserHandler,
	pokemonHandler *handler.PokemonHandler,
	rateLimiter middleware.RateLimiter,
	logger *slog.Logger,
) *gin.Engine {
	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(middleware.RequestID())

	// Public routes
	r.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	limited := middleware.LimitWrites(rateLimiter, logger)

	// User CRUD
	users := api.Group("/users")
	{
		users.GET("", userHandler.List)
		users.POST("", limited, userHandler.Create)
		users.GET("/:id", userHandler.Get)
		users.PUT("/:id", limited, userHandler.Update)
		users.DELETE("/:id", limited, userHandler.Delete)
	}

	// Pokemon ownership routes, nested under a user
	pokemons := api.Group("/users/:id/pokemons")
	{
		pokemons.POST("", limited, pokemonHandler.Add)
		pokemons.GET("", pokemonHandler.List)
		pokemons.GET("/details", pokemonHandler.ListWithDetails)
		pokemons.DELETE("/:pokemon_id", limited, pokemonHandler.Remove)
	}

	return r
}
