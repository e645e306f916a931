package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/poketrainer/backend-go/internal/database/repository"
	"github.com/poketrainer/backend-go/internal/database/service"
	"github.com/poketrainer/backend-go/internal/pokeapi"
)

// PokemonHandler handles HTTP requests for the user-pokemon ownership routes
type PokemonHandler struct {
	pokemonService service.PokemonService
	logger         *slog.Logger
}

// NewPokemonHandler creates a new pokemon ownership handler
func NewPokemonHandler(pokemonService service.PokemonService, logger *slog.Logger) *PokemonHandler {
	return &PokemonHandler{
		pokemonService: pokemonService,
		logger:         logger,
	}
}

// AddPokemonRequest identifies a catalog pokemon by id or by name.
// Exactly one of the two fields must be set.
type AddPokemonRequest struct {
	PokemonID   int    `json:"pokemon_id" binding:"omitempty,gt=0"`
	PokemonName string `json:"pokemon_name" binding:"omitempty,min=1"`
}

// Add handles POST /users/:id/pokemons
func (h *PokemonHandler) Add(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	var req AddPokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("❌ [PokemonHandler] Invalid add request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request. Provide a positive pokemon_id or a pokemon_name."})
		return
	}

	if (req.PokemonID == 0) == (req.PokemonName == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provide exactly one of pokemon_id or pokemon_name"})
		return
	}

	var result *service.AddPokemonResult
	var err error
	if req.PokemonID != 0 {
		result, err = h.pokemonService.AddPokemonByID(c.Request.Context(), userID, req.PokemonID)
	} else {
		result, err = h.pokemonService.AddPokemonByName(c.Request.Context(), userID, req.PokemonName)
	}
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// List handles GET /users/:id/pokemons
func (h *PokemonHandler) List(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	pokemons, err := h.pokemonService.ListPokemons(userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pokemons)
}

// ListWithDetails handles GET /users/:id/pokemons/details
func (h *PokemonHandler) ListWithDetails(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	pokemons, err := h.pokemonService.ListPokemonsWithDetails(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pokemons)
}

// Remove handles DELETE /users/:id/pokemons/:pokemon_id
func (h *PokemonHandler) Remove(c *gin.Context) {
	userID, ok := parseUserID(c)
	if !ok {
		return
	}

	pokemonID, err := strconv.Atoi(c.Param("pokemon_id"))
	if err != nil || pokemonID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pokemon id"})
		return
	}

	if err := h.pokemonService.RemovePokemon(userID, pokemonID); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// handleServiceError maps service errors to HTTP responses. The mapping is the
// same on every ownership route: not-found kinds are 404, conflicts are 409,
// catalog outages are 503.
func (h *PokemonHandler) handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, pokeapi.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pokemon not found in catalog"})
	case errors.Is(err, repository.ErrPokemonNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User does not own this pokemon"})
	case errors.Is(err, service.ErrPokemonAlreadyOwned):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidIdentifier):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pokemon identifier"})
	case errors.Is(err, pokeapi.ErrUnavailable):
		h.logger.Error("❌ [PokemonHandler] Catalog unavailable", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Pokemon catalog unavailable"})
	default:
		h.logger.Error("❌ [PokemonHandler] Internal server error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
