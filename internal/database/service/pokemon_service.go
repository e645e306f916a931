package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/poketrainer/backend-go/internal/database/models"
	"github.com/poketrainer/backend-go/internal/database/repository"
	"github.com/poketrainer/backend-go/internal/pokeapi"
)

// PokemonService defines the interface for pokemon ownership business logic
type PokemonService interface {
	AddPokemonByID(ctx context.Context, userID uint, pokemonID int) (*AddPokemonResult, error)
	AddPokemonByName(ctx context.Context, userID uint, name string) (*AddPokemonResult, error)
	RemovePokemon(userID uint, pokemonID int) error
	ListPokemons(userID uint) ([]models.Pokemon, error)
	ListPokemonsWithDetails(ctx context.Context, userID uint) ([]PokemonWithDetails, error)
}

// AddPokemonResult bundles the persisted ownership record with the catalog
// detail that was fetched while resolving the add, so callers never re-fetch
type AddPokemonResult struct {
	Pokemon *models.Pokemon  `json:"pokemon"`
	Details *pokeapi.Pokemon `json:"details"`
}

// PokemonWithDetails pairs an ownership record with its catalog detail
type PokemonWithDetails struct {
	Pokemon models.Pokemon  `json:"pokemon"`
	Details pokeapi.Pokemon `json:"details"`
}

type pokemonService struct {
	userRepo    repository.UserRepository
	pokemonRepo repository.PokemonRepository
	client      pokeapi.Client
	logger      *slog.Logger
}

// NewPokemonService creates a new pokemon ownership service instance
func NewPokemonService(
	userRepo repository.UserRepository,
	pokemonRepo repository.PokemonRepository,
	client pokeapi.Client,
	logger *slog.Logger,
) PokemonService {
	return &pokemonService{
		userRepo:    userRepo,
		pokemonRepo: pokemonRepo,
		client:      client,
		logger:      logger,
	}
}

func (s *pokemonService) AddPokemonByID(ctx context.Context, userID uint, pokemonID int) (*AddPokemonResult, error) {
	if pokemonID <= 0 {
		return nil, ErrInvalidIdentifier
	}

	return s.addPokemon(ctx, userID, func(ctx context.Context) (*pokeapi.Pokemon, error) {
		return s.client.GetPokemonByID(ctx, pokemonID)
	})
}

func (s *pokemonService) AddPokemonByName(ctx context.Context, userID uint, name string) (*AddPokemonResult, error) {
	if name == "" {
		return nil, ErrInvalidIdentifier
	}

	return s.addPokemon(ctx, userID, func(ctx context.Context) (*pokeapi.Pokemon, error) {
		return s.client.GetPokemonByName(ctx, name)
	})
}

// addPokemon runs the add workflow. The gates are ordered: user existence is
// always checked before the catalog lookup, so an unresolvable pokemon
// identifier can never mask a missing user.
func (s *pokemonService) addPokemon(
	ctx context.Context,
	userID uint,
	resolve func(ctx context.Context) (*pokeapi.Pokemon, error),
) (*AddPokemonResult, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	// Resolve the catalog record; not-found and unavailable pass through unchanged
	details, err := resolve(ctx)
	if err != nil {
		s.logger.Warn("⚠️ [PokemonService] Catalog lookup failed", "user_id", userID, "error", err)
		return nil, err
	}

	// Duplicate check against the resolved id, so a name lookup and its
	// numeric id count as the same ownership
	owned, err := s.pokemonRepo.HasPokemon(user.ID, details.ID)
	if err != nil {
		s.logger.Error("❌ [PokemonService] Failed to check ownership", "user_id", userID, "error", err)
		return nil, err
	}
	if owned {
		s.logger.Warn("⚠️ [PokemonService] Pokemon already owned",
			"user_id", userID,
			"pokemon_id", details.ID,
			"pokemon", details.Name,
		)
		return nil, fmt.Errorf("user already owns pokemon %s: %w", details.Name, ErrPokemonAlreadyOwned)
	}

	pokemon := &models.Pokemon{
		PokemonID: details.ID,
		Name:      details.Name,
		UserID:    user.ID,
	}

	if err := s.pokemonRepo.Create(pokemon); err != nil {
		// Concurrent adds for the same pair can both pass the check above;
		// the unique index rejects the loser and it surfaces as a conflict
		if errors.Is(err, repository.ErrDuplicatePokemon) {
			return nil, fmt.Errorf("user already owns pokemon %s: %w", details.Name, ErrPokemonAlreadyOwned)
		}
		s.logger.Error("❌ [PokemonService] Failed to persist pokemon", "user_id", userID, "error", err)
		return nil, err
	}

	s.logger.Info("✅ [PokemonService] Pokemon added",
		"user_id", userID,
		"pokemon_id", details.ID,
		"pokemon", details.Name,
	)

	return &AddPokemonResult{
		Pokemon: pokemon,
		Details: details,
	}, nil
}

func (s *pokemonService) RemovePokemon(userID uint, pokemonID int) error {
	if pokemonID <= 0 {
		return ErrInvalidIdentifier
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		return err
	}

	owned, err := s.pokemonRepo.HasPokemon(userID, pokemonID)
	if err != nil {
		return err
	}
	if !owned {
		s.logger.Warn("⚠️ [PokemonService] Pokemon not owned", "user_id", userID, "pokemon_id", pokemonID)
		return repository.ErrPokemonNotFound
	}

	// A raced delete that removes zero rows reports not-found as well;
	// existence and deletion form one logical operation
	if err := s.pokemonRepo.Delete(userID, pokemonID); err != nil {
		return err
	}

	s.logger.Info("✅ [PokemonService] Pokemon removed", "user_id", userID, "pokemon_id", pokemonID)
	return nil
}

func (s *pokemonService) ListPokemons(userID uint) ([]models.Pokemon, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		return nil, err
	}

	return s.pokemonRepo.FindByUser(userID)
}

// ListPokemonsWithDetails fetches catalog details for every owned pokemon
// concurrently and returns them in acquisition order regardless of which
// lookup finishes first. Any failed lookup fails the whole call; there is no
// partial-success mode.
func (s *pokemonService) ListPokemonsWithDetails(ctx context.Context, userID uint) ([]PokemonWithDetails, error) {
	pokemons, err := s.ListPokemons(userID)
	if err != nil {
		return nil, err
	}

	results := make([]PokemonWithDetails, len(pokemons))

	g, ctx := errgroup.WithContext(ctx)
	for i, pokemon := range pokemons {
		g.Go(func() error {
			details, err := s.client.GetPokemonByID(ctx, pokemon.PokemonID)
			if err != nil {
				return err
			}
			results[i] = PokemonWithDetails{
				Pokemon: pokemon,
				Details: *details,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Warn("⚠️ [PokemonService] Detail lookup failed", "user_id", userID, "error", err)
		return nil, err
	}

	return results, nil
}

// Service errors
var (
	ErrPokemonAlreadyOwned = errors.New("user already owns this pokemon")
	ErrInvalidIdentifier   = errors.New("invalid pokemon identifier")
)
