package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/poketrainer/backend-go/internal/database/models"
)

// PokemonRepository defines the interface for pokemon ownership data operations
type PokemonRepository interface {
	// FindByUser returns the user's pokemons in acquisition order (oldest first)
	FindByUser(userID uint) ([]models.Pokemon, error)
	FindByUserAndPokemonID(userID uint, pokemonID int) (*models.Pokemon, error)
	HasPokemon(userID uint, pokemonID int) (bool, error)
	Create(pokemon *models.Pokemon) error
	Delete(userID uint, pokemonID int) error
}

type pokemonRepository struct {
	db *gorm.DB
}

// NewPokemonRepository creates a new pokemon repository instance
func NewPokemonRepository(db *gorm.DB) PokemonRepository {
	return &pokemonRepository{db: db}
}

func (r *pokemonRepository) FindByUser(userID uint) ([]models.Pokemon, error) {
	var pokemons []models.Pokemon
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&pokemons).Error
	if err != nil {
		return nil, err
	}
	return pokemons, nil
}

func (r *pokemonRepository) FindByUserAndPokemonID(userID uint, pokemonID int) (*models.Pokemon, error) {
	var pokemon models.Pokemon
	err := r.db.
		Where("user_id = ? AND pokemon_id = ?", userID, pokemonID).
		First(&pokemon).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPokemonNotFound
		}
		return nil, err
	}
	return &pokemon, nil
}

func (r *pokemonRepository) HasPokemon(userID uint, pokemonID int) (bool, error) {
	var count int64
	err := r.db.Model(&models.Pokemon{}).
		Where("user_id = ? AND pokemon_id = ?", userID, pokemonID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *pokemonRepository) Create(pokemon *models.Pokemon) error {
	if err := r.db.Create(pokemon).Error; err != nil {
		// The unique index on (user_id, pokemon_id) rejects concurrent
		// duplicate adds that slipped past the service-level check
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicatePokemon
		}
		return err
	}
	return nil
}

func (r *pokemonRepository) Delete(userID uint, pokemonID int) error {
	result := r.db.
		Where("user_id = ? AND pokemon_id = ?", userID, pokemonID).
		Delete(&models.Pokemon{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPokemonNotFound
	}
	return nil
}

// Repository errors
var (
	ErrPokemonNotFound  = errors.New("pokemon not found for user")
	ErrDuplicatePokemon = errors.New("user already owns this pokemon")
)
