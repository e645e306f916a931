package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/poketrainer/backend-go/internal/database/models"
	"github.com/poketrainer/backend-go/internal/database/service"
	"github.com/poketrainer/backend-go/internal/pokeapi"
)

// ==================== MOCK USER REPOSITORY ====================

// MockUserRepository implements repository.UserRepository for testing
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// ==================== MOCK POKEMON REPOSITORY ====================

// MockPokemonRepository implements repository.PokemonRepository for testing
type MockPokemonRepository struct {
	mock.Mock
}

func (m *MockPokemonRepository) FindByUser(userID uint) ([]models.Pokemon, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pokemon), args.Error(1)
}

func (m *MockPokemonRepository) FindByUserAndPokemonID(userID uint, pokemonID int) (*models.Pokemon, error) {
	args := m.Called(userID, pokemonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pokemon), args.Error(1)
}

func (m *MockPokemonRepository) HasPokemon(userID uint, pokemonID int) (bool, error) {
	args := m.Called(userID, pokemonID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPokemonRepository) Create(pokemon *models.Pokemon) error {
	args := m.Called(pokemon)
	return args.Error(0)
}

func (m *MockPokemonRepository) Delete(userID uint, pokemonID int) error {
	args := m.Called(userID, pokemonID)
	return args.Error(0)
}

// ==================== MOCK POKEAPI CLIENT ====================

// MockPokeAPIClient implements pokeapi.Client for testing
type MockPokeAPIClient struct {
	mock.Mock
}

func (m *MockPokeAPIClient) GetPokemonByID(ctx context.Context, id int) (*pokeapi.Pokemon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pokeapi.Pokemon), args.Error(1)
}

func (m *MockPokeAPIClient) GetPokemonByName(ctx context.Context, name string) (*pokeapi.Pokemon, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pokeapi.Pokemon), args.Error(1)
}

// ==================== MOCK USER SERVICE ====================

// MockUserService implements service.UserService for testing
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) ListUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserService) GetUser(userID uint) (*models.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) CreateUser(name, email, password string) (*models.User, error) {
	args := m.Called(name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(userID uint, update service.UserUpdate) (*models.User, error) {
	args := m.Called(userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// ==================== MOCK POKEMON SERVICE ====================

// MockPokemonService implements service.PokemonService for testing
type MockPokemonService struct {
	mock.Mock
}

func (m *MockPokemonService) AddPokemonByID(ctx context.Context, userID uint, pokemonID int) (*service.AddPokemonResult, error) {
	args := m.Called(ctx, userID, pokemonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AddPokemonResult), args.Error(1)
}

func (m *MockPokemonService) AddPokemonByName(ctx context.Context, userID uint, name string) (*service.AddPokemonResult, error) {
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AddPokemonResult), args.Error(1)
}

func (m *MockPokemonService) RemovePokemon(userID uint, pokemonID int) error {
	args := m.Called(userID, pokemonID)
	return args.Error(0)
}

func (m *MockPokemonService) ListPokemons(userID uint) ([]models.Pokemon, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pokemon), args.Error(1)
}

func (m *MockPokemonService) ListPokemonsWithDetails(ctx context.Context, userID uint) ([]service.PokemonWithDetails, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PokemonWithDetails), args.Error(1)
}

// ==================== FIXTURES ====================

// Pikachu returns the canonical pikachu catalog record used across tests
func Pikachu() *pokeapi.Pokemon {
	return &pokeapi.Pokemon{
		ID:      25,
		Name:    "pikachu",
		Types:   []pokeapi.TypeSlot{{Type: pokeapi.TypeInfo{Name: "electric"}}},
		Sprites: pokeapi.Sprites{FrontDefault: "https://example.com/pikachu.png"},
		Height:  4,
		Weight:  60,
	}
}

// Charizard returns the canonical charizard catalog record used across tests
func Charizard() *pokeapi.Pokemon {
	return &pokeapi.Pokemon{
		ID:   6,
		Name: "charizard",
		Types: []pokeapi.TypeSlot{
			{Type: pokeapi.TypeInfo{Name: "fire"}},
			{Type: pokeapi.TypeInfo{Name: "flying"}},
		},
		Sprites: pokeapi.Sprites{FrontDefault: "https://example.com/charizard.png"},
		Height:  17,
		Weight:  905,
	}
}
