package pokeapi_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poketrainer/backend-go/internal/pokeapi"
)

const pikachuJSON = `{
	"id": 25,
	"name": "pikachu",
	"types": [{"type": {"name": "electric"}}],
	"sprites": {"front_default": "https://example.com/pikachu.png"},
	"height": 4,
	"weight": 60
}`

func TestClient_GetPokemonByID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon/25", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(pikachuJSON))
	}))
	defer server.Close()

	client := pokeapi.NewClient(server.URL, 5*time.Second)

	pokemon, err := client.GetPokemonByID(context.Background(), 25)
	require.NoError(t, err)
	assert.Equal(t, 25, pokemon.ID)
	assert.Equal(t, "pikachu", pokemon.Name)
	assert.Equal(t, []string{"electric"}, pokemon.TypeNames())
	assert.Equal(t, "https://example.com/pikachu.png", pokemon.Sprites.FrontDefault)
	assert.Equal(t, 4, pokemon.Height)
	assert.Equal(t, 60, pokemon.Weight)
}

func TestClient_GetPokemonByName_Lowercases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon/pikachu", r.URL.Path)
		w.Write([]byte(pikachuJSON))
	}))
	defer server.Close()

	client := pokeapi.NewClient(server.URL, 5*time.Second)

	pokemon, err := client.GetPokemonByName(context.Background(), "  Pikachu ")
	require.NoError(t, err)
	assert.Equal(t, "pikachu", pokemon.Name)
}

func TestClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := pokeapi.NewClient(server.URL, 5*time.Second)

	_, err := client.GetPokemonByID(context.Background(), 99999)
	assert.ErrorIs(t, err, pokeapi.ErrNotFound)

	_, err = client.GetPokemonByName(context.Background(), "missingno")
	assert.ErrorIs(t, err, pokeapi.ErrNotFound)
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := pokeapi.NewClient(server.URL, 5*time.Second)

	_, err := client.GetPokemonByID(context.Background(), 25)
	assert.ErrorIs(t, err, pokeapi.ErrUnavailable)
}

func TestClient_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := pokeapi.NewClient(server.URL, 5*time.Second)

	_, err := client.GetPokemonByID(context.Background(), 25)
	assert.ErrorIs(t, err, pokeapi.ErrUnavailable)
}

func TestClient_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	client := pokeapi.NewClient(server.URL, 1*time.Second)

	_, err := client.GetPokemonByID(context.Background(), 25)
	assert.ErrorIs(t, err, pokeapi.ErrUnavailable)
}
