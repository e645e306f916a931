package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client errors
var (
	ErrNotFound    = errors.New("pokemon not found in catalog")
	ErrUnavailable = errors.New("pokemon catalog unavailable")
)

// Pokemon is the catalog record returned by the PokeAPI
type Pokemon struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Types   []TypeSlot `json:"types"`
	Sprites Sprites    `json:"sprites"`
	Height  int        `json:"height"`
	Weight  int        `json:"weight"`
}

type TypeSlot struct {
	Type TypeInfo `json:"type"`
}

type TypeInfo struct {
	Name string `json:"name"`
}

type Sprites struct {
	FrontDefault string `json:"front_default"`
}

// TypeNames returns the pokemon's elemental type names in slot order
func (p *Pokemon) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, t.Type.Name)
	}
	return names
}

// Client fetches pokemon records from the external catalog service.
// Stateless and safe to share across concurrent callers. It performs no
// retries; callers decide whether an ErrUnavailable is worth retrying.
type Client interface {
	GetPokemonByID(ctx context.Context, id int) (*Pokemon, error)
	GetPokemonByName(ctx context.Context, name string) (*Pokemon, error)
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog client for the given base URL
func NewClient(baseURL string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *client) GetPokemonByID(ctx context.Context, id int) (*Pokemon, error) {
	return c.getPokemon(ctx, fmt.Sprintf("%d", id))
}

func (c *client) GetPokemonByName(ctx context.Context, name string) (*Pokemon, error) {
	// Catalog names are canonically lowercase
	return c.getPokemon(ctx, strings.ToLower(strings.TrimSpace(name)))
}

func (c *client) getPokemon(ctx context.Context, key string) (*Pokemon, error) {
	url := fmt.Sprintf("%s/pokemon/%s", c.baseURL, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// ok
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("pokemon %q: %w", key, ErrNotFound)
	default:
		return nil, fmt.Errorf("%w: status=%d", ErrUnavailable, resp.StatusCode)
	}

	var pokemon Pokemon
	if err := json.NewDecoder(resp.Body).Decode(&pokemon); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrUnavailable, err)
	}

	return &pokemon, nil
}
