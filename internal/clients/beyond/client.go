// Package beyond is the character-service fetch client
package beyond

//go:generate mockgen -destination=mock/mock_client.go -package=beyondmock github.com/beyondvtt/vtt-importer/internal/clients/beyond Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	beyondentities "github.com/beyondvtt/vtt-importer/internal/entities/beyond"
	"github.com/beyondvtt/vtt-importer/internal/errors"
)

// DefaultBaseURL is the public character-service endpoint.
const DefaultBaseURL = "https://character-service.dndbeyond.com/character/v5"

const defaultTimeout = 15 * time.Second

// Client defines the interface for character-service interactions
type Client interface {
	// GetCharacter fetches one character record by its numeric ID.
	// Returns errors.NotFound when the character does not exist and
	// errors.Unauthenticated when the character is private.
	GetCharacter(ctx context.Context, characterID string) (*beyondentities.Character, error)
}

// Config contains configuration for the character-service client.
type Config struct {
	// BaseURL overrides the service endpoint; empty means DefaultBaseURL.
	BaseURL string

	// HTTPClient overrides the transport; nil means a client with a
	// 15 second timeout.
	HTTPClient *http.Client
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a character-service client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

// envelope is the service's response wrapper. The character record is
// under "data".
type envelope struct {
	ID      int                       `json:"id"`
	Success bool                      `json:"success"`
	Message string                    `json:"message"`
	Data    *beyondentities.Character `json:"data"`
}

func (c *client) GetCharacter(ctx context.Context, characterID string) (*beyondentities.Character, error) {
	if characterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	url := fmt.Sprintf("%s/character/%s", c.baseURL, characterID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for character %s", characterID)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable,
			fmt.Sprintf("failed to fetch character %s", characterID))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		code := errors.FromHTTPStatus(resp.StatusCode)
		return nil, errors.New(code,
			fmt.Sprintf("character service returned status %d for character %s",
				resp.StatusCode, characterID))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response for character %s", characterID)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, errors.Wrapf(err, "failed to decode response for character %s", characterID)
	}
	if env.Data == nil {
		return nil, errors.NotFoundf("character %s has no data", characterID)
	}

	return env.Data, nil
}
