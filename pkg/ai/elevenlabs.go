package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/stationprep/consult-assistant/pkg/config"
)

// ElevenLabsClient is a minimal client for the ElevenLabs ConvAI API
type ElevenLabsClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewElevenLabsClient creates an ElevenLabs client using the provided config.
// If cfg is nil, falls back to environment variables.
func NewElevenLabsClient(cfg *config.ElevenLabsConfig) *ElevenLabsClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("ELEVENLABS_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("ELEVENLABS_API_URL")
		if base == "" {
			base = "https://api.elevenlabs.io"
		}
	}

	return &ElevenLabsClient{
		apiKey:  apiKey,
		baseURL: base,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// ConversationTurn is one turn of a finished voice conversation
type ConversationTurn struct {
	Role           string `json:"role"`
	Message        string `json:"message"`
	TimeInCallSecs int    `json:"time_in_call_secs,omitempty"`
}

// ConversationResponse is the minimal shape of a conversation lookup.
// Transcript is kept raw because the provider has returned both an array of
// turns and a plain string for the same field.
type ConversationResponse struct {
	ConversationID string          `json:"conversation_id"`
	Status         string          `json:"status"`
	Transcript     json.RawMessage `json:"transcript"`
}

// ConversationStatusDone is the terminal status reported once the provider
// has finished processing a conversation
const ConversationStatusDone = "done"

// GetConversation fetches the current state of a conversation by id
func (c *ElevenLabsClient) GetConversation(ctx context.Context, conversationID string) (*ConversationResponse, error) {
	endpoint := fmt.Sprintf("%s/v1/convai/conversations/%s", c.baseURL, url.PathEscape(conversationID))

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("elevenlabs returned status %d", resp.StatusCode)
	}

	var cr ConversationResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, err
	}
	return &cr, nil
}
