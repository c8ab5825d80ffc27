package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/stationprep/consult-assistant/pkg/config"
)

// GeminiClient is a minimal client for the Gemini generateContent API
type GeminiClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewGeminiClient creates a Gemini client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GEMINI_API_URL")
		if base == "" {
			base = "https://generativelanguage.googleapis.com"
		}
	}

	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: base,
		// Streaming responses can stay open well past a single request
		client: &http.Client{Timeout: 120 * time.Second},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseMimeType   string                 `json:"responseMimeType,omitempty"`
	ResponseJsonSchema map[string]interface{} `json:"responseJsonSchema,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (r *geminiResponse) text() string {
	var sb strings.Builder
	for _, cand := range r.Candidates {
		for _, part := range cand.Content.Parts {
			sb.WriteString(part.Text)
		}
		break
	}
	return sb.String()
}

func buildRequest(systemInstruction string, contents []string, schema map[string]interface{}) geminiRequest {
	parts := make([]geminiPart, 0, len(contents))
	for _, c := range contents {
		parts = append(parts, geminiPart{Text: c})
	}

	req := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
	}
	if systemInstruction != "" {
		req.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemInstruction}}}
	}
	if schema != nil {
		req.GenerationConfig = &geminiGenerationConfig{
			ResponseMimeType:   "application/json",
			ResponseJsonSchema: schema,
		}
	}
	return req
}

// GenerateJSON issues one schema-constrained generation request and parses the
// raw model text as JSON. Malformed model output is not an error: parsed comes
// back empty and the raw text is preserved for diagnostics. Only transport
// failures and non-2xx responses propagate.
func (g *GeminiClient) GenerateJSON(ctx context.Context, systemInstruction string, contents []string, model string, schema map[string]interface{}) (string, map[string]interface{}, error) {
	reqBody := buildRequest(systemInstruction, contents, schema)

	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", nil, err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return "", nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", nil, fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	var gr geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", nil, err
	}

	rawText := gr.text()

	parsed := map[string]interface{}{}
	if err := json.Unmarshal([]byte(rawText), &parsed); err != nil {
		// Keep the raw text so callers can log what the model produced
		parsed = map[string]interface{}{}
	}
	return rawText, parsed, nil
}

// StreamGenerate streams a generation token-by-token over SSE, invoking fn for
// each text chunk as it arrives. fn returning an error aborts consumption.
func (g *GeminiClient) StreamGenerate(ctx context.Context, systemInstruction string, contents []string, model string, fn func(chunk string) error) error {
	reqBody := buildRequest(systemInstruction, contents, nil)

	b, err := json.Marshal(reqBody)
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse&key=%s", g.baseURL, model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("gemini returned status %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		payload := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if payload == "" || payload == "[DONE]" {
			continue
		}

		var gr geminiResponse
		if err := json.Unmarshal([]byte(payload), &gr); err != nil {
			continue
		}
		if text := gr.text(); text != "" {
			if err := fn(text); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}
