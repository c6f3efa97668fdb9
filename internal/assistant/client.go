// Package assistant is the portfolio chat widget: a transcript of turns and
// a client for the external generative-language completion endpoint.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/raghavdwd/folio/internal/portfolio"
)

// Turn is one (role, content) pair of request history. Timestamps never
// leave the process.
type Turn struct {
	Role    Role
	Content string
}

// Completer produces one assistant reply for a message given the prior
// history. Implementations are stateless; the transcript owns the log.
type Completer interface {
	Complete(ctx context.Context, history []Turn, message string) (string, error)
}

// SystemInstruction is the fixed persona prompt sent with every completion
// call. The bio keeps the assistant grounded in what the site actually says.
var SystemInstruction = `You are the AI Assistant for this developer's portfolio.
Your goal is to answer questions about the developer's experience, skills, and projects in a professional, friendly, and helpful manner.
Here is information about the developer: ` + portfolio.BioInfo + `
Always stay in character and be enthusiastic. If asked about something not in the bio, politely say you don't have that information but mention what you do know.`

const (
	defaultModel   = "gemini-2.5-flash-lite"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

// Client calls the generateContent endpoint of the external language API.
type Client struct {
	APIKey  string
	Model   string
	BaseURL string
	HTTP    *http.Client
}

func NewClient(apiKey, model, baseURL string) *Client {
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 60 * time.Second},
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *generateContent  `json:"system_instruction,omitempty"`
	Contents          []generateContent `json:"contents"`
	GenerationConfig  struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []generatePart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the system instruction, the prior history, and the new user
// message, and returns the reply text. Assistant turns map to the provider's
// "model" role on the wire.
func (c *Client) Complete(ctx context.Context, history []Turn, message string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("assistant api key is required")
	}

	reqBody := generateRequest{
		SystemInstruction: &generateContent{Parts: []generatePart{{Text: SystemInstruction}}},
	}
	reqBody.GenerationConfig.Temperature = 0.7
	for _, turn := range history {
		role := "user"
		if turn.Role == RoleAssistant {
			role = "model"
		}
		reqBody.Contents = append(reqBody.Contents, generateContent{
			Role:  role,
			Parts: []generatePart{{Text: turn.Content}},
		})
	}
	reqBody.Contents = append(reqBody.Contents, generateContent{
		Role:  "user",
		Parts: []generatePart{{Text: message}},
	})

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.BaseURL, c.Model)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("x-goog-api-key", c.APIKey)

	resp, err := c.HTTP.Do(request)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("completion api: status %d: invalid response", resp.StatusCode)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("completion api: %s", parsed.Error.Message)
	}
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion api: status %d", resp.StatusCode)
	}

	for _, cand := range parsed.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}
	return "", errors.New("completion api: empty response")
}

// MockCompleter stands in when no API key is configured, so the chat tab
// still works offline.
type MockCompleter struct{}

func (MockCompleter) Complete(_ context.Context, history []Turn, message string) (string, error) {
	return fmt.Sprintf("(offline) I heard %q — with an API key configured I could actually answer that. Ask me about the projects listed on the home tab!", message), nil
}
