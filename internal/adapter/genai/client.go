package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"novapay/config"
	"novapay/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the Gemini generateContent endpoint. Every request carries
// the single draftPayment tool declaration; the response is either free
// text, tool calls, or both. No timeout is applied beyond ctx.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a Gemini client from configuration.
func NewClient(cfg config.GeminiConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		httpClient: httpClient,
		log:        log,
	}
}

// draftPaymentTool is the one callable tool declared on every request.
var draftPaymentTool = functionDeclaration{
	Name:        "draftPayment",
	Description: "Prepares a payment form with recipient and amount details for the user to confirm.",
	Parameters: schema{
		Type: "OBJECT",
		Properties: map[string]schema{
			"recipient": {Type: "STRING", Description: "The wallet ID or UPI ID of the recipient."},
			"amount":    {Type: "NUMBER", Description: "The amount to transfer."},
			"category":  {Type: "STRING", Description: "The category of spending (e.g. Food, Shopping)."},
		},
		Required: []string{"recipient", "amount"},
	},
}

// --- wire types ---

type schema struct {
	Type        string            `json:"type"`
	Description string            `json:"description,omitempty"`
	Properties  map[string]schema `json:"properties,omitempty"`
	Required    []string          `json:"required,omitempty"`
}

type functionDeclaration struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  schema `json:"parameters"`
}

type part struct {
	Text         string        `json:"text,omitempty"`
	FunctionCall *functionCall `json:"functionCall,omitempty"`
}

type functionCall struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateContentRequest struct {
	SystemInstruction *content  `json:"system_instruction,omitempty"`
	Contents          []content `json:"contents"`
	Tools             []tool    `json:"tools,omitempty"`
}

type tool struct {
	FunctionDeclarations []functionDeclaration `json:"functionDeclarations"`
}

type candidate struct {
	Content content `json:"content"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
}

// GenerateContent implements ports.GenerativeClient.
func (c *Client) GenerateContent(ctx context.Context, req ports.GenerateRequest) (*ports.GenerateResult, error) {
	body := generateContentRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: req.Prompt}}}},
		Tools:    []tool{{FunctionDeclarations: []functionDeclaration{draftPaymentTool}}},
	}
	if req.SystemInstruction != "" {
		body.SystemInstruction = &content{Parts: []part{{Text: req.SystemInstruction}}}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal generate request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build generate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("call generate endpoint: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read generate response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Msg("generate endpoint returned non-200")
		return nil, fmt.Errorf("generate endpoint returned status %d: %s", resp.StatusCode, truncate(respBody, 200))
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("parse generate response: %w", err)
	}

	result := &ports.GenerateResult{}
	if len(parsed.Candidates) > 0 {
		for _, p := range parsed.Candidates[0].Content.Parts {
			if p.FunctionCall != nil {
				result.ToolCalls = append(result.ToolCalls, ports.ToolCall{
					Name: p.FunctionCall.Name,
					Args: p.FunctionCall.Args,
				})
				continue
			}
			result.Text += p.Text
		}
	}

	return result, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
