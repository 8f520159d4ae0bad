// Package gemini implements transaction extraction and financial advice on top
// of the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GenerateRequest is a single prompt sent to a text model.
type GenerateRequest struct {
	Model             string
	SystemInstruction string
	Prompt            string
	JSON              bool
}

// TextGenerator produces the text reply of a model for one request.
type TextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// ErrNotConfigured is returned by a generator created without an API key.
var ErrNotConfigured = errors.New("gemini: api key not configured")

// ClientGenerator calls the Gemini API through the genai SDK.
type ClientGenerator struct {
	client *genai.Client
}

var _ TextGenerator = (*ClientGenerator)(nil)

// NewClientGenerator creates a generator. An empty apiKey yields a generator
// whose every call fails with ErrNotConfigured.
func NewClientGenerator(ctx context.Context, apiKey string) (*ClientGenerator, error) {
	if apiKey == "" {
		return &ClientGenerator{}, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create genai client: %w", err)
	}
	return &ClientGenerator{client: client}, nil
}

// Generate sends req and returns the concatenated text of the first candidate.
func (g *ClientGenerator) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if g.client == nil {
		return "", ErrNotConfigured
	}

	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	resp, err := g.client.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	return resp.Text(), nil
}
