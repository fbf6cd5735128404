package openai

import (
	"fmt"

	"resume-insight/internal/llm"
)

// Provider implements llm.Provider with a single configured model.
// OpenAI deployments ignore the Gemini model resolved from the server
// alias and always complete against OPENAI_MODEL.
type Provider struct {
	client *Client
}

// NewProvider validates the credentials once and reuses one client.
func NewProvider(apiKey, model string) (*Provider, error) {
	client, err := NewClient(apiKey, model)
	if err != nil {
		return nil, fmt.Errorf("openai provider: %w", err)
	}
	return &Provider{client: client}, nil
}

// ClientFor returns the configured client regardless of the model name.
func (p *Provider) ClientFor(string) llm.Client { return p.client }

// Close is a no-op; the client holds no persistent connection.
func (p *Provider) Close() error { return nil }
