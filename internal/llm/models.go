package llm

import "strings"

// Gemini model names behind the public server aliases.
const (
	ModelPro      = "gemini-2.5-pro"
	ModelFlash    = "gemini-2.5-flash"
	ModelFallback = "gemini-2.0-flash"
)

// DefaultServer is used when a request carries no server selection.
const DefaultServer = "server2"

// Provider hands out completion clients bound to a concrete model.
type Provider interface {
	ClientFor(model string) Client
	Close() error
}

// StaticProvider serves one fixed client for every model. Used when no
// provider credentials are configured and in tests.
type StaticProvider struct {
	C Client
}

// ClientFor returns the fixed client.
func (p StaticProvider) ClientFor(string) Client { return p.C }

// Close is a no-op.
func (p StaticProvider) Close() error { return nil }

// ResolveModel maps a server alias to its model name. Unknown aliases
// fall back to the cheapest model rather than failing the request.
func ResolveModel(alias string) string {
	switch strings.ToLower(strings.TrimSpace(alias)) {
	case "server1":
		return ModelPro
	case "server2", "":
		return ModelFlash
	default:
		return ModelFallback
	}
}
