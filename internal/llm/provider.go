// Package llm extracts structured historical events from page text
// through an OpenAI-compatible chat completion API.
package llm

import (
	"context"
	"fmt"
	"strings"
)

// Provider defines the interface for event-extraction backends.
type Provider interface {
	// Name returns the provider name
	Name() string

	// ExtractEvents extracts all events found in the text
	ExtractEvents(ctx context.Context, text string) (Events, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model name
	Model string

	// APIKey for the API
	APIKey string

	// BaseURL for custom OpenAI-compatible endpoints (local runners,
	// proxies)
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider:  "",
		Model:     "gpt-4o-mini",
		Timeout:   30,
		MaxTokens: 2000,
	}
}

// NewProvider creates a provider based on configuration. A blank
// provider name disables extraction and returns nil.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// eventPrompt instructs the model to return events as strict JSON.
const eventPrompt = `You are an expert event extraction assistant.
Your task is to extract ALL events from the provided Wikipedia text into
structured JSON format, strictly adhering to the following instructions:

Each event JSON object must contain these fields:

who: List every person or group involved. Separate multiple names with "|".

what: Provide a concise summary of the event. Avoid repeating date or location.

where: Give detailed location information (e.g., place, building), as specific as possible.

city: Provide the city name, if known.

when: Provide the exact date in YYYY/MM/DD format, or a date range (YYYY/MM/DD - YYYY/MM/DD). Always search thoroughly for an exact day.

If multiple pieces of information about the same event appear scattered throughout the text, combine them into a single, complete event entry. If some information is missing, make a reasoned inference based on the available context.

Example of correctly structured event:

{
"who": "Benedetto Marcello|Rosanna Scalfi",
"what": "Married in a secret ceremony",
"where": "Saint Mark's Basilica",
"city": "Venice",
"when": "1728/05/20"
}

Important:

Return a JSON object of the form {"events": [...]}.

Return events as a list, even if there is only one event.

Do not return an empty list; the response must always contain at least one event.`
