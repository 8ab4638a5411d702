package ai

import "context"

// SummarizerService is the interface for AI summary generation.
// Implement this interface to add new providers (Gemini, Ollama, OpenAI, etc.)
type SummarizerService interface {
	GenerateSummary(ctx context.Context, prompt string) (string, error)
}

// ProviderType represents the AI provider type
type ProviderType string

const (
	ProviderGemini ProviderType = "gemini"
	ProviderOllama ProviderType = "ollama"
	ProviderAuto   ProviderType = "auto"
)
