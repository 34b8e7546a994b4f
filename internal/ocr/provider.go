package ocr

import (
	"context"
	"fmt"

	"docuscan/internal/config"
)

// Result is one page's worth of recognized text.
type Result struct {
	Text       string
	Confidence float64
}

// Provider turns an image file into text. Implementations map their own
// failures to common.ProviderFailure; timeouts come from the caller's
// context.
type Provider interface {
	Name() string
	ProcessImage(ctx context.Context, imagePath string) (Result, error)
	IsAvailable() bool
}

// NewProvider resolves the configured provider. Selection is a one-time
// startup choice; the chosen value is passed down explicitly rather than
// held in package state.
func NewProvider(kind string) (Provider, error) {
	switch kind {
	case config.ProviderLocal:
		return NewLocalProvider(), nil
	case config.ProviderOpenAI:
		return NewOpenAIProvider()
	case config.ProviderGemini:
		return NewGeminiProvider()
	default:
		return nil, fmt.Errorf("unknown ocr provider %q", kind)
	}
}
