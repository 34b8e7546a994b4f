package ocr

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"google.golang.org/genai"

	"docuscan/internal/common"
	"docuscan/internal/config"
	"docuscan/pkg/logz"
)

// GeminiProvider sends the image inline to a Gemini model. Same fixed
// confidence caveat as the OpenAI provider.
type GeminiProvider struct {
	client *genai.Client
	model  string
	logger *logz.Logger
}

func NewGeminiProvider() (*GeminiProvider, error) {
	apiKey := config.GeminiAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiProvider{
		client: client,
		model:  config.GeminiOCRModel(),
		logger: logz.New("ocr_gemini"),
	}, nil
}

func (p *GeminiProvider) Name() string { return config.ProviderGemini }

func (p *GeminiProvider) IsAvailable() bool { return p.client != nil }

func (p *GeminiProvider) ProcessImage(ctx context.Context, imagePath string) (Result, error) {
	start := time.Now()

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return Result{}, common.NewProviderError("read image", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(config.DefaultOCRPrompt),
		genai.NewPartFromBytes(data, imageMimeType(imagePath)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, nil)
	if err != nil {
		p.logger.Error("ocr.gemini.failed", "image", imagePath, "error", err)
		return Result{}, common.NewProviderError("gemini vision call failed", err)
	}

	text := strings.TrimSpace(result.Text())
	p.logger.Info("ocr.gemini.ok",
		"image", imagePath,
		"model", p.model,
		"text_bytes", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Text: text, Confidence: config.RemoteOCRConfidence}, nil
}
