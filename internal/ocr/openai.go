package ocr

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"docuscan/internal/common"
	"docuscan/internal/config"
	"docuscan/pkg/logz"
)

// OpenAIProvider reads text out of an image with a vision chat completion.
// The model does not report a confidence, so results carry the fixed
// remote-OCR constant.
type OpenAIProvider struct {
	client openai.Client
	model  string
	logger *logz.Logger
}

func NewOpenAIProvider() (*OpenAIProvider, error) {
	apiKey := config.OpenAIAPIKey()
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai provider")
	}
	return &OpenAIProvider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  config.OpenAIOCRModel(),
		logger: logz.New("ocr_openai"),
	}, nil
}

func (p *OpenAIProvider) Name() string { return config.ProviderOpenAI }

func (p *OpenAIProvider) IsAvailable() bool { return true }

func (p *OpenAIProvider) ProcessImage(ctx context.Context, imagePath string) (Result, error) {
	start := time.Now()

	data, err := os.ReadFile(imagePath)
	if err != nil {
		return Result{}, common.NewProviderError("read image", err)
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s",
		imageMimeType(imagePath), base64.StdEncoding.EncodeToString(data))

	parts := []openai.ChatCompletionContentPartUnionParam{
		{OfText: &openai.ChatCompletionContentPartTextParam{Text: config.DefaultOCRPrompt}},
		{OfImageURL: &openai.ChatCompletionContentPartImageParam{
			ImageURL: openai.ChatCompletionContentPartImageImageURLParam{URL: dataURL},
		}},
	}

	completion, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: p.model,
		Messages: []openai.ChatCompletionMessageParamUnion{{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfArrayOfContentParts: parts,
				},
			},
		}},
	})
	if err != nil {
		p.logger.Error("ocr.openai.failed", "image", imagePath, "error", err)
		return Result{}, common.NewProviderError("openai vision call failed", err)
	}
	if len(completion.Choices) == 0 {
		return Result{}, common.NewProviderError("openai returned no choices", nil)
	}

	text := strings.TrimSpace(completion.Choices[0].Message.Content)
	p.logger.Info("ocr.openai.ok",
		"image", imagePath,
		"model", p.model,
		"text_bytes", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Text: text, Confidence: config.RemoteOCRConfidence}, nil
}

func imageMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	case ".tif", ".tiff":
		return "image/tiff"
	default:
		return "image/png"
	}
}
