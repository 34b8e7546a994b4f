package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"time"

	"docuscan/internal/common"
	"docuscan/internal/config"
	"docuscan/pkg/logz"
)

// LocalProvider shells out to the DeepSeek-OCR python runner. The runner
// prints {"text","confidence","metadata"} as JSON on stdout; on failure it
// prints {"error","type"} to stderr and exits non-zero.
type LocalProvider struct {
	pythonBin  string
	scriptPath string
	modelPath  string
	logger     *logz.Logger
}

type runnerOutput struct {
	Text       string         `json:"text"`
	Confidence float64        `json:"confidence"`
	Metadata   map[string]any `json:"metadata"`
}

type runnerError struct {
	Error string `json:"error"`
	Type  string `json:"type"`
}

func NewLocalProvider() *LocalProvider {
	return &LocalProvider{
		pythonBin:  config.PythonBin(),
		scriptPath: config.OCRScriptPath(),
		modelPath:  config.OCRModelPath(),
		logger:     logz.New("ocr_local"),
	}
}

func (p *LocalProvider) Name() string { return config.ProviderLocal }

func (p *LocalProvider) IsAvailable() bool {
	if _, err := exec.LookPath(p.pythonBin); err != nil {
		return false
	}
	_, err := os.Stat(p.scriptPath)
	return err == nil
}

func (p *LocalProvider) ProcessImage(ctx context.Context, imagePath string) (Result, error) {
	start := time.Now()
	p.logger.Debug("ocr.local.start", "image", imagePath, "model", p.modelPath)

	cmd := exec.CommandContext(ctx, p.pythonBin, p.scriptPath, imagePath, "--model", p.modelPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := "ocr subprocess failed"
		var rerr runnerError
		if jsonErr := json.Unmarshal(firstJSONLine(stderr.Bytes()), &rerr); jsonErr == nil && rerr.Error != "" {
			msg = rerr.Type + ": " + rerr.Error
		}
		p.logger.Error("ocr.local.failed",
			"image", imagePath, "error", err, "stderr_bytes", stderr.Len(),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return Result{}, common.NewProviderError(msg, err)
	}

	var out runnerOutput
	if err := json.Unmarshal(firstJSONLine(stdout.Bytes()), &out); err != nil {
		return Result{}, common.NewProviderError("malformed ocr runner output", err)
	}

	p.logger.Info("ocr.local.ok",
		"image", imagePath,
		"text_bytes", len(out.Text),
		"confidence", out.Confidence,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return Result{Text: out.Text, Confidence: out.Confidence}, nil
}

// firstJSONLine returns the first non-empty line, which is where the runner
// puts its JSON document. Model loading chatter can precede it on stderr.
func firstJSONLine(b []byte) []byte {
	for _, ln := range strings.Split(string(b), "\n") {
		ln = strings.TrimSpace(ln)
		if strings.HasPrefix(ln, "{") {
			return []byte(ln)
		}
	}
	return b
}
