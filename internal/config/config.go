package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo

	REQUEST_ID_KEY = "requestId"

	RATE_LIMIT_PER_SECOND       = 5
	BURST_RATE_LIMIT_PER_SECOND = 10

	//server timeouts
	ReadTimeout            = 10 * time.Second
	WriteTimeout           = 120 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//uploads
	MaxUploadSize       int64 = 10 << 20 //10mb per file
	MaxMultipartMemory  int64 = 32 << 20
	MaxBatchFiles             = 10
	UploadDirName             = "uploads"
	ExtractTimeout            = 2 * time.Minute
	PageConvertTimeout        = 60 * time.Second

	//ocr providers
	ProviderLocal  = "local"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	//local runner contract: JSON {text, confidence} on stdout
	DefaultPythonBin  = "python3"
	DefaultOCRScript  = "scripts/deepseek_ocr_runner.py"
	DefaultOCRModel   = "deepseek-ai/DeepSeek-OCR"
	DefaultOCRPrompt  = "Extract all text from this document."
	OCRCallTimeout    = 90 * time.Second
	DefaultOpenAIOCRModel = "gpt-4o-mini"
	DefaultGeminiOCRModel = "gemini-2.5-flash"

	//confidence constants - heuristic, fixed by design
	RemoteOCRConfidence = 0.85
	TextLayerConfidence = 0.99

	//pdf page conversion
	PdftoppmBin = "pdftoppm"
	PdftoppmDPI = "150"

	//redis result cache
	redisHost          = "127.0.0.1"
	redisPort          = "6379"
	RedisAddr          = redisHost + ":" + redisPort
	RedisPassword      = ""
	RedisResultCache   = 0
	ResultCacheTTL     = 1 * time.Hour
)

// Env-driven settings. Everything has a default so the service starts
// with nothing but an OCR binary/key available.

func OCRProviderKind() string {
	return getEnv("OCR_PROVIDER", ProviderLocal)
}

func PythonBin() string {
	return getEnv("OCR_PYTHON_BIN", DefaultPythonBin)
}

func OCRScriptPath() string {
	return getEnv("OCR_SCRIPT_PATH", DefaultOCRScript)
}

func OCRModelPath() string {
	return getEnv("OCR_MODEL_PATH", DefaultOCRModel)
}

func OpenAIAPIKey() string {
	return getEnv("OPENAI_API_KEY", "")
}

func OpenAIOCRModel() string {
	return getEnv("OPENAI_OCR_MODEL", DefaultOpenAIOCRModel)
}

func GeminiAPIKey() string {
	return getEnv("GEMINI_API_KEY", "")
}

func GeminiOCRModel() string {
	return getEnv("GEMINI_OCR_MODEL", DefaultGeminiOCRModel)
}

func CacheEnabled() bool {
	return getEnvAsBool("RESULT_CACHE_ENABLED", true)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
