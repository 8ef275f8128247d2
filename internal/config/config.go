package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Generation backend
	LLMProvider     string
	LLMModel        string
	LLMMaxTokens    int
	LLMTemperature  float64
	GeminiAPIKey    string
	OpenAIAPIKey    string
	OpenAIAPIBase   string
	AnthropicAPIKey string

	// Storage
	StoragePath string

	// OCR
	TesseractBin string
	OCRDPI       int
	OCREnhance   bool
	OCRContrast  float64

	// Normalization
	FilterInstructions bool

	// Razorpay
	RazorpayKeyID     string
	RazorpayKeySecret string

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Env:             getEnvOrDefault("ENV", "development"),
		LLMProvider:     getEnvOrDefault("LLM_PROVIDER", "gemini"),
		LLMModel:        getEnvOrDefault("LLM_MODEL", ""),
		LLMMaxTokens:    getEnvAsIntOrDefault("LLM_MAX_TOKENS", 400),
		LLMTemperature:  getEnvAsFloatOrDefault("LLM_TEMPERATURE", 0.7),
		GeminiAPIKey:    getEnvOrDefault("GEMINI_API_KEY", ""),
		OpenAIAPIKey:    getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIAPIBase:   getEnvOrDefault("OPENAI_API_BASE", ""),
		AnthropicAPIKey: getEnvOrDefault("ANTHROPIC_API_KEY", ""),
		StoragePath:     getEnvOrDefault("STORAGE_PATH", "./uploads"),
		TesseractBin:    getEnvOrDefault("TESSERACT_BIN", "tesseract"),
		OCRDPI:          getEnvAsIntOrDefault("OCR_DPI", 300),
		OCREnhance:      getEnvAsBoolOrDefault("OCR_ENHANCE", true),
		OCRContrast:     getEnvAsFloatOrDefault("OCR_CONTRAST", 1.5),

		FilterInstructions: getEnvAsBoolOrDefault("NORMALIZE_FILTER_INSTRUCTIONS", false),

		RazorpayKeyID:     getEnvOrDefault("RAZORPAY_KEY_ID", ""),
		RazorpayKeySecret: getEnvOrDefault("RAZORPAY_KEY_SECRET", ""),

		FrontendURL: getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
