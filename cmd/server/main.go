package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"qpg-backend/internal/config"
	"qpg-backend/internal/handlers"
	"qpg-backend/internal/llm"
	"qpg-backend/internal/router"
	"qpg-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Question Paper Generator Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Syllabus Store ────
	syllabusStore, err := services.NewSyllabusStore(filepath.Join(cfg.StoragePath, "syllabi"))
	if err != nil {
		log.Fatalf("✗ Syllabus store initialization failed: %v", err)
	}
	log.Println("✓ Syllabus store ready")

	// ──── Step 3: Initialize Generation Backend ────
	provider, err := llm.NewProvider(context.Background(), llm.Config{
		Provider:  cfg.LLMProvider,
		Model:     cfg.LLMModel,
		Gemini:    llm.GeminiConfig{APIKey: cfg.GeminiAPIKey},
		OpenAI:    llm.OpenAIConfig{APIKey: cfg.OpenAIAPIKey, BaseURL: cfg.OpenAIAPIBase},
		Anthropic: llm.AnthropicConfig{APIKey: cfg.AnthropicAPIKey},
	})
	if err != nil {
		log.Fatalf("✗ Generation backend initialization failed: %v", err)
	}
	if closer, ok := provider.(io.Closer); ok {
		defer closer.Close()
	}
	log.Printf("✓ Generation backend initialized (%s, model %s)", cfg.LLMProvider, provider.ModelID())

	// ──── Initialize Services ────
	extractService := services.NewFileExtractService(cfg.TesseractBin, cfg.OCRDPI, cfg.OCREnhance, cfg.OCRContrast)
	generatorService := services.NewGeneratorService(provider, syllabusStore, cfg.LLMMaxTokens, cfg.LLMTemperature, cfg.FilterInstructions)
	pdfService := services.NewPDFExportService()
	userStore := services.NewUserStore()
	paymentService := services.NewPaymentService(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	// ──── Initialize Handlers ────
	syllabusHandler := handlers.NewSyllabusHandler(extractService, syllabusStore, generatorService)
	generateHandler := handlers.NewGenerateHandler(generatorService)
	exportHandler := handlers.NewExportHandler(pdfService, generatorService)
	userHandler := handlers.NewUserHandler(userStore)
	paymentHandler := handlers.NewPaymentHandler(paymentService)

	// ──── Start HTTP Server ────
	r := router.New(
		syllabusHandler,
		generateHandler,
		exportHandler,
		userHandler,
		paymentHandler,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Question Paper Generator ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
