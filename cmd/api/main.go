package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "resume-extractor/docs" // Swagger docs
	"resume-extractor/internal/api"
	"resume-extractor/internal/auth"
	"resume-extractor/internal/classify"
	"resume-extractor/internal/config"
	"resume-extractor/internal/llm"
	"resume-extractor/internal/logger"
	"resume-extractor/internal/pdf"
	"resume-extractor/internal/resume"
	"resume-extractor/internal/storage"
	"resume-extractor/internal/summary"
)

// @title Resume Extractor API
// @version 1.0
// @description PDF resume extraction, classification and summarization service

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

func main() {
	cfg := config.LoadConfig()
	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	store, err := storage.NewStore(cfg.StorePath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.StorePath).Msg("failed to open result store")
	}

	classifier, err := classify.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load role profiles")
	}

	llmService := llm.NewService(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	if llmService.Enabled() {
		logger.Info().Str("provider", cfg.LLMProvider).Str("model", cfg.LLMModel).Msg("generative summaries enabled")
	} else {
		logger.Info().Msg("generative summaries disabled, using extractive summarizer")
	}

	summarizer := summary.NewSummarizer(llmService, cfg.SummarySentences)
	textExtractor := pdf.NewExtractor(cfg.PDFEngine)
	processor := resume.NewProcessor(textExtractor, classifier, summarizer, store)

	var verifier auth.Verifier
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		verifier = auth.NewStaticVerifier(cfg.AdminUsername, cfg.AdminPassword)
	}

	apiSrv := api.NewAPI(processor, store, classifier, verifier, cfg.UploadsDir)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
