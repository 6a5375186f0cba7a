package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"podcast_producer/internal/artifact"
	"podcast_producer/internal/audio"
	"podcast_producer/internal/config"
	"podcast_producer/internal/consumer"
	"podcast_producer/internal/publisher"
	"podcast_producer/internal/script"
	"podcast_producer/internal/script/llm"
	"podcast_producer/internal/service"
	"podcast_producer/internal/source/newsapi"
	"podcast_producer/internal/speech"
	"podcast_producer/internal/speech/elevenlabs"
	"podcast_producer/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	artifacts, err := artifact.NewStore(cfg.Pipeline.OutputDir, cfg.Pipeline.BaseURL, logger)
	if err != nil {
		logger.Error("failed to init artifact store", "error", err)
		os.Exit(1)
	}

	events, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Events.Exchange,
		RoutingKey: cfg.RabbitMQ.Events.RoutingKey,
		QueueName:  cfg.RabbitMQ.Events.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect event publisher", "error", err)
		os.Exit(1)
	}
	defer events.Close()

	jobStore := postgres.NewJobStore(db)

	newsSource := newsapi.New(newsapi.Config{
		BaseURL:          cfg.News.BaseURL,
		APIKey:           cfg.News.APIKey,
		Language:         cfg.News.Language,
		ArticlesPerTopic: cfg.News.ArticlesPerTopic,
		DaysBack:         cfg.News.DaysBack,
		Timeout:          cfg.News.Timeout,
		MaxAttempts:      cfg.News.Retry.MaxAttempts,
		InitialBackoff:   cfg.News.Retry.InitialBackoff,
		MaxBackoff:       cfg.News.Retry.MaxBackoff,
	}, logger)

	scripts, err := buildScriptAssembler(cfg, logger)
	if err != nil {
		logger.Error("failed to init script assembler", "error", err)
		os.Exit(1)
	}

	speechAdapter := speech.NewAdapter(buildSpeechBackend(cfg, logger), logger)

	merger := audio.NewAssembler(logger, !cfg.Pipeline.SimpleMerge)

	orchestrator := service.NewOrchestrator(
		jobStore,
		newsSource,
		scripts,
		speechAdapter,
		artifacts,
		merger,
		events,
		logger,
	)

	intake, err := consumer.NewRabbitMQ(consumer.Config{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Intake.Exchange,
		RoutingKey: cfg.RabbitMQ.Intake.RoutingKey,
		QueueName:  cfg.RabbitMQ.Intake.QueueName,
	}, orchestrator, logger)
	if err != nil {
		logger.Error("failed to connect job consumer", "error", err)
		os.Exit(1)
	}
	defer intake.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting podcast producer",
		"output_dir", cfg.Pipeline.OutputDir,
		"queue", cfg.RabbitMQ.Intake.QueueName,
	)

	if err := intake.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("consumer error", "error", err)
		os.Exit(1)
	}
}

func buildScriptAssembler(cfg *config.Config, logger *slog.Logger) (*script.Assembler, error) {
	var writer script.DialogueWriter

	if cfg.Script.APIKey != "" {
		w, err := llm.New(cfg.Script.APIKey, llm.Config{
			MaxTokens:   cfg.Script.MaxTokens,
			Temperature: cfg.Script.Temperature,
		}, logger)
		if err != nil {
			return nil, err
		}
		writer = w
	} else {
		logger.Warn("no script api key configured, using fallback summaries")
		writer = script.FallbackWriter{}
	}

	return script.NewAssembler(writer, logger), nil
}

func buildSpeechBackend(cfg *config.Config, logger *slog.Logger) speech.Backend {
	if cfg.Speech.APIKey == "" {
		logger.Warn("no speech api key configured, using stub backend")
		return speech.NewStub(logger)
	}
	return elevenlabs.New(elevenlabs.Config{
		BaseURL: cfg.Speech.BaseURL,
		APIKey:  cfg.Speech.APIKey,
		Timeout: cfg.Speech.Timeout,
	}, logger)
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
