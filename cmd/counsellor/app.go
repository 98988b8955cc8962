package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/counsellor/internal/config"
	dbRedis "github.com/kailas-cloud/counsellor/internal/db/redis"
	logpkg "github.com/kailas-cloud/counsellor/internal/logger"
	"github.com/kailas-cloud/counsellor/internal/metrics"
	searchrepo "github.com/kailas-cloud/counsellor/internal/repository/search"
	openaiTransport "github.com/kailas-cloud/counsellor/internal/transport/openai"
	askuc "github.com/kailas-cloud/counsellor/internal/usecase/ask"
	healthuc "github.com/kailas-cloud/counsellor/internal/usecase/health"
	"github.com/kailas-cloud/counsellor/internal/version"
)

// app is the wired object graph shared by all commands.
type app struct {
	env    string
	cfg    config.Config
	logger *zap.Logger
	store  *dbRedis.Store
	ask    *askuc.Service
	health *healthuc.Service
}

func (f *rootFlags) load() (config.Config, string, error) {
	env := f.env
	if env == "" {
		env = config.GetEnv()
	}
	var (
		cfg config.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = config.LoadFile(f.configPath)
	} else {
		cfg, err = config.Load(env)
	}
	if err != nil {
		return config.Config{}, "", fmt.Errorf("load config: %w", err)
	}
	return cfg, env, nil
}

// newApp loads configuration and builds the pipeline. Callers must close it.
func newApp(ctx context.Context, flags *rootFlags) (*app, error) {
	cfg, env, err := flags.load()
	if err != nil {
		return nil, err
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	logger.Info("Starting counsellor",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("organization", cfg.Assistant.Organization),
	)

	catalog, err := cfg.Retrieval.Catalog()
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	// redis and valkey speak the same protocol
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:      cfg.Database.Addrs,
		Username:   cfg.Database.Username,
		Password:   cfg.Database.Password,
		DB:         cfg.Database.DB,
		Standalone: cfg.Database.Standalone,
	})
	if err != nil {
		return nil, fmt.Errorf("create database store: %w", err)
	}

	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		store.Close()
		return nil, fmt.Errorf("database not ready: %w", err)
	}
	logger.Info("Connected to database")

	metrics.RegisterProviderMetrics()
	metrics.RegisterRetrievalMetrics()

	provider := openaiTransport.NewClient(&openaiTransport.Config{
		APIKey:         cfg.OpenAI.APIKey,
		BaseURL:        cfg.OpenAI.BaseURL,
		EmbeddingModel: cfg.OpenAI.Embedding.Model,
		Dimensions:     cfg.OpenAI.Embedding.Dimensions,
		Provider:       cfg.OpenAI.Provider,
		Logger:         logger,
	})

	repo := searchrepo.New(store, searchrepo.Options{
		KeyPrefix:    cfg.Storage.KeyPrefix,
		VectorField:  cfg.Index.VectorField,
		ReturnFields: cfg.Index.ReturnFields,
	})

	askSvc := askuc.New(catalog, repo, provider, provider, askOptions(cfg))

	names := catalog.Names()
	indexes := make([]healthuc.Index, 0, len(names))
	for _, n := range names {
		indexes = append(indexes, healthuc.Index{
			Namespace: string(n),
			Name:      repo.IndexName(n),
		})
	}
	healthSvc := healthuc.New(store, provider, indexes)

	return &app{
		env:    env,
		cfg:    cfg,
		logger: logger,
		store:  store,
		ask:    askSvc,
		health: healthSvc,
	}, nil
}

func askOptions(cfg config.Config) askuc.Options {
	r := cfg.Retrieval
	return askuc.Options{
		Organization:             cfg.Assistant.Organization,
		TopKPerNamespace:         r.TopKPerNamespace,
		MaxMatches:               r.MaxMatches,
		MaxContextChars:          r.MaxContextChars,
		SnippetChars:             r.SnippetChars,
		ContactShortcutLimit:     r.ContactShortcutLimit,
		ParallelNamespaceQueries: r.ParallelNamespaceQueries,
		RouterModel:              cfg.OpenAI.Router.Model,
		RouterTemperature:        cfg.OpenAI.Router.Temp(),
		AnswerModel:              cfg.OpenAI.Answer.Model,
		AnswerTemperature:        cfg.OpenAI.Answer.Temp(),
	}
}

func (a *app) Close() {
	a.store.Close()
	_ = a.logger.Sync()
}
