// Command corpusload builds the intent example and document chunk corpora.
//
// Usage:
//
//	corpusload -reset                    # rebuild examples from the seed set
//	corpusload -docs ./docs              # also chunk and load documents
//	corpusload -skip-intents -docs ./docs -reset
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/intentd/internal/config"
	dbRedis "github.com/kailas-cloud/intentd/internal/db/redis"
	"github.com/kailas-cloud/intentd/internal/domain"
	logpkg "github.com/kailas-cloud/intentd/internal/logger"
	"github.com/kailas-cloud/intentd/internal/metrics"
	"github.com/kailas-cloud/intentd/internal/repository/corpus"
	"github.com/kailas-cloud/intentd/internal/repository/embcache"
	openaiTransport "github.com/kailas-cloud/intentd/internal/transport/openai"
	"github.com/kailas-cloud/intentd/internal/usecase/ingest"
)

func main() {
	_ = godotenv.Load()

	var (
		docsDir     = flag.String("docs", "", "directory with .txt/.pdf documents to chunk and load")
		reset       = flag.Bool("reset", false, "purge each namespace before loading into it")
		skipIntents = flag.Bool("skip-intents", false, "do not load the intent example set")
		skipDocs    = flag.Bool("skip-docs", false, "do not load documents even when -docs is set")
	)
	flag.Parse()

	env := config.GetEnv()
	cfg := config.MustLoad(env)

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := logpkg.ContextWithLogger(context.Background(), logger)
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	metrics.RegisterEmbeddingMetrics()

	base := openaiTransport.NewEmbedder(&openaiTransport.Config{
		APIKey:     cfg.Embedding.APIKey,
		BaseURL:    cfg.Embedding.BaseURL,
		Model:      cfg.Embedding.Model,
		Dimensions: cfg.Embedding.Dimensions,
		Logger:     logger,
	})
	cached := embcache.New(base, store, metrics.EmbeddingCacheTotal, logger)

	// Documents and examples are corpus entries, so they get the document
	// instruction. Queries get their own instruction on the serving path.
	var embedder domain.BatchEmbedder = cached
	if cfg.Embedding.DocumentInstruction != "" {
		embedder = domain.NewInstructionEmbedder(cached, cfg.Embedding.DocumentInstruction)
	}

	corpusRepo := corpus.New(store, corpus.IndexParams{
		VectorDim:   cfg.Embedding.Dimensions,
		HNSWM:       cfg.Index.HNSWM,
		EFConstruct: cfg.Index.HNSWEFConstruct,
	})
	loader := ingest.New(embedder, corpusRepo)

	opts := ingest.Options{
		Reset:       *reset,
		ChunkMaxLen: cfg.Retrieval.DocCharLimit,
	}

	if !*skipIntents {
		summary, err := loader.LoadExamples(ctx, ingest.SeedExamples, opts)
		if err != nil {
			logger.Fatal("Failed to load examples", zap.Error(err))
		}
		fmt.Printf("Examples loaded: %d, in corpus: %d (tokens used: %d)\n",
			summary.ExamplesLoaded, summary.CorpusSize, summary.TokensUsed)
	}

	if *docsDir != "" && !*skipDocs {
		summary, err := loader.LoadDocuments(ctx, *docsDir, opts)
		if err != nil {
			logger.Fatal("Failed to load documents", zap.Error(err))
		}
		fmt.Printf("Documents processed: %d, chunks loaded: %d, in corpus: %d (tokens used: %d)\n",
			summary.FilesProcessed, summary.ChunksLoaded, summary.CorpusSize, summary.TokensUsed)
		for _, name := range summary.FilesSkipped {
			fmt.Printf("  skipped: %s\n", name)
		}
		if len(summary.FilesSkipped) > 0 {
			os.Exit(1)
		}
	}
}
