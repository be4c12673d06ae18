// Command corpusdump exports corpus entries to a plain-text report for
// inspection. Vectors are omitted.
//
// Usage:
//
//	corpusdump -namespace chunks -limit 100 -out chunks_export.txt
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
	"github.com/kailas-cloud/intentd/internal/repository/corpus"
)

func main() {
	_ = godotenv.Load()

	var (
		namespace = flag.String("namespace", "chunks", "corpus namespace to export: examples or chunks")
		limit     = flag.Int("limit", 100, "maximum number of entries to export")
		out       = flag.String("out", "", "output file (default <namespace>_export.txt)")
	)
	flag.Parse()

	ns, err := parseNamespace(*namespace)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

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

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}

	repo := corpus.New(store, corpus.IndexParams{
		VectorDim:   cfg.Embedding.Dimensions,
		HNSWM:       cfg.Index.HNSWM,
		EFConstruct: cfg.Index.HNSWEFConstruct,
	})

	entries, err := repo.Dump(ctx, ns, *limit)
	if err != nil {
		logger.Fatal("Failed to dump corpus", zap.Error(err))
	}

	outputFile := *out
	if outputFile == "" {
		outputFile = fmt.Sprintf("%s_export.txt", ns)
	}

	report := formatReport(ns, entries)
	if err := os.WriteFile(outputFile, []byte(report), 0o600); err != nil {
		logger.Fatal("Failed to write report", zap.Error(err))
	}

	fmt.Printf("%d entries exported to %s\n", len(entries), outputFile)
}

func parseNamespace(s string) (domain.Namespace, error) {
	switch s {
	case "examples":
		return domain.NamespaceExamples, nil
	case "chunks":
		return domain.NamespaceChunks, nil
	default:
		return "", fmt.Errorf("unknown namespace %q, expected examples or chunks", s)
	}
}
