package config

import (
	"os"
	"path/filepath"
	"testing"
)

func validConfig() Config {
	cfg := Config{
		HTTP:       HTTPConfig{Port: 8080},
		Database:   DatabaseConfig{Addrs: []string{"localhost:6379"}},
		Embedding:  EmbeddingConfig{APIKey: "test-key", Model: "text-embedding-3-small"},
		Generation: GenerationConfig{APIKey: "test-key", Model: "gpt-4o-mini"},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Router.AmbiguousThreshold != 0.25 {
		t.Errorf("expected AmbiguousThreshold=0.25, got %g", cfg.Router.AmbiguousThreshold)
	}
	if cfg.Router.CloseMargin != 0.1 {
		t.Errorf("expected CloseMargin=0.1, got %g", cfg.Router.CloseMargin)
	}
	if cfg.Router.ExampleTopK != 3 {
		t.Errorf("expected ExampleTopK=3, got %d", cfg.Router.ExampleTopK)
	}
	if cfg.Retrieval.DocTopK != 15 {
		t.Errorf("expected DocTopK=15, got %d", cfg.Retrieval.DocTopK)
	}
	if cfg.Retrieval.DocCharLimit != 500 {
		t.Errorf("expected DocCharLimit=500, got %d", cfg.Retrieval.DocCharLimit)
	}
	if cfg.Retrieval.ExemplarCount != 2 {
		t.Errorf("expected ExemplarCount=2, got %d", cfg.Retrieval.ExemplarCount)
	}
	if cfg.Index.HNSWM != 32 {
		t.Errorf("expected HNSWM=32, got %d", cfg.Index.HNSWM)
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_MissingModels(t *testing.T) {
	cfg := validConfig()
	cfg.Embedding.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing embedding model")
	}

	cfg = validConfig()
	cfg.Generation.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing generation model")
	}
}

func TestValidate_ThresholdOutOfRange(t *testing.T) {
	cfg := validConfig()
	cfg.Router.AmbiguousThreshold = 2.5

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for threshold above max cosine distance")
	}
}

func TestValidate_MarginAboveThreshold(t *testing.T) {
	cfg := validConfig()
	cfg.Router.AmbiguousThreshold = 0.1
	cfg.Router.CloseMargin = 0.2

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for close_margin above ambiguous_threshold")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("INTENTD_TEST_KEY", "secret")

	in := []byte("api_key: ${INTENTD_TEST_KEY}\nmodel: ${INTENTD_TEST_MISSING:-fallback}")
	out := string(expandEnvVars(in))

	want := "api_key: secret\nmodel: fallback"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatal(err)
	}

	yaml := `
http:
  port: 9090
database:
  addrs: ["localhost:6379"]
embedding:
  model: text-embedding-3-small
generation:
  model: gpt-4o-mini
router:
  ambiguous_threshold: 0.3
`
	if err := os.WriteFile(filepath.Join(configDir, "test.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if cfg.Router.AmbiguousThreshold != 0.3 {
		t.Errorf("expected threshold 0.3, got %g", cfg.Router.AmbiguousThreshold)
	}
	// defaults applied on top of the file
	if cfg.Retrieval.DocTopK != 15 {
		t.Errorf("expected default DocTopK=15, got %d", cfg.Retrieval.DocTopK)
	}
}
