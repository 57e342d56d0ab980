package app

import (
	"path/filepath"
	"testing"

	"ArticlesRate/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Server: config.ServerConfig{Address: ":0"},
		Analysis: config.AnalysisConfig{
			MaxWaitingTimeSeconds: 3,
			MaxURLs:               10,
			ChargedDictDir:        filepath.Join("..", "..", "charged_dict"),
		},
		Logging: config.LoggingConfig{Level: "error"},
	}
}

func TestNewWiresPipeline(t *testing.T) {
	t.Parallel()

	application, err := New(testConfig(), nil)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if application.Pipeline() == nil {
		t.Fatal("expected a wired pipeline")
	}
}

func TestNewFailsWithoutChargedDict(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Analysis.ChargedDictDir = t.TempDir()

	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected startup error for missing charged dictionaries")
	}
}

func TestNewFailsWithBadLemmaDictionary(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Analysis.MorphDictPath = filepath.Join(t.TempDir(), "absent.tsv")

	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected startup error for unreadable lemma dictionary")
	}
}
