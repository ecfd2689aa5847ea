package config

import "testing"

func TestLoadReadsDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "http://qdrant.internal:6333")

	cfg := Load()
	if cfg.Qdrant.URL != "http://qdrant.internal:6333" {
		t.Errorf("Qdrant.URL = %q, want the DATABASE_URL value", cfg.Qdrant.URL)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.App.Port != "3000" {
		t.Errorf("App.Port = %q, want default 3000", cfg.App.Port)
	}
	if cfg.Qdrant.DenseSize != 1536 {
		t.Errorf("Qdrant.DenseSize = %d, want default 1536", cfg.Qdrant.DenseSize)
	}
	if cfg.Ai.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("Ai.EmbeddingModel = %q", cfg.Ai.EmbeddingModel)
	}
}
