package config_test

import (
	"context"
	"os"
	"testing"

	"prsummary/internal/app/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/prsummary")
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := config.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q, want default :8080", cfg.HTTPAddr)
	}
	if cfg.OpenAIModel != "gpt-4o-mini" {
		t.Errorf("OpenAIModel = %q, want default gpt-4o-mini", cfg.OpenAIModel)
	}
	if cfg.GitHubToken != "gh-token" {
		t.Errorf("GitHubToken = %q", cfg.GitHubToken)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	// t.Setenv registers the restore; the variable must be truly unset,
	// an empty value still counts as present.
	t.Setenv("DATABASE_URL", "x")
	os.Unsetenv("DATABASE_URL")
	t.Setenv("GITHUB_TOKEN", "gh-token")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	if _, err := config.Load(context.Background()); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}
