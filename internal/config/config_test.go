package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "holiday.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoadFrom(t *testing.T) {
	path := writeConfig(t, `
username: octocat
timeout_seconds: 15
base_url: http://localhost:8080
output_json: artifacts/holiday.json
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.Username != "octocat" {
		t.Errorf("Username = %q", cfg.Username)
	}

	if cfg.TimeoutSeconds != 15 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}

	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}

	if cfg.OutputJSON != "artifacts/holiday.json" {
		t.Errorf("OutputJSON = %q", cfg.OutputJSON)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yml"))

	if err != nil {
		t.Fatalf("missing config must not be an error, got %v", err)
	}

	if cfg != nil {
		t.Errorf("missing config must yield nil, got %+v", cfg)
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := writeConfig(t, "username: [unclosed")

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadFromNegativeTimeout(t *testing.T) {
	path := writeConfig(t, "timeout_seconds: -5")

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected a validation error")
	}
}

func TestResolveUsername(t *testing.T) {
	cfg := &Config{Username: "from-config"}

	t.Run("positional argument wins", func(t *testing.T) {
		t.Setenv(UsernameEnv, "from-env")

		if got := ResolveUsername("from-arg", cfg); got != "from-arg" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("environment beats config", func(t *testing.T) {
		t.Setenv(UsernameEnv, "from-env")

		if got := ResolveUsername("", cfg); got != "from-env" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("config beats default", func(t *testing.T) {
		t.Setenv(UsernameEnv, "")

		if got := ResolveUsername("", cfg); got != "from-config" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("built-in default", func(t *testing.T) {
		t.Setenv(UsernameEnv, "")

		if got := ResolveUsername("", nil); got != DefaultUsername {
			t.Errorf("got %q", got)
		}
	})
}
