package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	if err := BindEnv(v); err != nil {
		t.Fatalf("BindEnv: %v", err)
	}
	return v
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENWEBUI_API_KEY", "k")
	v := newViper(t)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != "0.0.0.0:8000" {
		t.Errorf("expected default addr, got %q", cfg.Server.Addr)
	}
	if cfg.LLM.Provider != "openai" {
		t.Errorf("expected provider 'openai', got %q", cfg.LLM.Provider)
	}
	if cfg.LLM.Model != "mistral-nemo:latest" {
		t.Errorf("expected default model, got %q", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 120*time.Second {
		t.Errorf("expected 120s timeout, got %s", cfg.LLM.Timeout)
	}
	if lc := LoadLog(v); lc.Format != "console" || lc.Level != "info" {
		t.Errorf("expected info/console logging in development, got %+v", lc)
	}
	if cfg.ValidateLanguage {
		t.Error("expected language validation off by default")
	}
}

func TestLoad_OpenWebUIEnv(t *testing.T) {
	t.Setenv("OPENWEBUI_BASE_URL", "http://webui.local/api")
	t.Setenv("OPENWEBUI_API_KEY", "sk-webui")
	v := newViper(t)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLM.BaseURL != "http://webui.local/api" {
		t.Errorf("unexpected base URL %q", cfg.LLM.BaseURL)
	}
	if cfg.LLM.APIKey != "sk-webui" {
		t.Errorf("unexpected api key %q", cfg.LLM.APIKey)
	}
}

func TestLoad_PrefixedEnvWins(t *testing.T) {
	t.Setenv("OPENWEBUI_API_KEY", "sk-webui")
	t.Setenv("VOICEMSG_LLM_API_KEY", "sk-prefixed")
	t.Setenv("VOICEMSG_LLM_MODEL", "llama3.1:8b")
	t.Setenv("VOICEMSG_LLM_TIMEOUT", "30s")
	t.Setenv("VOICEMSG_SERVER_ENV", "production")
	v := newViper(t)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LLM.APIKey != "sk-prefixed" {
		t.Errorf("expected prefixed key to win, got %q", cfg.LLM.APIKey)
	}
	if cfg.LLM.Model != "llama3.1:8b" {
		t.Errorf("expected model override, got %q", cfg.LLM.Model)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("expected 30s, got %s", cfg.LLM.Timeout)
	}
	if lc := LoadLog(v); lc.Format != "json" {
		t.Errorf("expected json format in production, got %q", lc.Format)
	}
}

func TestLoadLog(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want LogConfig
	}{
		{name: "defaults", want: LogConfig{Level: "info", Format: "console"}},
		{name: "production", env: map[string]string{"VOICEMSG_SERVER_ENV": "production"}, want: LogConfig{Level: "info", Format: "json"}},
		{name: "explicit format wins", env: map[string]string{"VOICEMSG_SERVER_ENV": "production", "VOICEMSG_LOG_FORMAT": "console", "VOICEMSG_LOG_LEVEL": "debug"}, want: LogConfig{Level: "debug", Format: "console"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No API key is set: logging must not depend on Validate.
			t.Setenv("OPENWEBUI_API_KEY", "")
			t.Setenv("VOICEMSG_LLM_API_KEY", "")
			for k, val := range tt.env {
				t.Setenv(k, val)
			}
			got := LoadLog(newViper(t))
			if got != tt.want {
				t.Errorf("LoadLog() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voicemsg.yaml")
	content := `
server:
  addr: 127.0.0.1:9000
llm:
  provider: ollama
  base_url: http://gpu-box:11434
  model: qwen2.5:7b
validate_language: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	v := newViper(t)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.LLM.Provider != "ollama" || cfg.LLM.BaseURL != "http://gpu-box:11434" || cfg.LLM.Model != "qwen2.5:7b" {
		t.Errorf("unexpected llm config %+v", cfg.LLM)
	}
	if !cfg.ValidateLanguage {
		t.Error("expected validate_language=true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"missing api key", func(c *Config) { c.LLM.APIKey = "" }, "llm.api_key is required"},
		{"ollama without key", func(c *Config) { c.LLM.Provider = "ollama"; c.LLM.APIKey = "" }, ""},
		{"unknown provider", func(c *Config) { c.LLM.Provider = "anthropic" }, "unknown llm.provider"},
		{"empty model", func(c *Config) { c.LLM.Model = "" }, "llm.model"},
		{"zero timeout", func(c *Config) { c.LLM.Timeout = 0 }, "llm.timeout"},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, "server.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Server: ServerConfig{Addr: ":8000"},
			}
			cfg.LLM.Provider = "openai"
			cfg.LLM.APIKey = "k"
			cfg.LLM.Model = "m"
			cfg.LLM.Timeout = time.Second
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("VOICEMSG_TEST_DOTENV=from-file\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VOICEMSG_TEST_DOTENV", "")
	os.Unsetenv("VOICEMSG_TEST_DOTENV")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := os.Getenv("VOICEMSG_TEST_DOTENV"); got != "from-file" {
		t.Errorf("expected value from .env, got %q", got)
	}
}
