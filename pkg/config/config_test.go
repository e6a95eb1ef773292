package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv points config discovery at an empty directory and clears the
// override variables, restoring everything when the test finishes.
func isolateEnv(t *testing.T) {
	t.Helper()

	origConfig := os.Getenv("MINIGREP_CONFIG")
	origMaxLine := os.Getenv("MINIGREP_MAX_LINE_BYTES")
	origTimeout := os.Getenv("MINIGREP_MATCH_TIMEOUT")
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	t.Cleanup(func() {
		_ = os.Setenv("MINIGREP_CONFIG", origConfig)
		_ = os.Setenv("MINIGREP_MAX_LINE_BYTES", origMaxLine)
		_ = os.Setenv("MINIGREP_MATCH_TIMEOUT", origTimeout)
		_ = os.Setenv("XDG_CONFIG_HOME", origXDG)
	})

	_ = os.Unsetenv("MINIGREP_CONFIG")
	_ = os.Unsetenv("MINIGREP_MAX_LINE_BYTES")
	_ = os.Unsetenv("MINIGREP_MATCH_TIMEOUT")
	_ = os.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Check default values
	if cfg.MaxLineBytes != 1024*1024 {
		t.Errorf("expected MaxLineBytes to be 1048576 but got %d", cfg.MaxLineBytes)
	}
	if cfg.MatchTimeout != 0 {
		t.Errorf("expected MatchTimeout to be disabled but got %v", cfg.MatchTimeout)
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	isolateEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxLineBytes != 1024*1024 {
		t.Errorf("expected defaults without a config file but got MaxLineBytes=%d", cfg.MaxLineBytes)
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		envVars   map[string]string
		checkFunc func(*testing.T, *Config)
		wantErr   bool
	}{
		{
			name: "valid environment variables",
			envVars: map[string]string{
				"MINIGREP_MAX_LINE_BYTES": "4096",
				"MINIGREP_MATCH_TIMEOUT":  "500ms",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				if cfg.MaxLineBytes != 4096 {
					t.Errorf("expected MaxLineBytes to be 4096 but got %d", cfg.MaxLineBytes)
				}
				if cfg.MatchTimeout != 500*time.Millisecond {
					t.Errorf("expected MatchTimeout to be 500ms but got %v", cfg.MatchTimeout)
				}
			},
		},
		{
			name: "invalid max line bytes",
			envVars: map[string]string{
				"MINIGREP_MAX_LINE_BYTES": "lots",
			},
			wantErr: true,
		},
		{
			name: "invalid timeout",
			envVars: map[string]string{
				"MINIGREP_MATCH_TIMEOUT": "invalid",
			},
			wantErr: true,
		},
		{
			name: "zero max line bytes fails validation",
			envVars: map[string]string{
				"MINIGREP_MAX_LINE_BYTES": "0",
			},
			wantErr: true,
		},
		{
			name: "negative timeout fails validation",
			envVars: map[string]string{
				"MINIGREP_MATCH_TIMEOUT": "-1s",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			for k, v := range tt.envVars {
				_ = os.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	isolateEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := strings.Join([]string{
		"max_line_bytes: 8192",
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	_ = os.Setenv("MINIGREP_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxLineBytes != 8192 {
		t.Errorf("expected MaxLineBytes to be 8192 but got %d", cfg.MaxLineBytes)
	}
}

func TestLoadFromFile_EnvOverridesFile(t *testing.T) {
	isolateEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("max_line_bytes: 8192\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	_ = os.Setenv("MINIGREP_CONFIG", path)
	_ = os.Setenv("MINIGREP_MAX_LINE_BYTES", "2048")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MaxLineBytes != 2048 {
		t.Errorf("expected env to override file but got MaxLineBytes=%d", cfg.MaxLineBytes)
	}
}

func TestLoadFromFile_Malformed(t *testing.T) {
	isolateEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("max_line_bytes: [not an int\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	_ = os.Setenv("MINIGREP_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}
