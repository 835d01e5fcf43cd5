package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseEnvLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{"simple", "FOO=bar", "FOO", "bar", true},
		{"comment", "# FOO=bar", "", "", false},
		{"blank", "   ", "", "", false},
		{"no equals", "FOO", "", "", false},
		{"export prefix", "export FOO=bar", "FOO", "bar", true},
		{"double quoted", `FOO="bar baz"`, "FOO", "bar baz", true},
		{"single quoted", "FOO='bar'", "FOO", "bar", true},
		{"equals in value", "URL=https://docs.example.com?a=b", "URL", "https://docs.example.com?a=b", true},
		{"empty key", "=bar", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := parseEnvLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if key != tt.wantKey || value != tt.wantValue {
				t.Errorf("got (%q, %q), want (%q, %q)", key, value, tt.wantKey, tt.wantValue)
			}
		})
	}
}

func TestLoadEnv_EnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("DECKHAND_TEST_VAR=from-file\n"), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	t.Setenv("DECKHAND_TEST_VAR", "from-env")

	if err := loadEnv(path); err != nil {
		t.Fatalf("loadEnv() error = %v", err)
	}

	if got := os.Getenv("DECKHAND_TEST_VAR"); got != "from-env" {
		t.Errorf("DECKHAND_TEST_VAR = %q, want environment to win", got)
	}
}

func TestLoadEnv_SetsUnsetVariable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("DECKHAND_TEST_UNSET=value\n"), 0o600); err != nil {
		t.Fatalf("writing env file: %v", err)
	}

	t.Setenv("DECKHAND_TEST_UNSET", "")

	if err := loadEnv(path); err != nil {
		t.Fatalf("loadEnv() error = %v", err)
	}

	if got := os.Getenv("DECKHAND_TEST_UNSET"); got != "value" {
		t.Errorf("DECKHAND_TEST_UNSET = %q, want %q", got, "value")
	}
}

func TestLoadEnv_MissingFileIsNil(t *testing.T) {
	if err := loadEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("loadEnv() on missing file = %v, want nil", err)
	}
}
