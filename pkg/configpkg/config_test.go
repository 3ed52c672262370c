package configpkg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600); err != nil {
		t.Fatalf("os.WriteFile() returned error: %v", err)
	}

	return dir
}

func TestLoad(t *testing.T) {
	dir := writeEnv(t, "GO_ENV=development\nSERVER_ADDRESS=0.0.0.0:9090\nCORS_ORIGIN=http://localhost:3000\n")

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", dir, err)
	}

	want := Config{
		ServerAddress:   "0.0.0.0:9090",
		Environment:     "development",
		CORSOrigin:      "http://localhost:3000",
		CORSMaxAge:      10 * time.Minute,
		MetricsPath:     "/metrics",
		ShutdownTimeout: 10 * time.Second,
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load(%q) mismatch (-want +got):\n%s", dir, diff)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := writeEnv(t, "SERVER_ADDRESS=0.0.0.0:9090\nSHUTDOWN_TIMEOUT=3s\n")

	t.Setenv("SERVER_ADDRESS", "127.0.0.1:7070")

	got, err := Load(dir)
	if err != nil {
		t.Fatalf("Load(%q) returned error: %v", dir, err)
	}

	if got.ServerAddress != "127.0.0.1:7070" {
		t.Errorf("got.ServerAddress = %q, want %q", got.ServerAddress, "127.0.0.1:7070")
	}

	if got.ShutdownTimeout != 3*time.Second {
		t.Errorf("got.ShutdownTimeout = %v, want %v", got.ShutdownTimeout, 3*time.Second)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(dir); err == nil {
		t.Errorf("Load(%q) returned nil error, want error", dir)
	}
}
