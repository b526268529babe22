package config

import (
	"os"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if _, err := tmpFile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tmpFile.Close()
	return tmpFile.Name()
}

func TestLoad_EnvSubstitution(t *testing.T) {
	os.Setenv("TEST_REDIS_URL", "redis://localhost:6380/1")
	defer os.Unsetenv("TEST_REDIS_URL")

	path := writeTempConfig(t, `
operator: 0.0.2
txlog:
  backend: redis
  redis:
    url: ${TEST_REDIS_URL}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TxLog.Redis.URL != "redis://localhost:6380/1" {
		t.Errorf("Expected URL redis://localhost:6380/1, got %s", cfg.TxLog.Redis.URL)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeTempConfig(t, `
operator: 0.0.2
nodes:
  - account: 0.0.3
    address: 0.testnet.example.com:50211
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Retry.InitialDelay != 250*time.Millisecond {
		t.Errorf("expected default initial delay, got %v", cfg.Retry.InitialDelay)
	}
	if cfg.Retry.MaxDelay != 8*time.Second {
		t.Errorf("expected default max delay, got %v", cfg.Retry.MaxDelay)
	}
	if cfg.Retry.Multiplier != 2.0 {
		t.Errorf("expected default multiplier, got %v", cfg.Retry.Multiplier)
	}
	if cfg.TxLog.Backend != "none" {
		t.Errorf("expected txlog backend none, got %s", cfg.TxLog.Backend)
	}
}

func TestAppConfig_Conversions(t *testing.T) {
	path := writeTempConfig(t, `
operator: 0.0.2
nodes:
  - account: 0.0.3
    address: a.example.com:50211
  - account: 0.0.4
    address: b.example.com:50211
retry:
  initial_delay: 100ms
  max_delay: 2s
  multiplier: 3
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	op, err := cfg.OperatorAccount()
	if err != nil {
		t.Fatalf("OperatorAccount failed: %v", err)
	}
	if op.Num != 2 {
		t.Errorf("operator = %s, want 0.0.2", op)
	}

	nodes, err := cfg.NetworkNodes()
	if err != nil {
		t.Fatalf("NetworkNodes failed: %v", err)
	}
	if len(nodes) != 2 || nodes["a.example.com:50211"].Num != 3 {
		t.Errorf("unexpected nodes: %v", nodes)
	}

	b := cfg.Backoff()
	if b.InitialDelay != 100*time.Millisecond || b.MaxDelay != 2*time.Second || b.Multiplier != 3 {
		t.Errorf("unexpected backoff: %+v", b)
	}
}

func TestLoad_BadAccount(t *testing.T) {
	path := writeTempConfig(t, `
operator: not-an-account
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if _, err := cfg.OperatorAccount(); err == nil {
		t.Error("expected error for malformed operator account")
	}
}
