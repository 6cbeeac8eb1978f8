package secrets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gregory-bot/telecurehospital/pkg/retry"
)

func fastRetry() retry.Config {
	return retry.Config{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, BackoffFactor: 2}
}

func vaultServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/v1/secret/data/telecure/triage", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("X-Vault-Token"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func testConfig(addr string) VaultConfig {
	return VaultConfig{
		Enabled:   true,
		Addr:      addr,
		Token:     "test-token",
		Mount:     "secret",
		Path:      "telecure/triage",
		KVVersion: 2,
		Timeout:   time.Second,
		Keys:      []string{"DB_PASSWORD", "REDIS_PASSWORD"},
	}
}

func TestApplyVaultSecrets_ExportsAllowedKeys(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("REDIS_PASSWORD", "from-env")
	t.Setenv("OPENAI_API_KEY", "")

	srv, _ := vaultServer(t, http.StatusOK,
		`{"data":{"data":{"DB_PASSWORD":"s3cret","REDIS_PASSWORD":"vault","OPENAI_API_KEY":"ignored"}}}`)

	result, err := ApplyVaultSecrets(context.Background(), testConfig(srv.URL), fastRetry())
	require.NoError(t, err)

	assert.Equal(t, []string{"DB_PASSWORD"}, result.Loaded)
	assert.Equal(t, []string{"REDIS_PASSWORD"}, result.Skipped)
	assert.Equal(t, "s3cret", os.Getenv("DB_PASSWORD"))
	assert.Equal(t, "from-env", os.Getenv("REDIS_PASSWORD"))
	assert.Empty(t, os.Getenv("OPENAI_API_KEY"))
}

func TestApplyVaultSecrets_Disabled(t *testing.T) {
	result, err := ApplyVaultSecrets(context.Background(), VaultConfig{}, fastRetry())
	require.NoError(t, err)
	assert.Empty(t, result.Loaded)
}

func TestApplyVaultSecrets_Incomplete(t *testing.T) {
	_, err := ApplyVaultSecrets(context.Background(), VaultConfig{Enabled: true, Addr: "http://vault"}, fastRetry())
	assert.Error(t, err)
}

func TestApplyVaultSecrets_ClientErrorNotRetried(t *testing.T) {
	srv, calls := vaultServer(t, http.StatusForbidden, `{"errors":["permission denied"]}`)

	_, err := ApplyVaultSecrets(context.Background(), testConfig(srv.URL), fastRetry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestApplyVaultSecrets_ServerErrorRetried(t *testing.T) {
	srv, calls := vaultServer(t, http.StatusServiceUnavailable, `sealed`)

	_, err := ApplyVaultSecrets(context.Background(), testConfig(srv.URL), fastRetry())
	require.Error(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
}

func TestBuildVaultURL(t *testing.T) {
	url, err := buildVaultURL("http://vault:8200/", "/secret/", "/app", 2)
	require.NoError(t, err)
	assert.Equal(t, "http://vault:8200/v1/secret/data/app", url)

	url, err = buildVaultURL("http://vault:8200", "kv", "app", 1)
	require.NoError(t, err)
	assert.Equal(t, "http://vault:8200/v1/kv/app", url)

	_, err = buildVaultURL("", "kv", "app", 2)
	assert.Error(t, err)
}

func TestStringifyVaultValue(t *testing.T) {
	assert.Equal(t, "true", stringifyVaultValue(true))
	assert.Equal(t, "5432", stringifyVaultValue(float64(5432)))
	assert.Equal(t, "", stringifyVaultValue(nil))
	assert.Equal(t, `["a","b"]`, stringifyVaultValue([]interface{}{"a", "b"}))
}

func TestLoadVaultConfigFromEnv(t *testing.T) {
	t.Setenv("VAULT_ENABLED", "TRUE")
	t.Setenv("VAULT_MOUNT", "")
	t.Setenv("VAULT_KV_VERSION", "1")
	t.Setenv("VAULT_TIMEOUT_MS", "250")
	t.Setenv("VAULT_KEYS", "DB_PASSWORD, ,REDIS_PASSWORD")

	cfg := LoadVaultConfigFromEnv()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "secret", cfg.Mount)
	assert.Equal(t, 1, cfg.KVVersion)
	assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
	assert.Equal(t, []string{"DB_PASSWORD", "REDIS_PASSWORD"}, cfg.Keys)
}
