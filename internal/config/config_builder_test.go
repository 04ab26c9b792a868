package config

import (
	"encoding/json"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that an earlier config keeps its values
// and later configs only fill the gaps.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{UserID: "alice"}},
		&StructuredConfig{App: App{UserID: "bob", LogPath: "/tmp/vault.log"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.App.UserID)
	assert.Equal(t, "/tmp/vault.log", cfg.App.LogPath)
}

func TestBuild_RejectsNegativeConcurrency(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{DecryptConcurrency: -1}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_USER_ID", "env-user")
	t.Setenv("APP_KDF_ALGORITHM", "argon2id")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-user", b.configs[0].App.UserID)
	assert.Equal(t, "argon2id", b.configs[0].App.KDF.Algorithm)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("WORKERS_DECRYPT_CONCURRENCY", "many")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_AppendsParsedConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-user", "flag-user"})

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-user", b.configs[0].App.UserID)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-no-such-flag"})

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.UserID = "json-user"
	payload.Storage.DB.DSN = "json.db"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-user", b.configs[1].App.UserID)
	assert.Equal(t, "json.db", b.configs[1].Storage.DB.DSN)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.App.UserID = "first"
	last := StructuredJSONConfig{}
	last.App.UserID = "last"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last", b.configs[2].App.UserID)
}

func TestWithJSON_DoesNotAppend_WhenErrorAlreadySet(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: writeTempJSONConfig(t, StructuredJSONConfig{})})
	b.withJSON()

	assert.Len(t, b.configs, 1)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsEverything(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, KDFPBKDF2SHA256, cfg.App.KDF.Algorithm)
	assert.Equal(t, 100_000, cfg.App.KDF.Iterations)
	assert.Equal(t, uint32(1), cfg.App.KDF.ArgonTime)
	assert.Equal(t, uint32(64*1024), cfg.App.KDF.ArgonMemoryKiB)
	assert.Equal(t, uint8(4), cfg.App.KDF.ArgonThreads)
	assert.NotEmpty(t, cfg.App.UserID)
	assert.Equal(t, "vault.db", cfg.Storage.DB.DSN)
	assert.Equal(t, SaltDriverSQLite, cfg.Storage.Salt.Driver)
	assert.Equal(t, 10*time.Second, cfg.Storage.Salt.OpenTimeout)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers.DecryptConcurrency)
}

// TestGetStructuredConfig_Precedence verifies env > flags > json > defaults.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.App.UserID = "json-user"
	payload.App.LogPath = "json.log"
	payload.Storage.DB.DSN = "json.db"
	payload.Workers.DecryptConcurrency = 3
	path := writeTempJSONConfig(t, payload)

	t.Setenv("APP_USER_ID", "env-user")

	cfg, err := getStructuredConfig([]string{"-c", path, "-user", "flag-user", "-log", "flag.log"})
	require.NoError(t, err)

	assert.Equal(t, "env-user", cfg.App.UserID)
	assert.Equal(t, "flag.log", cfg.App.LogPath)
	assert.Equal(t, "json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 3, cfg.Workers.DecryptConcurrency)
	assert.Equal(t, 100_000, cfg.App.KDF.Iterations)
}
