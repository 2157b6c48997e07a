package config

import (
	"encoding/json"
	"os"
	"path/filepath"
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

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overwritten by a later one.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "env:1"}},
		&StructuredConfig{Server: Server{HTTPAddress: "flag:2", RequestTimeout: time.Second}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env:1", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithEnv_LoadsDotEnvFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_DEMO_USER_ID=dotenv-user\n"), 0o600))

	prev := dotEnvFile
	dotEnvFile = p
	t.Cleanup(func() {
		dotEnvFile = prev
		os.Unsetenv("APP_DEMO_USER_ID")
	})

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "dotenv-user", b.configs[0].App.DemoUserID)
}

func TestWithEnv_ProcessEnvBeatsDotEnv(t *testing.T) {
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_FRONTEND_URL=http://dotenv\n"), 0o600))
	t.Setenv("APP_FRONTEND_URL", "http://process")

	prev := dotEnvFile
	dotEnvFile = p
	t.Cleanup(func() { dotEnvFile = prev })

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "http://process", b.configs[0].App.FrontendURL)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-d", "postgres://x"}))

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "postgres://x", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withConfig ────────────────────────────────────────────────────────────────

func TestWithConfig_IgnoresNil(t *testing.T) {
	b := newConfigBuilder()
	b.withConfig(nil)
	assert.Empty(t, b.configs)

	b.withConfig(&StructuredConfig{})
	assert.Len(t, b.configs, 1)
}

// ── withFile ──────────────────────────────────────────────────────────────────

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithFile_AppendsJSONConfig(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.App.Version = "json-version"
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
}

func TestWithFile_AppendsYAMLConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte("app:\n  demo_user_id: yaml-user\n"), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: p})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "yaml-user", b.configs[1].App.DemoUserID)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_FirstPathWins verifies that the path from the highest-priority
// source is used.
func TestWithFile_FirstPathWins(t *testing.T) {
	first := StructuredFileConfig{}
	first.App.Version = "first"
	second := StructuredFileConfig{}
	second.App.Version = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: ""},
		&StructuredConfig{FilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{FilePath: writeTempJSONConfig(t, second)},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "first", b.configs[3].App.Version)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsUnsetFields(t *testing.T) {
	cfg, err := newConfigBuilder().
		withConfig(&StructuredConfig{App: App{DemoUserID: "someone"}}).
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "someone", cfg.App.DemoUserID)
	assert.Equal(t, defaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultLocalDriver, cfg.Storage.Local.Driver)
	assert.Equal(t, int64(defaultLocalQuotaBytes), cfg.Storage.Local.QuotaBytes)
	assert.Equal(t, defaultLineAuthURL, cfg.Line.AuthURL)
}
