package config

import (
	"encoding/json"
	"os"
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

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SecretKey:          "secret",
			TokenIssuer:        "go-blog",
			SessionDuration:    24 * time.Hour,
			RememberDuration:   8760 * time.Hour,
			ResetTokenDuration: 30 * time.Minute,
			PageSize:           5,
		},
		Storage: Storage{
			DB:      DB{Driver: DriverSQLite, DSN: "database.db"},
			Avatars: Avatars{Backend: AvatarBackendFile, Dir: "static/images"},
		},
		Server: Server{HTTPAddress: "localhost:8080", RequestTimeout: 30 * time.Second},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of a later
// source win while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{TokenIssuer: "override", PageSize: 10}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.App.TokenIssuer)
	assert.Equal(t, 10, cfg.App.PageSize)
	assert.Equal(t, "secret", cfg.App.SecretKey)
	assert.Equal(t, "database.db", cfg.Storage.DB.DSN)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *StructuredConfig) {}},
		{name: "missing secret key", mutate: func(c *StructuredConfig) { c.App.SecretKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing issuer", mutate: func(c *StructuredConfig) { c.App.TokenIssuer = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero reset duration", mutate: func(c *StructuredConfig) { c.App.ResetTokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "zero page size", mutate: func(c *StructuredConfig) { c.App.PageSize = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "postgres driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = DriverPostgres }},
		{name: "s3 without bucket", mutate: func(c *StructuredConfig) { c.Storage.Avatars.Backend = AvatarBackendS3 }, wantErr: ErrInvalidStorageConfigs},
		{
			name: "s3 with bucket",
			mutate: func(c *StructuredConfig) {
				c.Storage.Avatars.Backend = AvatarBackendS3
				c.Storage.Avatars.S3.Bucket = "avatars"
			},
		},
		{name: "unknown backend", mutate: func(c *StructuredConfig) { c.Storage.Avatars.Backend = "ftp" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = 0 }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_LastPathWins(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "from-json"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/ignored.json"},
		&StructuredConfig{JSONFilePath: path},
	)

	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "from-json", b.configs[2].App.Version)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Layering verifies env < flags < JSON precedence.
func TestGetStructuredConfig_Layering(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"page_size": 20},
	})

	setEnvVars(t, map[string]string{
		"APP_SECRET_KEY":   "env-secret",
		"APP_TOKEN_ISSUER": "env-issuer",
		"APP_PAGE_SIZE":    "7",
	})

	cfg, err := GetStructuredConfig([]string{"-token-issuer", "flag-issuer", "-c", path})

	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.SecretKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 20, cfg.App.PageSize)
	assert.Equal(t, 30*time.Minute, cfg.App.ResetTokenDuration)
	assert.Equal(t, "database.db", cfg.Storage.DB.DSN)
}

func TestGetStructuredConfig_MissingSecret(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_SECRET_KEY": ""})

	cfg, err := GetStructuredConfig(nil)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestGetStructuredConfig_BadFlag(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_SECRET_KEY": "secret"})

	_, err := GetStructuredConfig([]string{"-nope"})

	assert.Error(t, err)
}
