package router

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ROUTER_REDIRECT_FIXED_PATH", "false")
	t.Setenv("ROUTER_SAVE_MATCHED_ROUTE_PATH", "true")
	t.Setenv("ROUTER_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.RedirectTrailingSlash)
	assert.False(t, cfg.RedirectFixedPath)
	assert.True(t, cfg.HandleMethodNotAllowed)
	assert.True(t, cfg.HandleOPTIONS)
	assert.True(t, cfg.SaveMatchedRoutePath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFromFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), ".env")
	content := "ROUTER_HANDLE_OPTIONS=false\nROUTER_HANDLE_METHOD_NOT_ALLOWED=false\n"
	require.NoError(t, os.WriteFile(filename, []byte(content), 0o600))

	// The environment wins over the file
	t.Setenv("ROUTER_HANDLE_METHOD_NOT_ALLOWED", "true")

	t.Cleanup(func() {
		os.Unsetenv("ROUTER_HANDLE_OPTIONS")
	})

	cfg, err := LoadConfig(filename)
	require.NoError(t, err)

	assert.False(t, cfg.HandleOPTIONS)
	assert.True(t, cfg.HandleMethodNotAllowed)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)

	t.Setenv("ROUTER_HANDLE_OPTIONS", "maybe")

	_, err = LoadConfig()
	assert.ErrorContains(t, err, "parse router config")
}

func TestNewWithConfig(t *testing.T) {
	var logs bytes.Buffer

	cfg := DefaultConfig()
	cfg.RedirectTrailingSlash = false
	cfg.SaveMatchedRoutePath = true
	cfg.LogLevel = "debug"

	r, err := NewWithConfig(cfg, zerolog.New(&logs))
	require.NoError(t, err)

	assert.False(t, r.RedirectTrailingSlash)
	assert.True(t, r.RedirectFixedPath)
	assert.True(t, r.HandleMethodNotAllowed)
	assert.True(t, r.HandleOPTIONS)
	assert.True(t, r.SaveMatchedRoutePath)
	assert.Equal(t, zerolog.DebugLevel, r.Logger.GetLevel())

	r.GET("/users/:id", func(_ *fasthttp.RequestCtx) {})
	assert.Contains(t, logs.String(), `"pattern":"/users/:id"`)

	ctx := newRequestCtx(fasthttp.MethodGet, "/users/1/")
	r.Handler(ctx)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestNewWithConfigDisabledLogging(t *testing.T) {
	var logs bytes.Buffer

	r, err := NewWithConfig(DefaultConfig(), zerolog.New(&logs))
	require.NoError(t, err)

	r.GET("/", func(_ *fasthttp.RequestCtx) {})
	assert.Empty(t, logs.String())
}

func TestNewWithConfigInvalidLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "loud"

	r, err := NewWithConfig(cfg, zerolog.Nop())
	assert.Nil(t, r)
	assert.ErrorContains(t, err, "parse router log level")
}
