package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "STATIC_DIR", "MAX_BODY_BYTES", "ALLOWED_ORIGINS",
		"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_ENDPOINT", "OPENAI_TIMEOUT",
		"LOG_LEVEL", "LOG_FORMAT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, DefaultOpenAIEndpoint, cfg.OpenAIEndpoint)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, int64(1_000_000), cfg.MaxBodyBytes)
	assert.Zero(t, cfg.OpenAITimeout)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8081")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_TIMEOUT", "15s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg := Load()

	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, 15*time.Second, cfg.OpenAITimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidPortFallsBack(t *testing.T) {
	for _, value := range []string{"abc", "-1", "0", "70000"} {
		t.Run(value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("PORT", value)
			assert.Equal(t, DefaultPort, Load().Port)
		})
	}
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, (&Config{}).Validate(), ErrMissingAPIKey)
	assert.ErrorIs(t, (&Config{OpenAIAPIKey: "   "}).Validate(), ErrMissingAPIKey)
	assert.NoError(t, (&Config{OpenAIAPIKey: "sk-test"}).Validate())
}

func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	const fresh = "TUTOR_TEST_DOTENV_FRESH"
	t.Cleanup(func() { os.Unsetenv(fresh) })
	t.Setenv("OPENAI_MODEL", "from-process")

	path := filepath.Join(t.TempDir(), ".env")
	content := "# comment line\n\nOPENAI_MODEL=from-file\n" + fresh + "=loaded\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, "from-process", os.Getenv("OPENAI_MODEL"))
	assert.Equal(t, "loaded", os.Getenv(fresh))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
