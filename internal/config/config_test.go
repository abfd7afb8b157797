package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"MINDMESH_MODE", "MINDMESH_PORT", "PORT", "MINDMESH_USER_ID",
		"MINDMESH_LLM_BACKEND", "MINDMESH_GEMINI_API_KEY", "GEMINI_API_KEY",
		"MINDMESH_GCP_PROJECT", "MINDMESH_GCP_LOCATION", "MINDMESH_MODEL_NAME",
		"MINDMESH_USE_MOCK_LLM", "MINDMESH_LOG_LEVEL", "MINDMESH_LOG_FILE",
		"MINDMESH_AUDIO_PLAYER", "MINDMESH_TRACKS_DIR",
	} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mindmesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ModeLocal, cfg.Mode)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, BackendGemini, cfg.LLM.Backend)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.ModelName)
	assert.True(t, cfg.UseMockLLM(), "local mode without a key uses the mock")
}

func TestLoad_APIKeyDisablesMockByDefault(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "k-123")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "k-123", cfg.LLM.APIKey)
	assert.False(t, cfg.UseMockLLM())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
mode: cloud
port: "9090"
llm:
  backend: vertex
  gcp_project: from-file
  model_name: gemini-2.5-flash-lite
log:
  level: debug
audio:
  tracks_dir: /srv/sounds
`)
	t.Setenv("MINDMESH_GCP_PROJECT", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ModeCloud, cfg.Mode)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "from-env", cfg.LLM.GCPProjectID)
	assert.Equal(t, "us-central1", cfg.LLM.GCPLocation)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.LLM.ModelName)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/srv/sounds", cfg.Audio.TracksDir)
	assert.False(t, cfg.UseMockLLM())
}

func TestLoad_MockFlagFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("MINDMESH_MODE", "cloud")
	t.Setenv("MINDMESH_USE_MOCK_LLM", "1")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.UseMockLLM())
}

func TestLoad_ValidationErrors(t *testing.T) {
	t.Run("cloud gemini without key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MINDMESH_MODE", "cloud")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	})

	t.Run("vertex without project", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MINDMESH_USE_MOCK_LLM", "0")
		t.Setenv("MINDMESH_LLM_BACKEND", "vertex")

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MINDMESH_GCP_PROJECT")
	})

	t.Run("unknown mode", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MINDMESH_MODE", "staging")

		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("bad yaml", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(writeFile(t, "mode: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse yaml")
	})

	t.Run("missing file", func(t *testing.T) {
		clearEnv(t)
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
