package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Mode string

const (
	ModeLocal Mode = "local"
	ModeCloud Mode = "cloud"
)

// LLM backends understood by the genai client.
const (
	BackendGemini = "gemini" // Gemini API, API key auth
	BackendVertex = "vertex" // Vertex AI, project + location
)

type Config struct {
	Mode Mode   `yaml:"mode"`
	Port string `yaml:"port"`

	// UserID names the local user on chat sessions opened from the terminal.
	UserID string `yaml:"user_id"`

	LLM   LLMConfig   `yaml:"llm"`
	Log   LogConfig   `yaml:"log"`
	Audio AudioConfig `yaml:"audio"`
}

type LLMConfig struct {
	Backend      string `yaml:"backend"` // "gemini" or "vertex"
	APIKey       string `yaml:"api_key"`
	GCPProjectID string `yaml:"gcp_project"`
	GCPLocation  string `yaml:"gcp_location"`
	ModelName    string `yaml:"model_name"`

	// UseMock forces the canned client. Unset means: mock in local mode
	// when no API key is configured.
	UseMock *bool `yaml:"use_mock"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty = stdout for serve, discard for tui
}

type AudioConfig struct {
	// Player is the command used to play a track, the file path is appended.
	Player    string `yaml:"player"`
	TracksDir string `yaml:"tracks_dir"`
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string) (bool, bool) {
	v := os.Getenv(key)
	if v == "" {
		return false, false
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true, true
	}
	return false, true
}

func defaults() *Config {
	return &Config{
		Mode:   ModeLocal,
		Port:   "8080",
		UserID: "local-user",
		LLM: LLMConfig{
			Backend:     BackendGemini,
			GCPLocation: "us-central1",
			ModelName:   "gemini-2.5-flash",
		},
		Log: LogConfig{
			Level: "info",
		},
		Audio: AudioConfig{
			Player:    "ffplay -nodisp -autoexit -loglevel quiet",
			TracksDir: "music",
		},
	}
}

// Load builds the config from defaults, then the YAML file at path (if path
// is not empty), then MINDMESH_* environment variables.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	cfg.applyEnv()

	if cfg.LLM.UseMock == nil {
		mock := cfg.Mode == ModeLocal && cfg.LLM.APIKey == ""
		cfg.LLM.UseMock = &mock
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Mode = Mode(getEnv("MINDMESH_MODE", string(c.Mode)))
	c.Port = getEnv("MINDMESH_PORT", getEnv("PORT", c.Port))
	c.UserID = getEnv("MINDMESH_USER_ID", c.UserID)

	c.LLM.Backend = getEnv("MINDMESH_LLM_BACKEND", c.LLM.Backend)
	c.LLM.APIKey = getEnv("MINDMESH_GEMINI_API_KEY", getEnv("GEMINI_API_KEY", c.LLM.APIKey))
	c.LLM.GCPProjectID = getEnv("MINDMESH_GCP_PROJECT", c.LLM.GCPProjectID)
	c.LLM.GCPLocation = getEnv("MINDMESH_GCP_LOCATION", c.LLM.GCPLocation)
	c.LLM.ModelName = getEnv("MINDMESH_MODEL_NAME", c.LLM.ModelName)
	if v, ok := getBoolEnv("MINDMESH_USE_MOCK_LLM"); ok {
		c.LLM.UseMock = &v
	}

	c.Log.Level = getEnv("MINDMESH_LOG_LEVEL", c.Log.Level)
	c.Log.File = getEnv("MINDMESH_LOG_FILE", c.Log.File)

	c.Audio.Player = getEnv("MINDMESH_AUDIO_PLAYER", c.Audio.Player)
	c.Audio.TracksDir = getEnv("MINDMESH_TRACKS_DIR", c.Audio.TracksDir)
}

// UseMockLLM reports whether the canned LLM client should be used.
func (c *Config) UseMockLLM() bool {
	return c.LLM.UseMock != nil && *c.LLM.UseMock
}

func validate(cfg *Config) error {
	switch cfg.Mode {
	case ModeLocal, ModeCloud:
	default:
		return fmt.Errorf("mode %q must be %q or %q", cfg.Mode, ModeLocal, ModeCloud)
	}

	if strings.TrimSpace(cfg.Port) == "" {
		return errors.New("port must be set")
	}

	if cfg.UseMockLLM() {
		return nil
	}

	switch cfg.LLM.Backend {
	case BackendGemini:
		if cfg.LLM.APIKey == "" {
			return errors.New("GEMINI_API_KEY must be set for the gemini backend")
		}
	case BackendVertex:
		if cfg.LLM.GCPProjectID == "" || cfg.LLM.GCPLocation == "" {
			return errors.New("MINDMESH_GCP_PROJECT and MINDMESH_GCP_LOCATION must be set for the vertex backend")
		}
	default:
		return fmt.Errorf("llm.backend %q must be %q or %q", cfg.LLM.Backend, BackendGemini, BackendVertex)
	}
	return nil
}
