// Package config provides configuration management for the translator
// application. Configuration comes from a JSON file in the user's config
// directory, with environment variables taking precedence for the API
// credential so the key never has to be written to disk.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/prixroxx/UniversalLanguageTranslator/internal/logger"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/translator"
	"github.com/prixroxx/UniversalLanguageTranslator/internal/types"
)

const (
	// DefaultConfigFileName is the default configuration file name
	DefaultConfigFileName = "universal-translator-config.json"
	// EnvAPIKey is the environment variable name for the provider API key
	EnvAPIKey = "OPENROUTER_API_KEY"
	// EnvBaseURL is the environment variable name for the API base URL
	EnvBaseURL = "OPENROUTER_BASE_URL"
	// EngineHTTP selects the direct net/http chat-completions engine
	EngineHTTP = "http"
	// EngineEino selects the eino chat model engine
	EngineEino = "eino"
)

// Manager manages application configuration
type Manager struct {
	configPath string
	config     *types.Config
}

// NewManager creates a Manager with the specified config path. If configPath
// is empty, it uses the default path in the user's home directory.
func NewManager(configPath string) (*Manager, error) {
	if configPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			logger.Error("failed to get user home directory", err)
			return nil, types.NewAppError(types.ErrConfig, "failed to get user home directory", err)
		}
		configPath = filepath.Join(homeDir, ".config", "universal-translator", DefaultConfigFileName)
	}

	logger.Info("config manager initialized", logger.String("configPath", configPath))
	return &Manager{
		configPath: configPath,
		config:     defaultConfig(),
	}, nil
}

// defaultConfig returns a Config with default values
func defaultConfig() *types.Config {
	temperature := translator.DefaultTemperature
	return &types.Config{
		APIKey:                "",
		BaseURL:               translator.DefaultBaseURL,
		Model:                 translator.DefaultModel,
		Referer:               translator.DefaultReferer,
		Engine:                EngineHTTP,
		Temperature:           &temperature,
		MaxTokens:             translator.DefaultMaxTokens,
		RequestTimeoutSeconds: int(translator.DefaultTimeout.Seconds()),
	}
}

// Load loads configuration from the config file. A missing file means
// defaults; an unreadable or malformed file falls back to defaults with a
// warning rather than blocking the session. Environment variables override
// the file for the API key and base URL.
func (m *Manager) Load() error {
	logger.Debug("loading configuration", logger.String("path", m.configPath))

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("config file not found, using defaults", logger.String("path", m.configPath))
			m.config = defaultConfig()
		} else {
			logger.Error("failed to read config file", err, logger.String("path", m.configPath))
			return types.NewAppError(types.ErrConfig, "failed to read config file", err)
		}
	} else {
		config := &types.Config{}
		if err := json.Unmarshal(data, config); err != nil {
			logger.Warn("invalid config file format, using defaults",
				logger.String("path", m.configPath), logger.Err(err))
			m.config = defaultConfig()
		} else {
			m.config = config
		}
	}

	m.applyDefaults()
	m.applyEnvironment()

	logger.Info("configuration loaded",
		logger.String("baseURL", m.config.BaseURL),
		logger.String("model", m.config.Model),
		logger.String("engine", m.config.Engine),
		logger.Bool("hasAPIKey", m.config.APIKey != ""))

	return nil
}

// applyDefaults fills zero-valued fields with defaults
func (m *Manager) applyDefaults() {
	defaults := defaultConfig()
	if m.config.BaseURL == "" {
		m.config.BaseURL = defaults.BaseURL
	}
	if m.config.Model == "" {
		m.config.Model = defaults.Model
	}
	if m.config.Referer == "" {
		m.config.Referer = defaults.Referer
	}
	if m.config.Engine == "" {
		m.config.Engine = defaults.Engine
	}
	// nil means unset; an explicit 0 from the file is kept
	if m.config.Temperature == nil {
		m.config.Temperature = defaults.Temperature
	}
	if m.config.MaxTokens <= 0 {
		m.config.MaxTokens = defaults.MaxTokens
	}
	if m.config.RequestTimeoutSeconds <= 0 {
		m.config.RequestTimeoutSeconds = defaults.RequestTimeoutSeconds
	}
}

// applyEnvironment lets environment variables override file values for the
// credential and endpoint.
func (m *Manager) applyEnvironment() {
	if key := os.Getenv(EnvAPIKey); key != "" {
		m.config.APIKey = key
	}
	if url := os.Getenv(EnvBaseURL); url != "" {
		m.config.BaseURL = url
	}
}

// Save writes the current configuration to the config file. The API key is
// written only if it did not come from the environment; callers that want
// the key kept out of the file should blank it first.
func (m *Manager) Save() error {
	dir := filepath.Dir(m.configPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return types.NewAppError(types.ErrConfig, "failed to create config directory", err)
		}
	}

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return types.NewAppError(types.ErrInternal, "failed to marshal config", err)
	}

	if err := os.WriteFile(m.configPath, data, 0600); err != nil {
		return types.NewAppError(types.ErrConfig, "failed to write config file", err)
	}

	return nil
}

// Get returns the current configuration.
func (m *Manager) Get() *types.Config {
	return m.config
}

// HasAPIKey reports whether a credential is available. Without one the
// pipeline must not attempt any network call.
func (m *Manager) HasAPIKey() bool {
	return m.config.APIKey != ""
}
