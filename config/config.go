package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API     APIConfig
	Session SessionConfig
	Log     LogConfig
}

type APIConfig struct {
	BaseURL   string
	WSBaseURL string
	Timeout   time.Duration
}

type SessionConfig struct {
	File string
}

type LogConfig struct {
	Level string
}

const (
	DefaultBaseURL   = "http://localhost:8000/api/v1"
	DefaultWSBaseURL = "ws://localhost:8000"
	DefaultTimeout   = 30 * time.Second
)

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env file is fine; environment variables still apply.
	_ = viper.ReadInConfig()

	baseURL := viper.GetString("API_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	wsBaseURL := viper.GetString("WS_BASE_URL")
	if wsBaseURL == "" {
		wsBaseURL = DefaultWSBaseURL
	}

	timeout, err := time.ParseDuration(viper.GetString("HTTP_TIMEOUT"))
	if err != nil {
		timeout = DefaultTimeout
	}

	sessionFile := viper.GetString("SESSION_FILE")
	if sessionFile == "" {
		sessionFile = ".healthassist_session.json"
	}

	logLevel := viper.GetString("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	config := &Config{
		API: APIConfig{
			BaseURL:   baseURL,
			WSBaseURL: wsBaseURL,
			Timeout:   timeout,
		},
		Session: SessionConfig{
			File: sessionFile,
		},
		Log: LogConfig{
			Level: logLevel,
		},
	}

	return config, nil
}
