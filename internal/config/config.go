package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	LLM    LLMConfig
	Cache  CacheConfig
	CORS   CORSConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LLMConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	Timeout   time.Duration
	MaxTokens int
}

type CacheConfig struct {
	// DocumentTTL is the freshness window for the single-slot document cache.
	DocumentTTL time.Duration
}

type CORSConfig struct {
	AllowOrigins  []string
	OriginPattern string
}

type LoggerConfig struct {
	Env   string
	Level string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("llm.base_url", "https://api.deepseek.com/v1")
	viper.SetDefault("llm.model", "deepseek-chat")
	viper.SetDefault("llm.timeout", 60)
	viper.SetDefault("llm.max_tokens", 800)
	viper.SetDefault("cache.document_ttl", 120)
	viper.SetDefault("cors.allow_origins", []string{
		"https://testurself-frontend.vercel.app",
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	})
	viper.SetDefault("cors.origin_pattern", `^https://testurself-frontend.*\.vercel\.app$`)
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")

	viper.AutomaticEnv()

	// The config file is optional; defaults plus environment variables are
	// enough to start the service.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		LLM: LLMConfig{
			APIKey:    viper.GetString("llm.api_key"),
			BaseURL:   viper.GetString("llm.base_url"),
			Model:     viper.GetString("llm.model"),
			Timeout:   viper.GetDuration("llm.timeout") * time.Second,
			MaxTokens: viper.GetInt("llm.max_tokens"),
		},
		Cache: CacheConfig{
			DocumentTTL: viper.GetDuration("cache.document_ttl") * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins:  viper.GetStringSlice("cors.allow_origins"),
			OriginPattern: viper.GetString("cors.origin_pattern"),
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("DEEPSEEK_API_KEY"); apiKey != "" {
		config.LLM.APIKey = apiKey
	}
	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		config.LLM.BaseURL = baseURL
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.LLM.Model = model
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	return config, nil
}
