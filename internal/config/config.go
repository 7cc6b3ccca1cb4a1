package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Redis   RedisConfig
	Session SessionConfig
	LLM     LLMConfig
	Intake  IntakeConfig
	Quiz    QuizConfig
	History HistoryConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AllowOrigins string
}

type LoggerConfig struct {
	Level string
	Env   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SessionConfig controls how long a quiz session lives in the store and
// which cookie carries its id.
type SessionConfig struct {
	TTL        time.Duration
	CookieName string
	Secure     bool
}

type LLMConfig struct {
	Provider    string
	Model       string
	Temperature float64
	Timeout     time.Duration
	Gemini      GeminiConfig
	OpenAI      OpenAIConfig
	Ollama      OllamaConfig
}

type GeminiConfig struct {
	APIKey string `yaml:"api_key"`
}

type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
}

type OllamaConfig struct {
	Server string
}

// IntakeConfig.RequireAPIKey turns on the client-supplied credential form.
type IntakeConfig struct {
	RequireAPIKey bool
}

type QuizConfig struct {
	QuestionCount int
}

type HistoryConfig struct {
	Enabled bool
	Driver  string
	DSN     string
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 120)
	viper.SetDefault("server.allow_origins", "*")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("session.ttl", 24)
	viper.SetDefault("session.cookie_name", "quiz_session")
	viper.SetDefault("llm.provider", "gemini")
	viper.SetDefault("llm.model", "gemini-2.0-flash")
	viper.SetDefault("llm.temperature", 0.7)
	viper.SetDefault("llm.timeout", 0)
	viper.SetDefault("llm.ollama.server", "http://localhost:11434")
	viper.SetDefault("quiz.question_count", 5)
	viper.SetDefault("history.driver", "sqlite")
	viper.SetDefault("history.dsn", "file:quiz_history.db?_pragma=busy_timeout(5000)")
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	setDefaults()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			AllowOrigins: viper.GetString("server.allow_origins"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Session: SessionConfig{
			TTL:        viper.GetDuration("session.ttl") * time.Hour,
			CookieName: viper.GetString("session.cookie_name"),
			Secure:     viper.GetBool("session.secure"),
		},
		LLM: LLMConfig{
			Provider:    viper.GetString("llm.provider"),
			Model:       viper.GetString("llm.model"),
			Temperature: viper.GetFloat64("llm.temperature"),
			Timeout:     viper.GetDuration("llm.timeout") * time.Second,
			Gemini:      GeminiConfig{APIKey: viper.GetString("llm.gemini.api_key")},
			OpenAI:      OpenAIConfig{APIKey: viper.GetString("llm.openai.api_key")},
			Ollama:      OllamaConfig{Server: viper.GetString("llm.ollama.server")},
		},
		Intake: IntakeConfig{
			RequireAPIKey: viper.GetBool("intake.require_api_key"),
		},
		Quiz: QuizConfig{
			QuestionCount: viper.GetInt("quiz.question_count"),
		},
		History: HistoryConfig{
			Enabled: viper.GetBool("history.enabled"),
			Driver:  viper.GetString("history.driver"),
			DSN:     viper.GetString("history.dsn"),
		},
	}

	// Override with the short environment names used in deployment
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = provider
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.LLM.Model = model
	}
	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		config.LLM.Gemini.APIKey = geminiKey
	}
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		config.LLM.OpenAI.APIKey = openAIKey
	}
	if ollamaServer := os.Getenv("OLLAMA_SERVER"); ollamaServer != "" {
		config.LLM.Ollama.Server = ollamaServer
	}
	if dsn := os.Getenv("HISTORY_DSN"); dsn != "" {
		config.History.DSN = dsn
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "gemini", "openai", "ollama":
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}
	if c.Quiz.QuestionCount <= 0 {
		return fmt.Errorf("quiz.question_count must be positive, got %d", c.Quiz.QuestionCount)
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("session.cookie_name cannot be empty")
	}
	return nil
}
