package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	MongoDB MongoDBConfig
	LLM     LLMConfig
	Redis   RedisConfig
	Log     LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// LLMConfig holds configuration for the AI completion service
type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
	MockAPI bool
}

// RedisConfig holds Redis configuration. An empty Addr disables Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Format string
}

// envAliases binds the variable names used by existing deployments
var envAliases = map[string][]string{
	"mongodb.uri":         {"MONGO_URL", "MONGODB_URI"},
	"mongodb.database":    {"DB_NAME", "MONGODB_DATABASE"},
	"llm.apikey":          {"EMERGENT_LLM_KEY", "OPENAI_API_KEY", "LLM_APIKEY"},
	"llm.baseurl":         {"LLM_BASE_URL", "LLM_BASEURL"},
	"server.alloworigins": {"CORS_ORIGINS", "SERVER_ALLOWORIGINS"},
	"server.port":         {"PORT", "SERVER_PORT"},
}

// Load loads configuration from environment variables and an optional
// config.yaml found in path or path/config.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(path + "/config")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, names := range envAliases {
		if err := v.BindEnv(append([]string{key}, names...)...); err != nil {
			return nil, err
		}
	}

	setDefaults(v)

	// It's okay if config file is not found, we'll use environment variables
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// CORS_ORIGINS arrives as one comma separated string
	cfg.Server.AllowOrigins = splitList(cfg.Server.AllowOrigins)

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8001")
	v.SetDefault("server.alloworigins", []string{"*"})
	v.SetDefault("mongodb.uri", "mongodb://localhost:27017")
	v.SetDefault("mongodb.database", "adspendwise")
	v.SetDefault("mongodb.timeout", 10*time.Second)
	v.SetDefault("llm.baseurl", "https://api.openai.com/v1")
	v.SetDefault("llm.model", "gpt-4o")
	v.SetDefault("llm.timeout", 60*time.Second)
	v.SetDefault("llm.mockapi", false)
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
