package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Service         ServiceConfig        `mapstructure:"service"`
	Databases       DatabasesConfig      `mapstructure:"databases"`
	ExternalClients ExternalClientConfig `mapstructure:"externalClients"`
	Sync            SyncConfig           `mapstructure:"sync"`
	Cache           CacheConfig          `mapstructure:"cache"`
}

type ServiceType string

const (
	API    ServiceType = "API"
	WORKER ServiceType = "WORKER"
)

type ServiceConfig struct {
	Type ServiceType `mapstructure:"type"`
	Port string      `mapstructure:"port"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

type ExternalClientConfig struct {
	CryptoAPI CryptoAPIConfig `mapstructure:"cryptoApi"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
}

type CryptoAPIConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
	APIKey  string `mapstructure:"apiKey"`
}

type OpenAIConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
	APIKey  string `mapstructure:"apiKey"`
	Model   string `mapstructure:"model"`
}

type SyncConfig struct {
	CronSpec   string   `mapstructure:"cronSpec"`
	Coins      []string `mapstructure:"coins"`
	VsCurrency string   `mapstructure:"vsCurrency"`
}

type CacheConfig struct {
	PriceTTLSeconds   int `mapstructure:"priceTTLSeconds"`
	InsightTTLSeconds int `mapstructure:"insightTTLSeconds"`
}

// LoadConfig reads settings/appsettings.yaml, or appsettings.<ENV>.yaml when
// env is non-empty, then applies environment variable overrides.
func LoadConfig(path, env string) (*Config, error) {
	var cfg Config

	name := "appsettings"
	if env != "" {
		name = fmt.Sprintf("appsettings.%s", env)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(name)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// applyEnvOverrides maps the deployment environment variables onto the
// config. API keys are never stored in the settings files.
func applyEnvOverrides(cfg *Config) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Databases.SQL.ConnectionString = dsn
	}
	if key := os.Getenv("CRYPTO_API_KEY"); key != "" {
		cfg.ExternalClients.CryptoAPI.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.ExternalClients.OpenAI.APIKey = key
	}
}
