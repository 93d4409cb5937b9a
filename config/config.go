package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Table    UpstreamConfig `yaml:"table"`
	Catering UpstreamConfig `yaml:"catering"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Audit    AuditConfig    `yaml:"audit"`
	UseStubs bool           `yaml:"use_stubs"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir"`
}

// UpstreamConfig describes one of the two catalog services (flight board
// and catering).
type UpstreamConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (u UpstreamConfig) Timeout() time.Duration {
	if u.TimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(u.TimeoutSeconds) * time.Second
}

type RedisConfig struct {
	Addr            string `yaml:"addr"`
	Password        string `yaml:"password"`
	DB              int    `yaml:"db"`
	FlightsCacheTTL int    `yaml:"flights_cache_ttl_seconds"`
}

type KafkaConfig struct {
	Brokers    []string `yaml:"brokers"`
	AuditTopic string   `yaml:"audit_topic"`
	GroupID    string   `yaml:"group_id"`
}

type AuditConfig struct {
	LogDir string `yaml:"log_dir"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
