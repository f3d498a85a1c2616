// Package config loads the service configuration: code defaults, then the
// optional YAML file, then environment-variable overrides, validated last.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/raywall/inventory-quick-service/envloader"
)

// ServiceConfig is the root of the YAML configuration file.
type ServiceConfig struct {
	Version string         `yaml:"version"`
	Service ServiceDetails `yaml:"service" validate:"required"`
}

// ServiceDetails holds runtime settings for the inventory service.
type ServiceDetails struct {
	Name    string      `yaml:"name" validate:"required,hostname_rfc1123"`
	Runtime string      `yaml:"runtime" validate:"required,oneof=lambda local"`
	Port    int         `yaml:"port" env:"SERVICE_PORT" validate:"required_if=Runtime local"`
	Logging LoggingConf `yaml:"logging"`
	Metrics MetricsConf `yaml:"metrics"`
	Table   TableConf   `yaml:"table"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" validate:"omitempty,oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool   `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string `yaml:"namespace"`
}

// TableConf names the backing DynamoDB table.
type TableConf struct {
	Name    string `yaml:"name" env:"DYNAMODB_TABLE_NAME"`
	HashKey string `yaml:"hash_key" env:"DYNAMODB_HASH_KEY"`
}

// Default returns the configuration used when no file is supplied.
func Default() *ServiceConfig {
	return &ServiceConfig{
		Version: "1",
		Service: ServiceDetails{
			Name:    "inventory-quick-service",
			Runtime: "lambda",
			Logging: LoggingConf{Enabled: true, Level: "info", Format: "json"},
			Table:   TableConf{Name: "InventoryDB", HashKey: "id"},
		},
	}
}

// Load builds the effective configuration. path may be empty, in which case
// only defaults and the environment apply.
func Load(path string) (*ServiceConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	// env wins over both defaults and file
	if err := envloader.Load(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate applies the struct validation tags.
func (c *ServiceConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}
