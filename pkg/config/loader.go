package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// fabulaYAMLConfig represents the complete fabula.yaml file structure.
// Every section is optional; omitted sections keep built-in defaults.
type fabulaYAMLConfig struct {
	Server         *ServerConfig         `yaml:"server"`
	Queue          *QueueConfig          `yaml:"queue"`
	APITimeouts    *TimeoutsConfig       `yaml:"api_timeouts"`
	Retry          *RetryConfig          `yaml:"retry"`
	Validation     *ValidationConfig     `yaml:"validation"`
	TimeEstimation *TimeEstimationConfig `yaml:"time_estimation"`
	Cover          *CoverConfig          `yaml:"cover_generation"`
	Cost           *CostConfig           `yaml:"cost_estimation"`
	Temperature    *TemperatureConfig    `yaml:"temperature"`
	Critic         *CriticConfig         `yaml:"literary_critic"`
	Models         *ModelsConfig         `yaml:"models"`
	Credits        *CreditsConfig        `yaml:"credits"`
	Blob           *BlobConfig           `yaml:"blob"`
	SMTP           *SMTPConfig           `yaml:"smtp"`
	Retention      *RetentionConfig      `yaml:"retention"`
	Prompts        *PromptsConfig        `yaml:"prompts"`
	Sanitizer      *SanitizerConfig      `yaml:"sanitizer"`
}

// Initialize loads, merges, and validates the configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load fabula.yaml from configDir (a missing file means pure defaults)
//  2. Expand environment variables ({{.VAR}} template syntax)
//  3. Parse YAML into structs
//  4. Merge the file on top of built-in defaults
//  5. Validate the resolved configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Queue.WorkerCount,
		"blob_base", cfg.Blob.BaseURI,
		"model_aliases", len(cfg.Models.Aliases))

	return cfg, nil
}

// load is the internal loader (not exported).
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	fileCfg, err := loader.loadFabulaYAML()
	if err != nil {
		return nil, NewLoadError("fabula.yaml", err)
	}

	cfg := DefaultConfig()
	cfg.configDir = configDir

	if fileCfg != nil {
		// File sections override defaults; unset fields keep their default.
		if err := mergeSection(cfg.Server, fileCfg.Server); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Queue, fileCfg.Queue); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Timeouts, fileCfg.APITimeouts); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Retry, fileCfg.Retry); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Validation, fileCfg.Validation); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.TimeEstimation, fileCfg.TimeEstimation); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Cover, fileCfg.Cover); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Cost, fileCfg.Cost); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Temperature, fileCfg.Temperature); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Critic, fileCfg.Critic); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Models, fileCfg.Models); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Credits, fileCfg.Credits); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Blob, fileCfg.Blob); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.SMTP, fileCfg.SMTP); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Retention, fileCfg.Retention); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Prompts, fileCfg.Prompts); err != nil {
			return nil, err
		}
		if err := mergeSection(cfg.Sanitizer, fileCfg.Sanitizer); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// mergeSection merges a non-nil file section over the default section.
// Non-zero file values win; zero values keep the default.
func mergeSection[T any](dst *T, src *T) error {
	if src == nil {
		return nil
	}
	if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge config section: %w", err)
	}
	return nil
}

// validate performs comprehensive validation on loaded configuration.
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) (found bool, err error) {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// letting the YAML parser surface a clearer error message.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return true, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return true, nil
}

func (l *configLoader) loadFabulaYAML() (*fabulaYAMLConfig, error) {
	var config fabulaYAMLConfig

	found, err := l.loadYAML("fabula.yaml", &config)
	if err != nil {
		return nil, err
	}
	if !found {
		slog.Warn("fabula.yaml not found, using built-in defaults",
			"config_dir", l.configDir)
		return nil, nil
	}

	return &config, nil
}
