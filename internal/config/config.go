package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fxnlabs/kfd-isa/internal/isa"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	ArchitectureAuto    = "auto"
	DefaultTopologyPath = "/sys/devices/virtual/kfd/kfd/topology"
)

type LoggerConfig struct {
	Verbosity string `yaml:"verbosity"`
	// Encoding is "json" or "console".
	Encoding string `yaml:"encoding"`
}

type CatalogConfig struct {
	// Architecture is a display name ("ALDEBARAN"), a gfx target id
	// ("gfx90a") or "auto" to read it from the KFD topology.
	Architecture     string `yaml:"architecture"`
	TopologyPath     string `yaml:"topologyPath"`
	EmptyGEMMKernels bool   `yaml:"emptyGemmKernels"`
}

type ServerConfig struct {
	ListenAddress   string        `yaml:"listenAddress"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

type BundleConfig struct {
	// Compression is "none", "zstd" or "lz4".
	Compression string `yaml:"compression"`
}

type Config struct {
	Logger  LoggerConfig  `yaml:"logger"`
	Catalog CatalogConfig `yaml:"catalog"`
	Server  ServerConfig  `yaml:"server"`
	Bundle  BundleConfig  `yaml:"bundle"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logger: LoggerConfig{
			Verbosity: "info",
			Encoding:  "json",
		},
		Catalog: CatalogConfig{
			Architecture: ArchitectureAuto,
			TopologyPath: DefaultTopologyPath,
		},
		Server: ServerConfig{
			ListenAddress:   ":8090",
			ReadTimeout:     10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Bundle: BundleConfig{
			Compression: "zstd",
		},
	}
}

// LoadConfig reads a YAML file over the defaults. An empty path returns
// the defaults.
func LoadConfig(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return config, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	if _, err := zap.ParseAtomicLevel(c.Logger.Verbosity); err != nil {
		return fmt.Errorf("logger.verbosity: %w", err)
	}
	switch c.Logger.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("logger.encoding: unsupported %q", c.Logger.Encoding)
	}
	switch c.Bundle.Compression {
	case "none", "zstd", "lz4":
	default:
		return fmt.Errorf("bundle.compression: unsupported %q", c.Bundle.Compression)
	}
	if !strings.EqualFold(c.Catalog.Architecture, ArchitectureAuto) {
		if _, err := isa.ParseArchitecture(c.Catalog.Architecture); err != nil {
			return fmt.Errorf("catalog.architecture: %w", err)
		}
	}
	if c.Server.ShutdownTimeout < 0 || c.Server.ReadTimeout < 0 {
		return fmt.Errorf("server: timeouts must not be negative")
	}
	return nil
}
