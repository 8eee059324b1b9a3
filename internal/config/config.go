package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRMin      = 0.0
	DefaultRMax      = 20.0
	DefaultPoints    = 2001
	DefaultMethod    = "numerov"
	DefaultPotential = "square-well"
	DefaultK2        = -0.407
	DefaultK2Min     = -3.9
	DefaultK2Max     = -0.01
	DefaultSamples   = 64
	DefaultMaxIter   = 100
	DefaultTol       = 1e-10
)

type Config struct {
	Potential string             `yaml:"potential"`
	Method    string             `yaml:"method"`
	L         int                `yaml:"l"`
	K2        float64            `yaml:"k2"`
	Params    map[string]float64 `yaml:"params,omitempty"`
	Grid      GridConfig         `yaml:"grid"`
	Scan      ScanConfig         `yaml:"scan"`
}

type GridConfig struct {
	RMin   float64 `yaml:"rmin"`
	RMax   float64 `yaml:"rmax"`
	Points int     `yaml:"points"`
}

type ScanConfig struct {
	K2Min   float64 `yaml:"k2min"`
	K2Max   float64 `yaml:"k2max"`
	Samples int     `yaml:"samples"`
	Workers int     `yaml:"workers"`
	MaxIter int     `yaml:"max_iter"`
	Tol     float64 `yaml:"tol"`
}

func DefaultConfig() *Config {
	return &Config{
		Potential: DefaultPotential,
		Method:    DefaultMethod,
		K2:        DefaultK2,
		Grid: GridConfig{
			RMin:   DefaultRMin,
			RMax:   DefaultRMax,
			Points: DefaultPoints,
		},
		Scan: ScanConfig{
			K2Min:   DefaultK2Min,
			K2Max:   DefaultK2Max,
			Samples: DefaultSamples,
			MaxIter: DefaultMaxIter,
			Tol:     DefaultTol,
		},
	}
}

// Load reads a YAML config on top of the defaults, so partial files only
// override what they mention.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
