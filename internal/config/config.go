// Package config loads training configuration from YAML.
//
// Zero fields take defaults, so an empty file trains the default network on
// the default dataset:
//
//	model:
//	  layers: [4, 4, 1]
//	  seed: 1337
//	optimizer:
//	  name: sgd
//	  lr: 0.05
//	train:
//	  steps: 100
//	  log_every: 10
//	data:
//	  inputs:  [[2, 3, -1], [3, -1, 0.5], [0.5, 1, 1], [1, 1, -1]]
//	  targets: [[1], [-1], [-1], [1]]
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Supported optimizer names.
const (
	OptimizerSGD  = "sgd"
	OptimizerAdam = "adam"
)

// Config is the full training configuration.
type Config struct {
	Model     ModelConfig     `yaml:"model"`
	Optimizer OptimizerConfig `yaml:"optimizer"`
	Train     TrainConfig     `yaml:"train"`
	Data      DataConfig      `yaml:"data"`
}

// ModelConfig describes the MLP.
type ModelConfig struct {
	Inputs int    `yaml:"inputs"` // Inferred from the data when zero
	Layers []int  `yaml:"layers"` // Layer widths, last one is the output size
	Seed   uint64 `yaml:"seed"`   // Weight initialization seed
}

// OptimizerConfig selects and tunes the optimizer. Zero values fall through
// to the optimizer's own defaults.
type OptimizerConfig struct {
	Name     string  `yaml:"name"`
	LR       float64 `yaml:"lr"`
	Momentum float64 `yaml:"momentum"`
	Beta1    float64 `yaml:"beta1"`
	Beta2    float64 `yaml:"beta2"`
	Eps      float64 `yaml:"eps"`
}

// TrainConfig controls the training loop.
type TrainConfig struct {
	Steps    int `yaml:"steps"`
	LogEvery int `yaml:"log_every"`
	Workers  int `yaml:"workers"` // 0 = one per CPU, 1 = sequential
}

// DataConfig holds the training samples.
type DataConfig struct {
	Inputs  [][]float64 `yaml:"inputs"`
	Targets [][]float64 `yaml:"targets"`
}

// Default returns the configuration used when nothing is specified: a
// 3-4-4-1 tanh MLP fitted to four samples with plain SGD.
func Default() Config {
	var c Config
	c.applyDefaults()
	return c
}

// Load reads and validates the configuration at path.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes YAML, applies defaults and validates the result. Unknown
// keys are rejected.
func Parse(b []byte) (Config, error) {
	var c Config

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if len(c.Data.Inputs) == 0 && len(c.Data.Targets) == 0 {
		c.Data = DataConfig{
			Inputs: [][]float64{
				{2.0, 3.0, -1.0},
				{3.0, -1.0, 0.5},
				{0.5, 1.0, 1.0},
				{1.0, 1.0, -1.0},
			},
			Targets: [][]float64{{1.0}, {-1.0}, {-1.0}, {1.0}},
		}
	}
	if c.Model.Inputs == 0 && len(c.Data.Inputs) > 0 {
		c.Model.Inputs = len(c.Data.Inputs[0])
	}
	if len(c.Model.Layers) == 0 {
		c.Model.Layers = []int{4, 4, 1}
	}
	if c.Model.Seed == 0 {
		c.Model.Seed = 1337
	}
	if c.Optimizer.Name == "" {
		c.Optimizer.Name = OptimizerSGD
	}
	if c.Train.Steps == 0 {
		c.Train.Steps = 100
	}
	if c.Train.LogEvery == 0 {
		c.Train.LogEvery = 10
	}
}

// Validate checks that the configuration describes a trainable setup.
func (c Config) Validate() error {
	if c.Model.Inputs <= 0 {
		return fmt.Errorf("%w: model.inputs must be positive", ErrInvalid)
	}
	for i, w := range c.Model.Layers {
		if w <= 0 {
			return fmt.Errorf("%w: model.layers[%d] = %d", ErrInvalid, i, w)
		}
	}

	switch c.Optimizer.Name {
	case OptimizerSGD, OptimizerAdam:
	default:
		return fmt.Errorf("%w: unknown optimizer %q", ErrInvalid, c.Optimizer.Name)
	}
	if c.Optimizer.LR < 0 {
		return fmt.Errorf("%w: optimizer.lr must not be negative", ErrInvalid)
	}

	if c.Train.Steps < 0 || c.Train.LogEvery < 0 || c.Train.Workers < 0 {
		return fmt.Errorf("%w: train values must not be negative", ErrInvalid)
	}

	if len(c.Data.Inputs) == 0 {
		return fmt.Errorf("%w: data.inputs is empty", ErrInvalid)
	}
	if len(c.Data.Inputs) != len(c.Data.Targets) {
		return fmt.Errorf("%w: %d inputs, %d targets", ErrInvalid, len(c.Data.Inputs), len(c.Data.Targets))
	}
	outputs := c.Model.Layers[len(c.Model.Layers)-1]
	for i := range c.Data.Inputs {
		if len(c.Data.Inputs[i]) != c.Model.Inputs {
			return fmt.Errorf("%w: data.inputs[%d] has %d values, model takes %d", ErrInvalid, i, len(c.Data.Inputs[i]), c.Model.Inputs)
		}
		if len(c.Data.Targets[i]) != outputs {
			return fmt.Errorf("%w: data.targets[%d] has %d values, model outputs %d", ErrInvalid, i, len(c.Data.Targets[i]), outputs)
		}
	}
	return nil
}

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")
