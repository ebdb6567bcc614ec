package config

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Defaults applied to zero-valued generator settings.
const (
	DefaultMinQubits = 1
	DefaultMaxQubits = 5
	DefaultMinDepth  = 1
	DefaultMaxDepth  = 100
)

// GeneratorSettings holds the circuit generator bounds and seed.
type GeneratorSettings struct {
	Seed      *int64 `yaml:"seed"`
	MinQubits int    `yaml:"min_qubits"`
	MaxQubits int    `yaml:"max_qubits"`
	MinDepth  int    `yaml:"min_depth"`
	MaxDepth  int    `yaml:"max_depth"`
}

// BatchDef is a named batch of circuits to generate.
type BatchDef struct {
	Circuits int   `yaml:"circuits"`
	Measure  *bool `yaml:"measure"`
}

// DoMeasure reports whether the batch appends measurements. Unset means true.
func (b BatchDef) DoMeasure() bool {
	if b.Measure == nil {
		return true
	}
	return *b.Measure
}

// Config holds the entire YAML configuration.
type Config struct {
	Generator GeneratorSettings   `yaml:"generator"`
	Batches   map[string]BatchDef `yaml:"batches"`

	batchOrder []string
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses a YAML config from raw bytes.
func LoadFromBytes(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	c.batchOrder = parseBatchKeyOrder(data)
	return &c, nil
}

// GetGenerator returns generator settings with defaults filled in.
func (c *Config) GetGenerator() GeneratorSettings {
	g := c.Generator
	if g.MinQubits == 0 {
		g.MinQubits = DefaultMinQubits
	}
	if g.MaxQubits == 0 {
		g.MaxQubits = DefaultMaxQubits
	}
	if g.MinDepth == 0 {
		g.MinDepth = DefaultMinDepth
	}
	if g.MaxDepth == 0 {
		g.MaxDepth = DefaultMaxDepth
	}
	return g
}

// GetBatch returns a batch definition by name.
func (c *Config) GetBatch(name string) (BatchDef, error) {
	b, ok := c.Batches[name]
	if !ok {
		return BatchDef{}, fmt.Errorf("batch '%s' not defined in config", name)
	}
	return b, nil
}

// GetBatchOrder returns batch names in the order they appear in the YAML,
// or sorted when that order is unknown (a Config built in code).
func (c *Config) GetBatchOrder() []string {
	if len(c.batchOrder) > 0 {
		return c.batchOrder
	}
	return slices.Sorted(maps.Keys(c.Batches))
}

// parseBatchKeyOrder extracts batch key ordering from raw YAML.
func parseBatchKeyOrder(data []byte) []string {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil
	}
	if node.Kind != yaml.DocumentNode || len(node.Content) == 0 {
		return nil
	}
	root := node.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i < len(root.Content)-1; i += 2 {
		if root.Content[i].Value == "batches" {
			bNode := root.Content[i+1]
			if bNode.Kind != yaml.MappingNode {
				return nil
			}
			var order []string
			for j := 0; j < len(bNode.Content)-1; j += 2 {
				order = append(order, bNode.Content[j].Value)
			}
			return order
		}
	}
	return nil
}
