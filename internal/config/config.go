// Package config loads the YAML configuration of the command line tools.
package config

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/unixpickle/hexlab/hexlab"
	"github.com/unixpickle/model3d/model3d"
	"gopkg.in/yaml.v3"
)

// Config holds every setting of a tool run.
type Config struct {
	Grid    GridConfig      `yaml:"grid"`
	View    hexlab.Settings `yaml:"view"`
	Logging LoggingConfig   `yaml:"logging"`
}

// GridConfig describes the generated hexahedral grid.
type GridConfig struct {
	CellsX int `yaml:"cells_x"`
	CellsY int `yaml:"cells_y"`
	CellsZ int `yaml:"cells_z"`

	// Size is the extent of the grid along each axis.
	Size []float64 `yaml:"size"`

	// Jitter is the largest random vertex offset, relative to the
	// smallest cell dimension.
	Jitter float64 `yaml:"jitter"`
	Seed   int64   `yaml:"seed"`
}

// LoggingConfig controls the tool logger.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default gets the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Grid: GridConfig{
			CellsX: 8,
			CellsY: 8,
			CellsZ: 8,
			Size:   []float64{1, 1, 1},
		},
		View: hexlab.DefaultSettings(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a config file on top of the defaults. An empty path yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load config from %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "load config from %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "load config from %s", path)
	}
	return cfg, nil
}

// Validate checks the grid dimensions.
func (c *Config) Validate() error {
	if c.Grid.CellsX < 1 || c.Grid.CellsY < 1 || c.Grid.CellsZ < 1 {
		return errors.Errorf("grid must have at least one cell per axis, got %dx%dx%d",
			c.Grid.CellsX, c.Grid.CellsY, c.Grid.CellsZ)
	}
	if len(c.Grid.Size) != 3 {
		return errors.Errorf("grid size needs 3 components, got %d", len(c.Grid.Size))
	}
	return nil
}

// SaveTo writes the config to a file, creating its directory if needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "save config")
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "save config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "save config")
}

// Generate creates the vertices and cell indices of the grid.
func (g *GridConfig) Generate() ([]model3d.Coord3D, []int) {
	size := model3d.XYZ(g.Size[0], g.Size[1], g.Size[2])
	vertices, indices := hexlab.BoxGrid(g.CellsX, g.CellsY, g.CellsZ, model3d.Origin, size)
	if g.Jitter > 0 {
		cellSize := math.Min(size.X/float64(g.CellsX), math.Min(size.Y/float64(g.CellsY),
			size.Z/float64(g.CellsZ)))
		hexlab.Jitter(vertices, g.Jitter*cellSize, rand.New(rand.NewSource(g.Seed)))
	}
	return vertices, indices
}
