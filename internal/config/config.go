package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 400
	WindowHeight = 450

	// Morph parameters
	Sides        = 3
	Subdivisions = 10
	MaxSides     = 64
	CenterX      = 200
	CenterY      = 200
	Radius       = 150
	Step         = 0.01
	MaxFrames    = 200
	TickInterval = 20 * time.Millisecond

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 30
	ButtonX      = (WindowWidth - ButtonWidth) / 2
	ButtonY      = WindowHeight - ButtonHeight - 10
)

type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type Config struct {
	Sides        int           `yaml:"sides"`
	Subdivisions int           `yaml:"subdivisions"`
	Center       Point         `yaml:"center"`
	Radius       float64       `yaml:"radius"`
	Step         float64       `yaml:"step"`
	MaxFrames    int           `yaml:"max_frames"`
	TickInterval time.Duration `yaml:"tick_interval"`
	Window       Window        `yaml:"window"`
	Sound        bool          `yaml:"sound"`
	Log          Log           `yaml:"log"`
}

func Default() Config {
	return Config{
		Sides:        Sides,
		Subdivisions: Subdivisions,
		Center:       Point{X: CenterX, Y: CenterY},
		Radius:       Radius,
		Step:         Step,
		MaxFrames:    MaxFrames,
		TickInterval: TickInterval,
		Window:       Window{Width: WindowWidth, Height: WindowHeight},
		Log:          Log{Level: "info"},
	}
}

// Decode reads YAML from r on top of the defaults. Keys absent from the
// document keep their default values.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, c.Validate()
}

func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Sides < 3 || c.Sides > MaxSides {
		errs = append(errs, fmt.Errorf("sides must be in [3, %d], got %d", MaxSides, c.Sides))
	}
	if c.Subdivisions < 1 {
		errs = append(errs, fmt.Errorf("subdivisions must be >= 1, got %d", c.Subdivisions))
	}
	if c.Radius <= 0 {
		errs = append(errs, fmt.Errorf("radius must be positive, got %g", c.Radius))
	}
	if c.Step <= 0 || c.Step > 1 {
		errs = append(errs, fmt.Errorf("step must be in (0, 1], got %g", c.Step))
	}
	if c.MaxFrames < 0 {
		errs = append(errs, fmt.Errorf("max_frames must be >= 0, got %d", c.MaxFrames))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	return errors.Join(errs...)
}

// TPS returns the ebiten tick rate matching TickInterval.
func (c Config) TPS() int {
	tps := int(time.Second / c.TickInterval)
	if tps < 1 {
		return 1
	}
	return tps
}
