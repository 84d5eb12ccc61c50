// Package config layers the program settings: defaults in code, then an
// optional YAML file, then the command line flags.
package config

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/VictorDenisov/epicycles/fourier"
	"github.com/VictorDenisov/epicycles/scene"
	"github.com/VictorDenisov/epicycles/shape"
)

// Config holds every setting of the program.
type Config struct {
	Points  string  `yaml:"points"`
	Shape   string  `yaml:"shape"`
	Size    float64 `yaml:"size"`
	Circles int     `yaml:"circles"`
	Offset  float64 `yaml:"offset"`

	Width       int32   `yaml:"width"`
	Height      int32   `yaml:"height"`
	FPS         int     `yaml:"fps"`
	Speed       float64 `yaml:"speed"`
	TrailLength int     `yaml:"trail_length"`
	PickRadius  float64 `yaml:"pick_radius"`
	MinZoom     float64 `yaml:"min_zoom"`
	MaxZoom     float64 `yaml:"max_zoom"`
}

func Default() Config {
	opts := scene.DefaultOptions()
	return Config{
		Shape:       "square",
		Size:        100,
		Circles:     8,
		Width:       640,
		Height:      480,
		FPS:         opts.FPS,
		Speed:       opts.Speed,
		TrailLength: opts.TrailLength,
		PickRadius:  opts.PickRadius,
		MinZoom:     opts.MinZoom,
		MaxZoom:     opts.MaxZoom,
	}
}

// Load overlays the YAML file name on top of the defaults. An empty name
// returns the defaults.
func Load(name string) (Config, error) {
	cfg := Default()
	if name == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", name, err)
	}
	log.Debugf("Loaded config from %s: %+v", name, cfg)
	return cfg, nil
}

func (c Config) SceneOptions() scene.Options {
	return scene.Options{
		Speed:       c.Speed,
		TrailLength: c.TrailLength,
		PickRadius:  c.PickRadius,
		MinZoom:     c.MinZoom,
		MaxZoom:     c.MaxZoom,
		FPS:         c.FPS,
	}
}

// Path returns the input samples: the point file when set, else the named
// shape.
func (c Config) Path() ([]complex128, error) {
	if c.Points != "" {
		return shape.Load(c.Points)
	}
	return shape.Named(c.Shape, c.Size)
}

// Series loads the path and decomposes it into Circles terms.
func (c Config) Series() ([]complex128, *fourier.Series, error) {
	path, err := c.Path()
	if err != nil {
		return nil, nil, err
	}
	series, err := fourier.Decompose(path, c.Circles, c.Offset)
	if err != nil {
		return nil, nil, err
	}
	log.Infof("Decomposed %d points into %d circles", len(path), series.Len())
	return path, series, nil
}

// SourceFlags select the input path and the number of epicycles.
func SourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "points",
			Aliases: []string{"p"},
			Usage:   "File with one \"x y\" point per line",
		},
		&cli.StringFlag{
			Name:    "shape",
			Aliases: []string{"s"},
			Usage:   "Built-in shape when no points file is given",
		},
		&cli.Float64Flag{
			Name:  "size",
			Usage: "Scale of the built-in shape",
		},
		&cli.IntFlag{
			Name:    "circles",
			Aliases: []string{"c"},
			Usage:   "Number of epicycles",
		},
		&cli.Float64Flag{
			Name:  "offset",
			Usage: "Frequency offset of the first epicycle",
		},
	}
}

// ViewerFlags tune the interactive window.
func ViewerFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "width", Usage: "Window width"},
		&cli.IntFlag{Name: "height", Usage: "Window height"},
		&cli.IntFlag{Name: "fps", Usage: "Frames per second"},
		&cli.Float64Flag{Name: "speed", Usage: "Periods per second"},
		&cli.IntFlag{Name: "trail", Usage: "Number of tips kept in the trail"},
		&cli.Float64Flag{Name: "pick-radius", Usage: "Click distance for locking onto a link"},
	}
}

// ApplyFlags copies the explicitly set flags of cCtx over c.
func (c *Config) ApplyFlags(cCtx *cli.Context) {
	if cCtx.IsSet("points") {
		c.Points = cCtx.String("points")
	}
	if cCtx.IsSet("shape") {
		c.Shape = cCtx.String("shape")
	}
	if cCtx.IsSet("size") {
		c.Size = cCtx.Float64("size")
	}
	if cCtx.IsSet("circles") {
		c.Circles = cCtx.Int("circles")
	}
	if cCtx.IsSet("offset") {
		c.Offset = cCtx.Float64("offset")
	}
	if cCtx.IsSet("width") {
		c.Width = int32(cCtx.Int("width"))
	}
	if cCtx.IsSet("height") {
		c.Height = int32(cCtx.Int("height"))
	}
	if cCtx.IsSet("fps") {
		c.FPS = cCtx.Int("fps")
	}
	if cCtx.IsSet("speed") {
		c.Speed = cCtx.Float64("speed")
	}
	if cCtx.IsSet("trail") {
		c.TrailLength = cCtx.Int("trail")
	}
	if cCtx.IsSet("pick-radius") {
		c.PickRadius = cCtx.Float64("pick-radius")
	}
	log.Debugf("Effective config: %+v", *c)
}
