package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

type Config struct {
	Server ServerOptions `yaml:"server"`
	Log    LogOptions    `yaml:"log"`
	Data   DataOptions   `yaml:"data"`
	Tiles  TileOptions   `yaml:"tiles"`
	Router RouterOptions `yaml:"router"`
}

type ServerOptions struct {
	Port            int      `yaml:"port"`
	AllowedOrigins  []string `yaml:"allowed-origins"`
	ShutdownTimeout int      `yaml:"shutdown-timeout-seconds"`
}

type LogOptions struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type DataOptions struct {
	OSM        string `yaml:"osm"`
	Guides     string `yaml:"guides"`
	CrossMwmDB string `yaml:"cross-mwm-db"`
	RegionsDB  string `yaml:"regions-db"`
}

type TileOptions struct {
	// h3 resolution of an mwm cell. the country of an mwm is its parent at CountryResolution.
	Resolution        int `yaml:"resolution"`
	CountryResolution int `yaml:"country-resolution"`
	// cells of the regions db, finer than mwm cells.
	RegionsResolution int `yaml:"regions-resolution"`
}

type RouterOptions struct {
	SnapRadiusM          float64  `yaml:"snap-radius-m"`
	MaxProjections       int      `yaml:"max-projections"`
	CrossCountryPenaltyS float64  `yaml:"cross-country-penalty-s"`
	MwmCrossingPenaltyS  float64  `yaml:"mwm-crossing-penalty-s"`
	OffroadSpeedKmH      float64  `yaml:"offroad-speed-kmh"`
	LeapsThresholdKm     float64  `yaml:"leaps-threshold-km"`
	MaxPostProcessSteps  int      `yaml:"max-post-process-steps"`
	LengthFactor         float64  `yaml:"length-factor"`
	UseAccessConditional bool     `yaml:"use-access-conditional"`
	Avoid                []string `yaml:"avoid"`
}

func Default() Config {
	return Config{
		Server: ServerOptions{
			Port:            5000,
			AllowedOrigins:  []string{"https://*", "http://*"},
			ShutdownTimeout: 10,
		},
		Log: LogOptions{
			Level: "info",
		},
		Data: DataOptions{
			OSM:        "./data/map.osm.pbf",
			CrossMwmDB: "./data/crossmwm",
			RegionsDB:  "./data/regions",
		},
		Tiles: TileOptions{
			Resolution:        5,
			CountryResolution: 3,
			RegionsResolution: 7,
		},
		Router: RouterOptions{
			SnapRadiusM:          200,
			MaxProjections:       4,
			CrossCountryPenaltyS: 60 * 60 * 2,
			MwmCrossingPenaltyS:  0,
			OffroadSpeedKmH:      3,
			LeapsThresholdKm:     150,
			MaxPostProcessSteps:  5,
			LengthFactor:         0,
		},
	}
}

// Load reads path over the defaults. an empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Server.Port <= 0 || c.Server.Port > 65535:
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	case c.Tiles.Resolution < 0 || c.Tiles.Resolution > 15:
		return fmt.Errorf("invalid h3 resolution %d", c.Tiles.Resolution)
	case c.Tiles.CountryResolution < 0 || c.Tiles.CountryResolution > c.Tiles.Resolution:
		return fmt.Errorf("country resolution %d must be in [0, %d]", c.Tiles.CountryResolution, c.Tiles.Resolution)
	case c.Tiles.RegionsResolution < c.Tiles.Resolution || c.Tiles.RegionsResolution > 15:
		return fmt.Errorf("regions resolution %d must be in [%d, 15]", c.Tiles.RegionsResolution, c.Tiles.Resolution)
	case c.Router.SnapRadiusM <= 0:
		return fmt.Errorf("snap radius must be positive, got %f", c.Router.SnapRadiusM)
	case c.Router.MaxProjections <= 0:
		return fmt.Errorf("max projections must be positive, got %d", c.Router.MaxProjections)
	case c.Router.OffroadSpeedKmH <= 0:
		return fmt.Errorf("offroad speed must be positive, got %f", c.Router.OffroadSpeedKmH)
	case c.Router.MaxPostProcessSteps <= 0:
		return fmt.Errorf("max post process steps must be positive, got %d", c.Router.MaxPostProcessSteps)
	case c.Router.LengthFactor < 0:
		return fmt.Errorf("length factor must not be negative, got %f", c.Router.LengthFactor)
	case c.Router.CrossCountryPenaltyS < 0 || c.Router.MwmCrossingPenaltyS < 0:
		return fmt.Errorf("cross border penalties must not be negative")
	}
	return nil
}
