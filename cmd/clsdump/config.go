package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/geofmt/cls-codec/cls"
)

// config holds the effective tool settings after merging defaults, the
// optional TOML file, and explicit command-line flags.
type config struct {
	Output   string
	YAML     bool
	Check    bool
	Strict   bool
	Encoding string
	Replace  bool
	Angles   string
	Points   string
	Verbose  bool
}

func defaultConfig() config {
	return config{
		Angles: "degrees",
		Points: "map",
	}
}

// clsdump.toml key mapping to tool settings.
type fileConfig struct {
	Output   string `toml:"output"`
	Format   string `toml:"format"`
	Strict   bool   `toml:"strict"`
	Encoding string `toml:"encoding"`
	Replace  bool   `toml:"replace_undecodable"`
	Angles   string `toml:"angles"`
	Points   string `toml:"points"`
	Verbose  bool   `toml:"verbose"`
}

// loadFileConfig overlays settings from a TOML file onto cfg. Keys absent
// from the file leave the incoming value untouched.
func loadFileConfig(path string, cfg config) (config, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("output") {
		cfg.Output = strings.TrimSpace(raw.Output)
	}
	if meta.IsDefined("format") {
		switch f := strings.TrimSpace(raw.Format); f {
		case "json":
			cfg.YAML = false
		case "yaml":
			cfg.YAML = true
		default:
			return config{}, fmt.Errorf("load config: unknown format %q (expected json or yaml)", f)
		}
	}
	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	if meta.IsDefined("encoding") {
		cfg.Encoding = strings.TrimSpace(raw.Encoding)
	}
	if meta.IsDefined("replace_undecodable") {
		cfg.Replace = raw.Replace
	}
	if meta.IsDefined("angles") {
		cfg.Angles = strings.TrimSpace(raw.Angles)
	}
	if meta.IsDefined("points") {
		cfg.Points = strings.TrimSpace(raw.Points)
	}
	if meta.IsDefined("verbose") {
		cfg.Verbose = raw.Verbose
	}

	return cfg, nil
}

// options converts the merged settings into parse and render options.
func (c config) options() (cls.Options, cls.ValueOptions, error) {
	var opts cls.Options
	opts.StrictTrailingBytes = c.Strict
	if c.Replace {
		opts.OnDecodeError = cls.DecodeReplace
	}
	if c.Encoding != "" {
		enc, err := cls.ParseEncoding(c.Encoding)
		if err != nil {
			return cls.Options{}, cls.ValueOptions{}, err
		}
		opts.Encoding = enc
	}

	var vopts cls.ValueOptions
	if c.Angles != "" {
		mode, err := cls.ParseAngleMode(c.Angles)
		if err != nil {
			return cls.Options{}, cls.ValueOptions{}, err
		}
		vopts.Angles = mode
	}
	if c.Points != "" {
		mode, err := cls.ParsePointMode(c.Points)
		if err != nil {
			return cls.Options{}, cls.ValueOptions{}, err
		}
		vopts.Points = mode
	}

	return opts, vopts, nil
}
