/*
 * config.go, part of mogura.
 *
 * Copyright 2024 The mogura Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rmera/mogura/asl"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of a mogura run. It can be read from a YAML file,
// and command line flags override it.
type Config struct {
	Log       LogConfig      `yaml:"log"`
	Selection string         `yaml:"selection"`
	Playback  PlaybackConfig `yaml:"playback"`
	Plot      PlotConfig     `yaml:"plot"`
	Bonds     BondsConfig    `yaml:"bonds"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"` //json or console
}

type PlaybackConfig struct {
	Mode  string `yaml:"mode"` //once or loop
	Ticks int    `yaml:"ticks"`
}

type PlotConfig struct {
	Rama string `yaml:"rama"` //output file for the Ramachandran plot, none if empty.
}

type BondsConfig struct {
	SpatialIndex bool `yaml:"spatial_index"`
}

// DefaultConfig returns the settings used when nothing else is given.
func DefaultConfig() *Config {
	return &Config{
		Log:       LogConfig{Level: "info", Encoding: "console"},
		Selection: "all",
		Playback:  PlaybackConfig{Mode: "once", Ticks: 0},
	}
}

// LoadConfig reads a YAML config from r. Fields not in r keep their default values.
func LoadConfig(r io.Reader) (*Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	return c, c.Validate()
}

// LoadConfigFile reads the YAML config in path. An empty path gives the defaults.
func LoadConfigFile(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

// Validate checks that the values in c make sense.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log level: %w", err)
	}
	if c.Log.Encoding != "json" && c.Log.Encoding != "console" {
		return fmt.Errorf("config: log encoding must be json or console, not %q", c.Log.Encoding)
	}
	if c.Playback.Mode != "once" && c.Playback.Mode != "loop" {
		return fmt.Errorf("config: playback mode must be once or loop, not %q", c.Playback.Mode)
	}
	if c.Playback.Ticks < 0 {
		return fmt.Errorf("config: negative number of ticks %d", c.Playback.Ticks)
	}
	if _, err := asl.Parse(c.Selection); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
