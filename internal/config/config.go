/*
 * config.go, part of gomm2.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 *
 * gomm2 is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package config loads the settings of the gomm2 command from a YAML file
//and GOMM2_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "GOMM2"

//ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid configuration")

//Log holds the logging settings.
type Log struct {
	Level  string `mapstructure:"level"`  //debug, info, warn or error
	Format string `mapstructure:"format"` //console or json
}

//Atom is one atom of the structure given in the configuration file.
type Atom struct {
	Symbol string    `mapstructure:"symbol"`
	Pos    []float64 `mapstructure:"pos"` //Å
}

//Config is the complete configuration of a gomm2 run.
type Config struct {
	Log            Log     `mapstructure:"log"`
	ForceField     string  `mapstructure:"forcefield"`
	Electrostatics bool    `mapstructure:"electrostatics"`
	Workers        int     `mapstructure:"workers"`    //goroutines for the long-range pass
	Timestep       float64 `mapstructure:"timestep"`   //fs
	Steps          int     `mapstructure:"steps"`      //for dynamics and minimization
	StepSize       float64 `mapstructure:"step_size"`  //Å per minimization step
	Tolerance      float64 `mapstructure:"tolerance"`  //RMS force (mdyn) that ends a minimization
	Every          int     `mapstructure:"every"`      //steps between reports
	Input          string  `mapstructure:"input"`      //XYZ file; if empty the atoms below are used
	Output         string  `mapstructure:"output"`     //final XYZ file, optional
	Plot           string  `mapstructure:"plot"`       //energy trace image, optional
	Trajectory     string  `mapstructure:"trajectory"` //STF trajectory with a frame per report, optional
	Metrics        string  `mapstructure:"metrics"`    //Prometheus textfile, optional
	Atoms          []Atom  `mapstructure:"atoms"`
}

//Defaults for the keys not set in the file or environment.
var defaults = map[string]interface{}{
	"log.level":      "info",
	"log.format":     "console",
	"forcefield":     "mm2",
	"electrostatics": false,
	"workers":        1,
	"timestep":       1.0,
	"steps":          1000,
	"step_size":      0.01,
	"tolerance":      1e-3,
	"every":          100,
	"input":          "",
	"output":         "",
	"plot":           "",
	"trajectory":     "",
	"metrics":        "",
}

//New returns a viper instance with the gomm2 defaults and environment binding.
//GOMM2_LOG_LEVEL sets log.level, GOMM2_STEP_SIZE sets step_size, and so on.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}
	return v
}

//Load reads the YAML file path (if path is not empty) into v, and returns the
//validated configuration. v is usually obtained from New, and may have command-line
//flags bound to it.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %q: %w", path, err)
		}
	}
	c := &Config{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

//Validate checks that the values are usable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log level %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return invalid("log format %q", c.Log.Format)
	}
	if c.ForceField == "" {
		return invalid("empty force field name")
	}
	if c.Workers < 1 {
		return invalid("workers must be at least 1, not %d", c.Workers)
	}
	if c.Timestep <= 0 {
		return invalid("timestep must be positive, not %g", c.Timestep)
	}
	if c.Steps < 0 {
		return invalid("negative number of steps")
	}
	if c.StepSize <= 0 {
		return invalid("step_size must be positive, not %g", c.StepSize)
	}
	if c.Tolerance < 0 {
		return invalid("negative tolerance")
	}
	if c.Every < 1 {
		return invalid("every must be at least 1, not %d", c.Every)
	}
	for i, a := range c.Atoms {
		if a.Symbol == "" {
			return invalid("atom %d has no symbol", i)
		}
		if len(a.Pos) != 3 {
			return invalid("atom %d (%s) has %d coordinates", i, a.Symbol, len(a.Pos))
		}
	}
	return nil
}
