/*
 * config.go, part of gofrag.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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

//Package config loads the configuration of the gofrag tool from an optional YAML
//file, GOFRAG_* environment variables and command line flags, in increasing order
//of priority.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

//envPrefix is the prefix of the environment variables read. Nested keys like
//"log.level" are read from GOFRAG_LOG_LEVEL.
const envPrefix = "GOFRAG"

const (
	DefaultMaxRingSize = -1 //unlimited
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

//LogConfig holds the logging options.
type LogConfig struct {
	Level  string `mapstructure:"level"`  //debug | info | warn | error
	Format string `mapstructure:"format"` //console | json
	File   string `mapstructure:"file"`   //empty means standard error
}

//Config holds the options of a gofrag run.
type Config struct {
	Ligand        string    `mapstructure:"ligand"`
	Output        string    `mapstructure:"output"`
	Fragment      string    `mapstructure:"fragment"`
	Plot          string    `mapstructure:"plot"`
	MaxRingSize   int       `mapstructure:"max_ring_size"`
	MergeSolitary bool      `mapstructure:"merge_solitary"`
	InsFragmentID bool      `mapstructure:"ins_fragment_id"`
	Workers       int       `mapstructure:"workers"`
	Log           LogConfig `mapstructure:"log"`
}

//flagKeys maps command line flag names to configuration keys, for the flags
//whose name is not the key itself.
var flagKeys = map[string]string{
	"log":        "log.file",
	"log_level":  "log.level",
	"log_format": "log.format",
}

//defaults holds the default value of each configuration key.
var defaults = map[string]interface{}{
	"ligand":          "",
	"output":          "",
	"fragment":        "",
	"plot":            "",
	"max_ring_size":   DefaultMaxRingSize,
	"merge_solitary":  true,
	"ins_fragment_id": false,
	"workers":         runtime.NumCPU(),
	"log.level":       DefaultLogLevel,
	"log.format":      DefaultLogFormat,
	"log.file":        "",
}

//NewViper returns a viper instance that reads YAML, GOFRAG_* environment
//variables, and has the defaults for all keys.
func NewViper() *viper.Viper {
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

//BindFlags binds each flag in flags that corresponds to a configuration key, so a
//flag given in the command line overrides the file and the environment.
//The flag no_merge_solitary, if given, sets merge_solitary to false.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var err error
	flags.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			key = f.Name
		}
		if _, ok := defaults[key]; !ok || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	if err != nil {
		return fmt.Errorf("config: binding flags: %w", err)
	}
	if f := flags.Lookup("no_merge_solitary"); f != nil && f.Changed {
		v.Set("merge_solitary", f.Value.String() != "true")
	}
	return nil
}

//Load reads the YAML file configPath, if not empty, into v, and returns the
//validated configuration.
func Load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
		}
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

//Validate checks that the configuration can be used for a run.
func (c *Config) Validate() error {
	if c.Ligand == "" {
		return fmt.Errorf("config: ligand is required")
	}
	if c.Output == "" && c.Fragment == "" {
		return fmt.Errorf("config: at least one of output and fragment is required")
	}
	if c.MaxRingSize != -1 && c.MaxRingSize < 3 {
		return fmt.Errorf("config: max_ring_size must be -1 (unlimited) or at least 3, got %d", c.MaxRingSize)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected console|json", c.Log.Format)
	}
	return nil
}
