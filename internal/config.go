// Copyright © 2026 Genome Research Limited
// Author: Sendu Bala <sb10@sanger.ac.uk>.
//
//  This file is part of st.
//
//  st is free software: you can redistribute it and/or modify
//  it under the terms of the GNU Lesser General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  st is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU Lesser General Public License for more details.
//
//  You should have received a copy of the GNU Lesser General Public License
//  along with st. If not, see <http://www.gnu.org/licenses/>.

package internal

// this file implements the config system used by the cmd package

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/creasty/defaults"
	"github.com/inconshreveable/log15"
	"github.com/jinzhu/configor"
	"github.com/olekukonko/tablewriter"
)

const (
	configCommonBasename = ".st_config.yml"

	// ConfigSourceEnvVar is a config value source
	ConfigSourceEnvVar = "env var"

	// ConfigSourceDefault is a config value source
	ConfigSourceDefault = "default"

	sourcesProperty = "sources"
)

// Config holds the configuration options for st's output. They are defaults
// for the corresponding command line options, so you don't have to repeat the
// same formatting choices on every invocation. Note that OutputDelimiter holds
// the escaped form (`\t`, not a tab character); unescaping happens at the
// point of output.
type Config struct {
	OutputFormat    string `default:"%g"`
	OutputDelimiter string `default:"\\t"`
	OutputNoHeader  bool   `default:"false"`
	OutputTranspose bool   `default:"false"`
	sources         map[string]string
}

// merge compares existing to new Config values, and for each one that has
// changed, sets the given source on the changed property in our sources,
// and sets the new value on ourselves.
func (c *Config) merge(new *Config, source string) {
	v := reflect.ValueOf(*c)
	typeOfC := v.Type()
	vNew := reflect.ValueOf(*new)

	if c.sources == nil {
		c.sources = make(map[string]string)
	}

	for i := 0; i < v.NumField(); i++ {
		property := typeOfC.Field(i).Name
		if property == sourcesProperty {
			continue
		}

		if vNew.Field(i).Interface() != v.Field(i).Interface() {
			c.sources[property] = source

			adrField := reflect.ValueOf(c).Elem().Field(i)
			switch typeOfC.Field(i).Type.Kind() {
			case reflect.String:
				adrField.SetString(vNew.Field(i).String())
			case reflect.Int:
				adrField.SetInt(vNew.Field(i).Int())
			case reflect.Bool:
				adrField.SetBool(vNew.Field(i).Bool())
			}
		}
	}
}

// clone makes a new Config with our values.
func (c *Config) clone() *Config {
	new := &Config{}
	v := reflect.ValueOf(*c)
	typeOfC := v.Type()

	for i := 0; i < v.NumField(); i++ {
		property := typeOfC.Field(i).Name
		if property == sourcesProperty {
			continue
		}

		adrField := reflect.ValueOf(new).Elem().Field(i)
		switch typeOfC.Field(i).Type.Kind() {
		case reflect.String:
			adrField.SetString(v.Field(i).String())
		case reflect.Int:
			adrField.SetInt(v.Field(i).Int())
		case reflect.Bool:
			adrField.SetBool(v.Field(i).Bool())
		}
	}

	new.sources = make(map[string]string)
	for key, val := range c.sources {
		new.sources[key] = val
	}

	return new
}

// Source returns where the value of a Config field was defined.
func (c Config) Source(field string) string {
	if c.sources == nil {
		return ConfigSourceDefault
	}
	source, set := c.sources[field]
	if !set {
		return ConfigSourceDefault
	}
	return source
}

func (c Config) String() string {
	v := reflect.ValueOf(c)
	typeOfC := v.Type()

	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	table.SetHeader([]string{"Config", "Value", "Source"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for i := 0; i < v.NumField(); i++ {
		property := typeOfC.Field(i).Name
		if property == sourcesProperty {
			continue
		}

		source := c.sources[property]
		if source == "" {
			source = ConfigSourceDefault
		}

		table.Append([]string{property, fmt.Sprintf("%v", v.Field(i).Interface()), source})
	}

	table.Render()
	return tableString.String()
}

/*
ConfigLoad loads configuration settings from files and environment variables.
Note, this function exits on error, since without config we can't do anything.

We prefer settings in a config file in the current dir over one in your home
directory over one in the dir pointed to by ST_CONFIG_DIR. All the files are
named .st_config.yml.

Settings found in no file can be set with the environment variable
ST_<setting name in caps>, eg.
export ST_OUTPUTFORMAT="%.3f"
*/
func ConfigLoad(logger log15.Logger) Config {
	pwd, err := os.Getwd()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	err = os.Setenv("CONFIGOR_ENV_PREFIX", "ST")
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	// because we want to know the source of every value, we can't take
	// advantage of configor.Load() being able to take all env vars and config
	// files at once. We do it repeatedly and merge results instead
	config := &Config{}
	if cerr := defaults.Set(config); cerr != nil {
		logger.Error(cerr.Error())
		os.Exit(1)
	}

	configEnv := &Config{}
	err = configor.Load(configEnv)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	config.merge(configEnv, ConfigSourceEnvVar)

	// read each config file and merge results
	if configDir := os.Getenv("ST_CONFIG_DIR"); configDir != "" {
		configLoadFromFile(config, filepath.Join(configDir, configCommonBasename), logger)
	}

	if home, herr := os.UserHomeDir(); herr == nil && home != "" {
		configLoadFromFile(config, filepath.Join(home, configCommonBasename), logger)
	}

	configLoadFromFile(config, filepath.Join(pwd, configCommonBasename), logger)

	return *config
}

// configLoadFromFile loads a config file at the given path and merges it in to
// our existing config settings. Missing files are fine; unparseable ones are
// not.
func configLoadFromFile(config *Config, path string, logger log15.Logger) {
	if _, err := os.Stat(path); err != nil {
		return
	}

	configFile := config.clone()
	if err := configor.Load(configFile, path); err != nil {
		logger.Error("could not load config file", "path", path, "err", err)
		os.Exit(1)
	}
	config.merge(configFile, path)
}

// DefaultConfig returns a Config with all values at their defaults, ignoring
// environment variables and config files.
func DefaultConfig() Config {
	config := &Config{}
	if err := defaults.Set(config); err != nil {
		// our default struct tags are static and valid
		panic(err)
	}
	return *config
}
