/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package ipcconfig

import (
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/NoxxGames/ipcfile/file/perm"
)

// DefaultConfigName/DefaultConfigDir name the file a Loader looks for when
// no explicit path is given: ~/.ipcfile/config.yaml.
const (
	DefaultConfigDir  = ".ipcfile"
	DefaultConfigName = "config"
)

// Loader wraps a *viper.Viper with the defaults, env binding and decode
// hook an ipcfile Config needs.
type Loader struct {
	v *viper.Viper
}

// NewLoader builds a Loader with this package's defaults pre-set. path, if
// non-empty, is passed to viper.SetConfigFile verbatim; otherwise the
// loader searches the current directory and ~/.ipcfile for
// config.{yaml,toml,json}.
func NewLoader(path string) (*Loader, error) {
	v := viper.New()
	v.SetEnvPrefix("IPCFILE")
	v.AutomaticEnv()

	d := Default()
	v.SetDefault("tick_rate", d.TickRate)
	v.SetDefault("file_perm", d.FilePerm.String())
	v.SetDefault("buffer_max", d.BufferMax)
	v.SetDefault("buffer_multiplier", d.BufferMultiplier)
	v.SetDefault("log_level", d.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, DefaultConfigDir))
		}
	}

	return &Loader{v: v}, nil
}

func (l *Loader) decodeHook() viper.DecoderConfigOption {
	return viper.DecoderConfigOption(func(c *mapstructure.DecoderConfig) {
		c.DecodeHook = perm.ViperDecoderHook()
	})
}

// Load reads the configuration file (if any), overlays environment
// variables, and unmarshals the result into a Config. A missing config
// file is not an error: defaults plus env plus any explicit SetDefault
// still apply.
func (l *Loader) Load() (Config, error) {
	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg, l.decodeHook()); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Viper exposes the underlying *viper.Viper for callers that need direct
// access (e.g. to register additional default keys before Load).
func (l *Loader) Viper() *viper.Viper {
	return l.v
}
