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

// Package ipcconfig loads and live-reloads the shared-directory, role, tick
// rate, buffer and logging settings every ipcfile component starts from.
package ipcconfig

import (
	"time"

	"github.com/NoxxGames/ipcfile/errors"
	"github.com/NoxxGames/ipcfile/file/perm"
)

const (
	// ErrInvalidConfig is returned by Config.Validate when a required field
	// is missing or out of range.
	ErrInvalidConfig errors.CodeError = iota + errors.MinPkgIPCConfig
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrInvalidConfig)
	errors.RegisterIdFctMessage(ErrInvalidConfig, getMessage)
}

func getMessage(code errors.CodeError) (message string) {
	switch code {
	case errors.UnknownError:
		return ""
	case ErrInvalidConfig:
		return "configuration is missing a required field or has an out of range value"
	}

	return ""
}

// Role selects which manager façade a process runs as.
type Role string

const (
	RoleClient Role = "client"
	RoleServer Role = "server"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleServer
}

// Config is the full set of settings a running ipcfile process needs.
// Every field is loadable from YAML/TOML/JSON/env via a Loader.
type Config struct {
	Dir               string    `mapstructure:"dir"`
	Role              Role      `mapstructure:"role"`
	SubjectName       string    `mapstructure:"subject_name"`
	TickRate          int       `mapstructure:"tick_rate"`
	FilePerm          perm.Perm `mapstructure:"file_perm"`
	BufferMax         int       `mapstructure:"buffer_max"`
	BufferMultiplier  float64   `mapstructure:"buffer_multiplier"`
	LogLevel          string    `mapstructure:"log_level"`
	MetricsListenAddr string    `mapstructure:"metrics_listen_addr"`
	StoreDSN          string    `mapstructure:"store_dsn"`
}

// TickPeriod converts TickRate (ticks per second) to the time.Duration the
// worker loop constructors take.
func (c Config) TickPeriod() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / time.Duration(DefaultTickRate)
	}
	return time.Second / time.Duration(c.TickRate)
}

// Validate reports the first configuration error found, if any.
func (c Config) Validate() error {
	if c.Dir == "" {
		return ErrInvalidConfig.Error(nil)
	}
	if !c.Role.Valid() {
		return ErrInvalidConfig.Error(nil)
	}
	if c.SubjectName == "" {
		return ErrInvalidConfig.Error(nil)
	}
	if c.BufferMultiplier != 0 && c.BufferMultiplier < 1 {
		return ErrInvalidConfig.Error(nil)
	}
	return nil
}

// Defaults mirror worker.DefaultTickRate and fileio.DefaultDirPerm/FilePerm
// without importing those packages, so ipcconfig stays loadable before any
// directory is touched.
const (
	DefaultTickRate         = 8
	DefaultBufferMax        = 256
	DefaultBufferMultiplier = 2.0
	DefaultLogLevel         = "info"
)

// Default returns a Config with every field set to its documented default,
// except Dir/Role/SubjectName which the caller must always provide.
func Default() Config {
	return Config{
		TickRate:         DefaultTickRate,
		FilePerm:         perm.ParseFileMode(0644),
		BufferMax:        DefaultBufferMax,
		BufferMultiplier: DefaultBufferMultiplier,
		LogLevel:         DefaultLogLevel,
	}
}
