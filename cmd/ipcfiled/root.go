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

package main

import (
	"github.com/spf13/cobra"

	"github.com/NoxxGames/ipcfile/ipcconfig"
	"github.com/NoxxGames/ipcfile/ipclog"
)

// newRootCmd builds the ipcfiled command tree directly against
// *cobra.Command rather than a generic CLI wrapper: ipcfiled only ever
// needs four flat subcommands, none of which touch shell-completion
// generation, config-file scaffolding or the other surface a larger
// wrapper would add.
func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "ipcfiled",
		Short:         "File-mediated request exchange client/server",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default: ./config.* or ~/.ipcfile/config.*)")

	root.AddCommand(
		newClientCmd(&cfgPath),
		newServerCmd(&cfgPath),
		newGenRIDCmd(),
		newDiagCmd(&cfgPath),
	)
	return root
}

// loadConfig resolves and validates the configuration every subcommand
// except gen-rid starts from.
func loadConfig(cfgPath string) (ipcconfig.Config, error) {
	loader, err := ipcconfig.NewLoader(cfgPath)
	if err != nil {
		return ipcconfig.Config{}, err
	}
	cfg, err := loader.Load()
	if err != nil {
		return ipcconfig.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ipcconfig.Config{}, err
	}
	return cfg, nil
}

// newLogger builds an ipclog.Logger at the level the config names.
func newLogger(cfg ipcconfig.Config) ipclog.Logger {
	log := ipclog.New()
	log.SetLevel(ipclog.ParseLevel(cfg.LogLevel))
	return log
}
