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
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	"github.com/spf13/cobra"

	"github.com/NoxxGames/ipcfile/console"
	"github.com/NoxxGames/ipcfile/errors"
	"github.com/NoxxGames/ipcfile/fileio"
)

// newDiagCmd reports host/process stats alongside the shared directory's
// current file counts, for operators triaging a stuck deployment without
// attaching to a running client or server process.
func newDiagCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "diag",
		Short: "Print host stats and shared-directory file counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}

			if info, err := host.Info(); err == nil {
				console.ColorPrint.PrintLnf("host: %s (%s %s), uptime %ds", info.Hostname, info.Platform, info.KernelVersion, info.Uptime)
			} else {
				console.ColorPrompt.PrintLnf("host info unavailable: %s", err.Error())
			}

			if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
				console.ColorPrint.PrintLnf("cpu: %.1f%% used", percents[0])
			} else if err != nil {
				console.ColorPrompt.PrintLnf("cpu stats unavailable: %s", err.Error())
			}

			if vm, err := mem.VirtualMemory(); err == nil {
				console.ColorPrint.PrintLnf("mem: %.1f%% used (%d/%d bytes)", vm.UsedPercent, vm.Used, vm.Total)
			} else {
				console.ColorPrompt.PrintLnf("mem stats unavailable: %s", err.Error())
			}

			for _, prefix := range []string{"GET" + string(fileio.DelimChar), "SET" + string(fileio.DelimChar), "GETRESPONSE" + string(fileio.DelimChar)} {
				names, err := fileio.ListFiles(cfg.Dir, prefix)
				if err != nil {
					if errors.IsCode(err, fileio.ErrEmptyDir) {
						console.ColorPrint.PrintLnf("%s: 0 files pending", prefix)
						continue
					}
					console.ColorPrompt.PrintLnf("%s: list failed (%s)", prefix, err.Error())
					continue
				}
				console.ColorPrint.PrintLnf("%s: %d files pending", prefix, len(names))
			}

			return nil
		},
	}
}
