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
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/NoxxGames/ipcfile/attribute"
	"github.com/NoxxGames/ipcfile/console"
	"github.com/NoxxGames/ipcfile/ipcmetrics"
	"github.com/NoxxGames/ipcfile/manager"
	"github.com/NoxxGames/ipcfile/store"
)

func newServerCmd(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the SERVER-role facade against a shared directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			subjectName, ok := attribute.ParseName(cfg.SubjectName)
			if !ok {
				return ipcInvalidSubjectName(cfg.SubjectName)
			}

			dsn := cfg.StoreDSN
			if dsn == "" {
				dsn = ":memory:"
			}
			st, err := store.New(dsn)
			if err != nil {
				return err
			}
			defer st.Close()

			met := ipcmetrics.New()
			stopMetrics := serveMetrics(cfg.MetricsListenAddr, met)
			defer stopMetrics()

			srv := manager.NewServer(manager.ServerConfig{
				Dir:         cfg.Dir,
				SubjectName: subjectName,
				TickPeriod:  cfg.TickPeriod(),
				FilePerm:    cfg.FilePerm,
				Logger:      log,
				Metrics:     met,
				OnGet:       st.OnGet,
				OnSet:       st.OnSet,
			})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if err := srv.Init(ctx); err != nil {
				return err
			}

			console.ColorPrompt.PrintLnf("server running against %s (subject=%s), press Ctrl-C to stop", cfg.Dir, cfg.SubjectName)
			waitForSignal()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	return cmd
}
