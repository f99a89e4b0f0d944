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
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/NoxxGames/ipcfile/attribute"
	"github.com/NoxxGames/ipcfile/console"
	"github.com/NoxxGames/ipcfile/ipcmetrics"
	"github.com/NoxxGames/ipcfile/manager"
	"github.com/NoxxGames/ipcfile/request"
	"github.com/NoxxGames/ipcfile/token"
)

// rids mints Request IDs for GET/SET requests this process submits, kept
// separate from manager's own file-naming token.Source (RID and file-naming
// token are distinct concerns that happen to share a type, per spec.md §5).
var rids = token.NewSource()

func newClientCmd(cfgPath *string) *cobra.Command {
	var (
		getSubject string
		getAttrs   []string
	)

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Run the CLIENT-role facade against a shared directory",
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

			met := ipcmetrics.New()
			stopMetrics := serveMetrics(cfg.MetricsListenAddr, met)
			defer stopMetrics()

			var (
				mu      sync.Mutex
				started = map[token.Token]time.Time{}
			)

			cli := manager.NewClient(manager.ClientConfig{
				Dir:         cfg.Dir,
				SubjectName: subjectName,
				TickPeriod:  cfg.TickPeriod(),
				FilePerm:    cfg.FilePerm,
				Logger:      log,
				Metrics:     met,
				OnResponse: func(rid token.Token, attrs *attribute.List) {
					mu.Lock()
					submitted, tracked := started[rid]
					delete(started, rid)
					mu.Unlock()

					if tracked {
						met.ObserveLatency(time.Since(submitted).Seconds())
					}

					console.ColorPrint.Printf("[response %s] ", rid.String())
					attrs.Range(func(name attribute.Name, v attribute.Value) bool {
						console.ColorPrint.Printf("%s=%s ", name.String(), v.Encode())
						return true
					})
					console.ColorPrint.Println("")
				},
			})

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			if err := cli.Init(ctx); err != nil {
				return err
			}

			if getSubject != "" {
				want := make([]attribute.Name, 0, len(getAttrs))
				for _, key := range getAttrs {
					name, ok := attribute.ParseName(key)
					if !ok {
						console.ColorPrompt.PrintLnf("skipping unknown attribute key %q", key)
						continue
					}
					want = append(want, name)
				}

				rid := rids.Next()
				g := request.NewGet(subjectName, getSubject, rid, want)
				if cli.SubmitGet(g) {
					mu.Lock()
					started[rid] = time.Now()
					mu.Unlock()
					console.ColorPrompt.PrintLnf("submitted GET rid=%s subject=%s", rid.String(), getSubject)
				}
			}

			console.ColorPrompt.Println("client running, press Ctrl-C to stop")
			waitForSignal()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			return cli.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&getSubject, "get-subject", "", "submit a single GET for this subject at startup")
	cmd.Flags().StringSliceVar(&getAttrs, "get-attr", nil, "attribute keys to request (repeatable, used with --get-subject)")
	return cmd
}

// waitForSignal blocks until SIGINT or SIGTERM arrives.
func waitForSignal() {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}

// serveMetrics starts an HTTP server exposing met's Prometheus collectors
// if addr is non-empty, returning a no-op stop func otherwise.
func serveMetrics(addr string, met *ipcmetrics.Registry) func() {
	if addr == "" {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", met.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		_ = srv.ListenAndServe()
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
