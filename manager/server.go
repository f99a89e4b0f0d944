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

package manager

import (
	"context"
	"time"

	"github.com/NoxxGames/ipcfile/attribute"
	"github.com/NoxxGames/ipcfile/buffer"
	"github.com/NoxxGames/ipcfile/codec"
	"github.com/NoxxGames/ipcfile/errors"
	"github.com/NoxxGames/ipcfile/file/perm"
	"github.com/NoxxGames/ipcfile/fileio"
	"github.com/NoxxGames/ipcfile/ipclog"
	"github.com/NoxxGames/ipcfile/ipcmetrics"
	"github.com/NoxxGames/ipcfile/request"
	"github.com/NoxxGames/ipcfile/watch"
	"github.com/NoxxGames/ipcfile/worker"
)

// OnGet is the server's synchronous backing-store read hook, invoked once
// per decoded GET record.
type OnGet func(req *request.Get) *attribute.List

// OnSet is the server's synchronous backing-store write hook. A non-nil
// return is logged but never propagated to the client, per spec.md §6.
type OnSet func(req *request.Set) error

// ServerConfig configures a Server. TickPeriod and FilePerm fall back to
// DefaultTickPeriod/DefaultFilePerm when left zero.
type ServerConfig struct {
	Dir         string
	SubjectName attribute.Name
	TickPeriod  time.Duration
	FilePerm    perm.Perm
	OnGet       OnGet
	OnSet       OnSet
	Logger      ipclog.Logger
	Metrics     ipcmetrics.Recorder

	// DisableWatch skips arming the directory watch that advisorily wakes
	// getPoll/setPoll early on an inbound GET/SET file (spec.md §4.6/§9,
	// SPEC_FULL §11.3). The fixed tick is never affected either way.
	DisableWatch bool
}

// Server is the SERVER-role façade: it owns an outbound SET buffer
// (server_submit_set is symmetric with the client's) and the three
// server-side worker loops.
type Server struct {
	cfg ServerConfig
	log ipclog.Logger
	met ipcmetrics.Recorder

	sets *buffer.Buffer[*request.Set]

	setFlush *worker.Loop
	getPoll  *worker.Loop
	setPoll  *worker.Loop

	watcher *watch.Watcher
}

// NewServer allocates the SERVER-role outbound SET buffer. Worker loops are
// not started until Init is called.
func NewServer(cfg ServerConfig) *Server {
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = DefaultTickPeriod
	}
	if cfg.FilePerm == 0 {
		cfg.FilePerm = DefaultFilePerm
	}
	if cfg.Logger == nil {
		cfg.Logger = ipclog.Default
	}
	if cfg.Metrics == nil {
		cfg.Metrics = ipcmetrics.NoopRecorder
	}

	s := &Server{
		cfg:  cfg,
		log:  cfg.Logger.With(ipclog.NewFields().Add("role", "server").Add("dir", cfg.Dir)),
		met:  cfg.Metrics,
		sets: buffer.New[*request.Set](),
	}

	s.setFlush = worker.New(cfg.TickPeriod, func(context.Context) error {
		s.met.IncTick("server", "set_flush")
		_, err := s.FlushSets()
		s.met.SetBufferLen("server", "set", s.sets.Len())
		return err
	})
	s.getPoll = worker.New(cfg.TickPeriod, func(ctx context.Context) error {
		s.met.IncTick("server", "get_poll")
		return s.pollGets(ctx)
	})
	s.setPoll = worker.New(cfg.TickPeriod, func(ctx context.Context) error {
		s.met.IncTick("server", "set_poll")
		return s.pollSets(ctx)
	})

	if !cfg.DisableWatch {
		w, err := watch.New(cfg.Dir, s.log,
			watch.Route{Prefix: "GET" + string(fileio.DelimChar), Loop: s.getPoll},
			watch.Route{Prefix: "SET" + string(fileio.DelimChar), Loop: s.setPoll},
		)
		if err != nil {
			s.log.Warn("directory watch unavailable, falling back to fixed tick only",
				ipclog.NewFields().Add("error", err.Error()))
		} else {
			s.watcher = w
		}
	}

	return s
}

// Init starts the SET-flush, GET-poll and SET-poll loops, and the
// directory watch that advisorily wakes GET-poll/SET-poll early (if armed
// successfully at construction).
func (s *Server) Init(ctx context.Context) error {
	for _, l := range []*worker.Loop{s.setFlush, s.getPoll, s.setPoll} {
		if err := l.Start(ctx); err != nil {
			return err
		}
	}
	if s.watcher != nil {
		go func() { _ = s.watcher.Run(ctx) }()
	}
	return nil
}

// Shutdown stops every server loop, then drops the outbound SET buffer.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	for _, l := range []*worker.Loop{s.setFlush, s.getPoll, s.setPoll} {
		if err := l.Stop(ctx); err != nil {
			return err
		}
	}
	s.sets.Clear()
	return nil
}

// SubmitSet rejects an empty request and otherwise pushes it into the
// outbound SET buffer, symmetric with Client.SubmitSet.
func (s *Server) SubmitSet(req *request.Set) bool {
	if req == nil || req.IsEmpty() {
		return false
	}
	return s.sets.Push(req)
}

// FlushSets encodes the entire outbound SET buffer to one file and clears
// the buffer, returning false with no error if the buffer was empty.
func (s *Server) FlushSets() (bool, error) {
	var (
		wrote bool
		werr  error
	)

	s.sets.Drain(func(items []*request.Set) {
		if len(items) == 0 {
			return
		}
		body := codec.EncodeSetBatch(items)
		name := fileio.GenerateName(request.KindSet, tokens.Next())
		if werr = fileio.WriteAtomic(s.cfg.Dir, name, body, s.cfg.FilePerm); werr == nil {
			wrote = true
		} else {
			s.log.Warn("outbound SET flush failed", ipclog.NewFields().Add("file", name).Add("error", werr.Error()))
		}
	})

	return wrote, werr
}

// pollGets implements the server's GET-poll tick: list inbound GET files,
// decode each, dispatch every record to OnGet, and batch the results into
// one outbound GETRESPONSE file. A GET_RESPONSE is built the same
// SET-shaped way a SET batch is (spec.md §4.8's "SET-like buffer"), but as
// a transient per-tick slice rather than a second cross-tick buffer.Buffer,
// since spec's own server_init loop set names no fourth response-flush
// loop and scenario 1 shows the response file written synchronously within
// the same poll step that read the GET file.
func (s *Server) pollGets(ctx context.Context) error {
	names, err := fileio.ListFiles(s.cfg.Dir, "GET"+string(fileio.DelimChar))
	if err != nil {
		if errors.IsCode(err, fileio.ErrEmptyDir) {
			return nil
		}
		s.log.Warn("GET poll could not list directory", ipclog.NewFields().Add("error", err.Error()))
		return err
	}

	var responses []*request.GetResponse
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := fileio.ReadFile(s.cfg.Dir, name)
		if err != nil {
			s.log.Warn("GET file read failed", ipclog.NewFields().Add("file", name).Add("error", err.Error()))
			return err
		}

		decoded, err := codec.DecodeGetFile(text, s.cfg.SubjectName)
		if err != nil {
			if errors.IsCode(err, codec.ErrMissingFooter) {
				s.log.Debug("GET file incomplete, retrying next tick", ipclog.NewFields().Add("file", name))
				continue
			}
			s.log.Warn("GET file malformed", ipclog.NewFields().Add("file", name).Add("error", err.Error()))
			s.met.IncParseError("get")
			return err
		}

		for _, g := range decoded {
			var attrs *attribute.List
			if s.cfg.OnGet != nil {
				attrs = s.cfg.OnGet(g)
			}
			responses = append(responses, request.NewGetResponse(s.cfg.SubjectName, g.Subject(), g.RID(), attrs))
		}

		if err := fileio.Remove(s.cfg.Dir, name); err != nil {
			return err
		}
	}

	if len(responses) == 0 {
		return nil
	}

	body := codec.EncodeGetResponseBatch(responses)
	name := fileio.GenerateName(request.KindGetResponse, tokens.Next())
	return fileio.WriteAtomic(s.cfg.Dir, name, body, s.cfg.FilePerm)
}

// pollSets implements the server's SET-poll tick: list inbound SET files,
// decode each, and dispatch every record to OnSet. Every per-record error
// is logged; the first is retained and returned once all records in all
// files this tick have been
// attempted, matching spec's "logged but not propagated to the client"
// contract (the tick's own error is an operator-facing concern, not a
// client-visible one).
func (s *Server) pollSets(ctx context.Context) error {
	names, err := fileio.ListFiles(s.cfg.Dir, "SET"+string(fileio.DelimChar))
	if err != nil {
		if errors.IsCode(err, fileio.ErrEmptyDir) {
			return nil
		}
		s.log.Warn("SET poll could not list directory", ipclog.NewFields().Add("error", err.Error()))
		return err
	}

	var tickErr error
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		text, err := fileio.ReadFile(s.cfg.Dir, name)
		if err != nil {
			s.log.Warn("SET file read failed", ipclog.NewFields().Add("file", name).Add("error", err.Error()))
			return err
		}

		decoded, err := codec.DecodeSetFile(text, s.cfg.SubjectName)
		if err != nil {
			if errors.IsCode(err, codec.ErrMissingFooter) {
				s.log.Debug("SET file incomplete, retrying next tick", ipclog.NewFields().Add("file", name))
				continue
			}
			s.log.Warn("SET file malformed", ipclog.NewFields().Add("file", name).Add("error", err.Error()))
			s.met.IncParseError("set")
			return err
		}

		for _, set := range decoded {
			if s.cfg.OnSet == nil {
				continue
			}
			if e := s.cfg.OnSet(set); e != nil {
				s.log.Error("on_set callback failed", ipclog.NewFields().Add("rid", set.RID().String()), e)
				if tickErr == nil {
					tickErr = e
				}
			}
		}

		if err := fileio.Remove(s.cfg.Dir, name); err != nil {
			return err
		}
	}

	return tickErr
}
