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
	"github.com/NoxxGames/ipcfile/token"
	"github.com/NoxxGames/ipcfile/watch"
	"github.com/NoxxGames/ipcfile/worker"
)

// OnResponse is invoked once per resolved pending GET, per spec.md §6's
// client-side response callback.
type OnResponse func(rid token.Token, attrs *attribute.List)

// ClientConfig configures a Client. TickPeriod and FilePerm fall back to
// DefaultTickPeriod/DefaultFilePerm when left zero.
type ClientConfig struct {
	Dir         string
	SubjectName attribute.Name
	TickPeriod  time.Duration
	FilePerm    perm.Perm
	OnResponse  OnResponse
	Logger      ipclog.Logger
	Metrics     ipcmetrics.Recorder

	// DisableWatch skips arming the directory watch that advisorily wakes
	// respPoll early on an inbound GETRESPONSE file (spec.md §4.6/§9,
	// SPEC_FULL §11.3). The fixed tick is never affected either way.
	DisableWatch bool
}

// Client is the CLIENT-role façade: it owns the GET, SET and PendingGET
// buffers and the four client-side worker loops.
type Client struct {
	cfg ClientConfig
	log ipclog.Logger
	met ipcmetrics.Recorder

	gets    *buffer.Buffer[*request.Get]
	sets    *buffer.Buffer[*request.Set]
	pending *buffer.Buffer[*request.Pending]

	getFlush *worker.Loop
	setFlush *worker.Loop
	respPoll *worker.Loop
	reaper   *worker.Loop

	watcher *watch.Watcher
}

// NewClient allocates the CLIENT-role buffers. Worker loops are not started
// until Init is called.
func NewClient(cfg ClientConfig) *Client {
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

	c := &Client{
		cfg:     cfg,
		log:     cfg.Logger.With(ipclog.NewFields().Add("role", "client").Add("dir", cfg.Dir)),
		met:     cfg.Metrics,
		gets:    buffer.New[*request.Get](),
		sets:    buffer.New[*request.Set](),
		pending: buffer.New[*request.Pending](),
	}

	c.getFlush = worker.New(cfg.TickPeriod, func(context.Context) error {
		c.met.IncTick("client", "get_flush")
		_, err := c.FlushGets()
		c.met.SetBufferLen("client", "get", c.gets.Len())
		c.met.SetBufferLen("client", "pending", c.pending.Len())
		return err
	})
	c.setFlush = worker.New(cfg.TickPeriod, func(context.Context) error {
		c.met.IncTick("client", "set_flush")
		_, err := c.FlushSets()
		c.met.SetBufferLen("client", "set", c.sets.Len())
		return err
	})
	c.respPoll = worker.New(cfg.TickPeriod, func(ctx context.Context) error {
		c.met.IncTick("client", "response_poll")
		return c.pollResponses(ctx)
	})
	// No response-timeout policy exists for PendingGET entries (spec.md §9
	// open question): the reaper loop runs to match the lifecycle spec's
	// named loop set, but currently evicts nothing.
	c.reaper = worker.New(cfg.TickPeriod, func(context.Context) error { return nil })

	if !cfg.DisableWatch {
		w, err := watch.New(cfg.Dir, c.log, watch.Route{
			Prefix: "GETRESPONSE" + string(fileio.DelimChar),
			Loop:   c.respPoll,
		})
		if err != nil {
			c.log.Warn("directory watch unavailable, falling back to fixed tick only",
				ipclog.NewFields().Add("error", err.Error()))
		} else {
			c.watcher = w
		}
	}

	return c
}

// Init starts the GET-flush, SET-flush, Response-poll and Pending-reaper
// loops, and the directory watch that advisorily wakes Response-poll early
// (if armed successfully at construction).
func (c *Client) Init(ctx context.Context) error {
	for _, l := range []*worker.Loop{c.getFlush, c.setFlush, c.respPoll, c.reaper} {
		if err := l.Start(ctx); err != nil {
			return err
		}
	}
	if c.watcher != nil {
		go func() { _ = c.watcher.Run(ctx) }()
	}
	return nil
}

// Shutdown stops every client loop, then drops the GET, SET and PendingGET
// buffers without invoking OnResponse for anything still outstanding
// (spec.md's Shutdown-drop error kind).
func (c *Client) Shutdown(ctx context.Context) error {
	if c.watcher != nil {
		_ = c.watcher.Close()
	}
	for _, l := range []*worker.Loop{c.getFlush, c.setFlush, c.respPoll, c.reaper} {
		if err := l.Stop(ctx); err != nil {
			return err
		}
	}
	c.gets.Clear()
	c.sets.Clear()
	c.pending.Clear()
	return nil
}

// SubmitGet rejects an empty request and otherwise pushes it into the GET
// buffer and clones it into the PendingGET buffer under the originating
// RID.
func (c *Client) SubmitGet(req *request.Get) bool {
	if req == nil || req.IsEmpty() {
		return false
	}
	if !c.gets.Push(req) {
		return false
	}
	c.pending.Push(request.NewPending(req))
	return true
}

// SubmitSet rejects an empty request and otherwise pushes it into the SET
// buffer.
func (c *Client) SubmitSet(req *request.Set) bool {
	if req == nil || req.IsEmpty() {
		return false
	}
	return c.sets.Push(req)
}

// FlushGets encodes the entire GET buffer to one file and clears the
// buffer, returning false with no error if the buffer was empty. Pending
// entries flushed in this batch have their FlushedAs token updated to the
// newly minted file-naming token.
func (c *Client) FlushGets() (bool, error) {
	var (
		wrote     bool
		werr      error
		rids      map[token.Token]struct{}
		fileToken token.Token
	)

	c.gets.Drain(func(items []*request.Get) {
		if len(items) == 0 {
			return
		}
		rids = make(map[token.Token]struct{}, len(items))
		for _, g := range items {
			rids[g.RID()] = struct{}{}
		}

		body := codec.EncodeGetBatch(items)
		fileToken = tokens.Next()
		name := fileio.GenerateName(request.KindGet, fileToken)
		if werr = fileio.WriteAtomic(c.cfg.Dir, name, body, c.cfg.FilePerm); werr == nil {
			wrote = true
		} else {
			c.log.Warn("GET flush failed", ipclog.NewFields().Add("file", name).Add("error", werr.Error()))
		}
	})

	if wrote {
		c.pending.Guarded(func(items []*request.Pending) {
			for _, p := range items {
				if _, ok := rids[p.Get.RID()]; ok {
					p.FlushedAs = fileToken
				}
			}
		})
	}

	return wrote, werr
}

// FlushSets encodes the entire SET buffer to one file and clears the
// buffer, returning false with no error if the buffer was empty.
func (c *Client) FlushSets() (bool, error) {
	var (
		wrote bool
		werr  error
	)

	c.sets.Drain(func(items []*request.Set) {
		if len(items) == 0 {
			return
		}
		body := codec.EncodeSetBatch(items)
		name := fileio.GenerateName(request.KindSet, tokens.Next())
		if werr = fileio.WriteAtomic(c.cfg.Dir, name, body, c.cfg.FilePerm); werr == nil {
			wrote = true
		} else {
			c.log.Warn("SET flush failed", ipclog.NewFields().Add("file", name).Add("error", werr.Error()))
		}
	})

	return wrote, werr
}

// pollResponses implements the client's Response-poll tick: list inbound
// GETRESPONSE files, decode each, match every record against PendingGET by
// RID, invoke OnResponse exactly once per match, and delete the file.
func (c *Client) pollResponses(ctx context.Context) error {
	names, err := fileio.ListFiles(c.cfg.Dir, "GETRESPONSE"+string(fileio.DelimChar))
	if err != nil {
		if errors.IsCode(err, fileio.ErrEmptyDir) {
			return nil
		}
		c.log.Warn("response poll could not list directory", ipclog.NewFields().Add("error", err.Error()))
		return err
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.consumeResponseFile(name); err != nil {
			c.log.Warn("response file consume failed", ipclog.NewFields().Add("file", name).Add("error", err.Error()))
			return err
		}
	}
	return nil
}

func (c *Client) consumeResponseFile(name string) error {
	text, err := fileio.ReadFile(c.cfg.Dir, name)
	if err != nil {
		return err
	}

	responses, err := codec.DecodeGetResponseFile(text, c.cfg.SubjectName)
	if err != nil {
		if errors.IsCode(err, codec.ErrMissingFooter) {
			c.log.Debug("response file incomplete, retrying next tick", ipclog.NewFields().Add("file", name))
			return nil
		}
		c.log.Warn("response file malformed", ipclog.NewFields().Add("file", name).Add("error", err.Error()))
		c.met.IncParseError("get_response")
		return err
	}

	byRID := make(map[token.Token]*request.GetResponse, len(responses))
	for _, r := range responses {
		byRID[r.RID()] = r
	}

	var remaining []*request.Pending
	c.pending.Drain(func(items []*request.Pending) {
		remaining = make([]*request.Pending, 0, len(items))
		for _, p := range items {
			r, matched := byRID[p.Get.RID()]
			if !matched {
				remaining = append(remaining, p)
				continue
			}
			if c.cfg.OnResponse != nil {
				c.cfg.OnResponse(p.Get.RID(), r.Attributes())
			}
		}
	})
	for _, p := range remaining {
		c.pending.Push(p)
	}

	return fileio.Remove(c.cfg.Dir, name)
}

// PendingLen reports the number of GET requests awaiting a response.
func (c *Client) PendingLen() int {
	return c.pending.Len()
}
