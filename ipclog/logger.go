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

package ipclog

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is a structured, leveled logger. Every method accepts a Fields
// value that is merged over the Logger's own base fields before the entry
// is emitted.
type Logger interface {
	SetLevel(lvl Level)
	GetLevel() Level
	SetOutput(w io.Writer)

	With(fields Fields) Logger

	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, fields Fields, err error)
}

type logger struct {
	log  *logrus.Logger
	base Fields
}

// New returns a Logger writing JSON-formatted entries at InfoLevel.
func New() Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(InfoLevel.Logrus())

	return &logger{log: l, base: NewFields()}
}

func (g *logger) SetLevel(lvl Level) {
	g.log.SetLevel(lvl.Logrus())
}

func (g *logger) GetLevel() Level {
	switch g.log.GetLevel() {
	case logrus.ErrorLevel, logrus.PanicLevel, logrus.FatalLevel:
		return ErrorLevel
	case logrus.WarnLevel:
		return WarnLevel
	case logrus.DebugLevel, logrus.TraceLevel:
		return DebugLevel
	default:
		return InfoLevel
	}
}

func (g *logger) SetOutput(w io.Writer) {
	g.log.SetOutput(w)
}

// With returns a Logger that merges fields over every entry this Logger and
// its descendants emit, without mutating g.
func (g *logger) With(fields Fields) Logger {
	return &logger{log: g.log, base: g.base.Merge(fields)}
}

func (g *logger) entry(fields Fields) *logrus.Entry {
	return g.log.WithFields(g.base.Merge(fields).Logrus())
}

func (g *logger) Debug(msg string, fields Fields) {
	g.entry(fields).Debug(msg)
}

func (g *logger) Info(msg string, fields Fields) {
	g.entry(fields).Info(msg)
}

func (g *logger) Warn(msg string, fields Fields) {
	g.entry(fields).Warn(msg)
}

func (g *logger) Error(msg string, fields Fields, err error) {
	e := g.entry(fields)
	if err != nil {
		e = e.WithError(err)
	}
	e.Error(msg)
}

// Default is the package-wide Logger every in-tree component logs through
// unless given one explicitly.
var Default Logger = New()
