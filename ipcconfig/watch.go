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

import "github.com/fsnotify/fsnotify"

// OnChange is invoked after a config file rewrite has been re-read and
// re-unmarshaled. err is non-nil when the re-read config failed to decode or
// validate; after a validation failure cfg holds the decoded, invalid
// Config. In either case the previously loaded Config should be kept.
type OnChange func(cfg Config, err error)

// Watch arms viper's fsnotify-backed file watcher (the same mechanism the
// teacher's config package wires through golib's viper wrapper) and calls
// fn once per rewrite. Only TickRate and LogLevel are meant to be changed
// live; Dir, Role and SubjectName changes on a running process are not
// applied retroactively by any caller in this module, matching spec.md §9's
// silence on a config-reload story beyond the tick rate and log level.
func (l *Loader) Watch(fn OnChange) {
	l.v.OnConfigChange(func(_ fsnotify.Event) {
		var cfg Config
		err := l.v.Unmarshal(&cfg, l.decodeHook())
		if err == nil {
			err = cfg.Validate()
		}
		fn(cfg, err)
	})
	l.v.WatchConfig()
}
