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

// Package store implements a reference backing store for a Server's OnGet
// and OnSet hooks, persisting attribute bindings per subject in a sqlite
// table through gorm.
package store

import (
	"github.com/NoxxGames/ipcfile/errors"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// attributeRow is the single table this store uses: one row per
// (subject, attr_key) pair. Kind is persisted alongside Value so a row can
// be decoded back into an attribute.Value without consulting the catalogue,
// which keeps the table readable even if a Name is later deregistered.
type attributeRow struct {
	ID      string `gorm:"primaryKey"`
	Subject string `gorm:"index:idx_subject_key,unique"`
	AttrKey string `gorm:"index:idx_subject_key,unique"`
	Kind    uint8
	Value   string
}

func (attributeRow) TableName() string { return "attributes" }

const (
	// ErrOpenFailed is returned by New when the sqlite connection cannot be
	// opened or migrated.
	ErrOpenFailed errors.CodeError = iota + errors.MinPkgStore
	// ErrQueryFailed is returned by Close when the underlying *sql.DB
	// cannot be obtained. OnSet reports a failed lookup or save as a
	// wrapped plain error, and OnGet skips a failed lookup.
	ErrQueryFailed
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrOpenFailed)
	errors.RegisterIdFctMessage(ErrOpenFailed, getMessage)
}

func getMessage(code errors.CodeError) (message string) {
	switch code {
	case errors.UnknownError:
		return ""
	case ErrOpenFailed:
		return "store could not open or migrate its sqlite database"
	case ErrQueryFailed:
		return "store query against the attributes table failed"
	}

	return ""
}

// Store is a *gorm.DB-backed attribute repository. It is safe for
// concurrent use; gorm pools connections beneath *sql.DB on its own.
type Store struct {
	db *gorm.DB
}

// New opens dsn (a sqlite data source, e.g. a file path or ":memory:") and
// migrates the attributes table. Logging is silenced by default, matching
// the narrow Recorder/Logger surfaces this module already exposes: a
// caller that wants GORM's own query log wires ipclog through
// gormlogger.New separately rather than this constructor taking it on.
func New(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, ErrOpenFailed.Error(err)
	}
	if err := db.AutoMigrate(&attributeRow{}); err != nil {
		return nil, ErrOpenFailed.Error(err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying *sql.DB connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return ErrQueryFailed.Error(err)
	}
	return sqlDB.Close()
}

// DB exposes the underlying *gorm.DB for a caller that needs to run
// migrations or queries this package doesn't wrap.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func newRowID() string {
	return uuid.NewString()
}
