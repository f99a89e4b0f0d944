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

package store

import (
	"errors"
	"fmt"

	"github.com/NoxxGames/ipcfile/attribute"
	"github.com/NoxxGames/ipcfile/request"
	"gorm.io/gorm"
)

// OnGet matches manager.OnGet. It reads one row per requested name and
// returns whatever subset was actually found; a name with no stored row is
// simply absent from the result, not an error.
func (s *Store) OnGet(req *request.Get) *attribute.List {
	out := attribute.NewList()

	for _, name := range req.Want() {
		kind, ok := name.Kind()
		if !ok {
			continue
		}

		var row attributeRow
		err := s.db.Where("subject = ? AND attr_key = ?", req.Subject(), name.String()).First(&row).Error
		if err != nil {
			continue
		}

		v, ok := attribute.Decode(kind, row.Value)
		if !ok {
			continue
		}
		out.Set(name, v)
	}

	return out
}

// OnSet matches manager.OnSet. Every bound attribute in req is upserted in
// a single transaction, keyed by (subject, attr_key); an unregistered name
// is skipped rather than rejecting the whole request, matching the
// catalogue's lenient-unknown-key contract.
func (s *Store) OnSet(req *request.Set) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		req.Attributes().Range(func(name attribute.Name, v attribute.Value) bool {
			if !name.IsValid() {
				return true
			}

			var row attributeRow
			err := tx.Where("subject = ? AND attr_key = ?", req.Subject(), name.String()).First(&row).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				row = attributeRow{
					ID:      newRowID(),
					Subject: req.Subject(),
					AttrKey: name.String(),
				}
			case err != nil:
				txErr = fmt.Errorf("store: lookup %s/%s: %w", req.Subject(), name.String(), err)
				return false
			}

			row.Kind = uint8(v.Kind())
			row.Value = v.Encode()
			if err := tx.Save(&row).Error; err != nil {
				txErr = fmt.Errorf("store: save %s/%s: %w", req.Subject(), name.String(), err)
				return false
			}
			return true
		})
		return txErr
	})
}
