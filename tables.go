// seehuhn.de/go/blit - compositing of glyph bitmaps
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package blit

import (
	"log/slog"
	"sync"
)

// Default capacities of a Tables cache.
const (
	defaultMaxSaturations = 8
	defaultMaxConversions = 16
)

// Tables caches the lookup tables used to composite gray glyphs into gray
// targets.
//
// A saturation table for g gray levels has 3g-1 entries; entry i is
// min(i, g-1).  It turns the sum of two coverage values into a clamped
// coverage value with a single lookup.
//
// A conversion table for the pair (target, source) has one entry per
// source level; entry i is i*(target-1)/(source-1), rounded down.
//
// Tables are created on first use and never change afterwards.  The cache
// has a fixed capacity and no eviction: once it is full, requests for new
// tables fail with ErrSaturationOverflow or ErrConversionOverflow.
//
// A Tables value is safe for concurrent use.  The slices it returns are
// shared and must not be modified.
type Tables struct {
	mu sync.Mutex

	maxSat  int
	sat     []saturation
	lastSat int

	maxConv  int
	conv     []conversion
	lastConv int
}

type saturation struct {
	grays int
	table []byte
}

type conversion struct {
	target, source int
	table          []byte
}

// TableOption configures a Tables cache.
type TableOption func(*Tables)

// WithMaxSaturations sets the number of saturation tables the cache can
// hold.  The default is 8.
func WithMaxSaturations(n int) TableOption {
	return func(t *Tables) {
		t.maxSat = n
	}
}

// WithMaxConversions sets the number of conversion tables the cache can
// hold.  The default is 16.
func WithMaxConversions(n int) TableOption {
	return func(t *Tables) {
		t.maxConv = n
	}
}

// NewTables returns an empty table cache.
func NewTables(opts ...TableOption) *Tables {
	t := &Tables{
		maxSat:  defaultMaxSaturations,
		maxConv: defaultMaxConversions,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.maxSat = max(t.maxSat, 0)
	t.maxConv = max(t.maxConv, 0)
	return t
}

// Saturation returns the saturation table for the given number of gray
// levels.
func (t *Tables) Saturation(grays int) ([]byte, error) {
	if grays < 2 || grays > 256 {
		return nil, ErrBadArgument
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lastSat < len(t.sat) && t.sat[t.lastSat].grays == grays {
		return t.sat[t.lastSat].table, nil
	}
	for i := range t.sat {
		if t.sat[i].grays == grays {
			t.lastSat = i
			return t.sat[i].table, nil
		}
	}

	if len(t.sat) >= t.maxSat {
		Logger().Warn("saturation table cache full",
			slog.Int("grays", grays), slog.Int("capacity", t.maxSat))
		return nil, ErrSaturationOverflow
	}

	table := make([]byte, 3*grays-1)
	for i := range table {
		table[i] = byte(min(i, grays-1))
	}
	t.sat = append(t.sat, saturation{grays: grays, table: table})
	t.lastSat = len(t.sat) - 1
	Logger().Debug("new saturation table", slog.Int("grays", grays))
	return table, nil
}

// Conversion returns the table which rescales source gray levels to
// target gray levels.
func (t *Tables) Conversion(target, source int) ([]byte, error) {
	if target < 2 || source < 2 || target > 256 || source > 256 {
		return nil, ErrBadArgument
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lastConv < len(t.conv) {
		c := &t.conv[t.lastConv]
		if c.target == target && c.source == source {
			return c.table, nil
		}
	}
	for i := range t.conv {
		c := &t.conv[i]
		if c.target == target && c.source == source {
			t.lastConv = i
			return c.table, nil
		}
	}

	if len(t.conv) >= t.maxConv {
		Logger().Warn("conversion table cache full",
			slog.Int("target", target), slog.Int("source", source),
			slog.Int("capacity", t.maxConv))
		return nil, ErrConversionOverflow
	}

	table := make([]byte, source)
	for i := range table {
		table[i] = byte(i * (target - 1) / (source - 1))
	}
	t.conv = append(t.conv, conversion{target: target, source: source, table: table})
	t.lastConv = len(t.conv) - 1
	Logger().Debug("new conversion table",
		slog.Int("target", target), slog.Int("source", source))
	return table, nil
}

// Prewarm creates the saturation tables for all given gray-level counts
// and the conversion tables for all ordered pairs of distinct counts.
// After a successful call, compositing between these counts never needs
// to grow the cache.
func (t *Tables) Prewarm(grays ...int) error {
	for _, g := range grays {
		if _, err := t.Saturation(g); err != nil {
			return err
		}
	}
	for _, target := range grays {
		for _, source := range grays {
			if target == source {
				continue
			}
			if _, err := t.Conversion(target, source); err != nil {
				return err
			}
		}
	}
	return nil
}

// Len returns the number of cached saturation and conversion tables.
func (t *Tables) Len() (saturations, conversions int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sat), len(t.conv)
}
