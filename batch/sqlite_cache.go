// Copyright 2026 The Ranktau Authors
// This file is part of Ranktau.
//
// Ranktau is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ranktau is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Ranktau. If not, see <http://www.gnu.org/licenses/>.

package batch

import (
	"database/sql"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// CachedBounds is the memoised result of solving one case under one
// weight/variant configuration.
type CachedBounds struct {
	TauMin     float64 `db:"tau_min"`
	MinWitness string  `db:"min_witness"`
	TauMax     float64 `db:"tau_max"`
	MaxWitness string  `db:"max_witness"`
}

// CaseCache abstracts the per-case bounds memoisation store, so a CLI's
// driving logic can be exercised against a test double instead of an
// on-disk sqlite file.
type CaseCache interface {
	Get(key string) (CachedBounds, bool, error)
	Put(key string, v CachedBounds) error
}

// Cache memoises solver results in a local sqlite database, keyed by a
// caller-chosen string (typically case name + weight name + variant),
// avoiding recomputation across repeated `eval` sweeps over the same
// corpus. Cache implements CaseCache.
type Cache struct {
	db *sqlx.DB
}

var _ CaseCache = (*Cache)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS bounds_cache (
	cache_key   TEXT PRIMARY KEY,
	tau_min     REAL NOT NULL,
	min_witness TEXT NOT NULL,
	tau_max     REAL NOT NULL,
	max_witness TEXT NOT NULL
);`

// OpenCache opens (creating if necessary) a sqlite-backed cache at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "batch: open cache %q", path)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "batch: migrate cache schema")
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached bounds for key, and whether an entry existed.
func (c *Cache) Get(key string) (CachedBounds, bool, error) {
	var out CachedBounds
	err := c.db.Get(&out, `SELECT tau_min, min_witness, tau_max, max_witness FROM bounds_cache WHERE cache_key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CachedBounds{}, false, nil
		}
		return CachedBounds{}, false, errors.Wrapf(err, "batch: read cache key %q", key)
	}
	return out, true, nil
}

// Put inserts or replaces the cached bounds for key.
func (c *Cache) Put(key string, v CachedBounds) error {
	_, err := c.db.Exec(
		`INSERT INTO bounds_cache (cache_key, tau_min, min_witness, tau_max, max_witness) VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET tau_min=excluded.tau_min, min_witness=excluded.min_witness, tau_max=excluded.tau_max, max_witness=excluded.max_witness`,
		key, v.TauMin, v.MinWitness, v.TauMax, v.MaxWitness,
	)
	if err != nil {
		return errors.Wrapf(err, "batch: write cache key %q", key)
	}
	return nil
}

// Info returns the number of cached entries.
func (c *Cache) Info() (int, error) {
	var n int
	if err := c.db.Get(&n, `SELECT COUNT(*) FROM bounds_cache`); err != nil {
		return 0, errors.Wrap(err, "batch: count cache entries")
	}
	return n, nil
}

// Clear deletes every cached entry.
func (c *Cache) Clear() error {
	if _, err := c.db.Exec(`DELETE FROM bounds_cache`); err != nil {
		return errors.Wrap(err, "batch: clear cache")
	}
	return nil
}

// Compact reclaims space left by deleted rows.
func (c *Cache) Compact() error {
	if _, err := c.db.Exec(`VACUUM`); err != nil {
		return errors.Wrap(err, "batch: compact cache")
	}
	return nil
}
