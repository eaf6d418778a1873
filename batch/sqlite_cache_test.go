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
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockCache(t *testing.T) (*Cache, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &Cache{db: sqlx.NewDb(db, "sqlmock")}, mock
}

func TestCacheGetMiss(t *testing.T) {
	c, mock := newMockCache(t)
	mock.ExpectQuery("SELECT tau_min, min_witness, tau_max, max_witness FROM bounds_cache").
		WithArgs("missing-key").
		WillReturnRows(sqlmock.NewRows([]string{"tau_min", "min_witness", "tau_max", "max_witness"}))

	_, ok, err := c.Get("missing-key")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheGetHit(t *testing.T) {
	c, mock := newMockCache(t)
	rows := sqlmock.NewRows([]string{"tau_min", "min_witness", "tau_max", "max_witness"}).
		AddRow(-1.0, "b a", 1.0, "a b")
	mock.ExpectQuery("SELECT tau_min, min_witness, tau_max, max_witness FROM bounds_cache").
		WithArgs("key-1").
		WillReturnRows(rows)

	v, ok, err := c.Get("key-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, -1.0, v.TauMin)
	assert.Equal(t, "a b", v.MaxWitness)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachePut(t *testing.T) {
	c, mock := newMockCache(t)
	mock.ExpectExec("INSERT INTO bounds_cache").
		WithArgs("key-1", -1.0, "b a", 1.0, "a b").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := c.Put("key-1", CachedBounds{TauMin: -1.0, MinWitness: "b a", TauMax: 1.0, MaxWitness: "a b"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheInfo(t *testing.T) {
	c, mock := newMockCache(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bounds_cache").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := c.Info()
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestCacheClear(t *testing.T) {
	c, mock := newMockCache(t)
	mock.ExpectExec("DELETE FROM bounds_cache").WillReturnResult(sqlmock.NewResult(0, 5))

	require.NoError(t, c.Clear())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheCompact(t *testing.T) {
	c, mock := newMockCache(t)
	mock.ExpectExec("VACUUM").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, c.Compact())
	assert.NoError(t, mock.ExpectationsWereMet())
}
