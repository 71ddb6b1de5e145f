// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/platform/postgres"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"Hop", "%Hop%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`back\slash`, `%back\\slash%`},
		{"", "%%"},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, postgres.ContainsPattern(tt.term))
		})
	}
}

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return nil
}

func (tx *fakeTx) Rollback(context.Context) error {
	if tx.committed {
		return pgx.ErrTxClosed
	}
	tx.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

/*
TestInTx_Commit verifies that a successful callback commits and does not roll back.
*/
func TestInTx_Commit(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}

	err := postgres.InTx(context.Background(), beginner, func(pgx.Tx) error { return nil })

	require.NoError(t, err)
	assert.True(t, beginner.tx.committed)
	assert.False(t, beginner.tx.rolledBack)
}

/*
TestInTx_Rollback verifies that a failing callback rolls back and surfaces its error.
*/
func TestInTx_Rollback(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	boom := errors.New("boom")

	err := postgres.InTx(context.Background(), beginner, func(pgx.Tx) error { return boom })

	assert.ErrorIs(t, err, boom)
	assert.False(t, beginner.tx.committed)
	assert.True(t, beginner.tx.rolledBack)
}

func TestInTx_BeginFailure(t *testing.T) {
	beginner := &fakeBeginner{err: errors.New("pool closed")}

	called := false
	err := postgres.InTx(context.Background(), beginner, func(pgx.Tx) error {
		called = true
		return nil
	})

	assert.ErrorContains(t, err, "pool closed")
	assert.False(t, called)
}
