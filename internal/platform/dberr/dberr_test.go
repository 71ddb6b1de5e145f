// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"no_rows", pgx.ErrNoRows, apperr.CodeNotFound},
		{"wrapped_no_rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), apperr.CodeNotFound},
		{"foreign_key", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, apperr.CodeUnprocessable},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, apperr.CodeConflict},
		{"other_sqlstate", &pgconn.PgError{Code: pgerrcode.SyntaxError}, apperr.CodeInternal},
		{"plain", errors.New("connection refused"), apperr.CodeInternal},
		{"already_classified", apperr.ValidationError("bad"), apperr.CodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dberr.Wrap(tt.err, "test_action")
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

func TestConstraint(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{
		Code:           pgerrcode.ForeignKeyViolation,
		ConstraintName: "shows_venue_id_fkey",
	})

	assert.Equal(t, "shows_venue_id_fkey", dberr.Constraint(err))
	assert.Empty(t, dberr.Constraint(errors.New("x")))
}

func TestConstraint_AfterWrap(t *testing.T) {
	wrapped := dberr.Wrap(&pgconn.PgError{
		Code:           pgerrcode.ForeignKeyViolation,
		ConstraintName: "shows_artist_id_fkey",
	}, "create_show")

	assert.True(t, apperr.IsCode(wrapped, apperr.CodeUnprocessable))
	assert.Equal(t, "shows_artist_id_fkey", dberr.Constraint(wrapped))
}
