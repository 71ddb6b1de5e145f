// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"log/slog"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action is a snake_case label that ends up in the server-side log line.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// Already classified further down the stack.
	if apperr.As(err) != nil {
		return err
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations are the user's problem, not ours
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case pgerrcode.ForeignKeyViolation:
			appError := apperr.Unprocessable("Referenced record does not exist")
			appError.Cause = err
			return appError
		case pgerrcode.UniqueViolation:
			appError := apperr.Conflict("Record already exists")
			appError.Cause = err
			return appError
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	slog.Debug("database_error", slog.String("action", action), slog.Any("error", err))
	return apperr.Internal(err)
}

// Constraint returns the name of the violated constraint, or "" when err is
// not a PostgreSQL constraint error.
func Constraint(err error) string {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		return pgError.ConstraintName
	}
	return ""
}
