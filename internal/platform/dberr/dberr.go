// Copyright (c) 2026 Moviq. All rights reserved.
// Author: dev.kabir01@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"context"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/devkabir/moviq/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// The action string names the failed store operation for server-side logs.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations carry domain meaning
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.ForeignKeyViolation:
			// A counter or set mutation referenced a row that no longer exists.
			return ErrNotFound
		case pgerrcode.UniqueViolation:
			return apperr.ValidationError("Duplicate record")
		}
	}

	// 3. Unreachable or timed-out database is an upstream availability problem,
	// not an application bug.
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return apperr.Unavailable(err)
	}

	// 4. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
