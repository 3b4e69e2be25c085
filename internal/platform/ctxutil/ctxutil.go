// Copyright (c) 2026 Moviq. All rights reserved.
// Author: dev.kabir01@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/devkabir/moviq/internal/platform/ctxkey"
	"github.com/devkabir/moviq/internal/platform/identity"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Sender Identity

// WithSender returns a new context with the provided sender identity attached.
func WithSender(ctx context.Context, sender *identity.Sender) context.Context {
	return context.WithValue(ctx, ctxkey.KeySender, sender)
}

// GetSender retrieves the [*identity.Sender] from the [context.Context].
// Returns nil for unidentified requests (e.g., health probes).
func GetSender(ctx context.Context) *identity.Sender {
	sender, ok := ctx.Value(ctxkey.KeySender).(*identity.Sender)
	if !ok {
		return nil
	}
	return sender
}
