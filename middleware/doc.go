// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Logging

WithLogging wraps a handler and logs request start and completion with
method, path, and duration via slog.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
	middleware.ParseJSONBody(r, &req)

# CORS

CORS allows cross-origin requests and handles OPTIONS preflight,
including the X-Operator-Key header used by operator endpoints.
*/
package middleware
