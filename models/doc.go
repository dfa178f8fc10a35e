// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

Request types carry the JSON bodies handlers parse; response types carry
what they return. Domain state itself lives in the engine package;
models only wraps it for the wire, plus the shared ErrorResponse shape
used by the middleware helpers.
*/
package models
