// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

# Handlers

  - SessionHandler: session creation and listings
  - EntryHandler: participant enrollment (single and bulk)
  - DrawHandler: seed reveal, tier draws, single draw, winners
  - ChainHandler: audit chain inspection and verification

Each handler holds the draw engine and the parsed configuration, injected
through its constructor. Engine errors are typed sentinels; errors.go
maps them to HTTP status codes in one place.

Reveal and draw endpoints require the session's operator key in the
X-Operator-Key header. Read endpoints and enrollment are public.
*/
package handlers
