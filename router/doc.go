// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes.

NewRouter wires handlers to a stdlib ServeMux using Go 1.22+ method
patterns:

	POST /sessions                      create a session
	GET  /sessions                      list session summaries
	GET  /sessions/{id}                 one session summary
	POST /sessions/{id}/entries         enroll one participant
	POST /sessions/{id}/import          bulk enrollment
	GET  /sessions/{id}/participants    enrollment list
	POST /sessions/{id}/reveal          reveal the seed (operator)
	POST /sessions/{id}/draws/{tier}    draw one tier (operator)
	POST /sessions/{id}/draw            legacy single draw (operator)
	GET  /sessions/{id}/winners         winners, overall and per tier
	GET  /chain                         full audit chain
	GET  /chain/verify                  verify chain integrity
	GET  /health                        health check

All routes are wrapped with request logging middleware.
*/
package router
