// Package controller holds the net/http middlewares wrapped around the whole
// server mux, outside of the gin engine that serves /api.
//
// WithCORS answers preflight requests and sets the allow-origin header for
// the configured origins. WithLogger tags every request with an ID and writes
// the access log. PprofHandler exposes the runtime profiles.
package controller
