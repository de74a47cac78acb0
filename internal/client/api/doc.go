// Package api is the HTTP gateway to the VibeLook backend.
//
// Every outbound request carries the bearer access token (when one exists)
// and the development-proxy bypass header. The gateway performs no retries,
// configures no timeout, and caches nothing: concurrent identical requests
// are each sent independently, and every load re-fetches from origin.
// Cancellation is the caller's job via context.
//
// Failures map to a small taxonomy: transport errors (no response) match
// ErrUnavailable, non-2xx statuses become *APIError carrying the status code
// and a human-readable message, and 401/403 additionally match
// ErrUnauthorized via errors.Is.
package api
