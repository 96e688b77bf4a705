// Package requestid attaches a correlation id to every HTTP request and
// exposes it to handlers and structured logs.
package requestid
