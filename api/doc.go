// Package api exposes the triage service over HTTP with a chi router.
//
// Request bodies are bound and validated by the binder package and rendered
// through handler.Wrap. Every response carries an X-Request-ID header.
// A full deferred queue configured to reject new entries answers 503.
package api
