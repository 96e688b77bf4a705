// Package binder turns HTTP requests into typed request structs.
//
// BindJSON decodes and validates JSON bodies (go-playground/validator tags);
// BindQuery fills `query` tagged fields. Validation problems are returned as
// FieldErrors so the caller can render them per field.
package binder
