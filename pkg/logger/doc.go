// Package logger builds the service's *slog.Logger.
//
// New takes functional options for level, format and output, adds static
// attributes, and wraps the handler so that ContextExtractor callbacks can
// inject request-scoped values (such as the request id) on every call:
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "focusflow"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
