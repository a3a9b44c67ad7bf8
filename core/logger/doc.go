// Package logger builds the zap logger shared by the CLI and the HTTP server.
//
// Level "debug" selects zap's development preset; any other level uses the
// production preset at that level. Format "console" prints coloured human
// output, anything else prints JSON.
//
// Request handlers attach the request's ray id with WithRayID so that every
// line written while serving a request can be correlated:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Lookup failed", zap.Error(err))
package logger
