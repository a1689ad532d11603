// Package logging builds the zap loggers used by the client and the CLI and
// names the structured fields the endpoint groups log with.
package logging
