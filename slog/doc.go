// Package slog provides logging decorators for bungo collaborators. Each
// decorator logs one record per call with its duration and error.
package slog
