// Package slog provides logging decorators for skim services using log/slog.
package slog
