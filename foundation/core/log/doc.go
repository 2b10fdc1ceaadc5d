// Package log provides structured logging for mdwtime.
//
// Package: log
// Title: mdwtime Structured Logging
// Description: Leveled, structured logging with JSON and text output and
//              integration with the coded errors of foundation/core/error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Synchronous writer only, removed timers and audit trail
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText}).
//		WithName("todctl")
//
//	logger.Info("slot created", log.Fields{"name": "lunch", "start": "12:00:00"})
//	logger.LogError(err)
package log
