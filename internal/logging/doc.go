// Package logging provides structured logging for souschef.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the application. It provides both general logging
// functions and specialized functions for session and companion-server events.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (navigation moves, recipe parsing)
//   - Info: Normal operations (connections, commands, state changes)
//   - Warn: Non-fatal issues (connection drops, malformed recipes)
//   - Error: Fatal issues (startup failures, critical errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Companion connected",
//	    zap.String("remote_addr", "192.168.1.100"),
//	    zap.String("recipe", "shakshuka"),
//	)
//
// # Specialized Logging
//
// The package provides domain-specific logging functions:
//
//	logging.LogConnection(remoteAddr, "websocket_opened")
//	logging.LogNavigation(recipeID, "advance", oldIndex, newIndex)
//	logging.LogCommand(remoteAddr, "jump", 4)
//	logging.LogHTTPRequest(remoteAddr, "GET", "/api/state")
//
// # Configuration
//
// Logging is silent by default so TUI and CLI output stays clean. Set the
// SOUSCHEF_LOG_LEVEL environment variable, or pass an explicit level:
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap logger
// handles synchronization automatically.
package logging
