// Package config loads runtime configuration for the GoBarber terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the GoBarber HTTP API
//	-d string   path of the local SQLite database
//	-t int      request timeout (seconds)
//	-l string   log level: debug, info, warn, error
//	-b string   log backend: slog or zap
//
// # JSON schema
//
// Durations may be strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:3333",
//	  "database_path": "gobarber.db",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_backend": "slog"
//	}
package config
