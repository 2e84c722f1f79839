// Package config loads runtime configuration for the interactive client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the authenticator gRPC endpoint
//	-m string   remote authenticator: mock or grpc
//	-l int      mock authenticator latency (milliseconds)
//	-s string   session database path
//	-k string   secure storage passphrase
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be either strings like "3s" or
// integer nanoseconds. Fields that are absent keep their previous value:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "remote_mode": "grpc",
//	  "mock_latency": "500ms",
//	  "storage_path": "session.db",
//	  "encryption_key": "change-me",
//	  "online_check_interval": "3s"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
