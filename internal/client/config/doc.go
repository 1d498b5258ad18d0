// Package config loads runtime configuration for the streetbite CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), with optional .env support.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-d string   path of the local storage file
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "http://127.0.0.1:8080",
//	  "storage_path": "streetbite.db",
//	  "request_timeout": "10s"
//	}
//
// # Environment
//
//	STREETBITE_SERVER_ADDR      base URL of the backend REST API
//	STREETBITE_STORAGE_PATH     path of the local storage file
//	STREETBITE_REQUEST_TIMEOUT  request timeout (Go duration, e.g. "10s")
package config
