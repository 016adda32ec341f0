// Package config loads runtime configuration for the Edvora CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//
// Supported flags
//
//	-a string   base URL of the Edvora API
//	-i int      online status check interval (seconds)
//	-t int      per-request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s"
//	}
package config
