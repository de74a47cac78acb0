// Package config loads runtime configuration for the VibeLook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with a .env overlay in development
//     (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend origin
//	-s string   path of the local session file
//
// # JSON schema
//
//	{
//	  "base_url": "https://api.vibelook.example",
//	  "session_file": "/home/user/.vibelook/session.json"
//	}
//
// The resolved Config is built once at startup and passed to every component
// that issues outbound calls; nothing reads ambient configuration later.
package config
