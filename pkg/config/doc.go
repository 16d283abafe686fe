// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Loading is tag-driven via caarlos0/env; the .env file (if present) is read
// once per process before the first parse. See Load for usage.
package config
