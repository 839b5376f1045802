// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Structs declare their environment mapping with `env` and `envDefault`
// field tags (github.com/caarlos0/env); the .env file, when present, is
// loaded once per process before the first parse.
package config
