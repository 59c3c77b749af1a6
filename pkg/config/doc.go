// Package config loads typed configuration structs from environment
// variables, with optional .env file support and per-type caching.
//
// It is a thin layer over caarlos0/env struct-tag parsing: define a
// struct with env tags, pass a pointer to Load, and read the populated
// fields. The first Load in a process also reads a .env file from the
// working directory when one exists, so local development does not need
// exported variables.
//
// Loaded values are cached per struct type. This keeps configuration
// stable for the process lifetime even if the environment mutates, and
// makes repeated loads from independent packages cheap. Tests that need
// to re-read the environment call ResetCache between cases.
package config
