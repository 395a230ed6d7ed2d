// Package config loads typed configuration structs from environment
// variables, with optional .env file support for local development.
//
// Configuration is passed explicitly to the components that need it rather
// than read from ambient process state at call sites, which keeps components
// substitutable in tests.
package config
