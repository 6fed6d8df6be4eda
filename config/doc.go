// Package config handles application configuration loading and management.
//
// Configuration is stored in ~/.lantern/config.json and includes the default
// game and submission, the move cap, the results directory, and the external
// runner command.
package config
