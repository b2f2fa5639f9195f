// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the runner application configuration.
//
// Configuration comes from a CUE file validated against an embedded schema,
// with a TOML fallback, layered over defaults and RUNNER_* environment
// variable overrides via Viper.
package config
