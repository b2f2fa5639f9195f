// SPDX-License-Identifier: MPL-2.0

package config

import "context"

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
	// ConfigDirPath overrides the config directory lookup when set.
	ConfigDirPath string
}

// Provider loads configuration from explicit options. The package-level
// Load caches through a Provider, so tests can substitute one to observe
// or stub config loading.
type Provider interface {
	// Load returns the configuration and the path of the file it came
	// from, "" when defaults were used.
	Load(ctx context.Context, opts LoadOptions) (*Config, string, error)
}

type fileProvider struct{}

// NewProvider creates a provider backed by the config file search
// (CUE preferred, TOML fallback, defaults when neither exists).
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	return loadWithOptions(ctx, opts)
}
