// SPDX-License-Identifier: MPL-2.0

package config

import (
	"context"
	"sync"
)

var (
	mu sync.Mutex

	// cachedConfig holds the result of the first successful Load call.
	cachedConfig *Config
	// cachedPath is the resolved path of the loaded config file ("" = defaults).
	cachedPath string

	// configFilePathOverride forces loading from a specific file (--config flag).
	configFilePathOverride string
	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// defaultProvider backs the cached Load. Tests may swap it to stub
	// config loading; Reset restores the file-backed provider.
	defaultProvider = NewProvider()
)

// Load returns the application configuration, loading it on first use and
// caching the result for subsequent calls.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if cachedConfig != nil {
		return cachedConfig, nil
	}

	cfg, path, err := defaultProvider.Load(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
		ConfigDirPath:  configDirOverride,
	})
	if err != nil {
		return nil, err
	}

	cachedConfig = cfg
	cachedPath = path
	return cfg, nil
}

// Get returns the cached configuration, or defaults when Load has not
// succeeded yet.
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	if cachedConfig == nil {
		return DefaultConfig()
	}
	return cachedConfig
}

// ResolvedPath returns the path of the config file that Load read,
// or "" when the configuration came from defaults.
func ResolvedPath() string {
	mu.Lock()
	defer mu.Unlock()

	return cachedPath
}

// Reset clears the cache and test overrides. Call from test cleanup to
// restore defaults.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	cachedConfig = nil
	cachedPath = ""
	configFilePathOverride = ""
	configDirOverride = ""
	defaultProvider = NewProvider()
}

// SetConfigFilePathOverride forces the next Load to read the given file.
// Used by the --config flag.
func SetConfigFilePathOverride(path string) {
	mu.Lock()
	defer mu.Unlock()

	configFilePathOverride = path
	cachedConfig = nil
	cachedPath = ""
}

// SetConfigDirOverride sets a custom config directory path.
// This is primarily intended for testing to bypass os.UserHomeDir() which
// doesn't reliably respect the HOME env var on all platforms (e.g., macOS in CI).
func SetConfigDirOverride(dir string) {
	mu.Lock()
	defer mu.Unlock()

	configDirOverride = dir
	cachedConfig = nil
	cachedPath = ""
}
