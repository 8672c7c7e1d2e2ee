/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultBaseURL         = "https://restful-booker.herokuapp.com"
	DefaultAdminUsername   = "admin"
	DefaultAdminPassword   = "password123"
	DefaultMaxResponseTime = 2 * time.Second
)

type TestConfig struct {
	BaseURL         string
	AdminUsername   string
	AdminPassword   string
	RequestTimeout  time.Duration
	TestTimeout     time.Duration
	MaxResponseTime time.Duration
	FakerSeed       uint64
	UseFakeBooker   bool
	SkipIntegration bool
	DebugLogging    bool
	LogRequests     bool
	LogResponses    bool
}

// Credentials returns the admin login used for tokens and Basic auth.
func (c *TestConfig) Credentials() Credentials {
	return Credentials{
		Username: c.AdminUsername,
		Password: c.AdminPassword,
	}
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if configuration values are missing or malformed.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:         getStringWithDefault("API_BASE_URL", DefaultBaseURL),
		AdminUsername:   getStringWithDefault("ADMIN_USERNAME", DefaultAdminUsername),
		AdminPassword:   getStringWithDefault("ADMIN_PASSWORD", DefaultAdminPassword),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		TestTimeout:     getDurationWithDefault("TEST_TIMEOUT", 2*time.Minute),
		MaxResponseTime: getDurationWithDefault("MAX_RESPONSE_TIME", DefaultMaxResponseTime),
		FakerSeed:       getUintWithDefault("FAKER_SEED", 0),
		UseFakeBooker:   getBoolWithDefault("USE_FAKE_BOOKER", false),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:    getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func getUintWithDefault(key string, defaultValue uint64) uint64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	uintValue, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultValue
	}

	return uintValue
}

func loadEnvFile() {
	envPaths := []string{
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables take precedence.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	var missing []string

	required := map[string]string{
		"ADMIN_USERNAME": config.AdminUsername,
		"ADMIN_PASSWORD": config.AdminPassword,
	}

	for envVar, value := range required {
		if value == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s. Please set these environment variables or add them to a .env file", strings.Join(missing, ", "))
	}

	// The fake service supplies its own address.
	if config.UseFakeBooker {
		return nil
	}

	u, err := url.Parse(config.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid API_BASE_URL %q: %w", config.BaseURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid API_BASE_URL %q: must be an absolute http(s) URL", config.BaseURL)
	}

	return nil
}
