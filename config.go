// Copyright 2025 Superchain Network
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package superchain

import (
	"log/slog"
	"net/http"

	"github.com/superchain-network/go-superchain/session"
)

// DefaultEndpoint is the production endpoint of the Superchain platform
const DefaultEndpoint = "app.superchain.network"

// ProviderConfig holds the connection settings shared by both
// transports
type ProviderConfig struct {
	endpoint       string
	username       string
	password       string
	secure         bool
	deltas         bool
	logger         *slog.Logger
	httpClient     *http.Client
	sessionOptions []session.ConfigOption
}

// ProviderOption is a function that modifies a ProviderConfig
type ProviderOption func(*ProviderConfig)

// NewProviderConfig returns a ProviderConfig with the given options
// applied
func NewProviderConfig(options ...ProviderOption) ProviderConfig {
	c := ProviderConfig{
		endpoint:   DefaultEndpoint,
		secure:     true,
		logger:     slog.Default(),
		httpClient: http.DefaultClient,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithEndpoint specifies the host (and optional port) to connect to
func WithEndpoint(endpoint string) ProviderOption {
	return func(c *ProviderConfig) {
		c.endpoint = endpoint
	}
}

// WithCredentials specifies the basic auth credentials
func WithCredentials(username string, password string) ProviderOption {
	return func(c *ProviderConfig) {
		c.username = username
		c.password = password
	}
}

// WithSecure toggles TLS. Enabled by default.
func WithSecure(secure bool) ProviderOption {
	return func(c *ProviderConfig) {
		c.secure = secure
	}
}

// WithDeltas requests delta encoding on websocket subscriptions
func WithDeltas(deltas bool) ProviderOption {
	return func(c *ProviderConfig) {
		c.deltas = deltas
	}
}

// WithProviderLogger specifies the logger
func WithProviderLogger(logger *slog.Logger) ProviderOption {
	return func(c *ProviderConfig) {
		c.logger = logger
	}
}

// WithHTTPClient specifies the http.Client the HTTP transport uses
func WithHTTPClient(client *http.Client) ProviderOption {
	return func(c *ProviderConfig) {
		c.httpClient = client
	}
}

// WithSessionOptions passes extra options to the websocket session
func WithSessionOptions(options ...session.ConfigOption) ProviderOption {
	return func(c *ProviderConfig) {
		c.sessionOptions = append(c.sessionOptions, options...)
	}
}
