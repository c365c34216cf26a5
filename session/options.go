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

package session

import (
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
)

const (
	defaultPingPeriod           = 30 * time.Second
	defaultReconnectDelay       = 5 * time.Second
	defaultMaxReconnectAttempts = 100
	defaultWriteTimeout         = 10 * time.Second
)

// Config holds the tunables of a Session
type Config struct {
	logger               *slog.Logger
	clock                clock.Clock
	pingPeriod           time.Duration
	reconnectDelay       time.Duration
	maxReconnectAttempts int
	writeTimeout         time.Duration
}

// ConfigOption is a function that modifies a Config
type ConfigOption func(*Config)

// NewConfig returns a Config with the given options applied
func NewConfig(options ...ConfigOption) Config {
	c := Config{
		logger:               slog.Default(),
		clock:                clock.New(),
		pingPeriod:           defaultPingPeriod,
		reconnectDelay:       defaultReconnectDelay,
		maxReconnectAttempts: defaultMaxReconnectAttempts,
		writeTimeout:         defaultWriteTimeout,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// WithLogger specifies the logger
func WithLogger(logger *slog.Logger) ConfigOption {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithClock specifies the clock used for keep-alive and reconnect
// timing. Intended for tests.
func WithClock(clk clock.Clock) ConfigOption {
	return func(c *Config) {
		c.clock = clk
	}
}

// WithPingPeriod specifies the keep-alive ping interval
func WithPingPeriod(period time.Duration) ConfigOption {
	return func(c *Config) {
		c.pingPeriod = period
	}
}

// WithReconnectDelay specifies the delay between reconnect attempts
func WithReconnectDelay(delay time.Duration) ConfigOption {
	return func(c *Config) {
		c.reconnectDelay = delay
	}
}

// WithMaxReconnectAttempts specifies how many consecutive reconnect
// attempts are made before the session gives up
func WithMaxReconnectAttempts(attempts int) ConfigOption {
	return func(c *Config) {
		c.maxReconnectAttempts = attempts
	}
}

// WithWriteTimeout specifies the deadline applied to outgoing writes
func WithWriteTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.writeTimeout = timeout
	}
}
