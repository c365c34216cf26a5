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
	"context"
	"os"
)

// Environment variables read by ClientBuilder.FromEnv
const (
	EnvEndpoint = "SUPERCHAIN_ENDPOINT"
	EnvUsername = "SUPERCHAIN_USERNAME"
	EnvPassword = "SUPERCHAIN_PASSWORD"
)

// ClientBuilder assembles a Client step by step. The zero value is not
// usable; start from NewClientBuilder.
type ClientBuilder struct {
	options []ProviderOption
}

// NewClientBuilder returns a builder connecting to the production
// endpoint over TLS
func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{}
}

// Endpoint sets the host (and optional port) to connect to
func (b *ClientBuilder) Endpoint(endpoint string) *ClientBuilder {
	b.options = append(b.options, WithEndpoint(endpoint))
	return b
}

// Credentials sets the basic auth credentials
func (b *ClientBuilder) Credentials(username string, password string) *ClientBuilder {
	b.options = append(b.options, WithCredentials(username, password))
	return b
}

// Secure toggles TLS
func (b *ClientBuilder) Secure(secure bool) *ClientBuilder {
	b.options = append(b.options, WithSecure(secure))
	return b
}

// Options appends raw provider options
func (b *ClientBuilder) Options(options ...ProviderOption) *ClientBuilder {
	b.options = append(b.options, options...)
	return b
}

// FromEnv reads the endpoint and credentials from the environment.
// Unset variables leave the current values untouched.
func (b *ClientBuilder) FromEnv() *ClientBuilder {
	if endpoint := os.Getenv(EnvEndpoint); endpoint != "" {
		b.Endpoint(endpoint)
	}
	username, password := os.Getenv(EnvUsername), os.Getenv(EnvPassword)
	if username != "" || password != "" {
		b.Credentials(username, password)
	}
	return b
}

// BuildHTTP creates a client backed by the HTTP transport
func (b *ClientBuilder) BuildHTTP() (*Client, error) {
	provider, err := NewHTTPProvider(NewProviderConfig(b.options...))
	if err != nil {
		return nil, err
	}
	return NewClient(provider), nil
}

// BuildWS creates a client backed by the websocket transport. It dials
// the backend before returning.
func (b *ClientBuilder) BuildWS(ctx context.Context) (*Client, error) {
	provider, err := NewWSProvider(ctx, NewProviderConfig(b.options...))
	if err != nil {
		return nil, err
	}
	return NewClient(provider), nil
}
