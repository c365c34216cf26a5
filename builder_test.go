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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderConfigDefaults(t *testing.T) {
	config := NewProviderConfig()
	assert.Equal(t, DefaultEndpoint, config.endpoint)
	assert.True(t, config.secure)
	assert.False(t, config.deltas)
	assert.NotNil(t, config.logger)
	assert.NotNil(t, config.httpClient)
}

func TestProviderConfigOptions(t *testing.T) {
	config := NewProviderConfig(
		WithEndpoint("localhost:8080"),
		WithCredentials("user", "secret"),
		WithSecure(false),
		WithDeltas(true),
	)
	assert.Equal(t, "localhost:8080", config.endpoint)
	assert.Equal(t, "user", config.username)
	assert.Equal(t, "secret", config.password)
	assert.False(t, config.secure)
	assert.True(t, config.deltas)
}

func TestBuilderBuildHTTP(t *testing.T) {
	client, err := NewClientBuilder().
		Endpoint("localhost:8080").
		Credentials("user", "secret").
		Secure(false).
		BuildHTTP()
	require.NoError(t, err)
	defer client.Close()

	provider, ok := client.StreamingProvider.(*HTTPProvider)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:8080/v1/api/", provider.baseURL.String())
	assert.Equal(t, "user", provider.config.username)
}

func TestBuilderFromEnv(t *testing.T) {
	t.Setenv(EnvEndpoint, "env.example.com")
	t.Setenv(EnvUsername, "env-user")
	t.Setenv(EnvPassword, "env-pass")

	client, err := NewClientBuilder().FromEnv().BuildHTTP()
	require.NoError(t, err)
	defer client.Close()

	provider, ok := client.StreamingProvider.(*HTTPProvider)
	require.True(t, ok)
	assert.Equal(t, "env.example.com", provider.config.endpoint)
	assert.Equal(t, "env-user", provider.config.username)
	assert.Equal(t, "env-pass", provider.config.password)
}

func TestBuilderExplicitOverridesEnv(t *testing.T) {
	t.Setenv(EnvEndpoint, "env.example.com")

	client, err := NewClientBuilder().
		FromEnv().
		Endpoint("explicit.example.com").
		BuildHTTP()
	require.NoError(t, err)
	defer client.Close()

	provider, ok := client.StreamingProvider.(*HTTPProvider)
	require.True(t, ok)
	assert.Equal(t, "explicit.example.com", provider.config.endpoint)
}
