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

package chain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainCodeRoundTrip(t *testing.T) {
	chains := []ChainID{
		Any, Ethereum, Optimism, Bnb, Fuel, Polygon,
		Bitcoin, Mevm, Arbitrum, Avax, Sepolia,
	}
	for _, c := range chains {
		got, err := ChainFromCode(c.Code())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}

func TestChainMarshal(t *testing.T) {
	data, err := json.Marshal(Ethereum)
	require.NoError(t, err)
	assert.Equal(t, `"ETH"`, string(data))
}

func TestChainUnmarshal(t *testing.T) {
	var c ChainID
	require.NoError(t, json.Unmarshal([]byte(`"BTC"`), &c))
	assert.Equal(t, Bitcoin, c)
	require.NoError(t, json.Unmarshal([]byte(`42161`), &c))
	assert.Equal(t, Arbitrum, c)
	assert.Error(t, json.Unmarshal([]byte(`"NOPE"`), &c))
}

func TestStatusDecode(t *testing.T) {
	raw := `{
		"type": "CHAIN",
		"chain": 1,
		"chain_code": "ETH",
		"chain_name": "Ethereum",
		"service": "blocks",
		"entity": "block",
		"latest_block_height": 19000000,
		"timestamp": 1714000000,
		"status": "OK"
	}`
	var s Status
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	assert.Equal(t, ServiceTypeChain, s.Type)
	assert.Equal(t, Ethereum, s.Chain)
	assert.Equal(t, uint64(19000000), s.LatestBlockHeight)
	assert.Equal(t, HealthStatusOK, s.Status)
}
