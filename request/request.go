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

// Package request defines the typed request objects for every operation
// the Superchain API exposes. Each request carries the chains to cover,
// the block range, and operation-specific filters, and serializes to the
// flat parameter map used both in HTTP query strings and in websocket
// subscription requests.
package request

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/superchain-network/go-superchain/chain"
	"github.com/superchain-network/go-superchain/query"
)

// Operation is implemented by every request type. OperationName returns
// the wire name of the operation the request selects.
type Operation interface {
	OperationName() string
}

// Range is the common portion of every request: the chains to cover and
// the block range to scan
type Range struct {
	Chains    query.Set[chain.ChainID] `json:"chains,omitempty"`
	FromBlock query.Bound              `json:"from_block"`
	ToBlock   query.Bound              `json:"to_block"`
}

// NewRange covers the given chains from the latest block onward.
// With no chains given the range covers Ethereum.
func NewRange(chains ...chain.ChainID) Range {
	if len(chains) == 0 {
		chains = []chain.ChainID{chain.Ethereum}
	}
	return Range{
		Chains:    query.NewSet(chains...),
		FromBlock: query.BoundLatest(),
		ToBlock:   query.BoundNone(),
	}
}

// WithBlocks sets both ends of the block range
func (r Range) WithBlocks(from query.Bound, to query.Bound) Range {
	r.FromBlock = from
	r.ToBlock = to
	return r
}

// Ptr returns a pointer to its argument, for filling optional filters
func Ptr[T any](v T) *T {
	return &v
}

// QueryValues flattens a request into URL query parameters. Values are
// rendered the same way the websocket request envelope renders them,
// minus the JSON quoting.
func QueryValues(op Operation) (url.Values, error) {
	data, err := json.Marshal(op)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	values := url.Values{}
	for key, raw := range fields {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			values.Set(key, s)
			continue
		}
		values.Set(key, string(raw))
	}
	return values, nil
}

func parseEnum[T ~string](data []byte, valid func(T) bool, what string) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	v := T(s)
	if !valid(v) {
		return "", fmt.Errorf("unknown %s: %q", what, s)
	}
	return v, nil
}
