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
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/superchain-network/go-superchain/chain"
	"github.com/superchain-network/go-superchain/query"
)

// Client is the typed entry point of the library. It exposes every
// operation of the underlying provider and adds typed decoding on top
// for the operations with a fixed response shape.
type Client struct {
	StreamingProvider
}

// NewClient wraps a provider. Use ClientBuilder for the common case.
func NewClient(provider StreamingProvider) *Client {
	return &Client{StreamingProvider: provider}
}

// GetStatus fetches the platform status report and decodes it
func (c *Client) GetStatus(ctx context.Context) ([]chain.Status, error) {
	s, err := c.GetStatusByFormat(ctx, query.FormatJSONStream)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	var buf bytes.Buffer
	for item := range s.Chan() {
		if item.Err != nil {
			return nil, item.Err
		}
		buf.Write(item.Data)
	}

	var statuses []chain.Status
	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		var status chain.Status
		if err := json.Unmarshal(line, &status); err != nil {
			var respErr ResponseError
			if jsonErr := json.Unmarshal(line, &respErr); jsonErr == nil && respErr.Status != 0 {
				return nil, &respErr
			}
			return nil, fmt.Errorf("invalid status record: %w", err)
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
