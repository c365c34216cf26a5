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

package request

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/superchain-network/go-superchain/query"
)

// GetLogs selects EVM event logs by emitting contract and topics
type GetLogs struct {
	Range
	Address query.Set[common.Address] `json:"address__in,omitempty"`
	Topic0  query.Set[common.Hash]    `json:"topic0__in,omitempty"`
	Topic1  query.Set[common.Hash]    `json:"topic1__in,omitempty"`
	Topic2  query.Set[common.Hash]    `json:"topic2__in,omitempty"`
	Topic3  query.Set[common.Hash]    `json:"topic3__in,omitempty"`
}

func (GetLogs) OperationName() string {
	return "getLogs"
}
