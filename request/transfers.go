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
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/superchain-network/go-superchain/query"
)

// GetTransfers selects native value transfers by token contract and
// counterparties
type GetTransfers struct {
	Range
	Address query.Set[common.Address] `json:"address__in,omitempty"`
	From    query.Set[common.Address] `json:"from__in,omitempty"`
	To      query.Set[common.Address] `json:"to__in,omitempty"`

	ValueGte *hexutil.Big `json:"value__gte,omitempty"`
	ValueLte *hexutil.Big `json:"value__lte,omitempty"`
}

func (GetTransfers) OperationName() string {
	return "getTransfers"
}
