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

// GetTxs selects transactions. All amount filters pair an inclusive
// __gte lower bound with an inclusive __lte upper bound.
type GetTxs struct {
	Range
	From query.Set[common.Address] `json:"from__in,omitempty"`
	To   query.Set[common.Address] `json:"to__in,omitempty"`

	ValueGte *hexutil.Big `json:"value__gte,omitempty"`
	ValueLte *hexutil.Big `json:"value__lte,omitempty"`

	GasPriceGte *hexutil.Big `json:"gas_price__gte,omitempty"`
	GasPriceLte *hexutil.Big `json:"gas_price__lte,omitempty"`

	GasGte *hexutil.Big `json:"gas__gte,omitempty"`
	GasLte *hexutil.Big `json:"gas__lte,omitempty"`

	MaxFeePerGasGte *hexutil.Big `json:"max_fee_per_gas__gte,omitempty"`
	MaxFeePerGasLte *hexutil.Big `json:"max_fee_per_gas__lte,omitempty"`

	MaxPriorityFeePerGasGte *hexutil.Big `json:"max_priority_fee_per_gas__gte,omitempty"`
	MaxPriorityFeePerGasLte *hexutil.Big `json:"max_priority_fee_per_gas__lte,omitempty"`
}

func (GetTxs) OperationName() string {
	return "getTxs"
}
