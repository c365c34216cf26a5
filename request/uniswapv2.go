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

// ReserveEvent is the pool event that produced a Uniswap V2 price update
type ReserveEvent string

const (
	ReserveEventMint ReserveEvent = "Mint"
	ReserveEventBurn ReserveEvent = "Burn"
	ReserveEventSwap ReserveEvent = "Swap"
	ReserveEventSync ReserveEvent = "Sync"
)

func (e ReserveEvent) Valid() bool {
	switch e {
	case ReserveEventMint, ReserveEventBurn, ReserveEventSwap, ReserveEventSync:
		return true
	}
	return false
}

func (e *ReserveEvent) UnmarshalJSON(data []byte) error {
	v, err := parseEnum(data, ReserveEvent.Valid, "reserve event")
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// GetUniswapV2Pairs selects Uniswap V2 pair creations
type GetUniswapV2Pairs struct {
	Range
	PairAddress    query.Set[common.Address] `json:"pair_address__in,omitempty"`
	FactoryAddress query.Set[common.Address] `json:"factory_address__in,omitempty"`
	Token0         query.Set[common.Address] `json:"token0__in,omitempty"`
	Token1         query.Set[common.Address] `json:"token1__in,omitempty"`
	Tokens         query.Set[common.Address] `json:"tokens__in,omitempty"`
}

func (GetUniswapV2Pairs) OperationName() string {
	return "getUniswapV2Pairs"
}

// GetUniswapV2Prices selects Uniswap V2 price updates
type GetUniswapV2Prices struct {
	Range
	PairAddress        query.Set[common.Address] `json:"pair_address__in,omitempty"`
	PairFactoryAddress query.Set[common.Address] `json:"pair_factory_address__in,omitempty"`
	Event              query.Set[ReserveEvent]   `json:"event__in,omitempty"`

	Reserve0Gte *hexutil.Big `json:"reserve0__gte,omitempty"`
	Reserve0Lte *hexutil.Big `json:"reserve0__lte,omitempty"`
	Reserve1Gte *hexutil.Big `json:"reserve1__gte,omitempty"`
	Reserve1Lte *hexutil.Big `json:"reserve1__lte,omitempty"`

	PriceGte *float64 `json:"price__gte,omitempty"`
	PriceLte *float64 `json:"price__lte,omitempty"`

	Sender   query.Set[common.Address] `json:"sender__in,omitempty"`
	Receiver query.Set[common.Address] `json:"receiver__in,omitempty"`

	Amount0Gte *float64 `json:"amount0__gte,omitempty"`
	Amount0Lte *float64 `json:"amount0__lte,omitempty"`
	Amount1Gte *float64 `json:"amount1__gte,omitempty"`
	Amount1Lte *float64 `json:"amount1__lte,omitempty"`

	LpAmountGte *float64 `json:"lp_amount__gte,omitempty"`
	LpAmountLte *float64 `json:"lp_amount__lte,omitempty"`

	ProtocolFeeGte *float64 `json:"protocol_fee__gte,omitempty"`
	ProtocolFeeLte *float64 `json:"protocol_fee__lte,omitempty"`

	Token0Address query.Set[common.Address] `json:"token0_address__in,omitempty"`
	Token0Symbol  query.Set[string]         `json:"token0_symbol__in,omitempty"`
	Token1Address query.Set[common.Address] `json:"token1_address__in,omitempty"`
	Token1Symbol  query.Set[string]         `json:"token1_symbol__in,omitempty"`
	TokensAddress query.Set[common.Address] `json:"tokens_address__in,omitempty"`
	TokensSymbol  query.Set[string]         `json:"tokens_symbol__in,omitempty"`
}

func (GetUniswapV2Prices) OperationName() string {
	return "getUniswapV2Prices"
}
