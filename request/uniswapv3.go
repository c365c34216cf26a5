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

// GetUniswapV3Pools selects Uniswap V3 pool creations
type GetUniswapV3Pools struct {
	Range
	PoolAddress    query.Set[common.Address] `json:"pool_address__in,omitempty"`
	FactoryAddress query.Set[common.Address] `json:"factory_address__in,omitempty"`
	Token0         query.Set[common.Address] `json:"token0__in,omitempty"`
	Token1         query.Set[common.Address] `json:"token1__in,omitempty"`
	Tokens         query.Set[common.Address] `json:"tokens__in,omitempty"`

	FeeGte *int32 `json:"fee__gte,omitempty"`
	FeeLte *int32 `json:"fee__lte,omitempty"`

	TickGte *int32 `json:"tick__gte,omitempty"`
	TickLte *int32 `json:"tick__lte,omitempty"`

	PriceGte *float64 `json:"price__gte,omitempty"`
	PriceLte *float64 `json:"price__lte,omitempty"`

	TickSpacingGte *int32 `json:"tick_spacing__gte,omitempty"`
	TickSpacingLte *int32 `json:"tick_spacing__lte,omitempty"`
}

func (GetUniswapV3Pools) OperationName() string {
	return "getUniswapV3Pools"
}

// GetUniswapV3Prices selects Uniswap V3 price updates. The virtual0 and
// virtual1 filters apply to the pool's virtual reserves.
type GetUniswapV3Prices struct {
	Range
	PoolAddress        query.Set[common.Address] `json:"pool_address__in,omitempty"`
	PoolFactoryAddress query.Set[common.Address] `json:"pool_factory_address__in,omitempty"`

	Virtual0Gte *float64 `json:"virtual0__gte,omitempty"`
	Virtual0Lte *float64 `json:"virtual0__lte,omitempty"`
	Virtual1Gte *float64 `json:"virtual1__gte,omitempty"`
	Virtual1Lte *float64 `json:"virtual1__lte,omitempty"`

	PriceGte *float64 `json:"price__gte,omitempty"`
	PriceLte *float64 `json:"price__lte,omitempty"`

	Sender   query.Set[common.Address] `json:"sender__in,omitempty"`
	Receiver query.Set[common.Address] `json:"receiver__in,omitempty"`

	Amount0Gte *float64 `json:"amount0__gte,omitempty"`
	Amount0Lte *float64 `json:"amount0__lte,omitempty"`
	Amount1Gte *float64 `json:"amount1__gte,omitempty"`
	Amount1Lte *float64 `json:"amount1__lte,omitempty"`

	LiquidityGte *float64 `json:"liquidity__gte,omitempty"`
	LiquidityLte *float64 `json:"liquidity__lte,omitempty"`

	TickGte *int32 `json:"tick__gte,omitempty"`
	TickLte *int32 `json:"tick__lte,omitempty"`

	Token0Address query.Set[common.Address] `json:"token0_address__in,omitempty"`
	Token0Symbol  query.Set[string]         `json:"token0_symbol__in,omitempty"`
	Token1Address query.Set[common.Address] `json:"token1_address__in,omitempty"`
	Token1Symbol  query.Set[string]         `json:"token1_symbol__in,omitempty"`
	TokensAddress query.Set[common.Address] `json:"tokens_address__in,omitempty"`
	TokensSymbol  query.Set[string]         `json:"tokens_symbol__in,omitempty"`
}

func (GetUniswapV3Prices) OperationName() string {
	return "getUniswapV3Prices"
}
