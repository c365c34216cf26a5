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

// GetCurveTokens selects Curve pool token metadata
type GetCurveTokens struct {
	Range
	Address     query.Set[common.Address] `json:"address__in,omitempty"`
	Symbol      query.Set[string]         `json:"symbol__in,omitempty"`
	Name        query.Set[string]         `json:"name__in,omitempty"`
	PoolAddress query.Set[common.Address] `json:"pool_address__in,omitempty"`

	DecimalsGte *uint8 `json:"decimals__gte,omitempty"`
	DecimalsLte *uint8 `json:"decimals__lte,omitempty"`
}

func (GetCurveTokens) OperationName() string {
	return "getCurveTokens"
}

// GetCurvePools selects Curve pool registrations
type GetCurvePools struct {
	Range
	PoolAddress query.Set[common.Address] `json:"pool_address__in,omitempty"`
	Token       query.Set[common.Address] `json:"token__in,omitempty"`
	Owner       query.Set[common.Address] `json:"owner__in,omitempty"`
	BasePool    query.Set[common.Address] `json:"base_pool__in,omitempty"`
	Coins       query.Set[common.Address] `json:"coins__in,omitempty"`
	BaseCoins   query.Set[common.Address] `json:"base_coins__in,omitempty"`

	FeeGte *hexutil.Big `json:"fee__gte,omitempty"`
	FeeLte *hexutil.Big `json:"fee__lte,omitempty"`

	AdminFeeGte *hexutil.Big `json:"admin_fee__gte,omitempty"`
	AdminFeeLte *hexutil.Big `json:"admin_fee__lte,omitempty"`

	InitialAGte *hexutil.Big `json:"initial_a__gte,omitempty"`
	InitialALte *hexutil.Big `json:"initial_a__lte,omitempty"`

	FutureAGte *hexutil.Big `json:"future_a__gte,omitempty"`
	FutureALte *hexutil.Big `json:"future_a__lte,omitempty"`

	InitialATimeGte *hexutil.Big `json:"initial_a_time__gte,omitempty"`
	InitialATimeLte *hexutil.Big `json:"initial_a_time__lte,omitempty"`

	FutureATimeGte *hexutil.Big `json:"future_a_time__gte,omitempty"`
	FutureATimeLte *hexutil.Big `json:"future_a_time__lte,omitempty"`

	NCoinsGte *uint8 `json:"n_coins__gte,omitempty"`
	NCoinsLte *uint8 `json:"n_coins__lte,omitempty"`
}

func (GetCurvePools) OperationName() string {
	return "getCurvePools"
}

// GetCurvePrices selects Curve token exchange events
type GetCurvePrices struct {
	Range
	PoolAddress query.Set[common.Address] `json:"pool_address__in,omitempty"`
	Buyer       query.Set[common.Address] `json:"buyer__in,omitempty"`

	TokensAddress query.Set[common.Address] `json:"tokens_address__in,omitempty"`
	TokensSymbol  query.Set[string]         `json:"tokens_symbol__in,omitempty"`

	SoldAddress query.Set[common.Address] `json:"sold_address__in,omitempty"`
	SoldSymbol  query.Set[string]         `json:"sold_symbol__in,omitempty"`

	SoldDecimalsGte *uint8 `json:"sold_decimals__gte,omitempty"`
	SoldDecimalsLte *uint8 `json:"sold_decimals__lte,omitempty"`

	BoughtAddress query.Set[common.Address] `json:"bought_address__in,omitempty"`
	BoughtSymbol  query.Set[string]         `json:"bought_symbol__in,omitempty"`

	BoughtDecimalsGte *uint8 `json:"bought_decimals__gte,omitempty"`
	BoughtDecimalsLte *uint8 `json:"bought_decimals__lte,omitempty"`

	PriceGte *float64 `json:"price__gte,omitempty"`
	PriceLte *float64 `json:"price__lte,omitempty"`

	TokensSoldGte *float64 `json:"tokens_sold__gte,omitempty"`
	TokensSoldLte *float64 `json:"tokens_sold__lte,omitempty"`

	TokensBoughtGte *float64 `json:"tokens_bought__gte,omitempty"`
	TokensBoughtLte *float64 `json:"tokens_bought__lte,omitempty"`
}

func (GetCurvePrices) OperationName() string {
	return "getCurvePrices"
}
