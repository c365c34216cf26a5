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

// erc20Token is the token-metadata filter shared by all ERC-20 requests
type erc20Token struct {
	Address query.Set[common.Address] `json:"address__in,omitempty"`
	Symbol  query.Set[string]         `json:"symbol__in,omitempty"`
	Name    query.Set[string]         `json:"name__in,omitempty"`

	DecimalsGte *uint8 `json:"decimals__gte,omitempty"`
	DecimalsLte *uint8 `json:"decimals__lte,omitempty"`
}

// GetErc20 selects ERC-20 token metadata
type GetErc20 struct {
	Range
	erc20Token
}

func (GetErc20) OperationName() string {
	return "getErc20"
}

// GetErc20Approvals selects ERC-20 approval events. Value filters are
// expressed in the token's own decimals.
type GetErc20Approvals struct {
	Range
	erc20Token
	Owner   query.Set[common.Address] `json:"owner__in,omitempty"`
	Spender query.Set[common.Address] `json:"spender__in,omitempty"`

	ValueGte *float64 `json:"value__gte,omitempty"`
	ValueLte *float64 `json:"value__lte,omitempty"`
}

func (GetErc20Approvals) OperationName() string {
	return "getErc20Approvals"
}

// GetErc20Transfers selects ERC-20 transfer events
type GetErc20Transfers struct {
	Range
	erc20Token
	From query.Set[common.Address] `json:"from__in,omitempty"`
	To   query.Set[common.Address] `json:"to__in,omitempty"`

	ValueGte *float64 `json:"value__gte,omitempty"`
	ValueLte *float64 `json:"value__lte,omitempty"`
}

func (GetErc20Transfers) OperationName() string {
	return "getErc20Transfers"
}
