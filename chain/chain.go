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

// Package chain defines identifiers for the networks covered by the
// Superchain data platform.
package chain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ChainID identifies a network by its canonical chain ID
type ChainID int

const (
	Any      ChainID = 0
	Ethereum ChainID = 1
	Optimism ChainID = 10
	Bnb      ChainID = 56
	Fuel     ChainID = 122
	Polygon  ChainID = 137
	Bitcoin  ChainID = 198
	Mevm     ChainID = 336
	Arbitrum ChainID = 42161
	Avax     ChainID = 43114
	Sepolia  ChainID = 1115511
)

// Code returns the short mnemonic used on the wire
func (c ChainID) Code() string {
	switch c {
	case Any:
		return "ANY"
	case Ethereum:
		return "ETH"
	case Optimism:
		return "OPT"
	case Bnb:
		return "BNB"
	case Fuel:
		return "FUEL"
	case Polygon:
		return "MATIC"
	case Bitcoin:
		return "BTC"
	case Mevm:
		return "MEVM"
	case Arbitrum:
		return "ARB"
	case Avax:
		return "AVAX"
	case Sepolia:
		return "SEPETH"
	default:
		return strconv.Itoa(int(c))
	}
}

// Name returns a human-readable network name
func (c ChainID) Name() string {
	switch c {
	case Any:
		return "Any"
	case Ethereum:
		return "Ethereum"
	case Optimism:
		return "Optimism"
	case Bnb:
		return "BNB Smart Chain"
	case Fuel:
		return "Fuel"
	case Polygon:
		return "Polygon"
	case Bitcoin:
		return "Bitcoin"
	case Mevm:
		return "MEVM"
	case Arbitrum:
		return "Arbitrum One"
	case Avax:
		return "Avalanche"
	case Sepolia:
		return "Sepolia"
	default:
		return fmt.Sprintf("Chain %d", int(c))
	}
}

func (c ChainID) String() string {
	return c.Code()
}

func (c ChainID) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Code())
}

func (c *ChainID) UnmarshalJSON(data []byte) error {
	var num int
	if err := json.Unmarshal(data, &num); err == nil {
		*c = ChainID(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid chain id: %s", string(data))
	}
	id, err := ChainFromCode(s)
	if err != nil {
		return err
	}
	*c = id
	return nil
}

// ChainFromCode resolves a short mnemonic or numeric string to a ChainID
func ChainFromCode(code string) (ChainID, error) {
	switch code {
	case "ANY":
		return Any, nil
	case "ETH":
		return Ethereum, nil
	case "OPT":
		return Optimism, nil
	case "BNB":
		return Bnb, nil
	case "FUEL":
		return Fuel, nil
	case "MATIC":
		return Polygon, nil
	case "BTC":
		return Bitcoin, nil
	case "MEVM":
		return Mevm, nil
	case "ARB":
		return Arbitrum, nil
	case "AVAX":
		return Avax, nil
	case "SEPETH":
		return Sepolia, nil
	}
	if num, err := strconv.Atoi(code); err == nil {
		return ChainID(num), nil
	}
	return Any, fmt.Errorf("unknown chain code: %q", code)
}
