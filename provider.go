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
	"context"

	"github.com/superchain-network/go-superchain/query"
	"github.com/superchain-network/go-superchain/request"
	"github.com/superchain-network/go-superchain/stream"
)

// CoreProvider exposes the operations every transport supports
type CoreProvider interface {
	// GetStatusByFormat streams the platform status report
	GetStatusByFormat(ctx context.Context, format query.Format) (*stream.Stream, error)
	// GetHeight returns the latest Ethereum block height
	GetHeight(ctx context.Context) (uint64, error)
	// Close releases the provider's connections
	Close() error
}

// ChainProvider exposes the base chain data operations
type ChainProvider interface {
	GetBlocksByFormat(ctx context.Context, req request.GetBlocks, format query.Format) (*stream.Stream, error)
	GetLogsByFormat(ctx context.Context, req request.GetLogs, format query.Format) (*stream.Stream, error)
	GetTxsByFormat(ctx context.Context, req request.GetTxs, format query.Format) (*stream.Stream, error)
	GetTransfersByFormat(ctx context.Context, req request.GetTransfers, format query.Format) (*stream.Stream, error)
}

// Erc20Provider exposes the ERC-20 operations
type Erc20Provider interface {
	GetErc20ByFormat(ctx context.Context, req request.GetErc20, format query.Format) (*stream.Stream, error)
	GetErc20ApprovalsByFormat(ctx context.Context, req request.GetErc20Approvals, format query.Format) (*stream.Stream, error)
	GetErc20TransfersByFormat(ctx context.Context, req request.GetErc20Transfers, format query.Format) (*stream.Stream, error)
}

// UniswapV2Provider exposes the Uniswap V2 operations
type UniswapV2Provider interface {
	GetUniswapV2PairsByFormat(ctx context.Context, req request.GetUniswapV2Pairs, format query.Format) (*stream.Stream, error)
	GetUniswapV2PricesByFormat(ctx context.Context, req request.GetUniswapV2Prices, format query.Format) (*stream.Stream, error)
}

// UniswapV3Provider exposes the Uniswap V3 operations
type UniswapV3Provider interface {
	GetUniswapV3PoolsByFormat(ctx context.Context, req request.GetUniswapV3Pools, format query.Format) (*stream.Stream, error)
	GetUniswapV3PricesByFormat(ctx context.Context, req request.GetUniswapV3Prices, format query.Format) (*stream.Stream, error)
}

// CurveProvider exposes the Curve operations
type CurveProvider interface {
	GetCurveTokensByFormat(ctx context.Context, req request.GetCurveTokens, format query.Format) (*stream.Stream, error)
	GetCurvePoolsByFormat(ctx context.Context, req request.GetCurvePools, format query.Format) (*stream.Stream, error)
	GetCurvePricesByFormat(ctx context.Context, req request.GetCurvePrices, format query.Format) (*stream.Stream, error)
}

// BtcProvider exposes the Bitcoin operations
type BtcProvider interface {
	GetBtcBlocksByFormat(ctx context.Context, req request.GetBtcBlocks, format query.Format) (*stream.Stream, error)
	GetBtcTxsByFormat(ctx context.Context, req request.GetBtcTxs, format query.Format) (*stream.Stream, error)
}

// FuelProvider exposes the Fuel operations
type FuelProvider interface {
	GetFuelBlocksByFormat(ctx context.Context, req request.GetFuelBlocks, format query.Format) (*stream.Stream, error)
	GetFuelLogsByFormat(ctx context.Context, req request.GetFuelLogs, format query.Format) (*stream.Stream, error)
	GetFuelTxsByFormat(ctx context.Context, req request.GetFuelTxs, format query.Format) (*stream.Stream, error)
	GetFuelReceiptsByFormat(ctx context.Context, req request.GetFuelReceipts, format query.Format) (*stream.Stream, error)
	GetSparkOrdersByFormat(ctx context.Context, req request.GetSparkOrders, format query.Format) (*stream.Stream, error)
	GetFuelUnspentUtxosByFormat(ctx context.Context, req request.GetFuelUnspentUtxos, format query.Format) (*stream.Stream, error)
}

// StreamingProvider is the full provider surface, implemented by both
// the HTTP and the websocket transports
type StreamingProvider interface {
	CoreProvider
	ChainProvider
	Erc20Provider
	UniswapV2Provider
	UniswapV3Provider
	CurveProvider
	BtcProvider
	FuelProvider
}
