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
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/superchain-network/go-superchain/chain"
	"github.com/superchain-network/go-superchain/query"
	"github.com/superchain-network/go-superchain/request"
	"github.com/superchain-network/go-superchain/session"
	"github.com/superchain-network/go-superchain/stream"
)

const websocketPath = "v1/websocket"

// WSProvider multiplexes all operations over a single persistent
// websocket connection. Interrupted connections are re-established
// transparently and live subscriptions resume from their last cursor.
type WSProvider struct {
	config  ProviderConfig
	session *session.Session
}

// NewWSProvider dials the backend and creates a websocket provider
func NewWSProvider(ctx context.Context, config ProviderConfig) (*WSProvider, error) {
	scheme := "wss"
	if !config.secure {
		scheme = "ws"
	}
	wsURL := fmt.Sprintf("%s://%s/%s", scheme, config.endpoint, websocketPath)
	header := http.Header{}
	if config.username != "" {
		credentials := base64.StdEncoding.EncodeToString(
			[]byte(config.username + ":" + config.password),
		)
		header.Set("Authorization", "Basic "+credentials)
	}
	dial := func(ctx context.Context) (*websocket.Conn, error) {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
		return conn, err
	}
	options := append(
		[]session.ConfigOption{session.WithLogger(config.logger)},
		config.sessionOptions...,
	)
	sess, err := session.New(ctx, dial, options...)
	if err != nil {
		return nil, err
	}
	return &WSProvider{
		config:  config,
		session: sess,
	}, nil
}

// ErrorChan returns the channel fatal session errors are reported on
func (p *WSProvider) ErrorChan() <-chan error {
	return p.session.ErrorChan()
}

// Close implements CoreProvider
func (p *WSProvider) Close() error {
	p.session.Close()
	return nil
}

func (p *WSProvider) submit(
	ctx context.Context,
	op request.Operation,
	format query.Format,
) (*stream.Stream, error) {
	return p.session.Submit(ctx, op, format, p.config.deltas)
}

// GetStatusByFormat implements CoreProvider
func (p *WSProvider) GetStatusByFormat(
	ctx context.Context,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, request.GetStatus{}, format)
}

// GetHeight implements CoreProvider. The height arrives as a single
// 8-byte little-endian chunk.
func (p *WSProvider) GetHeight(ctx context.Context) (uint64, error) {
	s, err := p.submit(ctx, request.GetHeight{}, query.FormatJSONStream)
	if err != nil {
		return 0, err
	}
	defer s.Close()
	select {
	case item, ok := <-s.Chan():
		if !ok {
			return 0, fmt.Errorf("height subscription ended without data")
		}
		if item.Err != nil {
			return 0, item.Err
		}
		if len(item.Data) != 8 {
			return 0, fmt.Errorf(
				"invalid height response of %d bytes",
				len(item.Data),
			)
		}
		return binary.LittleEndian.Uint64(item.Data), nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// scopeToChain pins a request to the given chain. The Bitcoin and
// Fuel operations share wire names and paths with their EVM
// counterparts and are told apart by chain alone, so the caller's
// chain set is ignored.
func scopeToChain(r request.Range, id chain.ChainID) request.Range {
	r.Chains = query.NewSet(id)
	return r
}

func (p *WSProvider) GetBlocksByFormat(
	ctx context.Context,
	req request.GetBlocks,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetLogsByFormat(
	ctx context.Context,
	req request.GetLogs,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetTxsByFormat(
	ctx context.Context,
	req request.GetTxs,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetTransfersByFormat(
	ctx context.Context,
	req request.GetTransfers,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetErc20ByFormat(
	ctx context.Context,
	req request.GetErc20,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetErc20ApprovalsByFormat(
	ctx context.Context,
	req request.GetErc20Approvals,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetErc20TransfersByFormat(
	ctx context.Context,
	req request.GetErc20Transfers,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetUniswapV2PairsByFormat(
	ctx context.Context,
	req request.GetUniswapV2Pairs,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetUniswapV2PricesByFormat(
	ctx context.Context,
	req request.GetUniswapV2Prices,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetUniswapV3PoolsByFormat(
	ctx context.Context,
	req request.GetUniswapV3Pools,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetUniswapV3PricesByFormat(
	ctx context.Context,
	req request.GetUniswapV3Prices,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetCurveTokensByFormat(
	ctx context.Context,
	req request.GetCurveTokens,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetCurvePoolsByFormat(
	ctx context.Context,
	req request.GetCurvePools,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetCurvePricesByFormat(
	ctx context.Context,
	req request.GetCurvePrices,
	format query.Format,
) (*stream.Stream, error) {
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetBtcBlocksByFormat(
	ctx context.Context,
	req request.GetBtcBlocks,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Bitcoin)
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetBtcTxsByFormat(
	ctx context.Context,
	req request.GetBtcTxs,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Bitcoin)
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetFuelBlocksByFormat(
	ctx context.Context,
	req request.GetFuelBlocks,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Fuel)
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetFuelLogsByFormat(
	ctx context.Context,
	req request.GetFuelLogs,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Fuel)
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetFuelTxsByFormat(
	ctx context.Context,
	req request.GetFuelTxs,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Fuel)
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetFuelReceiptsByFormat(
	ctx context.Context,
	req request.GetFuelReceipts,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Fuel)
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetSparkOrdersByFormat(
	ctx context.Context,
	req request.GetSparkOrders,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Fuel)
	return p.submit(ctx, req, format)
}

func (p *WSProvider) GetFuelUnspentUtxosByFormat(
	ctx context.Context,
	req request.GetFuelUnspentUtxos,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Fuel)
	return p.submit(ctx, req, format)
}
