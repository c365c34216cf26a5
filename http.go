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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/superchain-network/go-superchain/chain"
	"github.com/superchain-network/go-superchain/query"
	"github.com/superchain-network/go-superchain/request"
	"github.com/superchain-network/go-superchain/stream"
)

const (
	apiPath    = "v1/api/"
	statusPath = "status"
	heightPath = "height"

	blocksPath    = "blocks"
	logsPath      = "logs"
	txsPath       = "transactions"
	transfersPath = "transfers"

	uniswapV2PairsPath  = "uniswap/v2/pairs"
	uniswapV2PricesPath = "uniswap/v2/prices"
	uniswapV3PoolsPath  = "uniswap/v3/pools"
	uniswapV3PricesPath = "uniswap/v3/prices"

	curveTokensPath = "curve/tokens"
	curvePoolsPath  = "curve/pools"
	curvePricesPath = "curve/prices"

	erc20TokensPath    = "erc20"
	erc20ApprovalsPath = "erc20/approvals"
	erc20TransfersPath = "erc20/transfers"

	fuelUnspentUtxosPath = "transactions/outputs"
	fuelReceiptsPath     = "receipts"
	sparkOrdersPath      = "spark/orders"
)

const httpReadChunkSize = 32 * 1024

// HTTPProvider talks to the backend over plain HTTP. Response bodies
// are streamed chunk by chunk rather than buffered whole.
type HTTPProvider struct {
	config  ProviderConfig
	baseURL *url.URL
}

// NewHTTPProvider creates an HTTP provider from the given config
func NewHTTPProvider(config ProviderConfig) (*HTTPProvider, error) {
	scheme := "https"
	if !config.secure {
		scheme = "http"
	}
	baseURL, err := url.Parse(
		fmt.Sprintf("%s://%s/%s", scheme, config.endpoint, apiPath),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	return &HTTPProvider{
		config:  config,
		baseURL: baseURL,
	}, nil
}

// Close implements CoreProvider. The HTTP transport holds no
// persistent connections of its own.
func (p *HTTPProvider) Close() error {
	p.config.httpClient.CloseIdleConnections()
	return nil
}

func (p *HTTPProvider) do(
	ctx context.Context,
	path string,
	values url.Values,
) (*http.Response, error) {
	u := p.baseURL.JoinPath(path)
	u.RawQuery = values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	if p.config.username != "" {
		req.SetBasicAuth(p.config.username, p.config.password)
	}
	return p.config.httpClient.Do(req)
}

// get issues an operation request and streams the response body
func (p *HTTPProvider) get(
	ctx context.Context,
	path string,
	op request.Operation,
	format query.Format,
) (*stream.Stream, error) {
	values, err := request.QueryValues(op)
	if err != nil {
		return nil, err
	}
	values.Set("format", string(format))
	resp, err := p.do(ctx, path, values)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		defer resp.Body.Close()
		body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err != nil {
			return nil, err
		}
		return nil, httpError(resp.StatusCode, body)
	}
	s := stream.New()
	go streamBody(s, resp.Body)
	return s, nil
}

// httpError turns a non-2xx response into the matching error type
func httpError(status int, body []byte) error {
	if len(body) > 0 && body[0] == '{' {
		var respErr ResponseError
		if err := json.Unmarshal(body, &respErr); err == nil && respErr.Status != 0 {
			return &respErr
		}
	}
	return &ResponseError{
		Status: status,
		Reason: strings.TrimSpace(string(body)),
	}
}

// streamBody pushes body chunks onto the stream until the body ends or
// the consumer closes the stream. Chunks that decode as a structured
// error report are surfaced as error items.
func streamBody(s *stream.Stream, body io.ReadCloser) {
	defer body.Close()
	defer s.CloseSend()
	buf := make([]byte, httpReadChunkSize)
	for {
		n, err := body.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			if !s.Push(chunkItem(chunk)) {
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				s.Push(stream.Item{Err: err})
			}
			return
		}
	}
}

// chunkItem inspects a chunk for an inline error report
func chunkItem(chunk []byte) stream.Item {
	if len(chunk) > 0 && chunk[0] == '{' {
		var respErr ResponseError
		err := json.Unmarshal(chunk, &respErr)
		if err == nil && respErr.Status != 0 && respErr.Reason != "" {
			return stream.Item{Err: &respErr}
		}
	}
	return stream.Item{Data: chunk}
}

// GetStatusByFormat implements CoreProvider
func (p *HTTPProvider) GetStatusByFormat(
	ctx context.Context,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, statusPath, request.GetStatus{}, format)
}

// GetHeight implements CoreProvider
func (p *HTTPProvider) GetHeight(ctx context.Context) (uint64, error) {
	resp, err := p.do(ctx, heightPath, url.Values{})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return 0, err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return 0, httpError(resp.StatusCode, body)
	}
	height, err := strconv.ParseUint(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid height response: %w", err)
	}
	return height, nil
}

func (p *HTTPProvider) GetBlocksByFormat(
	ctx context.Context,
	req request.GetBlocks,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, blocksPath, req, format)
}

func (p *HTTPProvider) GetLogsByFormat(
	ctx context.Context,
	req request.GetLogs,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, logsPath, req, format)
}

func (p *HTTPProvider) GetTxsByFormat(
	ctx context.Context,
	req request.GetTxs,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, txsPath, req, format)
}

func (p *HTTPProvider) GetTransfersByFormat(
	ctx context.Context,
	req request.GetTransfers,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, transfersPath, req, format)
}

func (p *HTTPProvider) GetErc20ByFormat(
	ctx context.Context,
	req request.GetErc20,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, erc20TokensPath, req, format)
}

func (p *HTTPProvider) GetErc20ApprovalsByFormat(
	ctx context.Context,
	req request.GetErc20Approvals,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, erc20ApprovalsPath, req, format)
}

func (p *HTTPProvider) GetErc20TransfersByFormat(
	ctx context.Context,
	req request.GetErc20Transfers,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, erc20TransfersPath, req, format)
}

func (p *HTTPProvider) GetUniswapV2PairsByFormat(
	ctx context.Context,
	req request.GetUniswapV2Pairs,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, uniswapV2PairsPath, req, format)
}

func (p *HTTPProvider) GetUniswapV2PricesByFormat(
	ctx context.Context,
	req request.GetUniswapV2Prices,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, uniswapV2PricesPath, req, format)
}

func (p *HTTPProvider) GetUniswapV3PoolsByFormat(
	ctx context.Context,
	req request.GetUniswapV3Pools,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, uniswapV3PoolsPath, req, format)
}

func (p *HTTPProvider) GetUniswapV3PricesByFormat(
	ctx context.Context,
	req request.GetUniswapV3Prices,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, uniswapV3PricesPath, req, format)
}

func (p *HTTPProvider) GetCurveTokensByFormat(
	ctx context.Context,
	req request.GetCurveTokens,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, curveTokensPath, req, format)
}

func (p *HTTPProvider) GetCurvePoolsByFormat(
	ctx context.Context,
	req request.GetCurvePools,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, curvePoolsPath, req, format)
}

func (p *HTTPProvider) GetCurvePricesByFormat(
	ctx context.Context,
	req request.GetCurvePrices,
	format query.Format,
) (*stream.Stream, error) {
	return p.get(ctx, curvePricesPath, req, format)
}

func (p *HTTPProvider) GetBtcBlocksByFormat(
	ctx context.Context,
	req request.GetBtcBlocks,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Bitcoin)
	return p.get(ctx, blocksPath, req, format)
}

func (p *HTTPProvider) GetBtcTxsByFormat(
	ctx context.Context,
	req request.GetBtcTxs,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Bitcoin)
	return p.get(ctx, txsPath, req, format)
}

func (p *HTTPProvider) GetFuelBlocksByFormat(
	ctx context.Context,
	req request.GetFuelBlocks,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Fuel)
	return p.get(ctx, blocksPath, req, format)
}

func (p *HTTPProvider) GetFuelLogsByFormat(
	ctx context.Context,
	req request.GetFuelLogs,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Fuel)
	return p.get(ctx, logsPath, req, format)
}

func (p *HTTPProvider) GetFuelTxsByFormat(
	ctx context.Context,
	req request.GetFuelTxs,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Fuel)
	return p.get(ctx, txsPath, req, format)
}

func (p *HTTPProvider) GetFuelReceiptsByFormat(
	ctx context.Context,
	req request.GetFuelReceipts,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Fuel)
	return p.get(ctx, fuelReceiptsPath, req, format)
}

func (p *HTTPProvider) GetSparkOrdersByFormat(
	ctx context.Context,
	req request.GetSparkOrders,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Fuel)
	return p.get(ctx, sparkOrdersPath, req, format)
}

func (p *HTTPProvider) GetFuelUnspentUtxosByFormat(
	ctx context.Context,
	req request.GetFuelUnspentUtxos,
	format query.Format,
) (*stream.Stream, error) {
	req.Range = scopeToChain(req.Range, chain.Fuel)
	return p.get(ctx, fuelUnspentUtxosPath, req, format)
}
