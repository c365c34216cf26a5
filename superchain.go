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

// Package superchain is a client library for the Superchain blockchain
// data platform. It offers typed request building for every operation
// the platform exposes, and two interchangeable transports: plain HTTP
// with streamed response bodies, and a multiplexed websocket session
// that carries any number of concurrent subscriptions over a single
// connection and resumes them across reconnects.
//
// The quickest way to a working client is the builder:
//
//	client, err := superchain.NewClientBuilder().
//		FromEnv().
//		BuildWS(ctx)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	blocks, err := client.GetBlocksByFormat(
//		ctx,
//		request.GetBlocks{Range: request.NewRange(chain.Ethereum)},
//		query.FormatJSONStream,
//	)
//	if err != nil {
//		return err
//	}
//	for item := range blocks.Chan() {
//		// item.Data holds one chunk of encoded blocks
//	}
package superchain
