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
	"github.com/superchain-network/go-superchain/session"
	"github.com/superchain-network/go-superchain/wire"
)

// ResponseError is a structured error report from the server
type ResponseError = wire.ResponseError

// ServerError is an unstructured error report from the server
type ServerError = wire.ServerError

var (
	// ErrBackendShutdown is delivered to live subscriptions when the
	// websocket session loses its connection for good
	ErrBackendShutdown = session.ErrBackendShutdown
	// ErrMalformedFrame indicates an undecodable message from the
	// server
	ErrMalformedFrame = wire.ErrMalformedFrame
)
