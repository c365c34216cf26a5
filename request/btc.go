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

// GetBtcBlocks selects Bitcoin block headers. On the wire it reuses the
// getBlocks operation, scoped to the Bitcoin chain.
type GetBtcBlocks struct {
	Range
}

func (GetBtcBlocks) OperationName() string {
	return "getBlocks"
}

// GetBtcTxs selects Bitcoin transactions
type GetBtcTxs struct {
	Range
}

func (GetBtcTxs) OperationName() string {
	return "getTxs"
}
