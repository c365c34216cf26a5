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

// GetBlocks selects block headers. In addition to the block range, the
// selection can be narrowed by block timestamp: FromTimestamp is
// inclusive and ToTimestamp exclusive, both in Unix seconds.
type GetBlocks struct {
	Range
	FromTimestamp *int64 `json:"from_timestamp,omitempty"`
	ToTimestamp   *int64 `json:"to_timestamp,omitempty"`
}

func (GetBlocks) OperationName() string {
	return "getBlocks"
}
