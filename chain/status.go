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

package chain

// ServiceType classifies a backend service in a status report
type ServiceType string

const (
	ServiceTypeNA      ServiceType = "N/A"
	ServiceTypeChain   ServiceType = "CHAIN"
	ServiceTypeToolbox ServiceType = "TOOLBOX"
)

// HealthStatus is the reported health of a backend service
type HealthStatus string

const (
	HealthStatusOK HealthStatus = "OK"
)

// Status is one row of the platform status report, describing the
// indexing state of a single backend service
type Status struct {
	Type              ServiceType  `json:"type"`
	Chain             ChainID      `json:"chain"`
	ChainCode         string       `json:"chain_code"`
	ChainName         string       `json:"chain_name"`
	Service           string       `json:"service"`
	Entity            string       `json:"entity"`
	LatestBlockHeight uint64       `json:"latest_block_height"`
	Timestamp         int64        `json:"timestamp"`
	Status            HealthStatus `json:"status"`
}
