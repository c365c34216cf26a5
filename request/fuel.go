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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/superchain-network/go-superchain/query"
)

// TransactionType classifies a Fuel transaction
type TransactionType string

const (
	TransactionTypeUnknown TransactionType = "Unknown"
	TransactionTypeScript  TransactionType = "Script"
	TransactionTypeCreate  TransactionType = "Create"
	TransactionTypeMint    TransactionType = "Mint"
	TransactionTypeUpgrade TransactionType = "Upgrade"
	TransactionTypeUpload  TransactionType = "Upload"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeUnknown, TransactionTypeScript, TransactionTypeCreate,
		TransactionTypeMint, TransactionTypeUpgrade, TransactionTypeUpload:
		return true
	}
	return false
}

func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	// Lowercase variant names are accepted as aliases
	if s != "" {
		s = strings.ToUpper(s[:1]) + s[1:]
	}
	v := TransactionType(s)
	if !v.Valid() {
		return fmt.Errorf("unknown transaction type: %q", s)
	}
	*t = v
	return nil
}

// ReceiptType classifies a Fuel transaction receipt
type ReceiptType string

const (
	ReceiptTypeCall         ReceiptType = "Call"
	ReceiptTypeReturn       ReceiptType = "Return"
	ReceiptTypeReturnData   ReceiptType = "ReturnData"
	ReceiptTypePanic        ReceiptType = "Panic"
	ReceiptTypeRevert       ReceiptType = "Revert"
	ReceiptTypeLog          ReceiptType = "Log"
	ReceiptTypeLogData      ReceiptType = "LogData"
	ReceiptTypeTransfer     ReceiptType = "Transfer"
	ReceiptTypeTransferOut  ReceiptType = "TransferOut"
	ReceiptTypeScriptResult ReceiptType = "ScriptResult"
	ReceiptTypeMessageOut   ReceiptType = "MessageOut"
	ReceiptTypeMint         ReceiptType = "Mint"
	ReceiptTypeBurn         ReceiptType = "Burn"
)

func (r ReceiptType) Valid() bool {
	switch r {
	case ReceiptTypeCall, ReceiptTypeReturn, ReceiptTypeReturnData,
		ReceiptTypePanic, ReceiptTypeRevert, ReceiptTypeLog, ReceiptTypeLogData,
		ReceiptTypeTransfer, ReceiptTypeTransferOut, ReceiptTypeScriptResult,
		ReceiptTypeMessageOut, ReceiptTypeMint, ReceiptTypeBurn:
		return true
	}
	return false
}

func (r *ReceiptType) UnmarshalJSON(data []byte) error {
	v, err := parseEnum(data, ReceiptType.Valid, "receipt type")
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// OrderType is the side of a Spark order
type OrderType string

const (
	OrderTypeBuy  OrderType = "Buy"
	OrderTypeSell OrderType = "Sell"
)

func (o OrderType) Valid() bool {
	return o == OrderTypeBuy || o == OrderTypeSell
}

// OrderChangeType is the lifecycle event of a Spark order
type OrderChangeType string

const (
	OrderChangeTypeOpen   OrderChangeType = "Open"
	OrderChangeTypeCancel OrderChangeType = "Cancel"
	OrderChangeTypeMatch  OrderChangeType = "Match"
)

func (o OrderChangeType) Valid() bool {
	switch o {
	case OrderChangeTypeOpen, OrderChangeTypeCancel, OrderChangeTypeMatch:
		return true
	}
	return false
}

// GetFuelBlocks selects Fuel block headers. On the wire it reuses the
// getBlocks operation, scoped to the Fuel chain. The da_block_number
// filters apply to the data availability layer height.
type GetFuelBlocks struct {
	Range
	DaBlockNumberGte *uint64 `json:"da_block_number__gte,omitempty"`
	DaBlockNumberLte *uint64 `json:"da_block_number__lte,omitempty"`
}

func (GetFuelBlocks) OperationName() string {
	return "getBlocks"
}

// GetFuelLogs selects Fuel log receipts by contract id and register values
type GetFuelLogs struct {
	Range
	ID query.Set[common.Hash] `json:"id__in,omitempty"`
	Ra query.Set[uint64]      `json:"ra__in,omitempty"`
	Rb query.Set[uint64]      `json:"rb__in,omitempty"`
}

func (GetFuelLogs) OperationName() string {
	return "getLogs"
}

// GetFuelTxs selects Fuel transactions
type GetFuelTxs struct {
	Range
	TransactionType         query.Set[TransactionType] `json:"transaction_type__in,omitempty"`
	MetadataContractID      query.Set[common.Hash]     `json:"metadata_contract_id__in,omitempty"`
	InputContractContractID query.Set[common.Hash]     `json:"input_contract_contract_id__in,omitempty"`
	MintAssetID             query.Set[common.Hash]     `json:"mint_asset_id__in,omitempty"`

	MintAmountGte *uint64 `json:"mint_amount__gte,omitempty"`
	MintAmountLte *uint64 `json:"mint_amount__lte,omitempty"`
}

func (GetFuelTxs) OperationName() string {
	return "getTxs"
}

// GetFuelReceipts selects Fuel transaction receipts
type GetFuelReceipts struct {
	Range
	ReceiptType query.Set[ReceiptType] `json:"receipt_type__in,omitempty"`
}

func (GetFuelReceipts) OperationName() string {
	return "getReceipts"
}

// GetSparkOrders selects Spark order book changes
type GetSparkOrders struct {
	Range
	OrderID   query.Set[common.Hash]     `json:"order_id__in,omitempty"`
	OrderType query.Set[OrderType]       `json:"order_type__in,omitempty"`
	StateType query.Set[OrderChangeType] `json:"state_type__in,omitempty"`
	User      query.Set[common.Hash]     `json:"user__in,omitempty"`
	Owner     query.Set[common.Hash]     `json:"owner__in,omitempty"`
	Asset     query.Set[common.Hash]     `json:"asset__in,omitempty"`
	Address   query.Set[common.Hash]     `json:"address__in,omitempty"`
}

func (GetSparkOrders) OperationName() string {
	return "getSparkOrder"
}

// GetFuelUnspentUtxos selects UTXOs that were still unspent at the
// UnspentAt height
type GetFuelUnspentUtxos struct {
	Range
	UnspentAt query.Bound            `json:"unspent_at"`
	Address   query.Set[common.Hash] `json:"address__in,omitempty"`
}

func (GetFuelUnspentUtxos) OperationName() string {
	return "getUnspentUtxos"
}
