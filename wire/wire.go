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

// Package wire implements the framing used on the websocket connection.
// Every frame the server sends is a JSON header line terminated by a
// single newline, followed by an opaque payload in the format the
// subscription requested. Requests are single JSON objects that carry
// the operation parameters flattened alongside the envelope fields.
package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/superchain-network/go-superchain/query"
	"github.com/superchain-network/go-superchain/request"
)

// ErrMalformedFrame is returned when a frame cannot be split into a
// header line and payload, or its header fails to decode
var ErrMalformedFrame = errors.New("malformed frame")

// Kind discriminates the frames of a logical subscription
type Kind string

const (
	// KindStart acknowledges a subscription request
	KindStart Kind = "Start"
	// KindContinue carries a payload chunk
	KindContinue Kind = "Continue"
	// KindContinueWithError carries an error report mid-stream
	KindContinueWithError Kind = "ContinueWithError"
	// KindEnd terminates a subscription normally
	KindEnd Kind = "End"
	// KindError terminates or annotates a subscription with a failure
	KindError Kind = "Error"
	// KindSubscription marks a server-initiated notification
	KindSubscription Kind = "Subscription"
)

func (k Kind) Valid() bool {
	switch k {
	case KindStart, KindContinue, KindContinueWithError,
		KindEnd, KindError, KindSubscription:
		return true
	}
	return false
}

// Header is the frame header the server prefixes to every message
type Header struct {
	Kind    Kind      `json:"kind"`
	ID      uuid.UUID `json:"id"`
	Counter uint32    `json:"counter"`
	Epoch   *uint64   `json:"epoch,omitempty"`
	Cursor  *string   `json:"cursor,omitempty"`
}

// DecodeFrame splits a raw websocket message into its header and
// payload. The payload may be empty.
func DecodeFrame(data []byte) (Header, []byte, error) {
	var header Header
	idx := bytes.IndexByte(data, '\n')
	if idx < 0 {
		return header, nil, fmt.Errorf(
			"%w: missing header delimiter",
			ErrMalformedFrame,
		)
	}
	if err := json.Unmarshal(data[:idx], &header); err != nil {
		return header, nil, fmt.Errorf("%w: %s", ErrMalformedFrame, err)
	}
	if !header.Kind.Valid() {
		return header, nil, fmt.Errorf(
			"%w: unknown kind %q",
			ErrMalformedFrame, header.Kind,
		)
	}
	return header, data[idx+1:], nil
}

// EncodeFrame assembles a raw websocket message from a header and
// payload. The inverse of DecodeFrame.
func EncodeFrame(header Header, payload []byte) ([]byte, error) {
	head, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(head)+1+len(payload))
	out = append(out, head...)
	out = append(out, '\n')
	out = append(out, payload...)
	return out, nil
}

// Request is the subscription request envelope. Operation parameters
// are flattened into the same object as the envelope fields, with the
// operation name under the "operation" key.
type Request struct {
	ID        uuid.UUID
	Operation request.Operation
	Format    query.Format
	Deltas    bool
	Cursor    *string
}

func (r Request) MarshalJSON() ([]byte, error) {
	params, err := json.Marshal(r.Operation)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(params, &fields); err != nil {
		return nil, err
	}
	fields["id"], err = json.Marshal(r.ID)
	if err != nil {
		return nil, err
	}
	fields["operation"], err = json.Marshal(r.Operation.OperationName())
	if err != nil {
		return nil, err
	}
	fields["format"], err = json.Marshal(r.Format)
	if err != nil {
		return nil, err
	}
	fields["deltas"], err = json.Marshal(r.Deltas)
	if err != nil {
		return nil, err
	}
	if r.Cursor != nil {
		fields["cursor"], err = json.Marshal(*r.Cursor)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(fields)
}
