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

package wire

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/superchain-network/go-superchain/chain"
	"github.com/superchain-network/go-superchain/query"
	"github.com/superchain-network/go-superchain/request"
)

func TestFrameRoundTrip(t *testing.T) {
	cursor := "c:123"
	header := Header{
		Kind:    KindContinue,
		ID:      uuid.New(),
		Counter: 7,
		Cursor:  &cursor,
	}
	payload := []byte(`{"block_number":123}` + "\n")
	data, err := EncodeFrame(header, payload)
	require.NoError(t, err)

	decoded, body, err := DecodeFrame(data)
	require.NoError(t, err)
	assert.Equal(t, header, decoded)
	assert.Equal(t, payload, body)
}

func TestDecodeFrameEmptyPayload(t *testing.T) {
	data, err := EncodeFrame(Header{Kind: KindEnd, ID: uuid.New()}, nil)
	require.NoError(t, err)
	header, payload, err := DecodeFrame(data)
	require.NoError(t, err)
	assert.Equal(t, KindEnd, header.Kind)
	assert.Empty(t, payload)
}

func TestDecodeFrameMalformed(t *testing.T) {
	testDefs := [][]byte{
		[]byte(`{"kind":"Continue"}`),
		[]byte("not json\npayload"),
		[]byte(`{"kind":"Bogus","id":"00000000-0000-0000-0000-000000000000","counter":0}` + "\npayload"),
	}
	for _, testDef := range testDefs {
		_, _, err := DecodeFrame(testDef)
		assert.ErrorIs(t, err, ErrMalformedFrame)
	}
}

func TestRequestMarshal(t *testing.T) {
	id := uuid.MustParse("a3f1c8e2-1111-2222-3333-444455556666")
	cursor := "c:42"
	req := Request{
		ID: id,
		Operation: request.GetBlocks{
			Range: request.NewRange(chain.Ethereum),
		},
		Format: query.FormatJSONStream,
		Deltas: true,
		Cursor: &cursor,
	}
	data, err := json.Marshal(req)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, id.String(), fields["id"])
	assert.Equal(t, "getBlocks", fields["operation"])
	assert.Equal(t, "json_stream", fields["format"])
	assert.Equal(t, true, fields["deltas"])
	assert.Equal(t, "c:42", fields["cursor"])
	assert.Equal(t, "ETH", fields["chains"])
	assert.Equal(t, "latest", fields["from_block"])
	assert.Equal(t, "none", fields["to_block"])
}

func TestRequestMarshalNoCursor(t *testing.T) {
	req := Request{
		ID:        uuid.New(),
		Operation: request.GetBlocks{Range: request.NewRange(chain.Ethereum)},
		Format:    query.FormatJSONStream,
	}
	data, err := json.Marshal(req)
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "cursor")
	assert.Equal(t, false, fields["deltas"])
}

func TestParseErrorPayload(t *testing.T) {
	err := ParseErrorPayload([]byte(`{"status":429,"error":"too many requests"}`))
	var respErr *ResponseError
	require.ErrorAs(t, err, &respErr)
	assert.Equal(t, 429, respErr.Status)
	assert.Equal(t, "too many requests", respErr.Reason)

	err = ParseErrorPayload([]byte("subscription limit reached"))
	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	assert.Equal(t, "subscription limit reached", srvErr.Message)

	err = ParseErrorPayload([]byte(`{"status":`))
	assert.True(t, errors.Is(err, ErrMalformedFrame))

	err = ParseErrorPayload([]byte{0xff, 0xfe, 0x00, 0x80})
	assert.True(t, errors.Is(err, ErrMalformedFrame))
}
