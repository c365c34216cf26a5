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
	"fmt"
	"unicode/utf8"
)

// ResponseError is a structured error report from the server. It
// appears as the payload of ContinueWithError frames and in place of
// data chunks on HTTP responses.
type ResponseError struct {
	Status int    `json:"status"`
	Reason string `json:"error"`
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("server error (status %d): %s", e.Status, e.Reason)
}

// ServerError is an unstructured error report from the server, carried
// as plain text in the payload of Error frames
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: %s", e.Message)
}

// ParseErrorPayload interprets an error payload. Payloads that look
// like JSON objects must decode as a ResponseError. Anything else is
// passed through as a ServerError, provided it is valid text.
func ParseErrorPayload(payload []byte) error {
	if len(payload) > 0 && payload[0] == '{' {
		var respErr ResponseError
		if err := json.Unmarshal(payload, &respErr); err != nil {
			return fmt.Errorf("%w: %s", ErrMalformedFrame, err)
		}
		return &respErr
	}
	if !utf8.Valid(payload) {
		return fmt.Errorf("%w: non-text error payload", ErrMalformedFrame)
	}
	return &ServerError{Message: string(payload)}
}
