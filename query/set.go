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

package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Set is a filter over a collection of values. It serializes as a single
// comma-separated string, which is the form the API expects for both
// query parameters and subscription requests. A nil Set applies no filter.
type Set[T any] []T

// NewSet builds a Set from its values
func NewSet[T any](values ...T) Set[T] {
	return Set[T](values)
}

func (s Set[T]) MarshalJSON() ([]byte, error) {
	parts := make([]string, 0, len(s))
	for _, v := range s {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		parts = append(parts, string(bytes.Trim(data, `"`)))
	}
	return json.Marshal(strings.Join(parts, ","))
}

func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		*s = nil
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make(Set[T], 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		var v T
		// Try the value both as a bare JSON token and as a string
		if err := json.Unmarshal([]byte(part), &v); err != nil {
			quoted, qerr := json.Marshal(part)
			if qerr != nil {
				return qerr
			}
			if err := json.Unmarshal(quoted, &v); err != nil {
				return fmt.Errorf("invalid set element %q: %w", part, err)
			}
		}
		out = append(out, v)
	}
	*s = out
	return nil
}
