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

// Format is the encoding of the records returned by the API
type Format string

const (
	// FormatJSON is plain JSON
	FormatJSON Format = "json"
	// FormatJSONStream is line-delimited JSON (https://jsonlines.org/)
	FormatJSONStream Format = "json_stream"
	// FormatArrow is the Arrow IPC format
	FormatArrow Format = "arrow"
	// FormatArrowStream is the Arrow IPC stream format
	FormatArrowStream Format = "arrow_stream"
)

// DefaultFormat is used when no explicit format is requested
const DefaultFormat = FormatJSONStream

func (f Format) String() string {
	return string(f)
}

// Valid returns true for formats known to the API
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatJSONStream, FormatArrow, FormatArrowStream:
		return true
	}
	return false
}
