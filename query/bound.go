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
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
)

const (
	boundLatestStr = "latest"
	boundNoneStr   = "none"
)

var fromLatestRegexp = regexp.MustCompile(`^latest\s*-\s*(\d+)$`)

type boundKind uint8

const (
	boundLatest boundKind = iota
	boundExact
	boundFromLatest
	boundSubscribe
)

// Bound is one end of a block range. The zero value is Latest.
//
// On the wire a Bound is an integer block height, a negative integer
// meaning "N blocks before the latest", the string "latest", or the
// string "none" (an open end, i.e. subscribe to new data in real time).
type Bound struct {
	kind  boundKind
	value int64
}

// BoundExact is an inclusive/exclusive bound at the given block height
func BoundExact(height int64) Bound {
	return Bound{kind: boundExact, value: height}
}

// BoundLatest is a bound at the latest block height
func BoundLatest() Bound {
	return Bound{kind: boundLatest}
}

// BoundFromLatest is a bound N blocks before the latest block height
func BoundFromLatest(n uint64) Bound {
	return Bound{kind: boundFromLatest, value: int64(n)} // #nosec G115
}

// BoundNone is an open bound, putting the subscription in real-time mode
func BoundNone() Bound {
	return Bound{kind: boundSubscribe}
}

// IsLatest returns true if the bound is at the latest block height
func (b Bound) IsLatest() bool {
	return b.kind == boundLatest
}

// IsNone returns true if the bound is open
func (b Bound) IsNone() bool {
	return b.kind == boundSubscribe
}

// Exact returns the exact block height and true if the bound is exact
func (b Bound) Exact() (int64, bool) {
	return b.value, b.kind == boundExact
}

// FromLatest returns the offset from the latest block height and true if
// the bound is relative to it
func (b Bound) FromLatest() (uint64, bool) {
	return uint64(b.value), b.kind == boundFromLatest // #nosec G115
}

func (b Bound) String() string {
	switch b.kind {
	case boundExact:
		return strconv.FormatInt(b.value, 10)
	case boundFromLatest:
		return strconv.FormatInt(-b.value, 10)
	case boundSubscribe:
		return boundNoneStr
	default:
		return boundLatestStr
	}
}

func (b Bound) MarshalJSON() ([]byte, error) {
	switch b.kind {
	case boundExact, boundFromLatest:
		return []byte(b.String()), nil
	default:
		return json.Marshal(b.String())
	}
}

func (b *Bound) UnmarshalJSON(data []byte) error {
	var num int64
	if err := json.Unmarshal(data, &num); err == nil {
		*b = boundFromInt(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid block range bound: %s", string(data))
	}
	switch s {
	case boundLatestStr:
		*b = BoundLatest()
		return nil
	case boundNoneStr:
		*b = BoundNone()
		return nil
	}
	if m := fromLatestRegexp.FindStringSubmatch(s); m != nil {
		n, err := strconv.ParseUint(m[1], 10, 64)
		if err == nil && n > 0 {
			*b = BoundFromLatest(n)
			return nil
		}
	}
	if num, err := strconv.ParseInt(s, 10, 64); err == nil {
		*b = boundFromInt(num)
		return nil
	}
	return fmt.Errorf("invalid block range bound: %q", s)
}

func boundFromInt(num int64) Bound {
	if num < 0 {
		return BoundFromLatest(uint64(-num))
	}
	return BoundExact(num)
}
