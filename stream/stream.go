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

// Package stream provides the delivery channel between a subscription's
// demultiplexer and its consumer. The producer side never blocks:
// items are buffered internally until the consumer drains them or
// closes the stream.
package stream

import (
	"sync"
)

// Item is one delivery on a stream: a payload chunk or an error report.
// Errors do not necessarily terminate the stream.
type Item struct {
	Data []byte
	Err  error
}

// Stream is a single-producer single-consumer queue with unbounded
// buffering on the producer side
type Stream struct {
	in    chan Item
	items chan Item
	done  chan struct{}

	sendOnce  sync.Once
	closeOnce sync.Once
}

// New creates a stream and starts its pump
func New() *Stream {
	s := &Stream{
		in:    make(chan Item),
		items: make(chan Item),
		done:  make(chan struct{}),
	}
	go s.pump()
	return s
}

// pump shuttles items from the producer to the consumer, buffering
// whatever the consumer has not yet drained
func (s *Stream) pump() {
	defer close(s.items)
	var pending []Item
	in := s.in
	for {
		var out chan Item
		var next Item
		if len(pending) > 0 {
			out = s.items
			next = pending[0]
		} else if in == nil {
			return
		}
		select {
		case item, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			pending = append(pending, item)
		case out <- next:
			pending = pending[1:]
		case <-s.done:
			// Consumer is gone. Drain the producer until it
			// closes its side so Push never blocks.
			for in != nil {
				if _, ok := <-in; !ok {
					in = nil
				}
			}
			return
		}
	}
}

// Push delivers an item to the consumer. It returns false once the
// consumer has closed the stream.
func (s *Stream) Push(item Item) bool {
	select {
	case <-s.done:
		return false
	default:
	}
	select {
	case s.in <- item:
		return true
	case <-s.done:
		return false
	}
}

// CloseSend marks the producer side finished. Buffered items remain
// readable until drained.
func (s *Stream) CloseSend() {
	s.sendOnce.Do(func() {
		close(s.in)
	})
}

// Close abandons the stream from the consumer side. Pending and future
// items are discarded.
func (s *Stream) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// Chan returns the consumer side of the stream. The channel closes
// after the producer calls CloseSend and the buffer drains, or after
// the consumer calls Close.
func (s *Stream) Chan() <-chan Item {
	return s.items
}
