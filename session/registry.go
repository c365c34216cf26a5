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

package session

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/superchain-network/go-superchain/stream"
	"github.com/superchain-network/go-superchain/wire"
)

type registryEntry struct {
	req    wire.Request
	sink   *stream.Stream
	cursor *string
}

// registry tracks the live subscriptions of a session. It is owned by
// the session goroutine and needs no locking.
type registry struct {
	entries map[uuid.UUID]*registryEntry
	logger  *slog.Logger
}

func newRegistry(logger *slog.Logger) *registry {
	return &registry{
		entries: make(map[uuid.UUID]*registryEntry),
		logger:  logger,
	}
}

// replay is a snapshot of one subscription for resubscription after a
// reconnect
type replay struct {
	ID      uuid.UUID
	Request wire.Request
}

func (r *registry) register(req wire.Request, sink *stream.Stream) {
	if old, ok := r.entries[req.ID]; ok {
		// Should not happen with random ids
		r.logger.Warn(
			"duplicate subscription id, dropping previous",
			"id", req.ID,
		)
		old.sink.CloseSend()
	}
	r.entries[req.ID] = &registryEntry{req: req, sink: sink}
}

// route delivers an item to the subscription's sink. Subscriptions
// whose consumer has gone away are removed on the spot.
func (r *registry) route(id uuid.UUID, item stream.Item) {
	entry, ok := r.entries[id]
	if !ok {
		r.logger.Debug("frame for unknown subscription", "id", id)
		return
	}
	if !entry.sink.Push(item) {
		delete(r.entries, id)
		entry.sink.CloseSend()
	}
}

func (r *registry) updateCursor(id uuid.UUID, cursor string) {
	if entry, ok := r.entries[id]; ok {
		entry.cursor = &cursor
	}
}

// complete ends a subscription normally. Safe to call for ids that are
// already gone.
func (r *registry) complete(id uuid.UUID) {
	if entry, ok := r.entries[id]; ok {
		delete(r.entries, id)
		entry.sink.CloseSend()
	}
}

// snapshot clones the live subscriptions for replay. Each cloned
// request carries the last observed cursor, falling back to the cursor
// the subscription was created with.
func (r *registry) snapshot() []replay {
	out := make([]replay, 0, len(r.entries))
	for id, entry := range r.entries {
		var req wire.Request
		if err := copier.CopyWithOption(
			&req,
			&entry.req,
			copier.Option{DeepCopy: true},
		); err != nil {
			r.logger.Error(
				"failed to clone subscription request",
				"id", id,
				"error", err,
			)
			req = entry.req
		}
		if entry.cursor != nil {
			cursor := *entry.cursor
			req.Cursor = &cursor
		}
		out = append(out, replay{ID: id, Request: req})
	}
	return out
}

// failAll delivers a terminal error to every subscription and clears
// the registry
func (r *registry) failAll(err error) {
	for id, entry := range r.entries {
		entry.sink.Push(stream.Item{Err: err})
		entry.sink.CloseSend()
		delete(r.entries, id)
	}
}

func (r *registry) closeAll() {
	for id, entry := range r.entries {
		entry.sink.CloseSend()
		delete(r.entries, id)
	}
}

func (r *registry) len() int {
	return len(r.entries)
}
