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

// Package session maintains a single multiplexed websocket connection
// to the backend. Any number of logical subscriptions share the
// connection; frames are routed to subscribers by id, and the session
// transparently reconnects and resumes live subscriptions from their
// last observed cursor when the connection drops.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/superchain-network/go-superchain/query"
	"github.com/superchain-network/go-superchain/request"
	"github.com/superchain-network/go-superchain/stream"
	"github.com/superchain-network/go-superchain/wire"
)

// ErrBackendShutdown is delivered to every live subscription when the
// session loses its connection for good
var ErrBackendShutdown = errors.New("backend shut down")

// DialFunc establishes a websocket connection to the backend
type DialFunc func(ctx context.Context) (*websocket.Conn, error)

type submitRequest struct {
	req  wire.Request
	sink *stream.Stream
	resp chan error
}

// readEvent tags incoming messages with the connection they arrived
// on, so events from a connection that has since been replaced can be
// discarded
type readEvent struct {
	conn *websocket.Conn
	data []byte
	err  error
}

// Session is a multiplexed websocket session. All connection state is
// owned by a single goroutine; Submit and Close are safe for
// concurrent use.
type Session struct {
	config    Config
	dial      DialFunc
	conn      *websocket.Conn
	registry  *registry
	ops       chan submitRequest
	readCh    chan readEvent
	done      chan struct{}
	closeOnce sync.Once
	errorChan chan error
}

// New dials the backend and starts the session
func New(ctx context.Context, dial DialFunc, options ...ConfigOption) (*Session, error) {
	config := NewConfig(options...)
	conn, err := dial(ctx)
	if err != nil {
		return nil, err
	}
	s := &Session{
		config:    config,
		dial:      dial,
		conn:      conn,
		registry:  newRegistry(config.logger),
		ops:       make(chan submitRequest),
		readCh:    make(chan readEvent),
		done:      make(chan struct{}),
		errorChan: make(chan error, 10),
	}
	go s.readLoop(conn)
	go s.run()
	return s, nil
}

// ErrorChan returns the channel fatal session errors are reported on
func (s *Session) ErrorChan() <-chan error {
	return s.errorChan
}

// Close shuts the session down. Live subscriptions see their streams
// end without a terminal error.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
}

// Submit starts a logical subscription for the given operation and
// returns the stream its results arrive on. The subscription is live
// until the server ends it, the consumer closes the stream, or the
// session shuts down.
func (s *Session) Submit(
	ctx context.Context,
	op request.Operation,
	format query.Format,
	deltas bool,
) (*stream.Stream, error) {
	sub := submitRequest{
		req: wire.Request{
			ID:        uuid.New(),
			Operation: op,
			Format:    format,
			Deltas:    deltas,
		},
		sink: stream.New(),
		resp: make(chan error, 1),
	}
	select {
	case s.ops <- sub:
	case <-s.done:
		sub.sink.CloseSend()
		return nil, ErrBackendShutdown
	case <-ctx.Done():
		sub.sink.CloseSend()
		return nil, ctx.Err()
	}
	select {
	case err := <-sub.resp:
		if err != nil {
			sub.sink.CloseSend()
			return nil, err
		}
		return sub.sink, nil
	case <-ctx.Done():
		sub.sink.Close()
		return nil, ctx.Err()
	}
}

// run is the session event loop. It owns the connection, the registry
// and all routing decisions.
func (s *Session) run() {
	ticker := s.config.clock.Ticker(s.config.pingPeriod)
	defer ticker.Stop()
	// The current connection, not the one we started with
	defer func() {
		s.conn.Close()
	}()
	for {
		select {
		case <-s.done:
			s.registry.closeAll()
			return
		case <-ticker.C:
			s.ping()
		case sub := <-s.ops:
			s.operate(sub)
		case ev := <-s.readCh:
			if ev.conn != s.conn {
				// Stale connection
				continue
			}
			if ev.err != nil {
				if s.reconnect() {
					continue
				}
				s.registry.failAll(ErrBackendShutdown)
				s.reportError(ev.err)
				// Unblock future Submit calls
				s.Close()
				return
			}
			s.handleFrame(ev.data)
		}
	}
}

// readLoop pushes raw messages from one connection into the event
// loop. It exits on the first read error, which the event loop turns
// into a reconnect.
func (s *Session) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		select {
		case s.readCh <- readEvent{conn: conn, data: data, err: err}:
		case <-s.done:
			return
		}
		if err != nil {
			return
		}
	}
}

func (s *Session) ping() {
	deadline := time.Now().Add(s.config.writeTimeout)
	err := s.conn.WriteControl(websocket.PingMessage, nil, deadline)
	if err != nil {
		// The read side will surface the failure
		s.config.logger.Warn("keep-alive ping failed", "error", err)
	}
}

func (s *Session) operate(sub submitRequest) {
	data, err := json.Marshal(sub.req)
	if err != nil {
		sub.resp <- err
		return
	}
	if err := s.write(s.conn, data); err != nil {
		s.config.logger.Error(
			"failed to send subscription request",
			"id", sub.req.ID,
			"error", err,
		)
		sub.resp <- err
		return
	}
	s.registry.register(sub.req, sub.sink)
	sub.resp <- nil
}

func (s *Session) write(conn *websocket.Conn, data []byte) error {
	deadline := time.Now().Add(s.config.writeTimeout)
	if err := conn.SetWriteDeadline(deadline); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, data)
}

func (s *Session) handleFrame(data []byte) {
	header, payload, err := wire.DecodeFrame(data)
	if err != nil {
		s.config.logger.Warn("dropping undecodable frame", "error", err)
		return
	}
	switch header.Kind {
	case wire.KindStart:
		// Subscription acknowledged, nothing to deliver
	case wire.KindContinue:
		if header.Cursor != nil {
			s.registry.updateCursor(header.ID, *header.Cursor)
		}
		if len(payload) > 0 {
			s.registry.route(header.ID, stream.Item{Data: payload})
		}
	case wire.KindContinueWithError, wire.KindError:
		s.registry.route(
			header.ID,
			stream.Item{Err: wire.ParseErrorPayload(payload)},
		)
	case wire.KindEnd:
		s.registry.complete(header.ID)
	default:
		// Kinds the session has no semantics for surface as an error
		// item on that subscription, which stays live
		s.registry.route(
			header.ID,
			stream.Item{Err: fmt.Errorf(
				"%w: unexpected kind %q", wire.ErrMalformedFrame, header.Kind,
			)},
		)
	}
}

// reconnect re-establishes the connection and replays every live
// subscription from its last observed cursor. It returns false once
// the attempt budget is exhausted or the session is closed.
func (s *Session) reconnect() bool {
	for attempt := 1; attempt <= s.config.maxReconnectAttempts; attempt++ {
		select {
		case <-s.done:
			return false
		default:
		}
		conn, err := s.dial(context.Background())
		if err != nil {
			s.config.logger.Warn(
				"reconnect attempt failed",
				"attempt", attempt,
				"error", err,
			)
			select {
			case <-s.done:
				return false
			case <-s.config.clock.After(s.config.reconnectDelay):
			}
			continue
		}
		s.conn.Close()
		s.conn = conn
		go s.readLoop(conn)
		s.config.logger.Info(
			"reconnected",
			"attempt", attempt,
			"subscriptions", s.registry.len(),
		)
		s.resubscribe(conn)
		return true
	}
	return false
}

func (s *Session) resubscribe(conn *websocket.Conn) {
	for _, rep := range s.registry.snapshot() {
		data, err := json.Marshal(rep.Request)
		if err != nil {
			s.config.logger.Error(
				"failed to encode resubscription",
				"id", rep.ID,
				"error", err,
			)
			continue
		}
		if err := s.write(conn, data); err != nil {
			// The read side will trigger another reconnect; the
			// remaining subscriptions still get their resend
			s.config.logger.Warn(
				"failed to resend subscription",
				"id", rep.ID,
				"error", err,
			)
			continue
		}
	}
}

func (s *Session) reportError(err error) {
	select {
	case s.errorChan <- err:
	default:
	}
}
