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
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/superchain-network/go-superchain/chain"
	"github.com/superchain-network/go-superchain/query"
	"github.com/superchain-network/go-superchain/request"
	"github.com/superchain-network/go-superchain/stream"
	"github.com/superchain-network/go-superchain/wire"
)

type testServer struct {
	srv   *httptest.Server
	conns chan *websocket.Conn
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		conns: make(chan *websocket.Conn, 4),
	}
	upgrader := websocket.Upgrader{}
	ts.srv = httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				t.Errorf("upgrade failed: %v", err)
				return
			}
			ts.conns <- conn
		},
	))
	return ts
}

func (ts *testServer) dialFunc() DialFunc {
	url := "ws" + strings.TrimPrefix(ts.srv.URL, "http")
	return func(ctx context.Context) (*websocket.Conn, error) {
		conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		return conn, err
	}
}

// accept returns the next server-side connection
func (ts *testServer) accept(t *testing.T) *websocket.Conn {
	t.Helper()
	select {
	case conn := <-ts.conns:
		return conn
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for connection")
		return nil
	}
}

func (ts *testServer) close() {
	for {
		select {
		case conn := <-ts.conns:
			conn.Close()
		default:
			ts.srv.Close()
			return
		}
	}
}

// readRequest reads and decodes the next subscription request on a
// server-side connection
func readRequest(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	return fields
}

func requestID(t *testing.T, fields map[string]any) uuid.UUID {
	t.Helper()
	raw, ok := fields["id"].(string)
	require.True(t, ok, "request has no id")
	id, err := uuid.Parse(raw)
	require.NoError(t, err)
	return id
}

func sendFrame(
	t *testing.T,
	conn *websocket.Conn,
	header wire.Header,
	payload []byte,
) {
	t.Helper()
	data, err := wire.EncodeFrame(header, payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.BinaryMessage, data))
}

func collect(t *testing.T, s *stream.Stream, n int) []stream.Item {
	t.Helper()
	var items []stream.Item
	for len(items) < n {
		select {
		case item, ok := <-s.Chan():
			if !ok {
				t.Fatalf("stream ended after %d of %d items", len(items), n)
			}
			items = append(items, item)
		case <-time.After(5 * time.Second):
			t.Fatalf("timeout after %d of %d items", len(items), n)
		}
	}
	return items
}

func expectClosed(t *testing.T, s *stream.Stream) {
	t.Helper()
	select {
	case item, ok := <-s.Chan():
		require.False(t, ok, "unexpected item: %+v", item)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for stream to end")
	}
}

// recordingHandler captures log records for assertions
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

func (h *recordingHandler) count(msg string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Message == msg {
			n++
		}
	}
	return n
}

func TestSessionDemultiplexesSubscriptions(t *testing.T) {
	defer goleak.VerifyNone(t)
	ts := newTestServer(t)
	defer ts.close()

	sess, err := New(context.Background(), ts.dialFunc())
	require.NoError(t, err)
	defer sess.Close()
	conn := ts.accept(t)
	defer conn.Close()

	sub1, err := sess.Submit(
		context.Background(),
		request.GetBlocks{Range: request.NewRange(chain.Ethereum)},
		query.FormatJSONStream,
		false,
	)
	require.NoError(t, err)
	req1 := readRequest(t, conn)
	assert.Equal(t, "getBlocks", req1["operation"])
	id1 := requestID(t, req1)

	sub2, err := sess.Submit(
		context.Background(),
		request.GetLogs{Range: request.NewRange(chain.Ethereum)},
		query.FormatJSONStream,
		false,
	)
	require.NoError(t, err)
	req2 := readRequest(t, conn)
	assert.Equal(t, "getLogs", req2["operation"])
	id2 := requestID(t, req2)
	assert.NotEqual(t, id1, id2)

	sendFrame(t, conn, wire.Header{Kind: wire.KindStart, ID: id1}, nil)
	sendFrame(t, conn, wire.Header{Kind: wire.KindStart, ID: id2}, nil)
	// Interleave chunks across the two subscriptions
	sendFrame(
		t, conn,
		wire.Header{Kind: wire.KindContinue, ID: id1, Counter: 1},
		[]byte("block-1"),
	)
	sendFrame(
		t, conn,
		wire.Header{Kind: wire.KindContinue, ID: id2, Counter: 1},
		[]byte("log-1"),
	)
	sendFrame(
		t, conn,
		wire.Header{Kind: wire.KindContinue, ID: id1, Counter: 2},
		[]byte("block-2"),
	)
	sendFrame(t, conn, wire.Header{Kind: wire.KindEnd, ID: id1, Counter: 3}, nil)
	sendFrame(t, conn, wire.Header{Kind: wire.KindEnd, ID: id2, Counter: 2}, nil)

	items1 := collect(t, sub1, 2)
	assert.Equal(t, "block-1", string(items1[0].Data))
	assert.Equal(t, "block-2", string(items1[1].Data))
	expectClosed(t, sub1)

	items2 := collect(t, sub2, 1)
	assert.Equal(t, "log-1", string(items2[0].Data))
	expectClosed(t, sub2)
}

func TestSessionDeliversMidStreamErrors(t *testing.T) {
	defer goleak.VerifyNone(t)
	ts := newTestServer(t)
	defer ts.close()

	sess, err := New(context.Background(), ts.dialFunc())
	require.NoError(t, err)
	defer sess.Close()
	conn := ts.accept(t)
	defer conn.Close()

	sub, err := sess.Submit(
		context.Background(),
		request.GetBlocks{Range: request.NewRange(chain.Ethereum)},
		query.FormatJSONStream,
		false,
	)
	require.NoError(t, err)
	id := requestID(t, readRequest(t, conn))

	sendFrame(
		t, conn,
		wire.Header{Kind: wire.KindContinue, ID: id, Counter: 1},
		[]byte("chunk-1"),
	)
	sendFrame(
		t, conn,
		wire.Header{Kind: wire.KindContinueWithError, ID: id, Counter: 2},
		[]byte(`{"status":503,"error":"upstream stalled"}`),
	)
	sendFrame(
		t, conn,
		wire.Header{Kind: wire.KindContinue, ID: id, Counter: 3},
		[]byte("chunk-2"),
	)
	sendFrame(t, conn, wire.Header{Kind: wire.KindEnd, ID: id, Counter: 4}, nil)

	items := collect(t, sub, 3)
	assert.Equal(t, "chunk-1", string(items[0].Data))
	var respErr *wire.ResponseError
	require.ErrorAs(t, items[1].Err, &respErr)
	assert.Equal(t, 503, respErr.Status)
	assert.Equal(t, "chunk-2", string(items[2].Data))
	expectClosed(t, sub)
}

func TestSessionRoutesUnexpectedKindsAsErrors(t *testing.T) {
	defer goleak.VerifyNone(t)
	ts := newTestServer(t)
	defer ts.close()

	sess, err := New(context.Background(), ts.dialFunc())
	require.NoError(t, err)
	defer sess.Close()
	conn := ts.accept(t)
	defer conn.Close()

	sub, err := sess.Submit(
		context.Background(),
		request.GetBlocks{Range: request.NewRange(chain.Ethereum)},
		query.FormatJSONStream,
		false,
	)
	require.NoError(t, err)
	id := requestID(t, readRequest(t, conn))

	sendFrame(
		t, conn,
		wire.Header{Kind: wire.KindSubscription, ID: id, Counter: 1},
		[]byte("notification-payload"),
	)
	items := collect(t, sub, 1)
	assert.ErrorIs(t, items[0].Err, wire.ErrMalformedFrame)
	assert.Empty(t, items[0].Data)

	// The subscription survives the stray frame
	sendFrame(
		t, conn,
		wire.Header{Kind: wire.KindContinue, ID: id, Counter: 2},
		[]byte("chunk-1"),
	)
	sendFrame(t, conn, wire.Header{Kind: wire.KindEnd, ID: id, Counter: 3}, nil)
	items = collect(t, sub, 1)
	assert.Equal(t, "chunk-1", string(items[0].Data))
	expectClosed(t, sub)
}

func TestSessionKeepAlivePings(t *testing.T) {
	defer goleak.VerifyNone(t)
	ts := newTestServer(t)
	defer ts.close()

	mock := clock.NewMock()
	sess, err := New(context.Background(), ts.dialFunc(), WithClock(mock))
	require.NoError(t, err)
	defer sess.Close()
	conn := ts.accept(t)

	pings := make(chan struct{}, 4)
	conn.SetPingHandler(func(string) error {
		pings <- struct{}{}
		return nil
	})
	// Control frames only surface while a read is in flight
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Let the event loop install its ticker before the clock moves
	time.Sleep(10 * time.Millisecond)
	mock.Add(defaultPingPeriod)

	select {
	case <-pings:
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for keep-alive ping")
	}

	conn.Close()
	<-readerDone
}

func TestSessionReconnectResumesFromCursor(t *testing.T) {
	defer goleak.VerifyNone(t)
	ts := newTestServer(t)
	defer ts.close()

	sess, err := New(
		context.Background(),
		ts.dialFunc(),
		WithReconnectDelay(10*time.Millisecond),
	)
	require.NoError(t, err)
	defer sess.Close()
	conn1 := ts.accept(t)

	sub, err := sess.Submit(
		context.Background(),
		request.GetBlocks{Range: request.NewRange(chain.Ethereum)},
		query.FormatJSONStream,
		false,
	)
	require.NoError(t, err)
	req1 := readRequest(t, conn1)
	id := requestID(t, req1)
	assert.NotContains(t, req1, "cursor")

	cursor := "c:17000001"
	sendFrame(
		t, conn1,
		wire.Header{Kind: wire.KindContinue, ID: id, Counter: 1, Cursor: &cursor},
		[]byte("chunk-1"),
	)
	items := collect(t, sub, 1)
	assert.Equal(t, "chunk-1", string(items[0].Data))

	// Drop the connection out from under the session
	conn1.Close()

	conn2 := ts.accept(t)
	defer conn2.Close()
	req2 := readRequest(t, conn2)
	assert.Equal(t, id, requestID(t, req2))
	assert.Equal(t, "getBlocks", req2["operation"])
	assert.Equal(t, cursor, req2["cursor"])

	sendFrame(
		t, conn2,
		wire.Header{Kind: wire.KindContinue, ID: id, Counter: 2},
		[]byte("chunk-2"),
	)
	sendFrame(t, conn2, wire.Header{Kind: wire.KindEnd, ID: id, Counter: 3}, nil)

	items = collect(t, sub, 1)
	assert.Equal(t, "chunk-2", string(items[0].Data))
	expectClosed(t, sub)
}

func TestSessionReconnectDialsImmediately(t *testing.T) {
	defer goleak.VerifyNone(t)
	ts := newTestServer(t)
	defer ts.close()

	// The mock clock never advances, so any sleep before the first
	// dial would stall the reconnect forever
	mock := clock.NewMock()
	sess, err := New(context.Background(), ts.dialFunc(), WithClock(mock))
	require.NoError(t, err)
	defer sess.Close()
	conn1 := ts.accept(t)

	sub, err := sess.Submit(
		context.Background(),
		request.GetBlocks{Range: request.NewRange(chain.Ethereum)},
		query.FormatJSONStream,
		false,
	)
	require.NoError(t, err)
	id := requestID(t, readRequest(t, conn1))
	conn1.Close()

	conn2 := ts.accept(t)
	defer conn2.Close()
	req := readRequest(t, conn2)
	assert.Equal(t, id, requestID(t, req))

	sendFrame(t, conn2, wire.Header{Kind: wire.KindEnd, ID: id, Counter: 1}, nil)
	expectClosed(t, sub)
}

func TestResubscribeContinuesPastFailedResends(t *testing.T) {
	defer goleak.VerifyNone(t)
	ts := newTestServer(t)
	defer ts.close()

	// A connection that is already closed fails every write
	conn, err := ts.dialFunc()(context.Background())
	require.NoError(t, err)
	ts.accept(t).Close()
	require.NoError(t, conn.Close())

	handler := &recordingHandler{}
	logger := slog.New(handler)
	s := &Session{
		config:   NewConfig(WithLogger(logger)),
		registry: newRegistry(logger),
	}
	sinks := make([]*stream.Stream, 3)
	for i := range sinks {
		sinks[i] = stream.New()
		s.registry.register(testRequest(), sinks[i])
	}

	s.resubscribe(conn)
	// Every registered subscription got a resend attempt
	assert.Equal(t, 3, handler.count("failed to resend subscription"))
	assert.Equal(t, 3, s.registry.len())

	s.registry.closeAll()
	for _, sink := range sinks {
		drain(sink)
	}
}

func TestSessionFailsSubscriptionsWhenReconnectExhausted(t *testing.T) {
	defer goleak.VerifyNone(t)
	ts := newTestServer(t)

	sess, err := New(
		context.Background(),
		ts.dialFunc(),
		WithReconnectDelay(time.Millisecond),
		WithMaxReconnectAttempts(2),
	)
	require.NoError(t, err)
	defer sess.Close()
	conn := ts.accept(t)

	sub, err := sess.Submit(
		context.Background(),
		request.GetBlocks{Range: request.NewRange(chain.Ethereum)},
		query.FormatJSONStream,
		false,
	)
	require.NoError(t, err)
	readRequest(t, conn)

	// No server left to reconnect to
	ts.close()
	conn.Close()

	items := collect(t, sub, 1)
	assert.ErrorIs(t, items[0].Err, ErrBackendShutdown)
	expectClosed(t, sub)

	select {
	case err := <-sess.ErrorChan():
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for session error")
	}

	_, err = sess.Submit(
		context.Background(),
		request.GetBlocks{Range: request.NewRange(chain.Ethereum)},
		query.FormatJSONStream,
		false,
	)
	assert.Error(t, err)
}

func TestSessionSubmitAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t)
	ts := newTestServer(t)
	defer ts.close()

	sess, err := New(context.Background(), ts.dialFunc())
	require.NoError(t, err)
	conn := ts.accept(t)
	defer conn.Close()

	sess.Close()
	_, err = sess.Submit(
		context.Background(),
		request.GetBlocks{Range: request.NewRange(chain.Ethereum)},
		query.FormatJSONStream,
		false,
	)
	assert.ErrorIs(t, err, ErrBackendShutdown)
}

func TestSessionConsumerCloseDropsSubscription(t *testing.T) {
	defer goleak.VerifyNone(t)
	ts := newTestServer(t)
	defer ts.close()

	sess, err := New(context.Background(), ts.dialFunc())
	require.NoError(t, err)
	defer sess.Close()
	conn := ts.accept(t)
	defer conn.Close()

	sub, err := sess.Submit(
		context.Background(),
		request.GetBlocks{Range: request.NewRange(chain.Ethereum)},
		query.FormatJSONStream,
		false,
	)
	require.NoError(t, err)
	id := requestID(t, readRequest(t, conn))

	sub.Close()
	// The next routed frame notices the closed consumer and drops the
	// subscription
	sendFrame(
		t, conn,
		wire.Header{Kind: wire.KindContinue, ID: id, Counter: 1},
		[]byte("unwanted"),
	)
	expectClosed(t, sub)
}
