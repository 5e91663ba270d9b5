package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestManager(t *testing.T) (*Bus, *ConnectionManager, *httptest.Server) {
	t.Helper()

	bus := NewBus()
	manager := NewConnectionManager(bus, 5*time.Second, time.Minute)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))

	t.Cleanup(func() { server.Close() })
	return bus, manager, server
}

func connectWS(t *testing.T, server *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func writeJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestConnectionManagerConnectionEstablished(t *testing.T) {
	_, _, server := setupTestManager(t)
	conn := connectWS(t, server)

	msg := readJSON(t, conn)
	assert.Equal(t, "connection.established", msg["type"])
	assert.NotEmpty(t, msg["connection_id"])
}

func TestConnectionManagerSubscribeAndReceive(t *testing.T) {
	bus, manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	channel := ItineraryChannel("it-1")
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})

	confirm := readJSON(t, conn)
	assert.Equal(t, "subscription.confirmed", confirm["type"])
	assert.Equal(t, channel, confirm["channel"])
	assert.Equal(t, 1, manager.subscriberCount(channel))

	NewPublisher(bus).ItineraryCommitted("it-1", 2, 1, 0, 0, "user")

	event := readJSON(t, conn)
	assert.Equal(t, EventTypeItineraryCommitted, event["type"])
	assert.Equal(t, float64(2), event["version"])
}

func TestConnectionManagerChannelIsolation(t *testing.T) {
	bus, _, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ItineraryChannel("it-1")})
	readJSON(t, conn) // confirmation

	// Event for a different itinerary, then one for ours: only ours arrives.
	pub := NewPublisher(bus)
	pub.ItineraryCommitted("it-other", 5, 0, 0, 0, "user")
	pub.ItineraryCommitted("it-1", 2, 0, 0, 0, "user")

	event := readJSON(t, conn)
	assert.Equal(t, "it-1", event["itinerary_id"])
}

func TestConnectionManagerUnsubscribeStopsDelivery(t *testing.T) {
	bus, manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := ItineraryChannel("it-1")
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "unsubscribe", Channel: channel})
	waitFor(t, func() bool { return manager.subscriberCount(channel) == 0 },
		"unsubscribe not processed")

	// Forwarder stopped with the last subscriber.
	waitFor(t, func() bool { return bus.SubscriberCount(channel) == 0 },
		"bus forwarder not cancelled")

	NewPublisher(bus).ItineraryCommitted("it-1", 2, 0, 0, 0, "user")

	// Ping must answer pong without the committed event arriving first.
	writeJSON(t, conn, ClientMessage{Action: "ping"})
	msg := readJSON(t, conn)
	assert.Equal(t, "pong", msg["type"])
}

func TestConnectionManagerDisconnectCleansUp(t *testing.T) {
	bus, manager, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	channel := ItineraryChannel("it-1")
	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: channel})
	readJSON(t, conn)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))

	waitFor(t, func() bool { return manager.ActiveConnections() == 0 },
		"connection not unregistered")
	waitFor(t, func() bool { return bus.SubscriberCount(channel) == 0 },
		"bus subscription not cleaned up")
}

func TestConnectionManagerSubscribeRequiresChannel(t *testing.T) {
	_, _, server := setupTestManager(t)
	conn := connectWS(t, server)
	readJSON(t, conn)

	writeJSON(t, conn, ClientMessage{Action: "subscribe"})
	msg := readJSON(t, conn)
	assert.Equal(t, "error", msg["type"])
}
