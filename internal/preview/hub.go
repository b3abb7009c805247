package preview

import (
	"context"
	"strings"
	"sync"

	"gotolinks/internal/middleware"
	"gotolinks/internal/observability"

	"github.com/gofiber/websocket/v2"
)

const (
	maxConnsPerHandle = 8
	maxTotalConns     = 10000
)

// Hub tracks preview websocket connections keyed by profile handle and fans
// Redis preview updates out to them.
type Hub struct {
	name string

	mu    sync.RWMutex
	conns map[string]map[*Client]struct{}
	total int

	wsLogger *observability.WSLogger
	metrics  *observability.PreviewMetrics
}

// NewHub creates an empty preview hub.
func NewHub(name string) *Hub {
	return &Hub{
		name:     name,
		conns:    make(map[string]map[*Client]struct{}),
		wsLogger: observability.NewWSLogger(name),
		metrics:  observability.NewPreviewMetrics(),
	}
}

// Name reports the hub's label used in metrics.
func (h *Hub) Name() string { return h.name }

// Register attaches a websocket connection as a preview watcher for handle.
// It returns false when connection limits are exceeded.
func (h *Hub) Register(handle string, conn *websocket.Conn) (*Client, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.total >= maxTotalConns {
		return nil, false
	}
	if len(h.conns[handle]) >= maxConnsPerHandle {
		return nil, false
	}

	client := newClient(h, conn, handle)
	if h.conns[handle] == nil {
		h.conns[handle] = make(map[*Client]struct{})
	}
	h.conns[handle][client] = struct{}{}
	h.total++

	h.metrics.IncrementHandle(handle)
	middleware.PreviewConnections.Inc()
	h.wsLogger.LogConnect(context.Background(), handle)
	return client, true
}

// Unregister detaches a client. Safe to call more than once.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.conns[c.Handle]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.conns, c.Handle)
	}
	h.total--
	close(c.Send)

	h.metrics.DecrementHandle(c.Handle)
	middleware.PreviewConnections.Dec()
	h.wsLogger.LogDisconnect(context.Background(), c.Handle, "client closed")
}

// Broadcast sends a preview frame to every watcher of handle.
func (h *Hub) Broadcast(handle string, message []byte) int {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.conns[handle]))
	for c := range h.conns[handle] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		c.TrySend(message)
	}
	if len(clients) > 0 {
		h.metrics.RecordUpdate(handle)
	}
	return len(clients)
}

// WatcherCount reports how many preview connections are open for handle.
func (h *Hub) WatcherCount(handle string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[handle])
}

// StartWiring subscribes the hub to the notifier's Redis pattern channel and
// forwards payloads to the matching handle's watchers until ctx is done.
func (h *Hub) StartWiring(ctx context.Context, notifier *Notifier) {
	notifier.StartPreviewSubscriber(ctx, func(channel string, payload []byte) {
		handle := handleFromChannel(channel)
		if handle == "" {
			return
		}
		h.Broadcast(handle, payload)
	})
}

// handleFromChannel extracts the profile handle from a preview channel name.
func handleFromChannel(channel string) string {
	const prefix = "preview:profile:"
	if !strings.HasPrefix(channel, prefix) {
		return ""
	}
	return strings.TrimPrefix(channel, prefix)
}

// Shutdown closes every open preview connection.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	clients := make([]*Client, 0, h.total)
	for handle, set := range h.conns {
		for c := range set {
			clients = append(clients, c)
			close(c.Send)
		}
		delete(h.conns, handle)
	}
	h.total = 0
	h.mu.Unlock()

	for _, c := range clients {
		if c.Conn != nil {
			_ = c.Conn.Close()
		}
	}
}
