// internal/spectate/hub.go
package spectate

import (
	"go-sea-battle/internal/interfaces"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeTimeout = 2 * time.Second

var _ interfaces.SnapshotSink = (*Hub)(nil)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

type client struct {
	conn    *websocket.Conn
	updates chan *interfaces.Snapshot
}

// Hub рассылает снимки мира зрителям по websocket.
// Каждому клиенту доставляется только последний снимок: медленный клиент
// пропускает промежуточные кадры, а Publish никогда не блокирует тик.
type Hub struct {
	mu      sync.Mutex
	clients map[*client]struct{}
	latest  *interfaces.Snapshot
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*client]struct{}),
		logger:  logger,
	}
}

// Publish реализует interfaces.SnapshotSink
func (h *Hub) Publish(snapshot *interfaces.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = snapshot
	for c := range h.clients {
		offer(c.updates, snapshot)
	}
}

// offer кладёт снимок в канал ёмкости 1, вытесняя непрочитанный.
func offer(ch chan *interfaces.Snapshot, snapshot *interfaces.Snapshot) {
	select {
	case ch <- snapshot:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snapshot:
	default:
	}
}

// Clients возвращает число подключённых зрителей
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, updates: make(chan *interfaces.Snapshot, 1)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	if h.latest != nil {
		c.updates <- h.latest
	}
	h.mu.Unlock()
	h.logger.Info("spectator connected", zap.String("remote", conn.RemoteAddr().String()))

	done := make(chan struct{})
	go h.readLoop(c, done)
	h.writeLoop(c, done)

	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	conn.Close()
	h.logger.Info("spectator disconnected", zap.String("remote", conn.RemoteAddr().String()))
}

// readLoop нужен только для обработки close/ping от клиента.
func (h *Hub) readLoop(c *client, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(c *client, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case snapshot := <-c.updates:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteJSON(snapshot); err != nil {
				h.logger.Debug("spectator write failed", zap.Error(err))
				return
			}
		}
	}
}
