package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"marketplace/entity"
	"marketplace/pkg/apperr"
	"marketplace/pkg/resp"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4 * 1024
	sendBuffer     = 16
)

// OrderEvent is what a connected seller receives.
type OrderEvent struct {
	Type  string        `json:"type"`
	Order *entity.Order `json:"order"`
}

// client is one seller connection. Only Run closes send; only
// writePump writes to conn.
type client struct {
	conn     *websocket.Conn
	sellerID uint
	send     chan OrderEvent
}

type broadcast struct {
	sellerID uint
	event    OrderEvent
}

// OrderHub fans order events out to the sellers whose products were bought.
type OrderHub struct {
	clients    map[uint]map[*client]bool // sellerID -> connections
	broadcast  chan broadcast
	register   chan *client
	unregister chan *client
	done       chan struct{}
	mu         sync.Mutex
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*client]bool),
		broadcast:  make(chan broadcast, 64),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Run serves register/unregister/broadcast until ctx is done. It never
// writes to a socket: a seller that cannot keep up is dropped instead of
// stalling the others.
func (h *OrderHub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, set := range h.clients {
				for cl := range set {
					close(cl.send)
				}
			}
			h.clients = make(map[uint]map[*client]bool)
			h.mu.Unlock()
			return

		case cl := <-h.register:
			h.mu.Lock()
			if h.clients[cl.sellerID] == nil {
				h.clients[cl.sellerID] = make(map[*client]bool)
			}
			h.clients[cl.sellerID][cl] = true
			h.mu.Unlock()

		case cl := <-h.unregister:
			h.mu.Lock()
			h.drop(cl)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for cl := range h.clients[msg.sellerID] {
				select {
				case cl.send <- msg.event:
				default:
					log.Warn().Uint("seller_id", msg.sellerID).Msg("ws client too slow, dropping")
					h.drop(cl)
				}
			}
			h.mu.Unlock()
		}
	}
}

// drop must be called with mu held.
func (h *OrderHub) drop(cl *client) {
	set, ok := h.clients[cl.sellerID]
	if !ok || !set[cl] {
		return
	}
	delete(set, cl)
	close(cl.send)
	if len(set) == 0 {
		delete(h.clients, cl.sellerID)
	}
}

// OrderCreated never blocks the order path; events are dropped when
// the hub is backed up.
func (h *OrderHub) OrderCreated(sellerID uint, order *entity.Order) {
	select {
	case h.broadcast <- broadcast{sellerID: sellerID, event: OrderEvent{Type: "order.created", Order: order}}:
	default:
		log.Warn().Uint("seller_id", sellerID).Uint("order_id", order.ID).Msg("order event dropped")
	}
}

// Subscribers counts open connections for a seller.
func (h *OrderHub) Subscribers(sellerID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[sellerID])
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket: GET /ws/orders
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	p, ok := utils.CurrentPrincipal(c)
	if !ok {
		resp.Fail(c, apperr.Unauthorized("authentication required"))
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Warn().Err(err).Msg("ws upgrade failed")
		return
	}

	cl := &client{conn: conn, sellerID: p.UserID(), send: make(chan OrderEvent, sendBuffer)}
	select {
	case h.register <- cl:
	case <-h.done:
		conn.Close()
		return
	}
	go h.writePump(cl)
	go h.readPump(cl)
}

// readPump drains the client side; the feed is one-way, reads only
// keep the pong deadline fresh and detect the close.
func (h *OrderHub) readPump(cl *client) {
	defer func() {
		select {
		case h.unregister <- cl:
		case <-h.done:
		}
		cl.conn.Close()
	}()

	cl.conn.SetReadLimit(maxMessageSize)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump is the only writer of cl.conn. Every write carries a
// deadline, so a stuck peer costs one goroutine and nothing else.
func (h *OrderHub) writePump(cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case ev, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteJSON(ev); err != nil {
				log.Warn().Err(err).Uint("seller_id", cl.sellerID).Msg("ws write failed")
				return
			}

		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
