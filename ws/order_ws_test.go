package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketplace/entity"
	"marketplace/middlewares"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*OrderHub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	hub := NewOrderHub()
	go hub.Run(ctx)

	r := gin.New()
	r.Use(middlewares.ErrorHandler())
	r.GET("/ws/orders", func(c *gin.Context) {
		seller := &entity.User{Role: entity.RoleSeller}
		seller.ID = 7
		utils.SetPrincipal(c, utils.Principal{User: seller})
		c.Next()
	}, hub.HandleWebSocket)
	r.GET("/anon", hub.HandleWebSocket)

	srv := httptest.NewServer(r)
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func wsURL(srv *httptest.Server, path string) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + path
}

func TestOrderHub_DeliversToSeller(t *testing.T) {
	hub, srv := startHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/orders"), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Subscribers(7) == 1 }, time.Second, 10*time.Millisecond)

	order := &entity.Order{Quantity: 2, Total: 300, Status: entity.OrderPending}
	order.ID = 41
	hub.OrderCreated(8, &entity.Order{}) // someone else's product
	hub.OrderCreated(7, order)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev struct {
		Type  string `json:"type"`
		Order struct {
			ID       uint  `json:"ID"`
			Quantity int   `json:"quantity"`
			Total    int64 `json:"total"`
		} `json:"order"`
	}
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, "order.created", ev.Type)
	assert.Equal(t, uint(41), ev.Order.ID)
	assert.Equal(t, 2, ev.Order.Quantity)
	assert.Equal(t, int64(300), ev.Order.Total)
}

func TestOrderHub_UnregistersOnClose(t *testing.T) {
	hub, srv := startHub(t)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/orders"), nil)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return hub.Subscribers(7) == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Subscribers(7) == 0 }, time.Second, 10*time.Millisecond)
}

func TestOrderHub_RequiresPrincipal(t *testing.T) {
	_, srv := startHub(t)

	_, res, err := websocket.DefaultDialer.Dial(wsURL(srv, "/anon"), nil)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestOrderHub_OrderCreatedNeverBlocks(t *testing.T) {
	hub := NewOrderHub() // not running

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.OrderCreated(1, &entity.Order{})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("OrderCreated blocked on a stalled hub")
	}
}

func TestOrderHub_SlowSubscriberIsDroppedOthersKeepReceiving(t *testing.T) {
	hub, srv := startHub(t)

	// registered without pumps: nothing ever drains its buffer
	stalled := &client{sellerID: 7, send: make(chan OrderEvent, 1)}
	hub.register <- stalled

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/orders"), nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Subscribers(7) == 2 }, time.Second, 10*time.Millisecond)

	for i := uint(1); i <= 3; i++ {
		o := &entity.Order{}
		o.ID = i
		hub.OrderCreated(7, o)
	}

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	for i := uint(1); i <= 3; i++ {
		var ev OrderEvent
		require.NoError(t, conn.ReadJSON(&ev))
		assert.Equal(t, i, ev.Order.ID)
	}

	require.Eventually(t, func() bool { return hub.Subscribers(7) == 1 }, time.Second, 10*time.Millisecond)
	<-stalled.send
	_, open := <-stalled.send
	assert.False(t, open)

	// the hub still accepts new sellers
	late, _, err := websocket.DefaultDialer.Dial(wsURL(srv, "/ws/orders"), nil)
	require.NoError(t, err)
	defer late.Close()
	require.Eventually(t, func() bool { return hub.Subscribers(7) == 2 }, time.Second, 10*time.Millisecond)
}
