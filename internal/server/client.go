package server

import (
	"net/http"
	"time"

	"craft-server/internal/engine"
	"craft-server/pkg/api"
	"craft-server/pkg/logger"
	"craft-server/pkg/utils"

	"github.com/gorilla/websocket"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket и RoomService.
// Идентификатор соединения генерируется сервером и нигде не пересекается
// с кошельком: кошелек может вернуться с нового соединения.
type Client struct {
	Service *engine.RoomService
	Conn    *websocket.Conn
	Send    chan api.ServerEvent
	ConnID  string
}

func NewClient(service *engine.RoomService, conn *websocket.Conn) *Client {
	return &Client{
		Service: service,
		Conn:    conn,
		Send:    make(chan api.ServerEvent, 256),
		ConnID:  utils.GenerateID(),
	}
}

// readPump читает команды от клиента и передает их игровому циклу.
func (c *Client) readPump() {
	defer func() {
		c.Service.Hub.Unregister(c.ConnID)
		c.Service.Disconnect(c.ConnID)
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("close websocket failed")
		}
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	// Подписка на события до первой команды: снапшот joinRoom должен
	// попасть в канал, а не потеряться.
	events := c.Service.Hub.Register(c.ConnID)
	go func() {
		for evt := range events {
			c.Send <- evt
		}
		close(c.Send)
	}()

	logger.Log.WithField("conn", c.ConnID).Info("Client connected")

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).WithField("conn", c.ConnID).Warn("WS read error")
			}
			break
		}
		c.Service.ProcessCommand(c.ConnID, cmd)
	}
}

// writePump отправляет события клиенту + Ping.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			logger.Log.WithError(err).Debug("close websocket failed in writePump")
		}
	}()

	for {
		select {
		case evt, ok := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					logger.Log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(evt); err != nil {
				logger.Log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				logger.Log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
