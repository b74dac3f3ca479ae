// Package web provides the live moderation feed over websocket.
package web

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/PancyStudios/PancyModGo/pkg/logger"
	"github.com/PancyStudios/PancyModGo/pkg/models"
	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// Feed broadcasts moderation action events to connected websocket clients
type Feed struct {
	upgrader websocket.Upgrader
	clients  map[*websocket.Conn]struct{}
	mu       sync.Mutex
}

// NewFeed creates an empty feed hub
func NewFeed() *Feed {
	return &Feed{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// Handler upgrades the request and keeps the connection registered until it
// closes. Clients only receive; inbound frames are drained and discarded.
func (f *Feed) Handler(c *gin.Context) {
	conn, err := f.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn(fmt.Sprintf("Error actualizando conexión websocket: %v", err), "Feed")
		return
	}

	f.mu.Lock()
	f.clients[conn] = struct{}{}
	total := len(f.clients)
	f.mu.Unlock()

	logger.Info(fmt.Sprintf("Cliente conectado al feed de moderación (%d activos)", total), "Feed")

	go func() {
		defer f.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// drop unregisters and closes a connection
func (f *Feed) drop(conn *websocket.Conn) {
	f.mu.Lock()
	delete(f.clients, conn)
	f.mu.Unlock()
	conn.Close()
}

// Broadcast sends a moderation event to every connected client
func (f *Feed) Broadcast(event models.ModActionEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error(fmt.Sprintf("Error serializando evento de moderación: %v", err), "Feed")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for conn := range f.clients {
		conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			delete(f.clients, conn)
			conn.Close()
		}
	}
}

// ClientCount returns the number of connected feed clients
func (f *Feed) ClientCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}
