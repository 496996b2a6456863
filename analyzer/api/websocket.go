package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// wsMessageType labels messages on the report stream.
type wsMessageType string

const (
	wsMessageConnection       wsMessageType = "connection"
	wsMessageAnalysisComplete wsMessageType = "analysis_complete"
)

// wsMessage is the envelope for all WebSocket messages.
type wsMessage struct {
	Type      wsMessageType `json:"type"`
	Timestamp time.Time     `json:"timestamp"`
	Data      interface{}   `json:"data,omitempty"`
}

// handleWebSocket upgrades the connection and registers it for report
// broadcasts. Inbound messages are read and discarded to keep the connection
// alive and to detect closure.
func (s *server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Error("Failed to upgrade WebSocket connection")
		return
	}

	s.wsMu.Lock()
	s.wsClients[conn] = true
	s.wsMu.Unlock()

	s.log.WithField("remote", conn.RemoteAddr().String()).Info("WebSocket client connected")

	welcome := wsMessage{Type: wsMessageConnection, Timestamp: time.Now()}
	if err := conn.WriteJSON(welcome); err != nil {
		s.removeClient(conn)
		return
	}

	go func() {
		defer s.removeClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// runBroadcastHub delivers broadcast messages to all connected clients.
func (s *server) runBroadcastHub() {
	for {
		select {
		case <-s.wsDone:
			return
		case data := <-s.wsBroadcast:
			s.wsMu.Lock()
			for conn := range s.wsClients {
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					s.log.WithError(err).Debug("Dropping unresponsive WebSocket client")
					conn.Close()
					delete(s.wsClients, conn)
				}
			}
			s.wsMu.Unlock()
		}
	}
}

func (s *server) removeClient(conn *websocket.Conn) {
	s.wsMu.Lock()
	if s.wsClients[conn] {
		delete(s.wsClients, conn)
		conn.Close()
	}
	s.wsMu.Unlock()
}
