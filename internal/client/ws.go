package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"healthcare-assistant-client/internal/dto"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// SocketState tracks the connection lifecycle. There is no error state: an
// error is logged where it happens and the read loop's exit is what
// finalizes SocketClosed.
type SocketState int

const (
	SocketConnecting SocketState = iota
	SocketOpen
	SocketClosing
	SocketClosed
)

func (s SocketState) String() string {
	switch s {
	case SocketConnecting:
		return "connecting"
	case SocketOpen:
		return "open"
	case SocketClosing:
		return "closing"
	default:
		return "closed"
	}
}

// MessageHandler receives each inbound frame that parsed as JSON. Frames
// that do not parse are dropped at the transport boundary.
type MessageHandler func(data json.RawMessage)

// ChatSocket wraps one WebSocket connection scoped to a single user. Send is
// a no-op outside the open state. There is no reconnection and no queueing
// while disconnected; frames dropped during a disconnect are lost.
type ChatSocket struct {
	url       string
	log       *logrus.Logger
	onMessage MessageHandler

	mu    sync.Mutex
	state SocketState
	conn  *websocket.Conn
}

func dialChat(ctx context.Context, t *transport, userID int, onMessage MessageHandler) *ChatSocket {
	s := &ChatSocket{
		url:       fmt.Sprintf("%s%s/ws/chat/%d", t.wsBaseURL, apiPrefix, userID),
		log:       t.log,
		onMessage: onMessage,
		state:     SocketConnecting,
	}
	go s.dial(ctx)
	return s
}

func (s *ChatSocket) dial(ctx context.Context) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	s.mu.Lock()
	if err != nil {
		s.state = SocketClosed
		s.mu.Unlock()
		s.log.Warnf("websocket connect failed: %v", err)
		return
	}
	if s.state != SocketConnecting {
		// Close raced the dial; discard the fresh connection.
		s.state = SocketClosed
		s.mu.Unlock()
		conn.Close()
		return
	}
	s.conn = conn
	s.state = SocketOpen
	s.mu.Unlock()

	s.log.Debug("websocket connected")
	s.readLoop(conn)
}

func (s *ChatSocket) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.mu.Lock()
			s.state = SocketClosed
			s.conn = nil
			s.mu.Unlock()
			s.log.Debugf("websocket disconnected: %v", err)
			return
		}
		if !json.Valid(data) {
			s.log.Debug("dropping non-JSON websocket frame")
			continue
		}
		if s.onMessage != nil {
			s.onMessage(json.RawMessage(data))
		}
	}
}

// Send transmits {"message": msg} when the socket is open and silently does
// nothing in any other state.
func (s *ChatSocket) Send(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != SocketOpen || s.conn == nil {
		return
	}
	frame, err := json.Marshal(dto.ChatFrame{Message: message})
	if err != nil {
		return
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		s.log.Warnf("websocket send failed: %v", err)
	}
}

// Close shuts the channel down. Safe to call in any state, any number of
// times; the read loop observing the closed connection finalizes the state.
func (s *ChatSocket) Close() {
	s.mu.Lock()
	conn := s.conn
	switch s.state {
	case SocketOpen:
		s.state = SocketClosing
	case SocketConnecting:
		s.state = SocketClosed
	}
	s.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
}

// State reports the current lifecycle state.
func (s *ChatSocket) State() SocketState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
