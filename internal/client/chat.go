package client

import (
	"context"

	"healthcare-assistant-client/internal/dto"
)

// ChatService talks to the assistant. SendMessage is the primary, stateless
// request/response path; Connect opens the supplementary best-effort
// WebSocket channel.
type ChatService struct {
	t *transport
}

func (s *ChatService) SendMessage(ctx context.Context, userID int, message string) (*Envelope[dto.ChatAnswer], error) {
	req := &dto.ChatRequest{UserID: userID, Message: message}
	if err := s.t.validate.Validate(req); err != nil {
		return nil, err
	}
	return postJSON[dto.ChatAnswer](ctx, s.t, s.t.endpoint("/chat", nil), req)
}

// Connect opens the real-time channel for one user. The handle is returned
// immediately while the dial proceeds in the background; see ChatSocket for
// the state rules. onMessage receives every inbound JSON frame verbatim and
// is invoked from the socket's read goroutine.
func (s *ChatService) Connect(ctx context.Context, userID int, onMessage MessageHandler) *ChatSocket {
	return dialChat(ctx, s.t, userID, onMessage)
}
