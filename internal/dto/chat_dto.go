package dto

type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one turn of an assistant conversation, held in view state
// only; the client never persists it.
type ChatMessage struct {
	Role      ChatRole `json:"role"`
	Content   string   `json:"content"`
	Timestamp string   `json:"timestamp"`
}

// Request DTOs

type ChatRequest struct {
	UserID  int    `json:"user_id" validate:"required,min=1"`
	Message string `json:"message" validate:"required"`
}

// ChatFrame is the client-to-server WebSocket frame shape.
type ChatFrame struct {
	Message string `json:"message"`
}

// Response DTOs

type ChatAnswer struct {
	Answer  string   `json:"answer"`
	Sources []string `json:"sources,omitempty"`
}
