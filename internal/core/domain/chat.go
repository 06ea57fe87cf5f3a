package domain

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in the session's append-only assistant chat log.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}
