package models

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role    string `json:"role" example:"user"`
	Content string `json:"content" example:"What drives the locker revenue?"`
}

// ChatRequest carries the conversation history plus the new user message.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages"`
	Message  string        `json:"message" example:"How can we improve occupancy?"`
}

// ChatResponse is the assistant reply. Success is false when the reply is a
// degraded fallback (missing key, upstream failure) rather than a model answer.
type ChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
