package websocket

// Message is the envelope for every frame pushed to dashboard clients.
type Message struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

// MessageTypeSubmission marks a completed submission push.
const MessageTypeSubmission = "submission"
