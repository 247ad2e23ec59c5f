package models

type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// Message is one entry of a session transcript. The transcript is append-only;
// messages are never mutated or removed.
type Message struct {
	ID       string    `json:"id"` // time-ordered, unique within a session
	Sender   Sender    `json:"sender"`
	Text     string    `json:"text"`
	Products []Product `json:"products,omitempty"`
	System   bool      `json:"isSystemMessage,omitempty"` // presentation hint only
}
