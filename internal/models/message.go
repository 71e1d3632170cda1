// Package models defines the message and conversation types shared
// across the client.
package models

// Role identifies the author of a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// UserMessage builds a user message with the given content.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// AssistantMessage builds an assistant message with the given content.
func AssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// Conversation is an ordered, append-only sequence of messages. Order
// is both display order and the context sent to the agent service.
//
// A Conversation value is a snapshot: Append returns a new value and
// leaves the receiver untouched, so callers may keep earlier snapshots
// around while later ones evolve.
type Conversation []Message

// Append returns a new Conversation equal to c followed by msg. The
// receiver is not modified.
func (c Conversation) Append(msg Message) Conversation {
	out := make(Conversation, len(c), len(c)+1)
	copy(out, c)
	return append(out, msg)
}

// Last returns the final message and true, or a zero Message and false
// when the conversation is empty.
func (c Conversation) Last() (Message, bool) {
	if len(c) == 0 {
		return Message{}, false
	}
	return c[len(c)-1], true
}
