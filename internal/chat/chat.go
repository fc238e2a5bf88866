// Package chat implements the Minecraft JSON chat component, kept from
// the teacher's pkg/chat/chat.go and extended with the Translate variant
// original_source's chat.rs also supports.
package chat

import "encoding/json"

// Message represents a Minecraft JSON chat message component.
type Message struct {
	Text          string    `json:"text,omitempty"`
	Translate     string    `json:"translate,omitempty"`
	Bold          bool      `json:"bold,omitempty"`
	Italic        bool      `json:"italic,omitempty"`
	Underlined    bool      `json:"underlined,omitempty"`
	Strikethrough bool      `json:"strikethrough,omitempty"`
	Obfuscated    bool      `json:"obfuscated,omitempty"`
	Color         string    `json:"color,omitempty"`
	Extra         []Message `json:"extra,omitempty"`
}

// String serializes the message to JSON.
func (m Message) String() string {
	b, _ := json.Marshal(m)
	return string(b)
}

// Text creates a simple text message.
func Text(text string) Message {
	return Message{Text: text}
}

// Colored creates a colored text message.
func Colored(text, color string) Message {
	return Message{Text: text, Color: color}
}

// Position selects where a ChatMessage packet is rendered client-side.
type Position int8

const (
	PositionChat Position = iota
	PositionSystemMessage
	PositionGameInfo
)
