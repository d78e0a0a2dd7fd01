package models

import "time"

// Delivery status of a message. The server creates messages as [StatusSent]
// and promotes them to [StatusRead] when the receiver marks the conversation
// read. [StatusDelivered] is reserved for transports that can acknowledge
// delivery separately from reading.
const (
	StatusSent      = "sent"
	StatusDelivered = "delivered"
	StatusRead      = "read"
)

// Message is a single chat message as returned by the API. Timestamp is a
// pre-formatted display string (HH:MM); ordering is carried by the position
// in the returned slice, not by this field.
type Message struct {
	MessageID string `json:"messageId"`
	Text      string `json:"text"`
	SenderID  string `json:"senderId"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

// PollMessage is the slim message shape returned by the poll endpoint. It
// carries the conversation ID so a client can tell which threads have
// activity without fetching each of them.
type PollMessage struct {
	MessageID      string `json:"messageId"`
	ConversationID string `json:"conversationId"`
	Text           string `json:"text"`
	SenderID       string `json:"senderId"`
	Timestamp      string `json:"timestamp"`
}

// MessageRecord is the stored form of a message.
type MessageRecord struct {
	MessageID      string
	ConversationID string
	SenderID       string
	ReceiverID     string
	Text           string
	Status         string
	CreatedAt      time.Time
}
