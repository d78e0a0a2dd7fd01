package models

import "time"

// Conversation is the client-facing view of a two-party thread: the
// counterpart's profile, a preview of the last message, a display timestamp
// and the caller's unread counter. The server returns conversations already
// ordered by recency; the client never re-sorts them.
type Conversation struct {
	ConversationID string `json:"conversationId"`
	OtherUser      User   `json:"otherUser"`
	LastMessage    string `json:"lastMessage"`
	Timestamp      string `json:"timestamp"`
	UnreadCount    int    `json:"unreadCount"`
}

// ConversationRecord is the stored form of a conversation. Participants are
// unordered: a thread between A and B is the same thread as between B and A.
type ConversationRecord struct {
	ConversationID  string
	ParticipantA    string
	ParticipantB    string
	LastMessage     string
	LastMessageTime *time.Time
	CreatedAt       time.Time
}

// OtherParticipant returns the participant that is not userID. If userID is
// not a participant at all, the second return value is false.
func (c ConversationRecord) OtherParticipant(userID string) (string, bool) {
	switch userID {
	case c.ParticipantA:
		return c.ParticipantB, true
	case c.ParticipantB:
		return c.ParticipantA, true
	default:
		return "", false
	}
}

// HasParticipant reports whether userID belongs to the conversation.
func (c ConversationRecord) HasParticipant(userID string) bool {
	return userID == c.ParticipantA || userID == c.ParticipantB
}
