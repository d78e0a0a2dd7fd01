package models

// Request and response bodies of the REST API. Field names follow the wire
// format consumed by all clients, so changes here are breaking changes.

type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	UserID      string `json:"userId"`
	Token       string `json:"token"`
	DisplayName string `json:"displayName"`
}

type SendMessageRequest struct {
	Text string `json:"text"`
}

type StartConversationResponse struct {
	ConversationID string `json:"conversationId"`
}

// APIError is the error body of every non-2xx response: a single
// human-readable detail message.
type APIError struct {
	Detail string `json:"detail"`
}
