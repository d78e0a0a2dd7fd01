package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-chat-messenger/internal/config"
	"github.com/MKhiriev/go-chat-messenger/internal/logger"
	"github.com/MKhiriev/go-chat-messenger/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) (ServerAdapter, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	return a, srv
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "already normalized", raw: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "scheme added", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash trimmed", raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "https preserved", raw: "https://chat.example.com", want: "https://chat.example.com"},
		{name: "whitespace trimmed", raw: "  http://localhost:8080  ", want: "http://localhost:8080"},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank", raw: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLogin_SuccessStoresToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"jwt-token","userId":"u-1","displayName":"John"}`))
	})

	a, _ := newTestAdapter(t, mux)

	session, err := a.Login(context.Background(), models.LoginRequest{Username: "john", Password: "secret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.UserID != "u-1" || session.DisplayName != "John" || session.Token != "jwt-token" {
		t.Errorf("unexpected session: %+v", session)
	}
	if a.Token() != "jwt-token" {
		t.Errorf("expected adapter to store token, got %q", a.Token())
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid credentials"}`))
	})

	a, _ := newTestAdapter(t, mux)

	_, err := a.Login(context.Background(), models.LoginRequest{Username: "john", Password: "wrong"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if want := "client unauthorized: Invalid credentials"; err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if a.Token() != "" {
		t.Errorf("expected no token after failed login, got %q", a.Token())
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Username already exists"}`))
	})

	a, _ := newTestAdapter(t, mux)

	_, err := a.Register(context.Background(), models.RegisterRequest{Username: "john", Password: "secret", DisplayName: "John"})
	if !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if want := "bad request: Username already exists"; err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestAuthedRequests_CarryBearerToken(t *testing.T) {
	var gotAuth string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/conversations", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("jwt-token")

	if _, err := a.ListConversations(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer jwt-token" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}

	a.ClearToken()
	if _, err := a.ListConversations(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no auth header after ClearToken, got %q", gotAuth)
	}
}

func TestGetConversation_NotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/conversations/c-ghost", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Conversation not found"}`))
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("jwt-token")

	_, err := a.GetConversation(context.Background(), "c-ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListMessages_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/conversations/c-1/messages", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"messageId":"m-1","text":"hi","senderId":"u-2","timestamp":"09:15","status":"read"},
			{"messageId":"m-2","text":"hello","senderId":"u-1","timestamp":"09:16","status":"sent"}
		]`))
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("jwt-token")

	messages, err := a.ListMessages(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].MessageID != "m-1" || messages[1].Status != models.StatusSent {
		t.Errorf("unexpected messages: %+v", messages)
	}
}

func TestSendMessage_ReturnsStoredCopy(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/conversations/c-1/messages", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"messageId":"m-3","text":"see you","senderId":"u-1","timestamp":"09:17","status":"sent"}`))
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("jwt-token")

	message, err := a.SendMessage(context.Background(), "c-1", "see you")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if message.MessageID != "m-3" || message.Text != "see you" {
		t.Errorf("unexpected message: %+v", message)
	}
}

func TestStartConversation_ReturnsID(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/conversations/start/u-2", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"conversationId":"c-9"}`))
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("jwt-token")

	conversationID, err := a.StartConversation(context.Background(), "u-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conversationID != "c-9" {
		t.Errorf("expected c-9, got %s", conversationID)
	}
}

func TestMarkConversationRead_NoContent(t *testing.T) {
	var called bool

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/conversations/c-1/read", func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("jwt-token")

	if err := a.MarkConversationRead(context.Background(), "c-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected PUT read endpoint to be called")
	}
}

func TestPollMessages_CursorQueryParam(t *testing.T) {
	var gotCursor []string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/messages/poll", func(w http.ResponseWriter, r *http.Request) {
		gotCursor = append(gotCursor, r.URL.Query().Get("lastMessageId"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"messageId":"m-5","conversationId":"c-1","text":"ping","senderId":"u-2","timestamp":"10:00"}]`))
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("jwt-token")

	if _, err := a.PollMessages(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	messages, err := a.PollMessages(context.Background(), "m-4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gotCursor) != 2 || gotCursor[0] != "" || gotCursor[1] != "m-4" {
		t.Errorf("unexpected cursor values: %v", gotCursor)
	}
	if len(messages) != 1 || messages[0].ConversationID != "c-1" {
		t.Errorf("unexpected poll messages: %+v", messages)
	}
}

func TestMapHTTPError_PlainTextFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	a, _ := newTestAdapter(t, mux)
	a.SetToken("jwt-token")

	_, err := a.ListUsers(context.Background())
	if !errors.Is(err, ErrInternalServerError) {
		t.Fatalf("expected ErrInternalServerError, got %v", err)
	}
	if want := "internal server error: boom"; err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: ""}, logger.Nop())
	if err == nil {
		t.Fatal("expected error for empty address")
	}
}
