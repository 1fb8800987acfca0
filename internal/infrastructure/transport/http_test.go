package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"petverse/internal/domain"
	"petverse/internal/ports/output"
)

func TestHTTPChatTransport_Send(t *testing.T) {
	req := require.New(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal(http.MethodPost, r.Method)
		req.Equal("application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.Equal(map[string]string{"message": "hello", "lang": "hi"}, body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"Woof!"}`))
	}))
	defer srv.Close()

	reply, err := NewHTTPChatTransport(srv.URL, time.Second).
		Send(context.Background(), output.ChatRequest{Message: "hello", Lang: "hi"})

	req.NoError(err)
	req.NotNil(reply.Reply)
	req.Equal("Woof!", *reply.Reply)
}

func TestHTTPChatTransport_MissingReplyField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	reply, err := NewHTTPChatTransport(srv.URL, time.Second).
		Send(context.Background(), output.ChatRequest{Message: "hello", Lang: "en"})

	require.NoError(t, err)
	require.Nil(t, reply.Reply)
}

func TestHTTPChatTransport_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		timeout time.Duration
	}{
		{
			name: "server error status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`<html>not json</html>`))
			},
		},
		{
			name: "slow server",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-time.After(time.Second):
				case <-r.Context().Done():
				}
			},
			timeout: 50 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			timeout := tt.timeout
			if timeout == 0 {
				timeout = time.Second
			}

			_, err := NewHTTPChatTransport(srv.URL, timeout).
				Send(context.Background(), output.ChatRequest{Message: "hello", Lang: "en"})

			require.ErrorIs(t, err, domain.ErrTransport)
		})
	}
}

func TestHTTPChatTransport_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPChatTransport(url, time.Second).
		Send(context.Background(), output.ChatRequest{Message: "hello", Lang: "en"})

	require.ErrorIs(t, err, domain.ErrTransport)
}
