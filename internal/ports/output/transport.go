//go:generate go run go.uber.org/mock/mockgen -source=transport.go -destination=../../mocks/mock_transport.go -package=mocks
package output

import "context"

// ChatRequest is the body sent to the remote chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
	Lang    string `json:"lang"`
}

// ChatReply is the body returned by the remote chat endpoint. A nil Reply
// means the field was absent.
type ChatReply struct {
	Reply *string `json:"reply"`
}

// ChatTransport performs one request/response exchange with the chat endpoint.
type ChatTransport interface {
	Send(ctx context.Context, req ChatRequest) (ChatReply, error)
}
