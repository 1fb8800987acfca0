package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"petverse/internal/domain"
	"petverse/internal/ports/output"
)

var _ output.ChatTransport = (*HTTPChatTransport)(nil)

// maxReplyBytes caps how much of a reply body is read.
const maxReplyBytes = 1 << 20

// HTTPChatTransport posts chat requests as JSON to a fixed endpoint.
type HTTPChatTransport struct {
	endpoint string
	client   *http.Client
}

func NewHTTPChatTransport(endpoint string, timeout time.Duration) *HTTPChatTransport {
	return &HTTPChatTransport{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Send performs one exchange. Non-2xx statuses and undecodable bodies are
// reported as domain.ErrTransport.
func (t *HTTPChatTransport) Send(ctx context.Context, req output.ChatRequest) (output.ChatReply, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return output.ChatReply{}, fmt.Errorf("%w: encode request: %v", domain.ErrTransport, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return output.ChatReply{}, fmt.Errorf("%w: build request: %v", domain.ErrTransport, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return output.ChatReply{}, fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxReplyBytes))
		return output.ChatReply{}, fmt.Errorf("%w: unexpected status %d", domain.ErrTransport, resp.StatusCode)
	}

	var reply output.ChatReply
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxReplyBytes)).Decode(&reply); err != nil {
		return output.ChatReply{}, fmt.Errorf("%w: decode reply: %v", domain.ErrTransport, err)
	}
	return reply, nil
}
