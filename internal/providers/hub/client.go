package hub

import (
	"context"
	"fmt"
	"net/url"

	"github.com/castlight/hub-indexer/internal/adapter"
	"github.com/castlight/hub-indexer/internal/domain"
)

// messagesResponse is the hub's paged message listing.
type messagesResponse struct {
	Messages      []*domain.Message `json:"messages"`
	NextPageToken string            `json:"next_page_token,omitempty"`
}

// maxFidResponse is the hub's highest registered account id.
type maxFidResponse struct {
	MaxFid domain.Fid `json:"max_fid"`
}

// kindPaths maps message kinds onto the hub's listing endpoints.
var kindPaths = map[domain.MessageKind]string{
	domain.KindCast:         "casts",
	domain.KindReaction:     "reactions",
	domain.KindLink:         "links",
	domain.KindVerification: "verifications",
	domain.KindUserData:     "user-data",
}

// Client reads authoritative message sets over the hub's HTTP API. It
// satisfies the reconciler's HubClient interface.
type Client struct {
	httpClient adapter.HTTPClient
	baseURL    string
	pageSize   int
}

// NewClient creates a hub API client rooted at baseURL.
func NewClient(httpClient adapter.HTTPClient, baseURL string, pageSize int) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		pageSize:   pageSize,
	}
}

// ListMessagesByFid pages through one account's messages of one kind.
func (c *Client) ListMessagesByFid(ctx context.Context, fid domain.Fid, kind domain.MessageKind, pageToken string) ([]*domain.Message, string, error) {
	path, ok := kindPaths[kind]
	if !ok {
		return nil, "", fmt.Errorf("unknown message kind: %s", kind)
	}

	query := url.Values{}
	query.Set("fid", fmt.Sprintf("%d", fid))
	query.Set("page_size", fmt.Sprintf("%d", c.pageSize))
	if pageToken != "" {
		query.Set("page_token", pageToken)
	}

	endpoint := fmt.Sprintf("%s/v1/%s?%s", c.baseURL, path, query.Encode())

	var resp messagesResponse
	if err := c.httpClient.Get(ctx, endpoint, &resp); err != nil {
		return nil, "", fmt.Errorf("failed to list %s messages for fid %d: %w", kind, fid, err)
	}

	return resp.Messages, resp.NextPageToken, nil
}

// MaxFid returns the highest registered account id.
func (c *Client) MaxFid(ctx context.Context) (domain.Fid, error) {
	endpoint := c.baseURL + "/v1/fids/max"

	var resp maxFidResponse
	if err := c.httpClient.Get(ctx, endpoint, &resp); err != nil {
		return 0, fmt.Errorf("failed to fetch max fid: %w", err)
	}

	return resp.MaxFid, nil
}

// Close releases the underlying connection. The HTTP transport holds no
// persistent state.
func (c *Client) Close() error {
	return nil
}
