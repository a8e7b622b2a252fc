package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/vncsmyrnk/versus/internal/core/domain"
	"github.com/vncsmyrnk/versus/internal/core/ports"
)

// webAppStore talks to the remote comparison store over its two-verb
// HTTP contract: a full-list GET and a full-list POST against a single
// endpoint URL.
type webAppStore struct {
	endpoint string
	client   *http.Client
}

func NewWebAppStore(endpoint string, client *http.Client) ports.RemoteStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &webAppStore{
		endpoint: endpoint,
		client:   client,
	}
}

// List fetches the whole collection. A response body that is not a
// JSON array means the store holds no records yet; only transport
// failures are errors.
func (s *webAppStore) List(ctx context.Context) ([]domain.Comparison, error) {
	u, err := url.Parse(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", s.endpoint, err)
	}
	q := u.Query()
	q.Set("action", "list")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comparisons: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("list returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read list response: %w", err)
	}

	var items []domain.Comparison
	if err := json.Unmarshal(body, &items); err != nil {
		return []domain.Comparison{}, nil
	}
	if items == nil {
		items = []domain.Comparison{}
	}
	return items, nil
}

type updateRequest struct {
	Action string              `json:"action"`
	Data   []domain.Comparison `json:"data"`
}

// Update overwrites the remote collection. Any response counts as
// success as long as the call itself resolves; there is no response
// body contract.
func (s *webAppStore) Update(ctx context.Context, items []domain.Comparison) error {
	if items == nil {
		items = []domain.Comparison{}
	}
	payload, err := json.Marshal(updateRequest{Action: "update", Data: items})
	if err != nil {
		return fmt.Errorf("failed to encode comparisons: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to push comparisons: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return nil
}
