package vector

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"skillbridge/internal/config"
	"skillbridge/internal/domain/recommend"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client talks to the vector-similarity service over JSON/HTTP and implements
// recommend.SimilarityIndex. NewClient returns nil when no base URL is
// configured; the engine treats a nil index as "semantic path absent".
type Client struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

type queryRequest struct {
	Collection string `json:"collection"`
	Query      string `json:"query"`
	TopK       int    `json:"top_k"`
}

type queryResponse struct {
	Results []queryResult `json:"results"`
}

type queryResult struct {
	ItemID   string  `json:"item_id"`
	Distance float64 `json:"distance"`
}

func NewClient(cfg config.VectorConfig, logger *zap.Logger) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) QuerySimilar(ctx context.Context, kind recommend.Kind, queryText string, topK int) ([]recommend.SimilarityHit, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil vector client")
	}
	endpoint := c.baseURL + "/collections/query"

	body := queryRequest{
		Collection: collectionFor(kind),
		Query:      queryText,
		TopK:       topK,
	}
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("vector query failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("vector query decode: %w", err)
	}

	hits := make([]recommend.SimilarityHit, 0, len(out.Results))
	for _, res := range out.Results {
		id, err := uuid.Parse(strings.TrimSpace(res.ItemID))
		if err != nil {
			c.logger.Warn("vector query returned malformed item id, skipping",
				zap.String("item_id", res.ItemID),
			)
			continue
		}
		hits = append(hits, recommend.SimilarityHit{ItemID: id, Distance: res.Distance})
	}
	return hits, nil
}

func collectionFor(kind recommend.Kind) string {
	if kind == recommend.KindResource {
		return "resources"
	}
	return "jobs"
}
