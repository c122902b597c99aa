package musicbrainz

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dramaseed/dramaseed-server/internal/errors"
)

// Entity is the subset of a web service entity record the importer needs.
type Entity struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Type           string `json:"type"`
	SortName       string `json:"sort-name"`
	Disambiguation string `json:"disambiguation"`
}

// DisplayName returns the entity's name, falling back to the title for
// entities that have one instead (releases, works).
func (e *Entity) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Title
}

// SortNameOrTitle is what the tooltip shows after the type.
func (e *Entity) SortNameOrTitle() string {
	if e.SortName != "" {
		return e.SortName
	}
	return e.DisplayName()
}

// Client fetches entity records from the MusicBrainz web service. All
// lookups go through a shared bounded queue so the service's rate limit is
// respected no matter how many sessions are active.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	queue      *Queue
	logger     *slog.Logger
}

// NewClient creates a client against baseURL (e.g. "https://musicbrainz.org").
func NewClient(baseURL, userAgent string, interval time.Duration, queueSize int, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:   baseURL,
		userAgent: userAgent,
		queue:     NewQueue(interval, queueSize),
		logger:    logger,
	}
}

// Close stops the lookup queue.
func (c *Client) Close() {
	c.queue.Stop()
}

// LookupEntity fetches one entity record by type and identifier.
func (c *Client) LookupEntity(ctx context.Context, entityType, mbid string) (*Entity, error) {
	var entity *Entity
	err := c.queue.Do(ctx, func(ctx context.Context) error {
		var err error
		entity, err = c.fetchEntity(ctx, entityType, mbid)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

func (c *Client) fetchEntity(ctx context.Context, entityType, mbid string) (*Entity, error) {
	url := fmt.Sprintf("%s/ws/2/%s/%s?fmt=json", c.baseURL, entityType, mbid)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Upstream("entity lookup failed").WithCause(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Upstream("read lookup response").WithCause(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if c.logger != nil {
			c.logger.Warn("entity lookup failed",
				"type", entityType,
				"mbid", mbid,
				"status", resp.StatusCode)
		}
		return nil, errors.Upstreamf("lookup %s/%s: status %d: %s", entityType, mbid, resp.StatusCode, string(body))
	}

	var entity Entity
	if err := json.Unmarshal(body, &entity); err != nil {
		return nil, errors.Upstream("decode lookup response").WithCause(err)
	}
	return &entity, nil
}
