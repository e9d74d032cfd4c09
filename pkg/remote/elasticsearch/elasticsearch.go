// Package elasticsearch fetches word sources from a field of an Elasticsearch index.
package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/bastiangx/wordhunt/pkg/config"
	"github.com/bastiangx/wordhunt/pkg/remote"
)

// defaultMaxWords is the search size used when max_words is not set.
// It matches the default index.max_result_window.
const defaultMaxWords = 10000

//nolint:gochecknoinits // registration mirrors database/sql drivers
func init() {
	remote.Register("elasticsearch", NewFetcher)
}

// Fetcher reads one field from every document of an index.
type Fetcher struct {
	client *elasticsearch.Client
	index  string
	field  string
	size   int
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source map[string]any `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// NewFetcher implements remote.Factory. It needs urls, index and field.
func NewFetcher(cfg config.RemoteConfig) (remote.Fetcher, error) {
	return New(cfg)
}

// New creates a Fetcher. No request is made until Fetch.
func New(cfg config.RemoteConfig) (*Fetcher, error) {
	if len(cfg.URLs) == 0 {
		return nil, fmt.Errorf("%w: urls", remote.ErrMissingSetting)
	}
	if cfg.Index == "" {
		return nil, fmt.Errorf("%w: index", remote.ErrMissingSetting)
	}
	if cfg.Field == "" {
		return nil, fmt.Errorf("%w: field", remote.ErrMissingSetting)
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.URLs,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	size := cfg.MaxWords
	if size <= 0 || size > defaultMaxWords {
		size = defaultMaxWords
	}
	return &Fetcher{client: client, index: cfg.Index, field: cfg.Field, size: size}, nil
}

// Fetch returns the field value of each document, in index order.
// Documents without a string value for the field are skipped.
func (f *Fetcher) Fetch(ctx context.Context) ([]string, error) {
	query := map[string]any{
		"query":   map[string]any{"match_all": map[string]any{}},
		"_source": []string{f.field},
		"sort":    []string{"_doc"},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("failed to encode query: %w", err)
	}

	size := f.size
	req := esapi.SearchRequest{
		Index: []string{f.index},
		Body:  &buf,
		Size:  &size,
	}
	res, err := req.Do(ctx, f.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.IsError() {
		return nil, fmt.Errorf("search failed: %s", res.String())
	}
	return f.parse(res.Body)
}

func (f *Fetcher) parse(body io.Reader) ([]string, error) {
	var response searchResponse
	if err := json.NewDecoder(body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	words := make([]string, 0, len(response.Hits.Hits))
	for _, hit := range response.Hits.Hits {
		if w, ok := hit.Source[f.field].(string); ok {
			words = append(words, w)
		}
	}
	return words, nil
}

// Close is a no-op; the client holds no persistent connection state.
func (f *Fetcher) Close() error {
	return nil
}
