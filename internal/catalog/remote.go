package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/zangjing/ztq-pricing-service/internal/domain/model"
)

// RemoteProvider fetches an optional catalog override from a JSON endpoint.
// Every request carries a cache-defeating timestamp parameter so a stale
// intermediary cannot mask a real update. Fetches are last-wins: a response
// arriving after a newer fetch was issued is discarded.
type RemoteProvider struct {
	url        string
	client     *http.Client
	generation atomic.Uint64
}

// NewRemoteProvider creates a provider for the given URL. An empty URL
// yields a provider whose Fetch always reports no override.
func NewRemoteProvider(rawURL string, timeout time.Duration) *RemoteProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &RemoteProvider{
		url:    rawURL,
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the remote catalog override. It returns (nil, nil) when no
// URL is configured, the fetch fails, the payload is malformed, or a newer
// fetch superseded this one; the caller keeps its last-known-good catalog in
// every such case.
func (p *RemoteProvider) Fetch(ctx context.Context) (*model.Catalog, error) {
	if p.url == "" {
		return nil, nil
	}

	gen := p.generation.Add(1)

	reqURL, err := withCacheBuster(p.url)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("url", p.url).Msg("Catalog override fetch failed, using default data")
		return nil, nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("url", p.url).Msg("Catalog override not available, using default data")
		return nil, nil
	}

	var payload model.Catalog
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Warn().Err(err).Msg("Catalog override payload malformed, using default data")
		return nil, nil
	}

	// A newer fetch was issued while this one was in flight.
	if p.generation.Load() != gen {
		log.Debug().Uint64("generation", gen).Msg("Discarding superseded catalog fetch")
		return nil, nil
	}

	if err := payload.Validate(); err != nil {
		log.Warn().Err(err).Msg("Catalog override failed shape validation, using default data")
		return nil, nil
	}

	log.Info().Int("specs", len(payload.Specs)).Msg("Catalog override loaded from remote")
	return &payload, nil
}

// withCacheBuster appends a t=<unix ms> query parameter.
func withCacheBuster(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("t", strconv.FormatInt(time.Now().UnixMilli(), 10))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
