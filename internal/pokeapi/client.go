package pokeapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vcrini/lazypokemon/internal/observability"
)

// maxBodyBytes bounds the response read; a full pokemon document is ~300KB.
const maxBodyBytes = 8 << 20

type Fetcher interface {
	Fetch(ctx context.Context, id string) (*Record, error)
}

type Client struct {
	endpoint string
	http     *http.Client
	log      observability.Logger
}

func NewClient(endpoint string, timeout time.Duration, logger observability.Logger) *Client {
	return &Client{
		endpoint: strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		http:     &http.Client{Timeout: timeout},
		log:      logger.With("pokeapi"),
	}
}

// Fetch issues a single GET for endpoint/id. There is no retry.
func (c *Client) Fetch(ctx context.Context, id string) (*Record, error) {
	target := c.endpoint + "/" + url.PathEscape(strings.ToLower(strings.TrimSpace(id)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &FetchError{Kind: ErrorNetwork, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	c.log.Infof("GET %s", target)
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Errorf("GET %s failed after %s: %v", target, time.Since(start), err)
		return nil, &FetchError{Kind: ErrorNetwork, Err: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Errorf("GET %s returned %d", target, resp.StatusCode)
		return nil, &FetchError{Kind: ErrorStatus, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.log.Errorf("reading %s: %v", target, err)
		return nil, &FetchError{Kind: ErrorNetwork, Err: err}
	}
	rec, err := DecodeRecord(body)
	if err != nil {
		c.log.Errorf("decoding %s: %v", target, err)
		return nil, err
	}
	c.log.Infof("GET %s ok in %s (%d bytes, %d moves)", target, time.Since(start), len(body), len(rec.Moves))
	return rec, nil
}

// url.Error repeats method and URL, which is noise in the UI.
func unwrapURLError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) && uerr.Err != nil {
		return uerr.Err
	}
	return err
}
