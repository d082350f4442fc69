// Package caixa provides a resilient client for the official Caixa
// lottery results API
package caixa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"palpite/internal/core/lotto"
	perr "palpite/internal/platform/errors"
	"palpite/internal/platform/logger"
)

const (
	baseURLDefault   = "https://servicebus2.caixa.gov.br/portaldeloterias/api/lotofacil"
	defaultTimeout   = 15 * time.Second
	defaultUA        = "palpite-sync"
	defaultMaxRetry  = 5
	defaultRetryBase = 500 * time.Millisecond
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration
}

// Client fetches official draws with retries on transient failures
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("caixa"),
	}
}

// Latest fetches the most recent official draw
func (c *Client) Latest(ctx context.Context) (lotto.Draw, error) {
	return c.fetch(ctx, "")
}

// ByContest fetches one contest by id
func (c *Client) ByContest(ctx context.Context, contest int) (lotto.Draw, error) {
	return c.fetch(ctx, fmt.Sprintf("/%d", contest))
}

func (c *Client) fetch(ctx context.Context, path string) (lotto.Draw, error) {
	url := c.opts.BaseURL + path

	var doc result
	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(perr.Wrapf(err, perr.ErrorCodeUnknown, "caixa new request failed"))
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeUnavailable, "caixa do failed")
		}
		defer func() { _ = drainAndClose(resp.Body) }()

		switch resp.StatusCode {
		case http.StatusOK:
			if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
				return backoff.Permanent(perr.Wrapf(err, perr.ErrorCodeJSON, "caixa decode failed"))
			}
			return nil
		case http.StatusNotFound:
			return backoff.Permanent(perr.NotFoundf("caixa contest not found"))
		case http.StatusTooManyRequests:
			return perr.Newf(perr.ErrorCodeTooManyRequests, "caixa rate limited")
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return perr.Unavailablef("caixa transient server error")
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			return backoff.Permanent(perr.Newf(perr.ErrorCodeUnknown,
				"caixa unexpected status %d body %s", resp.StatusCode, string(body)))
		}
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.opts.RetryBase
	bo.MaxInterval = 30 * time.Second

	notify := func(err error, wait time.Duration) {
		c.log.Warn().Err(err).Dur("retry_in", wait).Str("url", url).Msg("caixa retrying")
	}
	err := backoff.RetryNotify(op, backoff.WithContext(
		backoff.WithMaxRetries(bo, uint64(c.opts.MaxRetries)), ctx), notify)
	if err != nil {
		return lotto.Draw{}, err
	}
	return doc.toDraw()
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 1<<20))
	return rc.Close()
}
