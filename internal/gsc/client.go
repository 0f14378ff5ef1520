package gsc

import (
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/seoscope/gsc-mcp/internal/common"
)

// Client is the transport collaborator for the dispatcher. It injects the
// OAuth bearer token, paces requests against the upstream quota, and logs
// each round trip. It holds no per-request state.
type Client struct {
	httpClient *http.Client
	tokens     oauth2.TokenSource
	limiter    *rate.Limiter
	logger     *common.Logger
}

// NewClient creates a transport with the given credentials. A nil token
// source sends unauthenticated requests (tests); RateLimit <= 0 disables
// pacing.
func NewClient(cfg common.APIConfig, tokens oauth2.TokenSource, logger *common.Logger) *Client {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimit)
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.GetTimeout(),
		},
		tokens:  tokens,
		limiter: limiter,
		logger:  logger,
	}
}

// Do executes a single request. Cancelling the request context abandons the
// limiter wait and the in-flight request.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}

	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("fetching access token: %w", err)
		}
		tok.SetAuthHeader(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("duration", duration).
			Msg("API request failed")
		return nil, err
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status_code", resp.StatusCode).
		Dur("duration", duration).
		Msg("API request")

	return resp, nil
}
