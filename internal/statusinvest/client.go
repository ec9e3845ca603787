// Package statusinvest provides best-effort scraping of fund attributes from
// Status Invest pages. A total fetch failure degrades to an empty patch; the
// caller falls back to static reference data.
package statusinvest

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/html"
)

const (
	// maxAttempts caps the fetch retries per fund.
	maxAttempts = 3

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/122.0.0.0 Safari/537.36"
	acceptLanguage = "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7"
	accept         = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// Doer executes a single HTTP request. Satisfied by *http.Client; tests
// substitute a fake transport to simulate failure sequences.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client scrapes fund attribute fields from Status Invest.
type Client struct {
	baseURL    string
	httpClient Doer
	sleep      func(time.Duration)
	log        zerolog.Logger
}

// NewClient creates a Status Invest client. baseURL must contain a single %s
// placeholder for the lower-cased ticker.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		sleep:      time.Sleep,
		log:        log.With().Str("client", "statusinvest").Logger(),
	}
}

// WithTransport swaps the HTTP transport. Intended for tests.
func (c *Client) WithTransport(doer Doer) *Client {
	c.httpClient = doer
	return c
}

// WithSleep swaps the backoff sleep function. Intended for tests.
func (c *Client) WithSleep(sleep func(time.Duration)) *Client {
	c.sleep = sleep
	return c
}

// Fetch attempts up to three times to retrieve and parse the fund page for
// the given ticker, with exponential backoff (1s, 2s) between failures.
//
// A retrieved document ends the retry loop even when zero fields were
// extracted from it. After the final failure an empty patch is returned;
// fetch failure is never an error the caller has to handle.
func (c *Client) Fetch(ctx context.Context, ticker string) Patch {
	url := fmt.Sprintf(c.baseURL, strings.ToLower(ticker))

	for attempt := 0; attempt < maxAttempts; attempt++ {
		doc, err := c.fetchDocument(ctx, url)
		if err != nil {
			c.log.Warn().
				Err(err).
				Str("ticker", ticker).
				Int("attempt", attempt+1).
				Msg("Fetch attempt failed")

			if attempt < maxAttempts-1 {
				// Exponential backoff: 1s, 2s
				c.sleep(time.Duration(1<<attempt) * time.Second)
			}
			continue
		}

		patch := ParseDocument(doc)
		c.log.Debug().
			Str("ticker", ticker).
			Strs("fields", patch.Fields()).
			Msg("Fetched fund page")
		return patch
	}

	c.log.Warn().Str("ticker", ticker).Msg("All fetch attempts failed, using static data only")
	return Patch{}
}

// fetchDocument performs one GET attempt and parses the response body.
// Any network error or non-2xx status is a transport failure.
func (c *Client) fetchDocument(ctx context.Context, url string) (*html.Node, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	return doc, nil
}
