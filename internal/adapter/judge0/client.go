// package judge0 is the HTTP client for the external batch judge service.
package judge0

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"gitlab.com/leetlab-2025.net/internal/config"
	"gitlab.com/leetlab-2025.net/internal/core/ports/primary"
	"gitlab.com/leetlab-2025.net/internal/core/ports/secondary"
	"gitlab.com/leetlab-2025.net/internal/static/errs"
)

var _ secondary.CodeExecutor = (*Client)(nil)

// errNotTerminal marks a poll attempt that found at least one case still
// queued or processing. It is retryable; everything else either succeeds or
// fails the poll for good.
var errNotTerminal = errors.New("not all cases terminal yet")

// Client talks to a Judge0-compatible service. Stateless between calls.
type Client struct {
	httpClient *http.Client
	cfg        *config.JudgeConfig
	logger     primary.Logger
}

func NewClient(cfg *config.JudgeConfig, logger primary.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cfg:        cfg,
		logger:     logger,
	}
}

// SubmitBatch sends all per-case submissions in a single outbound call and
// returns one token per case, in submission order.
func (c *Client) SubmitBatch(ctx context.Context, items []secondary.BatchItem) ([]string, error) {
	submissions := make([]batchSubmission, 0, len(items))
	for _, item := range items {
		submissions = append(submissions, batchSubmission{
			SourceCode:     item.SourceCode,
			LanguageID:     item.LanguageID,
			Stdin:          item.Stdin,
			ExpectedOutput: item.ExpectedOutput,
		})
	}

	body, err := json.Marshal(submitBatchRequest{Submissions: submissions})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal batch request: %w", err)
	}

	endpoint := c.cfg.BaseURL + "/submissions/batch?base64_encoded=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build batch request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	var envelopes []tokenEnvelope
	if err := c.doJSON(req, &envelopes); err != nil {
		return nil, err
	}

	if len(envelopes) != len(items) {
		return nil, fmt.Errorf("%w: submitted %d cases, got %d tokens",
			errs.MalformedJudgeResponse, len(items), len(envelopes))
	}

	tokens := make([]string, 0, len(envelopes))
	for _, e := range envelopes {
		if e.Token == "" {
			return nil, fmt.Errorf("%w: empty token in batch response", errs.MalformedJudgeResponse)
		}
		tokens = append(tokens, e.Token)
	}

	c.logger.Debug("Batch submitted to judge", "cases", len(tokens))
	return tokens, nil
}

// PollBatchResults polls the judge with all tokens at once until every case
// is terminal. Attempts are spaced by the configured interval and bounded by
// both max attempts and max elapsed time; exhausting either bound fails with
// a judge-timeout error.
func (c *Client) PollBatchResults(ctx context.Context, tokens []string) ([]secondary.RawCaseResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.MaxPollElapsed)
	defer cancel()

	policy := backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewConstantBackOff(c.cfg.PollInterval),
			uint64(c.cfg.MaxPollAttempts),
		),
		ctx,
	)

	attempt := 0
	results, err := backoff.RetryWithData(func() ([]secondary.RawCaseResult, error) {
		attempt++
		return c.pollOnce(ctx, tokens, attempt)
	}, policy)

	if err != nil {
		if errors.Is(err, errNotTerminal) || errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %d attempts", errs.JudgeTimeout, attempt)
		}
		return nil, err
	}

	return results, nil
}

// pollOnce issues one batch-status call. Returning errNotTerminal or a
// judge-unavailable error retries; malformed responses are permanent.
func (c *Client) pollOnce(ctx context.Context, tokens []string, attempt int) ([]secondary.RawCaseResult, error) {
	endpoint := fmt.Sprintf("%s/submissions/batch?tokens=%s&base64_encoded=false",
		c.cfg.BaseURL, url.QueryEscape(strings.Join(tokens, ",")))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to build poll request: %w", err))
	}
	c.authorize(req)

	var resp pollBatchResponse
	if err := c.doJSON(req, &resp); err != nil {
		if errors.Is(err, errs.MalformedJudgeResponse) {
			return nil, backoff.Permanent(err)
		}
		c.logger.Warn("Judge poll attempt failed", "attempt", attempt, "error", err)
		return nil, err
	}

	if resp.Submissions == nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: no submissions for the given tokens", errs.MalformedJudgeResponse))
	}
	if len(resp.Submissions) != len(tokens) {
		return nil, backoff.Permanent(fmt.Errorf("%w: polled %d tokens, got %d results",
			errs.MalformedJudgeResponse, len(tokens), len(resp.Submissions)))
	}

	results := make([]secondary.RawCaseResult, 0, len(resp.Submissions))
	for _, sub := range resp.Submissions {
		raw := sub.toRaw()
		if !raw.Status.Terminal() {
			return nil, errNotTerminal
		}
		results = append(results, raw)
	}

	return results, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
}

// doJSON executes the request and decodes a JSON body. Transport failures
// and non-2xx statuses surface as judge-unavailable; undecodable bodies as
// malformed responses.
func (c *Client) doJSON(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", errs.JudgeUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: judge returned %d: %s", errs.JudgeUnavailable, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", errs.MalformedJudgeResponse, err)
	}

	return nil
}
