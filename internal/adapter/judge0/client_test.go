package judge0

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/leetlab-2025.net/internal/adapter/logging"
	"gitlab.com/leetlab-2025.net/internal/config"
	"gitlab.com/leetlab-2025.net/internal/core/ports/secondary"
	"gitlab.com/leetlab-2025.net/internal/domain"
	"gitlab.com/leetlab-2025.net/internal/static/errs"
)

func testConfig(baseURL string) *config.JudgeConfig {
	return &config.JudgeConfig{
		BaseURL:         baseURL,
		PollInterval:    time.Millisecond,
		MaxPollAttempts: 4,
		MaxPollElapsed:  time.Second,
		MaxInflight:     16,
	}
}

func newTestClient(baseURL string) *Client {
	return NewClient(testConfig(baseURL), logging.NewDevelopmentLogger())
}

func batchItems() []secondary.BatchItem {
	return []secondary.BatchItem{
		{SourceCode: "print(input())", LanguageID: domain.LanguageIDPython, Stdin: "2 3"},
		{SourceCode: "print(input())", LanguageID: domain.LanguageIDPython, Stdin: "4 6"},
	}
}

func TestSubmitBatchSendsAllCasesInOneCall(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/submissions/batch", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("base64_encoded"))

		var req submitBatchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Submissions, 2)
		assert.Equal(t, "2 3", req.Submissions[0].Stdin)
		assert.Equal(t, domain.LanguageIDPython, req.Submissions[0].LanguageID)
		assert.Nil(t, req.Submissions[0].ExpectedOutput)

		json.NewEncoder(w).Encode([]tokenEnvelope{{Token: "tok-a"}, {Token: "tok-b"}})
	}))
	defer srv.Close()

	tokens, err := newTestClient(srv.URL).SubmitBatch(context.Background(), batchItems())

	require.NoError(t, err)
	assert.Equal(t, []string{"tok-a", "tok-b"}, tokens)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestSubmitBatchTokenCountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]tokenEnvelope{{Token: "tok-a"}})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SubmitBatch(context.Background(), batchItems())

	assert.ErrorIs(t, err, errs.MalformedJudgeResponse)
}

func TestSubmitBatchJudgeDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "queue full", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).SubmitBatch(context.Background(), batchItems())

	assert.ErrorIs(t, err, errs.JudgeUnavailable)
}

func TestSubmitBatchSendsAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sekret", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]tokenEnvelope{{Token: "tok-a"}, {Token: "tok-b"}})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.APIKey = "sekret"
	client := NewClient(cfg, logging.NewDevelopmentLogger())

	_, err := client.SubmitBatch(context.Background(), batchItems())
	require.NoError(t, err)
}

func TestPollBatchResultsWaitsForTerminal(t *testing.T) {
	var polls int32
	stdout := "5"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "tok-a,tok-b", r.URL.Query().Get("tokens"))

		// First poll still processing, second poll terminal.
		if atomic.AddInt32(&polls, 1) == 1 {
			json.NewEncoder(w).Encode(pollBatchResponse{Submissions: []caseResult{
				{Status: caseStatus{ID: 2, Description: "Processing"}},
				{Status: caseStatus{ID: 1, Description: "In Queue"}},
			}})
			return
		}
		timeStr := "0.08"
		memory := 10240.0
		json.NewEncoder(w).Encode(pollBatchResponse{Submissions: []caseResult{
			{Status: caseStatus{ID: 3, Description: "Accepted"}, Stdout: &stdout, Memory: &memory, Time: &timeStr},
			{Status: caseStatus{ID: 4}},
		}})
	}))
	defer srv.Close()

	results, err := newTestClient(srv.URL).PollBatchResults(context.Background(), []string{"tok-a", "tok-b"})

	require.NoError(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&polls))
	require.Len(t, results, 2)

	assert.Equal(t, domain.JudgeStatusAccepted, results[0].Status)
	require.NotNil(t, results[0].Stdout)
	assert.Equal(t, "5", *results[0].Stdout)
	require.NotNil(t, results[0].MemoryKB)
	assert.Equal(t, 10240.0, *results[0].MemoryKB)
	require.NotNil(t, results[0].TimeSec)
	assert.Equal(t, 0.08, *results[0].TimeSec)

	assert.Equal(t, domain.JudgeStatusWrongAnswer, results[1].Status)
	assert.Equal(t, "Wrong Answer", results[1].StatusDescription, "missing descriptions fall back to the status name")
}

func TestPollBatchResultsTimesOut(t *testing.T) {
	var polls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&polls, 1)
		json.NewEncoder(w).Encode(pollBatchResponse{Submissions: []caseResult{
			{Status: caseStatus{ID: 1, Description: "In Queue"}},
		}})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).PollBatchResults(context.Background(), []string{"tok-a"})

	assert.ErrorIs(t, err, errs.JudgeTimeout)
	// MaxPollAttempts bounds retries, so attempts stay within attempts+1.
	assert.LessOrEqual(t, atomic.LoadInt32(&polls), int32(5))
}

func TestPollBatchResultsMalformedIsPermanent(t *testing.T) {
	var polls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&polls, 1)
		w.Write([]byte(`{"submissions":null}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).PollBatchResults(context.Background(), []string{"tok-a"})

	assert.ErrorIs(t, err, errs.MalformedJudgeResponse)
	assert.EqualValues(t, 1, atomic.LoadInt32(&polls), "malformed responses must not be retried")
}

func TestPollBatchResultsCountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(pollBatchResponse{Submissions: []caseResult{
			{Status: caseStatus{ID: 3, Description: "Accepted"}},
		}})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).PollBatchResults(context.Background(), []string{"tok-a", "tok-b"})

	assert.ErrorIs(t, err, errs.MalformedJudgeResponse)
}
