package domain

import (
	"fmt"
	"strings"

	"gitlab.com/leetlab-2025.net/internal/static/errs"
)

// Submission-level statuses. A failing verdict is an orchestration result,
// not an error.
const (
	VerdictAccepted    = "Accepted"
	VerdictWrongAnswer = "Wrong Answer"
)

// ExecutionRequest describes one judging run: a single piece of source code
// executed against an ordered list of test cases. Result position i always
// corresponds to stdin position i.
type ExecutionRequest struct {
	SourceCode     string
	LanguageID     int
	Stdin          []string
	ExpectedOutput []string
}

// Validate rejects a request before any network call is made. Each failure
// maps to a distinct sentinel so handlers can report a precise message.
func (r *ExecutionRequest) Validate() error {
	if strings.TrimSpace(r.SourceCode) == "" {
		return errs.SourceCodeRequired
	}
	if !SupportedLanguageID(r.LanguageID) {
		return fmt.Errorf("%w: language id %d", errs.UnsupportedLanguage, r.LanguageID)
	}
	if len(r.Stdin) == 0 || len(r.ExpectedOutput) == 0 || len(r.Stdin) != len(r.ExpectedOutput) {
		return errs.InvalidTestCases
	}
	return nil
}

// PerCaseResult is the judged outcome of one test case. Optional fields are
// nil when the judge reported nothing for them, never empty strings.
type PerCaseResult struct {
	CaseIndex     int      `json:"testCase"` // 1-based
	Passed        bool     `json:"passed"`
	Stdout        string   `json:"stdout"`
	Expected      string   `json:"expected"`
	Stderr        *string  `json:"stderr"`
	CompileOutput *string  `json:"compile_output"`
	Status        string   `json:"status"`
	MemoryKB      *float64 `json:"memory,omitempty"`
	TimeSec       *float64 `json:"time,omitempty"`
}

// Verdict is the aggregated result of judging one submission against all of
// its test cases.
type Verdict struct {
	AllPassed bool
	Status    string // VerdictAccepted or VerdictWrongAnswer
	Results   []PerCaseResult
}

// RunTotals summarises a non-persisted run.
type RunTotals struct {
	Status        string `json:"status"`
	ExecutionTime string `json:"executionTime"` // summed, "%.3f s"
	MemoryUsed    string `json:"memoryUsed"`    // max, "<n> KB"
}

// RunSummary is the ephemeral response shape of the run path. It is returned
// to the caller and never persisted.
type RunSummary struct {
	Language        string          `json:"language"`
	AllPassed       bool            `json:"allPassed"`
	TotalTestCases  int             `json:"totalTestCases"`
	PassedTestCases int             `json:"passedTestCases"`
	TestResults     []PerCaseResult `json:"testResults"`
	Summary         RunTotals       `json:"summary"`
}
