package secondary

import (
	"context"

	"gitlab.com/leetlab-2025.net/internal/domain"
)

// BatchItem is one per-case submission sent to the external judge. When
// ExpectedOutput is set the judge performs the comparison itself and reports
// Accepted/Wrong Answer in the case status.
type BatchItem struct {
	SourceCode     string
	LanguageID     int
	Stdin          string
	ExpectedOutput *string
}

// RawCaseResult is the terminal judge-reported state of one submitted case,
// decoded and validated at the client boundary. Optional fields are nil when
// the judge reported nothing.
type RawCaseResult struct {
	Status            domain.JudgeStatus
	StatusDescription string
	Stdout            *string
	Stderr            *string
	CompileOutput     *string
	MemoryKB          *float64
	TimeSec           *float64
}

// CodeExecutor wraps the external batch judge service. Implementations are
// stateless between invocations; both calls preserve request order, so
// tokens[i] and results[i] always correspond to items[i].
type CodeExecutor interface {
	// SubmitBatch sends all items in one outbound call and returns one
	// opaque token per item, in submission order.
	SubmitBatch(ctx context.Context, items []BatchItem) ([]string, error)

	// PollBatchResults polls the judge until every token is terminal and
	// returns the results in token order. It fails with a judge-timeout
	// error once the configured attempt or wall-clock bound is exhausted.
	PollBatchResults(ctx context.Context, tokens []string) ([]RawCaseResult, error)
}
