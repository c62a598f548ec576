package judge0

import (
	"strconv"

	"gitlab.com/leetlab-2025.net/internal/core/ports/secondary"
	"gitlab.com/leetlab-2025.net/internal/domain"
)

// Wire shapes of the two judge endpoints. They are decoded and validated
// here only; nothing outside this package sees raw judge JSON.

type batchSubmission struct {
	SourceCode     string  `json:"source_code"`
	LanguageID     int     `json:"language_id"`
	Stdin          string  `json:"stdin"`
	ExpectedOutput *string `json:"expected_output,omitempty"`
}

type submitBatchRequest struct {
	Submissions []batchSubmission `json:"submissions"`
}

type tokenEnvelope struct {
	Token string `json:"token"`
}

type caseStatus struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type caseResult struct {
	Status        caseStatus `json:"status"`
	Stdout        *string    `json:"stdout"`
	Stderr        *string    `json:"stderr"`
	CompileOutput *string    `json:"compile_output"`
	Memory        *float64   `json:"memory"` // kilobytes
	Time          *string    `json:"time"`   // seconds, decimal string
}

type pollBatchResponse struct {
	Submissions []caseResult `json:"submissions"`
}

func (c caseResult) toRaw() secondary.RawCaseResult {
	status := domain.JudgeStatus(c.Status.ID)
	description := c.Status.Description
	if description == "" {
		description = status.String()
	}

	var timeSec *float64
	if c.Time != nil {
		if v, err := strconv.ParseFloat(*c.Time, 64); err == nil {
			timeSec = &v
		}
	}

	return secondary.RawCaseResult{
		Status:            status,
		StatusDescription: description,
		Stdout:            c.Stdout,
		Stderr:            c.Stderr,
		CompileOutput:     c.CompileOutput,
		MemoryKB:          c.Memory,
		TimeSec:           timeSec,
	}
}
