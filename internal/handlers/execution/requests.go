package execution

import (
	"gitlab.com/leetlab-2025.net/internal/domain"
)

type ExecuteCodeRequest struct {
	SourceCode     string   `json:"source_code"`
	LanguageID     int      `json:"language_id"`
	Stdin          []string `json:"stdin"`
	ExpectedOutput []string `json:"expected_output"`
	ProblemID      string   `json:"problem_id"`
}

func (r *ExecuteCodeRequest) toExecutionRequest() *domain.ExecutionRequest {
	return &domain.ExecutionRequest{
		SourceCode:     r.SourceCode,
		LanguageID:     r.LanguageID,
		Stdin:          r.Stdin,
		ExpectedOutput: r.ExpectedOutput,
	}
}

type ExecuteCodeResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Submission *domain.Submission `json:"submission"`
}

type RunCodeResponse struct {
	Success   bool               `json:"success"`
	Message   string             `json:"message"`
	RunResult *domain.RunSummary `json:"runResult"`
}
