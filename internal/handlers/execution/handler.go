package execution

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/leetlab-2025.net/internal/core/ports/primary"
	"gitlab.com/leetlab-2025.net/internal/core/services/submission"
	"gitlab.com/leetlab-2025.net/internal/handlers"
	"gitlab.com/leetlab-2025.net/internal/handlers/response"
)

// ExecutionHandler exposes the run and submit endpoints. Both judge the
// source against the supplied testcases; submit additionally persists the
// attempt for the authenticated user.
type ExecutionHandler struct {
	submissionService submission.ISubmissionService
	logger            primary.Logger
}

func NewExecutionHandler(submissionService submission.ISubmissionService, logger primary.Logger) *ExecutionHandler {
	return &ExecutionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

func (h *ExecutionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/execute-code/run", h.RunCode).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/execute-code", h.ExecuteCode).Methods(http.MethodPost)
}

// RunCode judges the code without recording anything.
func (h *ExecutionHandler) RunCode(w http.ResponseWriter, r *http.Request) {
	var req ExecuteCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Invalid request payload",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	summary, err := h.submissionService.Run(r.Context(), req.toExecutionRequest())
	if err != nil {
		h.logger.Error("run code failed", "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	message := "Some testcases failed"
	if summary.AllPassed {
		message = "All testcases passed"
	}
	response.WriteJSON(w, http.StatusOK, RunCodeResponse{
		Success:   true,
		Message:   message,
		RunResult: summary,
	})
}

// ExecuteCode judges the code and persists the submission.
func (h *ExecutionHandler) ExecuteCode(w http.ResponseWriter, r *http.Request) {
	userID := handlers.UserID(r)
	if userID == "" {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Unauthorized",
			StatusCode: http.StatusUnauthorized,
		})
		return
	}

	var req ExecuteCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Invalid request payload",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	sub, err := h.submissionService.Submit(r.Context(), userID, req.ProblemID, req.toExecutionRequest())
	if err != nil {
		h.logger.Error("execute code failed", "userId", userID, "problemId", req.ProblemID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteJSON(w, http.StatusOK, ExecuteCodeResponse{
		Success:    true,
		Message:    "Code executed successfully",
		Submission: sub,
	})
}
