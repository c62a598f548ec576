package submissions

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/leetlab-2025.net/internal/core/ports/primary"
	"gitlab.com/leetlab-2025.net/internal/core/services/submission"
	"gitlab.com/leetlab-2025.net/internal/domain"
	"gitlab.com/leetlab-2025.net/internal/handlers"
	"gitlab.com/leetlab-2025.net/internal/handlers/response"
)

// SubmissionHandler exposes submission history reads for the authenticated
// user and a per-problem submission counter.
type SubmissionHandler struct {
	submissionService submission.ISubmissionService
	logger            primary.Logger
}

func NewSubmissionHandler(submissionService submission.ISubmissionService, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		logger:            logger,
	}
}

// RegisterRoutes registers the submission reads. The router is expected to
// carry the auth middleware.
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/submissions", h.GetAllSubmissions).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/submissions/problem/{problemId}", h.GetSubmissionsForProblem).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/submissions/problem/{problemId}/count", h.GetSubmissionCountForProblem).Methods(http.MethodGet)
}

type listResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Submissions []domain.Submission `json:"submissions"`
}

type countResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func (h *SubmissionHandler) GetAllSubmissions(w http.ResponseWriter, r *http.Request) {
	userID := handlers.UserID(r)
	if userID == "" {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Unauthorized",
			StatusCode: http.StatusUnauthorized,
		})
		return
	}

	subs, err := h.submissionService.ListForUser(r.Context(), userID)
	if err != nil {
		h.logger.Error("list submissions failed", "userId", userID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteJSON(w, http.StatusOK, listResponse{
		Success:     true,
		Message:     "Submissions fetched successfully",
		Submissions: subs,
	})
}

func (h *SubmissionHandler) GetSubmissionsForProblem(w http.ResponseWriter, r *http.Request) {
	userID := handlers.UserID(r)
	if userID == "" {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Unauthorized",
			StatusCode: http.StatusUnauthorized,
		})
		return
	}
	problemID := mux.Vars(r)["problemId"]

	subs, err := h.submissionService.ListForUserAndProblem(r.Context(), userID, problemID)
	if err != nil {
		h.logger.Error("list submissions for problem failed", "userId", userID, "problemId", problemID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteJSON(w, http.StatusOK, listResponse{
		Success:     true,
		Message:     "Submissions fetched successfully",
		Submissions: subs,
	})
}

func (h *SubmissionHandler) GetSubmissionCountForProblem(w http.ResponseWriter, r *http.Request) {
	problemID := mux.Vars(r)["problemId"]

	count, err := h.submissionService.CountForProblem(r.Context(), problemID)
	if err != nil {
		h.logger.Error("count submissions failed", "problemId", problemID, "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteJSON(w, http.StatusOK, countResponse{
		Success: true,
		Message: "Submission count fetched successfully",
		Count:   count,
	})
}
