package problems

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/leetlab-2025.net/internal/core/ports/primary"
	"gitlab.com/leetlab-2025.net/internal/core/services/verify"
	"gitlab.com/leetlab-2025.net/internal/domain"
	"gitlab.com/leetlab-2025.net/internal/handlers/response"
)

// ProblemHandler exposes reference-solution verification, used before a
// problem is published to make sure every solution passes every testcase.
type ProblemHandler struct {
	verifyService verify.IVerifyService
	logger        primary.Logger
}

func NewProblemHandler(verifyService verify.IVerifyService, logger primary.Logger) *ProblemHandler {
	return &ProblemHandler{
		verifyService: verifyService,
		logger:        logger,
	}
}

func (h *ProblemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/v1/problems/verify", h.VerifyProblem).Methods(http.MethodPost)
}

type VerifyProblemRequest struct {
	Testcases          []domain.TestCaseSpec `json:"testcases"`
	ReferenceSolutions map[string]string     `json:"referenceSolutions"`
}

type verifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *ProblemHandler) VerifyProblem(w http.ResponseWriter, r *http.Request) {
	var req VerifyProblemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Invalid request payload",
			StatusCode: http.StatusBadRequest,
		})
		return
	}

	if err := h.verifyService.VerifyProblem(r.Context(), req.Testcases, req.ReferenceSolutions); err != nil {
		h.logger.Error("problem verification failed", "error", err)
		response.WriteError(w, response.FromError(err))
		return
	}

	response.WriteJSON(w, http.StatusOK, verifyResponse{
		Success: true,
		Message: "All reference solutions passed",
	})
}
