package problems

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/leetlab-2025.net/internal/adapter/logging"
	"gitlab.com/leetlab-2025.net/internal/domain"
	"gitlab.com/leetlab-2025.net/internal/static/errs"
)

type fakeVerifyService struct {
	err          error
	gotTestcases []domain.TestCaseSpec
	gotSolutions map[string]string
}

func (f *fakeVerifyService) VerifyProblem(_ context.Context, testcases []domain.TestCaseSpec, solutions map[string]string) error {
	f.gotTestcases = testcases
	f.gotSolutions = solutions
	return f.err
}

func verifyBody(t *testing.T) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(VerifyProblemRequest{
		Testcases:          []domain.TestCaseSpec{{Input: "2 3", ExpectedOutput: "5"}},
		ReferenceSolutions: map[string]string{"PYTHON": "print(5)"},
	})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestVerifyProblemOK(t *testing.T) {
	svc := &fakeVerifyService{}
	handler := NewProblemHandler(svc, logging.NewDevelopmentLogger())

	w := httptest.NewRecorder()
	handler.VerifyProblem(w, httptest.NewRequest(http.MethodPost, "/api/v1/problems/verify", verifyBody(t)))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, svc.gotTestcases, 1)
	assert.Equal(t, "5", svc.gotTestcases[0].ExpectedOutput)
	assert.Contains(t, svc.gotSolutions, "PYTHON")
}

func TestVerifyProblemFailureIsBadRequest(t *testing.T) {
	svc := &fakeVerifyService{err: errs.ReferenceSolutionFailed}
	handler := NewProblemHandler(svc, logging.NewDevelopmentLogger())

	w := httptest.NewRecorder()
	handler.VerifyProblem(w, httptest.NewRequest(http.MethodPost, "/api/v1/problems/verify", verifyBody(t)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), errs.ReferenceSolutionFailed.Error())
}

func TestVerifyProblemRejectsBadJSON(t *testing.T) {
	handler := NewProblemHandler(&fakeVerifyService{}, logging.NewDevelopmentLogger())

	w := httptest.NewRecorder()
	handler.VerifyProblem(w, httptest.NewRequest(http.MethodPost, "/api/v1/problems/verify", bytes.NewBufferString("[")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
