package domain

// TestCaseSpec is a single declared test case: the stdin fed to the program
// and the output it is expected to produce. Immutable once supplied.
type TestCaseSpec struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"output"`
}
