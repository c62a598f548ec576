package judging

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gitlab.com/leetlab-2025.net/internal/domain"
)

// EncodedColumns holds the JSON-array column encodings of a verdict as they
// are persisted: one array per field, aligned by case index. A column is nil
// when no case produced a value for it, so the store never carries arrays of
// nothing but nulls.
type EncodedColumns struct {
	Stdout        *string
	Stderr        *string
	CompileOutput *string
	Memory        *string
	Time          *string
}

// EncodeColumns folds per-case results into their persisted column form.
func EncodeColumns(results []domain.PerCaseResult) (*EncodedColumns, error) {
	stdouts := make([]string, len(results))
	stderrs := make([]*string, len(results))
	compileOutputs := make([]*string, len(results))
	memories := make([]*string, len(results))
	times := make([]*string, len(results))

	var anyStderr, anyCompile, anyMemory, anyTime bool
	for i, r := range results {
		stdouts[i] = r.Stdout
		stderrs[i] = r.Stderr
		compileOutputs[i] = r.CompileOutput
		if r.Stderr != nil {
			anyStderr = true
		}
		if r.CompileOutput != nil {
			anyCompile = true
		}
		if r.MemoryKB != nil {
			memories[i] = strPtr(FormatMemory(*r.MemoryKB))
			anyMemory = true
		}
		if r.TimeSec != nil {
			times[i] = strPtr(FormatTime(*r.TimeSec))
			anyTime = true
		}
	}

	enc := &EncodedColumns{}
	var err error
	if enc.Stdout, err = encodeJSON(stdouts); err != nil {
		return nil, err
	}
	if anyStderr {
		if enc.Stderr, err = encodeJSON(stderrs); err != nil {
			return nil, err
		}
	}
	if anyCompile {
		if enc.CompileOutput, err = encodeJSON(compileOutputs); err != nil {
			return nil, err
		}
	}
	if anyMemory {
		if enc.Memory, err = encodeJSON(memories); err != nil {
			return nil, err
		}
	}
	if anyTime {
		if enc.Time, err = encodeJSON(times); err != nil {
			return nil, err
		}
	}

	return enc, nil
}

// BuildRunSummary materialises the richer ephemeral summary for the run
// path: totals, pass count, summed execution time and peak memory.
func BuildRunSummary(languageID int, verdict *domain.Verdict) *domain.RunSummary {
	passed := 0
	var totalTime, maxMemory float64
	for _, r := range verdict.Results {
		if r.Passed {
			passed++
		}
		if r.TimeSec != nil {
			totalTime += *r.TimeSec
		}
		if r.MemoryKB != nil && *r.MemoryKB > maxMemory {
			maxMemory = *r.MemoryKB
		}
	}

	status := "Some test cases failed"
	if verdict.AllPassed {
		status = "All test cases passed"
	}

	return &domain.RunSummary{
		Language:        domain.LanguageName(languageID),
		AllPassed:       verdict.AllPassed,
		TotalTestCases:  len(verdict.Results),
		PassedTestCases: passed,
		TestResults:     verdict.Results,
		Summary: domain.RunTotals{
			Status:        status,
			ExecutionTime: fmt.Sprintf("%.3f s", totalTime),
			MemoryUsed:    FormatMemory(maxMemory),
		},
	}
}

// FormatMemory renders a kilobyte count the way it is displayed and stored.
func FormatMemory(kb float64) string {
	return strconv.FormatFloat(kb, 'f', -1, 64) + " KB"
}

// FormatTime renders a seconds value the way it is displayed and stored.
func FormatTime(sec float64) string {
	return strconv.FormatFloat(sec, 'f', -1, 64) + " s"
}

func encodeJSON(v interface{}) (*string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode verdict column: %w", err)
	}
	return strPtr(string(b)), nil
}

func strPtr(s string) *string {
	return &s
}
