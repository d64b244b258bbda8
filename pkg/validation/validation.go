package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/JobinJosh/venezuela-ecnomic-migrants/pkg/population"
)

// ErrInvalid is matched by the error a report returns from Err.
var ErrInvalid = errors.New("scenario is invalid")

// Level indicates which stage produced a finding. Schema findings come
// from the scenario file before a run; analytical ones from a finished run.
type Level string

const (
	LevelSchema     Level = "schema"
	LevelGeneration Level = "generation"
	LevelAnalytical Level = "analytical"
)

// Severity indicates how critical a finding is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Result is a single finding. Path uses the scenario's dotted field names,
// e.g. "income.min" or "education.higher".
type Result struct {
	Level        Level    `json:"level"`
	Severity     Severity `json:"severity"`
	Message      string   `json:"message"`
	Path         string   `json:"path"`
	ActualValue  any      `json:"actual_value,omitempty"`
	Expected     string   `json:"expected,omitempty"`
	ConflictWith string   `json:"conflict_with,omitempty"`
	Suggestions  []string `json:"suggestions,omitempty"`
}

// Report collects the findings of one or more stages.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []Result `json:"errors"`
	Warnings []Result `json:"warnings"`
	Info     []Result `json:"info"`
	Summary  string   `json:"summary"`
}

// NewReport creates an empty valid report.
func NewReport() *Report {
	r := &Report{
		Valid:    true,
		Errors:   []Result{},
		Warnings: []Result{},
		Info:     []Result{},
	}
	r.updateSummary()
	return r
}

// AddError adds an error and marks the report invalid.
func (r *Report) AddError(result Result) {
	r.add(SeverityError, result)
}

// AddWarning adds a warning.
func (r *Report) AddWarning(result Result) {
	r.add(SeverityWarning, result)
}

// AddInfo adds an informational finding.
func (r *Report) AddInfo(result Result) {
	r.add(SeverityInfo, result)
}

func (r *Report) add(sev Severity, result Result) {
	result.Severity = sev
	switch sev {
	case SeverityError:
		r.Errors = append(r.Errors, result)
		r.Valid = false
	case SeverityWarning:
		r.Warnings = append(r.Warnings, result)
	default:
		r.Info = append(r.Info, result)
	}
	r.updateSummary()
}

// AddParameterError records a generator rejection. Errors that are not
// parameter errors are recorded without a path.
func (r *Report) AddParameterError(err error) {
	res := Result{Level: LevelGeneration, Message: err.Error()}
	var pe *population.ParameterError
	if errors.As(err, &pe) {
		res.Message = pe.Reason
		res.Path = pe.Field
		res.ActualValue = pe.Value
	}
	r.AddError(res)
}

// Merge combines another report into this one.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.Info = append(r.Info, other.Info...)
	r.Valid = r.Valid && other.Valid
	r.updateSummary()
}

// HasErrorAt reports whether an error was recorded for the given path.
func (r *Report) HasErrorAt(path string) bool {
	for _, e := range r.Errors {
		if e.Path == path {
			return true
		}
	}
	return false
}

// Err returns nil for a valid report, otherwise an error listing every
// error finding. The error matches ErrInvalid.
func (r *Report) Err() error {
	if r.Valid {
		return nil
	}
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		if e.Path != "" {
			msgs = append(msgs, e.Path+": "+e.Message)
		} else {
			msgs = append(msgs, e.Message)
		}
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

func (r *Report) updateSummary() {
	r.Summary = fmt.Sprintf("%s, %s, %d info",
		plural(len(r.Errors), "error"), plural(len(r.Warnings), "warning"), len(r.Info))
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
