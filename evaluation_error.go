package jsonschema

import "github.com/kaptinlin/go-i18n"

// EvaluationError is the English-rendered and localizable form of a failed
// ResultScope, grounded in the teacher's EvaluationError/NewEvaluationError
// pattern: a keyword name, a stable code, a templated message, and the
// parameters used to fill the template.
type EvaluationError struct {
	Keyword string         `json:"keyword"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params"`
}

func (e *EvaluationError) Error() string { return replace(e.Message, e.Params) }

// Localize renders the error via a go-i18n localizer keyed by e.Code,
// falling back to the English message if localizer is nil.
func (e *EvaluationError) Localize(localizer *i18n.Localizer) string {
	if localizer == nil {
		return e.Error()
	}
	return localizer.Get(e.Code, i18n.Vars(e.Params))
}

// AsEvaluationError converts a failed scope into an EvaluationError, or nil
// if the scope did not fail or carries no error code of its own (a
// schema-level scope that failed only through its keyword children).
func (s *ResultScope) AsEvaluationError() *EvaluationError {
	if s.State != StateFailed || s.ErrorCode == "" {
		return nil
	}
	return &EvaluationError{Keyword: s.Keyword, Code: s.ErrorCode, Message: s.Error, Params: s.ErrorArgs}
}
