package forms

import (
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/hidrodema/obra-forms/forms/mask"
)

// ValidationError is a single user-correctable violation tied to one
// question.
type ValidationError struct {
	QuestionID string
	Message    string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.QuestionID, e.Message)
}

// Validate runs the full required-field validator over the active
// sections. Violations are collected in full and returned together:
// fail-fast per field, fail-slow across fields. A nil result means the
// submission may proceed.
func Validate(f *Form, answers AnswerMap) error {
	var result *multierror.Error

	active := map[string]bool{}
	for _, s := range f.ActiveSections(answers) {
		active[s] = true
	}

	for _, q := range f.Questions {
		if !active[q.Section] {
			continue
		}
		if err := validateQuestion(q, answers); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func validateQuestion(q Question, answers AnswerMap) error {
	if q.Type == Matrix {
		if !q.Required {
			return nil
		}
		for _, key := range q.AnswerKeys() {
			if answers.Empty(key) {
				return ValidationError{q.ID, fmt.Sprintf("campo obrigatório %q não preenchido", q.Label)}
			}
		}
		return nil
	}

	if answers.Empty(q.ID) {
		if q.Required {
			return ValidationError{q.ID, fmt.Sprintf("campo obrigatório %q não preenchido", q.Label)}
		}
		return nil
	}

	value := answers.String(q.ID)
	switch {
	case q.Type == Date:
		_, err := time.Parse("2006-01-02", value)
		if err != nil {
			return ValidationError{q.ID, fmt.Sprintf("data inválida em %q", q.Label)}
		}
	case q.Mask == mask.CPF && len(value) != 11:
		return ValidationError{q.ID, fmt.Sprintf("CPF inválido em %q", q.Label)}
	case q.Mask == mask.CNPJ && len(value) != 14:
		return ValidationError{q.ID, fmt.Sprintf("CNPJ inválido em %q", q.Label)}
	case q.Mask == mask.CPFOrCNPJ && len(value) != 11 && len(value) != 14:
		return ValidationError{q.ID, fmt.Sprintf("CPF/CNPJ inválido em %q", q.Label)}
	}
	return nil
}

// ValidateDraft is the relaxed validator for draft-status saves: masked
// values must still be well formed, but required fields may be missing.
func ValidateDraft(f *Form, answers AnswerMap) error {
	var result *multierror.Error

	for _, q := range f.Questions {
		if answers.Empty(q.ID) {
			continue
		}
		relaxed := q
		relaxed.Required = false
		if err := validateQuestion(relaxed, answers); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
