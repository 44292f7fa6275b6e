package app

import (
	"errors"
	"fmt"
	"strings"
)

type PlanErrorCode string

const (
	ErrInvalidInput    PlanErrorCode = "INVALID_INPUT"
	ErrNamingDeviation PlanErrorCode = "NAMING_DEVIATION"
	ErrInternal        PlanErrorCode = "INTERNAL_ERROR"
)

// Warning codes prefix non-fatal messages attached to results.
const (
	WarnReconciliationFailure = "RECONCILIATION_FAILURE"
	WarnAllocationExhausted   = "ALLOCATION_EXHAUSTED"
	WarnBudgetExceeded        = "BUDGET_EXCEEDED"
)

// PlanError is the typed error returned by every planning operation.
type PlanError struct {
	Code    PlanErrorCode
	Message string
	Details []string
}

func (e *PlanError) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if len(e.Details) > 0 {
		msg += " (" + strings.Join(e.Details, "; ") + ")"
	}
	return msg
}

// InvalidInput wraps validation problems into a PlanError. Returns nil when errs is empty.
func InvalidInput(errs []error) *PlanError {
	if len(errs) == 0 {
		return nil
	}
	details := make([]string, len(errs))
	for i, err := range errs {
		details[i] = err.Error()
	}
	return &PlanError{
		Code:    ErrInvalidInput,
		Message: fmt.Sprintf("%d invalid field(s)", len(errs)),
		Details: details,
	}
}

// Warning formats a coded warning string.
func Warning(code, format string, args ...any) string {
	return code + ": " + fmt.Sprintf(format, args...)
}

// CodeOf extracts the PlanErrorCode from err, or ErrInternal for foreign errors.
func CodeOf(err error) PlanErrorCode {
	var pe *PlanError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ErrInternal
}
