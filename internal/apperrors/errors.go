package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the request conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict")

// ErrCrossTenant indicates a referenced entity belongs to another company.
var ErrCrossTenant = errors.New("entity belongs to another company")

// ErrInsufficientFunds indicates a debit would overdraw an account under the block policy.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrForbidden indicates the user is not allowed to perform the action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrInternal indicates an unexpected failure.
var ErrInternal = errors.New("internal error")

// LedgerErrorKind is the closed set of failure classes surfaced by the ledger.
type LedgerErrorKind string

const (
	KindValidation        LedgerErrorKind = "VALIDATION"
	KindCrossTenant       LedgerErrorKind = "CROSS_TENANT"
	KindNotFound          LedgerErrorKind = "NOT_FOUND"
	KindConflict          LedgerErrorKind = "CONFLICT"
	KindInsufficientFunds LedgerErrorKind = "INSUFFICIENT_FUNDS"
	KindForbidden         LedgerErrorKind = "FORBIDDEN"
	KindUnauthorized      LedgerErrorKind = "UNAUTHORIZED"
	KindInternal          LedgerErrorKind = "INTERNAL"
)

// HTTPStatus maps a kind onto the status code returned by the API.
// Cross-tenant lookups answer 404 so the existence of foreign rows is not revealed.
func (k LedgerErrorKind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound, KindCrossTenant:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindInsufficientFunds:
		return http.StatusUnprocessableEntity
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// LedgerError carries a kind and the operation that produced it.
type LedgerError struct {
	Kind LedgerErrorKind
	Op   string
	Err  error
}

func (e *LedgerError) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError wraps err with a kind and operation name.
func NewLedgerError(kind LedgerErrorKind, op string, err error) *LedgerError {
	if err == nil {
		err = sentinelFor(kind)
	}
	return &LedgerError{Kind: kind, Op: op, Err: err}
}

// NewValidationError builds a validation failure with a formatted message.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NewNotFoundError reports a missing entity by name and id.
func NewNotFoundError(entity, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, entity, id)
}

// NewCrossTenantError reports an entity that exists but belongs to another company.
func NewCrossTenantError(entity, id string) error {
	return NewLedgerError(KindCrossTenant, entity, fmt.Errorf("%w: %s %s", ErrCrossTenant, entity, id))
}

// KindOf classifies any error into a LedgerErrorKind.
func KindOf(err error) LedgerErrorKind {
	if err == nil {
		return ""
	}
	var le *LedgerError
	if errors.As(err, &le) {
		return le.Kind
	}
	switch {
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrCrossTenant):
		return KindCrossTenant
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrDuplicate), errors.Is(err, ErrConflict):
		return KindConflict
	case errors.Is(err, ErrInsufficientFunds):
		return KindInsufficientFunds
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	default:
		return KindInternal
	}
}

func sentinelFor(kind LedgerErrorKind) error {
	switch kind {
	case KindValidation:
		return ErrValidation
	case KindCrossTenant:
		return ErrCrossTenant
	case KindNotFound:
		return ErrNotFound
	case KindConflict:
		return ErrConflict
	case KindInsufficientFunds:
		return ErrInsufficientFunds
	case KindForbidden:
		return ErrForbidden
	case KindUnauthorized:
		return ErrUnauthorized
	default:
		return ErrInternal
	}
}
