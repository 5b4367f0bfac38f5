package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInternal     = errors.New("internal error")
	ErrDatabase     = errors.New("database error")
	ErrValidation   = errors.New("validation failed")

	// AI provider failures, classified at the extraction client.
	ErrRateLimited        = errors.New("ai provider rate limited")
	ErrInvalidCredentials = errors.New("ai provider rejected credentials")
	ErrProviderTimeout    = errors.New("ai provider timed out")

	// ErrNoProducts means extraction ran but yielded zero usable lines.
	ErrNoProducts = errors.New("no products extracted")
)

// NewAppError creates a new AppError
func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// User-safe messages surfaced by jobs and HTTP responses. Raw provider
// error text never leaves the orchestrator boundary.
const (
	MsgQuotaExceeded      = "Quota IA dépassé, réessayez dans quelques minutes"
	MsgInvalidCredentials = "Clé API du fournisseur IA invalide"
	MsgTimeout            = "Délai d'extraction dépassé"
	MsgNoProducts         = "Aucun produit extrait de la facture"
	MsgGenericFailure     = "Échec du traitement de la facture"
)

// UserSafeMessage maps an internal pipeline error onto the fixed set of
// client-visible messages.
func UserSafeMessage(err error) string {
	switch {
	case errors.Is(err, ErrRateLimited):
		return MsgQuotaExceeded
	case errors.Is(err, ErrInvalidCredentials):
		return MsgInvalidCredentials
	case errors.Is(err, ErrProviderTimeout):
		return MsgTimeout
	case errors.Is(err, ErrNoProducts):
		return MsgNoProducts
	default:
		return MsgGenericFailure
	}
}
