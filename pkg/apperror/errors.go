package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err, or any error it wraps, is an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Error codes.
const (
	CodeDecryption    = "BRIT_001"
	CodeParse         = "BRIT_002"
	CodeKeyDerivation = "BRIT_003"
	CodeEncryption    = "BRIT_004"
	CodeInvalidAddr   = "BRIT_005"
	CodeInvalidWallet = "BRIT_006"
	CodeInternal      = "SYS_001"
	CodeInvalidToken  = "AUTH_003"
	CodeRateLimit     = "RATE_001"
	CodeValidation    = "VAL_001"
	CodeBodyTooLarge  = "VAL_002"
	CodeNotFound      = "NF_001"
)

// ---- BRIT exchange (BRIT) ----

func ErrDecryption(err error) *AppError {
	return Wrap(CodeDecryption, "Unable to decrypt payer request", http.StatusBadRequest, err)
}

func ErrParse(err error) *AppError {
	return Wrap(CodeParse, "Malformed payer request", http.StatusBadRequest, err)
}

func ErrKeyDerivation(err error) *AppError {
	return Wrap(CodeKeyDerivation, "Key derivation failure", http.StatusInternalServerError, err)
}

func ErrEncryption(err error) *AppError {
	return Wrap(CodeEncryption, "Encryption service failure", http.StatusInternalServerError, err)
}

func ErrInvalidAddress(address string, err error) *AppError {
	return Wrap(CodeInvalidAddr, fmt.Sprintf("Invalid bitcoin address %q", address), http.StatusBadRequest, err)
}

func ErrInvalidWalletID(err error) *AppError {
	return Wrap(CodeInvalidWallet, "Invalid wallet identifier", http.StatusBadRequest, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimit, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- Lookups (NF) ----

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- System & Infrastructure (SYS) ----

// ErrStore wraps a persistence failure. The exchange that hit it must be retried as a whole.
func ErrStore(err error) *AppError {
	return Wrap(CodeInternal, "Internal store error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func ErrBodyTooLarge(limit int64) *AppError {
	return New(CodeBodyTooLarge, fmt.Sprintf("Request body exceeds %d bytes", limit), http.StatusRequestEntityTooLarge)
}
