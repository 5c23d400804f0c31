package httperr

import "errors"

// ===============================
// Erros de negócio (recuperáveis)
// ===============================

const (
	CodeNotFound          = "not_found"
	CodeUnauthorized      = "unauthorized"
	CodeInvalidState      = "invalid_state"
	CodeSlotUnavailable   = "slot_unavailable"
	CodeValidationError   = "validation_error"
	CodeAlreadyRated      = "already_rated"
	CodeInvalidTimeFormat = "invalid_time_format"
	CodeInvalidRange      = "invalid_range"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extrai o código de negócio, se houver.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
