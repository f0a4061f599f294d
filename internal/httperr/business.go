package httperr

import (
	"errors"
	"net/http"
)

const (
	CodeCredentialsMissing = "credentials_missing"
	CodeSheetNotFound      = "sheet_not_found"
	CodeRowNotFound        = "row_not_found"
	CodeDuplicate          = "duplicate_record"
	CodeInvalid            = "invalid_request"
)

// BusinessError carries a stable code for status mapping and the
// message shown to the caller.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

var (
	ErrCredentialsMissing = ErrBusiness(CodeCredentialsMissing, "Credenciais não carregadas no servidor.")
	ErrRowNotFound        = ErrBusiness(CodeRowNotFound, "Não encontrado")
)

func SheetNotFound(name string) error {
	return ErrBusiness(CodeSheetNotFound, "Aba '"+name+"' não encontrada.")
}

func RowNotFound(message string) error {
	return ErrBusiness(CodeRowNotFound, message)
}

func Duplicate(message string) error {
	return ErrBusiness(CodeDuplicate, message)
}

func Invalid(message string) error {
	return ErrBusiness(CodeInvalid, message)
}

func statusFor(code string) int {
	switch code {
	case CodeRowNotFound:
		return http.StatusNotFound
	case CodeDuplicate:
		return http.StatusConflict
	case CodeInvalid:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
