package httperr

import "errors"

// Códigos de erro de negócio do fluxo de agendamento.
const (
	CodeBusinessNotFound     = "business_not_found"
	CodeInvalidConfiguration = "invalid_configuration"
	CodeDateNotBookable      = "date_not_bookable"
	CodeSlotUnavailable      = "slot_unavailable"
	CodeEmptyName            = "empty_name"
	CodeInvalidPhone         = "invalid_phone"
	CodeServiceNotFound      = "service_not_found"
	CodeInvalidState         = "invalid_state"
	CodeInvalidDate          = "invalid_date"
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

// AsBusiness extrai o código de negócio, se houver.
func AsBusiness(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
