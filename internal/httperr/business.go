package httperr

import "errors"

// BusinessError carrega uma falha de regra de negócio do usecase até o
// handler, que decide o status HTTP e a mensagem.
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
