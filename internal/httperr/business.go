package httperr

import (
	"errors"

	"gorm.io/gorm"
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

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// AsNotFound converte "registro inexistente" do gorm num código de
// negócio estável; demais erros passam intactos.
func AsNotFound(err error, code string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBusiness(code)
	}
	return err
}
