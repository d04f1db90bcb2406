package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer       = errors.New("Erro interno do servidor")
	ErrClient               = errors.New("Requisição inválida")
	ErrRegistrationNotFound = errors.New("Cadastro não encontrado")
	ErrProductNotFound      = errors.New("Produto não encontrado")
	ErrReservationNotFound  = errors.New("Reserva não encontrada")
	ErrNoProductMatch       = errors.New("Nenhum produto encontrado com os filtros aplicados.")
	ErrNoReservationMatch   = errors.New("Nenhuma reserva encontrada com os filtros aplicados.")
)

var errorMap = map[error]int{
	ErrInternalServer:       http.StatusInternalServerError,
	ErrClient:               http.StatusBadRequest,
	ErrRegistrationNotFound: http.StatusNotFound,
	ErrProductNotFound:      http.StatusNotFound,
	ErrReservationNotFound:  http.StatusNotFound,
	ErrNoProductMatch:       http.StatusNotFound,
	ErrNoReservationMatch:   http.StatusNotFound,
}

var errorCodeMap = map[error]string{
	ErrInternalServer:       "STORE_FAILURE",
	ErrClient:               "BAD_REQUEST",
	ErrRegistrationNotFound: "NOT_FOUND",
	ErrProductNotFound:      "NOT_FOUND",
	ErrReservationNotFound:  "NOT_FOUND",
	ErrNoProductMatch:       "NO_MATCH",
	ErrNoReservationMatch:   "NO_MATCH",
}

// GetErrorStatusCode maps an error to its HTTP status. Lookup goes through
// errors.Is so wrapped store failures still resolve; anything unknown is a 500.
func GetErrorStatusCode(err error) int {
	for sentinel, statusCode := range errorMap {
		if errors.Is(err, sentinel) {
			return statusCode
		}
	}
	return http.StatusInternalServerError
}

// GetErrorCode returns the machine-readable code carried on every error
// response. Unknown errors are store failures.
func GetErrorCode(err error) string {
	for sentinel, code := range errorCodeMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return "STORE_FAILURE"
}
