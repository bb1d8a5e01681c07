package httperr

import "errors"

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

var businessMessages = map[string]string{
	"invalid_date":        "Data inválida.",
	"invalid_date_range":  "A data final deve ser igual ou posterior à inicial.",
	"invalid_time":        "Horário inválido.",
	"invalid_time_range":  "O horário final deve ser posterior ao inicial.",
	"invalid_interval":    "Intervalo deve ser maior que zero.",
	"invalid_weekday":     "Dia da semana inválido.",
	"invalid_month":       "Mês inválido.",
	"batch_too_large":     "Lote de horários grande demais.",
	"batch_empty":         "Nenhum horário seria criado com esses filtros.",
	"invalid_day_index":   "Dia selecionado inválido.",
	"invalid_credentials": "Usuário ou senha inválidos.",
}

func businessMessage(code string) string {
	if msg, ok := businessMessages[code]; ok {
		return msg
	}
	return "Requisição inválida."
}
