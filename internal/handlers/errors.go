package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ultramind-solutions/agendepro/internal/httperr"
)

var businessErrorMessages = map[string]string{
	httperr.CodeBusinessNotFound:     "Negócio não encontrado.",
	httperr.CodeInvalidConfiguration: "Configuração de agenda inválida.",
	httperr.CodeDateNotBookable:      "O negócio não atende nesta data.",
	httperr.CodeSlotUnavailable:      "Este horário não está mais disponível.",
	httperr.CodeEmptyName:            "Informe o nome do cliente.",
	httperr.CodeInvalidPhone:         "Informe um WhatsApp válido com DDD.",
	httperr.CodeServiceNotFound:      "Serviço não encontrado ou inativo.",
	httperr.CodeInvalidState:         "O agendamento não permite esta transição.",
	httperr.CodeInvalidDate:          "Data inválida, use o formato AAAA-MM-DD.",
	"appointment_not_found":          "Agendamento não encontrado.",
}

// writeBusinessError traduz erros de negócio dos casos de uso para o
// envelope HTTP. Erros sem código viram 500 genérico.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.AsBusiness(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno, tente novamente.")
		return
	}

	message := businessErrorMessages[code]
	if message == "" {
		message = code
	}

	switch code {
	case httperr.CodeBusinessNotFound,
		httperr.CodeServiceNotFound,
		"appointment_not_found":
		httperr.NotFound(c, code, message)
	case httperr.CodeSlotUnavailable:
		httperr.Conflict(c, code, message)
	case httperr.CodeInvalidConfiguration:
		httperr.Internal(c, code, message)
	default:
		httperr.BadRequest(c, code, message)
	}
}
