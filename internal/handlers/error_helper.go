package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// Mensagens por código de negócio.
var businessMessages = map[string]string{
	httperr.CodeNotFound:          "Recurso não encontrado.",
	httperr.CodeUnauthorized:      "Você não tem permissão para esta operação.",
	httperr.CodeInvalidState:      "O agendamento não permite esta transição.",
	httperr.CodeSlotUnavailable:   "Horário indisponível. Tente outro horário.",
	httperr.CodeValidationError:   "Dados inválidos.",
	httperr.CodeAlreadyRated:      "Este agendamento já foi avaliado.",
	httperr.CodeInvalidTimeFormat: "Horário inválido. Use o formato HH:MM.",
	httperr.CodeInvalidRange:      "Intervalo de horário inválido.",
}

// writeBusinessError converte erros de negócio em resposta HTTP;
// erros desconhecidos viram 500 genérico.
func writeBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	msg := businessMessages[code]

	switch code {
	case httperr.CodeNotFound:
		httperr.NotFound(c, code, msg)
	case httperr.CodeUnauthorized:
		httperr.Forbidden(c, code, msg)
	case httperr.CodeSlotUnavailable, httperr.CodeInvalidState, httperr.CodeAlreadyRated:
		httperr.Write(c, 409, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
