package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/StudioNavalha/agenda-api/internal/httperr"
)

// businessMessages traduz os códigos estáveis de regra de negócio para a
// mensagem exibida ao usuário.
var businessMessages = map[string]string{
	"closed_day":               "O barbeiro não atende neste dia.",
	"outside_working_hours":    "Fora do horário de atendimento.",
	"during_break":             "Horário dentro da pausa do barbeiro.",
	"time_conflict":            "Conflito de horário.",
	"too_soon":                 "Horário muito próximo. Escolha outro.",
	"invalid_date_or_time":     "Data ou hora inválida.",
	"invalid_state":            "O agendamento não permite esta operação.",
	"product_not_found":        "Serviço não encontrado.",
	"product_without_duration": "Serviço sem duração configurada.",
	"appointment_not_found":    "Agendamento não encontrado.",
}

// mapBusinessError converte erros dos use cases em resposta HTTP: conflito de
// horário vira 409, os demais códigos de negócio viram 400, e o resto 500.
func mapBusinessError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	msg, ok := businessMessages[code]
	if !ok {
		msg = "Operação inválida."
	}

	switch code {
	case "time_conflict":
		httperr.Conflict(c, code, msg)
	case "appointment_not_found":
		httperr.NotFound(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
