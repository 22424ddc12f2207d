package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
)

// Mensagens por código de negócio (pt-BR, voltadas ao chamador)
var businessMessages = map[string]string{
	"consultant_not_found":      "Consultor não encontrado.",
	"client_not_found":          "Cliente não encontrado.",
	"session_not_found":         "Sessão não encontrada.",
	"availability_not_found":    "Janela de disponibilidade não encontrada.",
	"review_not_found":          "Avaliação não encontrada.",
	"user_not_found":            "Usuário não encontrado.",
	"invalid_time_range":        "Horário final deve ser depois do inicial.",
	"invalid_rating":            "Nota deve estar entre 1 e 5.",
	"availability_conflict":     "Janela conflita com disponibilidade existente.",
	"session_already_reviewed":  "Sessão já possui avaliação.",
	"user_already_consultant":   "Usuário já é consultor.",
	"user_already_client":       "Usuário já é cliente.",
	"consultant_not_verified":   "Consultor ainda não verificado.",
	"session_not_completed":     "Só sessões concluídas podem ser avaliadas.",
	"participants_mismatch":     "Consultor ou cliente não correspondem à sessão.",
	"invalid_status":            "Status de sessão desconhecido.",
	"invalid_status_transition": "Transição de status não permitida.",
	"invalid_messenger_type":    "Canal de mensagem desconhecido.",
}

var conflictCodes = map[string]bool{
	"availability_conflict":    true,
	"session_already_reviewed": true,
	"user_already_consultant":  true,
	"user_already_client":      true,
	"email_already_exists":     true,
}

// respondBusiness traduz erros de negócio para o status HTTP certo;
// qualquer outro erro vira 500 com o código de fallback.
func respondBusiness(c *gin.Context, err error, fallbackCode string) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, fallbackCode, "Erro interno.")
		return
	}

	msg := businessMessages[code]
	if msg == "" {
		msg = "Operação não permitida."
	}

	switch {
	case strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, msg)
	case conflictCodes[code]:
		httperr.Conflict(c, code, msg)
	default:
		httperr.BadRequest(c, code, msg)
	}
}
