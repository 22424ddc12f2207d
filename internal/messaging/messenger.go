package messaging

import "context"

// ===============================
// Messenger Type
// ===============================

// MessengerType é um conjunto fechado de canais: novos canais entram
// aqui e no switch do serviço, nunca por lookup dinâmico de string.
type MessengerType string

const (
	TypeTelegram MessengerType = "telegram"
	TypeWhatsApp MessengerType = "whatsapp"
)

func (t MessengerType) Valid() bool {
	return t == TypeTelegram || t == TypeWhatsApp
}

// ===============================
// Capability interface
// ===============================

type Payload struct {
	RecipientID string
	Text        string
	SessionID   string
}

type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

type Messenger interface {
	Send(ctx context.Context, payload Payload) SendResult
	ChannelName() string
}
