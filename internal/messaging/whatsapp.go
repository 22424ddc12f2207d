package messaging

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// WhatsAppMessenger espelha o provedor do Telegram para o canal
// WhatsApp Business.
type WhatsAppMessenger struct {
	apiToken string
}

func NewWhatsAppMessenger(apiToken string) *WhatsAppMessenger {
	return &WhatsAppMessenger{apiToken: apiToken}
}

func (m *WhatsAppMessenger) Send(ctx context.Context, payload Payload) SendResult {
	log.Printf("[whatsapp] message to %s: %s", payload.RecipientID, payload.Text)

	return SendResult{
		Success:   true,
		MessageID: "whatsapp_msg_" + uuid.NewString(),
	}
}

func (m *WhatsAppMessenger) ChannelName() string {
	return string(TypeWhatsApp)
}

// Compile-time check
var _ Messenger = (*WhatsAppMessenger)(nil)
