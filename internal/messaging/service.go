package messaging

import (
	"context"

	domain "github.com/BruksfildServices01/consult-scheduler/internal/domain/session"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
)

// Service despacha mensagens pelo canal pedido e, quando a mensagem
// referencia uma sessão, registra o canal nela. Falha de entrega não
// derruba o fluxo de agendamento — o resultado volta pro chamador.
type Service struct {
	telegram Messenger
	whatsapp Messenger
	sessions domain.Repository
}

func NewService(
	telegram Messenger,
	whatsapp Messenger,
	sessions domain.Repository,
) *Service {
	return &Service{
		telegram: telegram,
		whatsapp: whatsapp,
		sessions: sessions,
	}
}

type SendInput struct {
	RecipientID   string
	Text          string
	MessengerType MessengerType
	SessionID     string
}

func (s *Service) Send(ctx context.Context, in SendInput) (SendResult, error) {

	messenger, err := s.byType(in.MessengerType)
	if err != nil {
		return SendResult{}, err
	}

	result := messenger.Send(ctx, Payload{
		RecipientID: in.RecipientID,
		Text:        in.Text,
		SessionID:   in.SessionID,
	})

	if in.SessionID != "" && result.Success {
		if err := s.recordChannel(ctx, in); err != nil {
			return SendResult{}, err
		}
	}

	return result, nil
}

func (s *Service) recordChannel(ctx context.Context, in SendInput) error {
	sess, err := s.sessions.GetByID(ctx, in.SessionID)
	if err != nil {
		return httperr.AsNotFound(err, "session_not_found")
	}

	sess.MessengerID = in.RecipientID
	sess.MessengerType = string(in.MessengerType)

	return s.sessions.Update(ctx, sess)
}

func (s *Service) byType(t MessengerType) (Messenger, error) {
	switch t {
	case TypeTelegram:
		return s.telegram, nil
	case TypeWhatsApp:
		return s.whatsapp, nil
	default:
		return nil, httperr.ErrBusiness("invalid_messenger_type")
	}
}
