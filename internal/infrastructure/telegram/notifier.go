// Package telegram avisa a la cocina de los cambios de estado de pedidos.
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jhoicas/foodhub-web/internal/application/ports"
	"github.com/jhoicas/foodhub-web/internal/domain/entity"
	"github.com/jhoicas/foodhub-web/pkg/logger"
)

var (
	_ ports.OrderNotifier = (*Notifier)(nil)
	_ ports.OrderNotifier = Noop{}
)

// sendTimeout tope de cada llamada a la API de Telegram.
const sendTimeout = 5 * time.Second

// Sender subconjunto de *tgbotapi.BotAPI que usa el notificador.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier envía un mensaje al chat de cocina configurado.
type Notifier struct {
	bot    Sender
	chatID int64
	log    *logger.Logger
}

// New conecta con la API de Telegram. Sin token devuelve Noop.
func New(token string, chatID int64, log *logger.Logger) (ports.OrderNotifier, error) {
	if token == "" || chatID == 0 {
		return Noop{}, nil
	}
	api, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{Timeout: sendTimeout})
	if err != nil {
		return nil, fmt.Errorf("telegram: conectar bot: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	log.Info().Str("bot", api.Self.UserName).Int64("chat_id", chatID).Msg("notificador de cocina activo")
	return NewNotifier(api, chatID, log), nil
}

// NewNotifier construye el notificador sobre un Sender ya conectado.
func NewNotifier(bot Sender, chatID int64, log *logger.Logger) *Notifier {
	if log == nil {
		log = logger.Nop()
	}
	return &Notifier{bot: bot, chatID: chatID, log: log}
}

// OrderStatusChanged envía "Pedido #id → Estado". Respeta el deadline de ctx:
// si vence antes de que Telegram responda, devuelve ctx.Err() y el envío
// sigue en segundo plano.
func (n *Notifier) OrderStatusChanged(ctx context.Context, orderID string, status entity.OrderStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("Pedido #%s → %s", orderID, status.Label()))

	done := make(chan error, 1)
	go func() {
		_, err := n.bot.Send(msg)
		done <- err
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("telegram: enviar mensaje: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("telegram: enviar mensaje: %w", err)
		}
	}
	n.log.Debug().Str("order_id", orderID).Str("status", string(status)).Msg("cocina notificada")
	return nil
}

// Noop notificador desactivado.
type Noop struct{}

func (Noop) OrderStatusChanged(context.Context, string, entity.OrderStatus) error { return nil }
