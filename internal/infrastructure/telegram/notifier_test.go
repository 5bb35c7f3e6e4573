package telegram

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/foodhub-web/internal/domain/entity"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.Chattable
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: len(f.sent)}, f.err
}

// blockedSender no responde hasta que se cierre release.
type blockedSender struct {
	release chan struct{}
}

func (b *blockedSender) Send(tgbotapi.Chattable) (tgbotapi.Message, error) {
	<-b.release
	return tgbotapi.Message{}, nil
}

func TestNotifier_EnviaAlChatDeCocina(t *testing.T) {
	bot := &fakeSender{}
	n := NewNotifier(bot, 4242, nil)

	require.NoError(t, n.OrderStatusChanged(context.Background(), "o-7", entity.OrderPreparing))
	require.Len(t, bot.sent, 1)

	msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
	require.True(t, ok)
	assert.Equal(t, int64(4242), msg.ChatID)
	assert.Equal(t, "Pedido #o-7 → Preparing", msg.Text)
}

func TestNotifier_PropagaErrorDeEnvio(t *testing.T) {
	n := NewNotifier(&fakeSender{err: errors.New("chat not found")}, 1, nil)

	err := n.OrderStatusChanged(context.Background(), "o-1", entity.OrderReady)
	assert.ErrorContains(t, err, "chat not found")
}

func TestNew_SinTokenEsNoop(t *testing.T) {
	n, err := New("", 0, nil)
	require.NoError(t, err)
	assert.IsType(t, Noop{}, n)
	assert.NoError(t, n.OrderStatusChanged(context.Background(), "o-1", entity.OrderReady))
}

func TestNotifier_TelegramLentoRespetaDeadline(t *testing.T) {
	bot := &blockedSender{release: make(chan struct{})}
	t.Cleanup(func() { close(bot.release) })
	n := NewNotifier(bot, 1, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := n.OrderStatusChanged(ctx, "o-1", entity.OrderReady)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second, "no debe esperar a Telegram")
}

func TestNotifier_ContextoCanceladoNoEnvia(t *testing.T) {
	bot := &fakeSender{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewNotifier(bot, 1, nil).OrderStatusChanged(ctx, "o-1", entity.OrderReady)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, bot.sent)
}
