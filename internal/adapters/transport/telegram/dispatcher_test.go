package telegram

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hakambing/bikebuddy-bot/internal/bot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	mu       sync.Mutex
	sent     []tgbotapi.Chattable
	answered []string
	sendErr  error
}

func (s *recordingSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, c)
	return tgbotapi.Message{}, s.sendErr
}

func (s *recordingSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if callback, ok := c.(tgbotapi.CallbackConfig); ok {
		s.answered = append(s.answered, callback.CallbackQueryID)
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (s *recordingSender) textsFor(chatID int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var texts []string
	for _, c := range s.sent {
		if msg, ok := c.(tgbotapi.MessageConfig); ok && msg.ChatID == chatID {
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

// echoHandler replies with the text or callback it was given.
type echoHandler struct{}

func (echoHandler) Handle(_ context.Context, ev bot.Event) []bot.Reply {
	if ev.Callback != "" {
		return []bot.Reply{{Text: "pressed " + ev.Callback}}
	}
	return []bot.Reply{{Text: string(ev.ConversationID) + ":" + ev.Text}}
}

func TestDispatcherKeepsPerChatOrder(t *testing.T) {
	t.Parallel()

	out := &recordingSender{}
	d := newDispatcher(echoHandler{}, out, 32)
	ctx := context.Background()

	for i := range 20 {
		d.dispatch(ctx, messageUpdate(1, fmt.Sprintf("m%d", i)))
		d.dispatch(ctx, messageUpdate(2, fmt.Sprintf("m%d", i)))
	}
	d.close()

	for _, chatID := range []int64{1, 2} {
		texts := out.textsFor(chatID)
		require.Len(t, texts, 20)
		for i, text := range texts {
			assert.Equal(t, fmt.Sprintf("%d:m%d", chatID, i), text)
		}
	}
}

func TestDispatcherAnswersCallbacks(t *testing.T) {
	t.Parallel()

	out := &recordingSender{}
	d := newDispatcher(echoHandler{}, out, 0)

	d.dispatch(context.Background(), callbackUpdate(5, "query-1", "step:today"))
	d.close()

	assert.Equal(t, []string{"query-1"}, out.answered)
	assert.Equal(t, []string{"pressed step:today"}, out.textsFor(5))
}

func TestDispatcherSkipsUpdatesWithoutChat(t *testing.T) {
	t.Parallel()

	out := &recordingSender{}
	d := newDispatcher(echoHandler{}, out, 0)

	d.dispatch(context.Background(), tgbotapi.Update{UpdateID: 9})
	d.close()

	assert.Empty(t, out.sent)
}

func TestDispatcherIgnoresUpdatesAfterClose(t *testing.T) {
	t.Parallel()

	out := &recordingSender{}
	d := newDispatcher(echoHandler{}, out, 0)
	d.close()

	d.dispatch(context.Background(), messageUpdate(1, "late"))
	assert.Empty(t, out.sent)
}

func TestDispatcherContinuesAfterSendFailure(t *testing.T) {
	t.Parallel()

	out := &recordingSender{sendErr: errors.New("network down")}
	d := newDispatcher(echoHandler{}, out, 0)

	d.dispatch(context.Background(), messageUpdate(1, "a"))
	d.dispatch(context.Background(), messageUpdate(1, "b"))
	d.close()

	assert.Equal(t, []string{"1:a", "1:b"}, out.textsFor(1))
}

// gatedHandler holds chat 1 inside Handle until release is closed.
type gatedHandler struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedHandler() *gatedHandler {
	return &gatedHandler{started: make(chan struct{}), release: make(chan struct{})}
}

func (h *gatedHandler) Handle(ctx context.Context, ev bot.Event) []bot.Reply {
	if ev.ConversationID == "1" {
		h.once.Do(func() { close(h.started) })
		<-h.release
	}
	return echoHandler{}.Handle(ctx, ev)
}

func TestDispatcherSlowChatDoesNotBlockOthers(t *testing.T) {
	t.Parallel()

	out := &recordingSender{}
	handler := newGatedHandler()
	d := newDispatcher(handler, out, 1)
	ctx := context.Background()

	d.dispatch(ctx, messageUpdate(1, "m0"))
	<-handler.started

	d.dispatch(ctx, messageUpdate(1, "m1"))
	d.dispatch(ctx, messageUpdate(1, "m2"))
	d.dispatch(ctx, messageUpdate(2, "x"))

	assert.Eventually(t, func() bool {
		return len(out.textsFor(2)) == 1
	}, 2*time.Second, 5*time.Millisecond)

	close(handler.release)
	d.close()

	assert.Equal(t, []string{"1:m0", "1:m1"}, out.textsFor(1))
	assert.Equal(t, []string{"2:x"}, out.textsFor(2))
}

func TestDispatcherRetiresIdleWorkers(t *testing.T) {
	t.Parallel()

	out := &recordingSender{}
	d := newDispatcher(echoHandler{}, out, 0)
	d.idleTimeout = 20 * time.Millisecond
	ctx := context.Background()

	d.dispatch(ctx, messageUpdate(1, "a"))
	assert.Eventually(t, func() bool {
		return d.activeWorkers() == 0
	}, 2*time.Second, 5*time.Millisecond)

	d.dispatch(ctx, messageUpdate(1, "b"))
	d.close()

	assert.Equal(t, []string{"1:a", "1:b"}, out.textsFor(1))
	assert.Zero(t, d.activeWorkers())
}

func (d *dispatcher) activeWorkers() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.workers)
}
