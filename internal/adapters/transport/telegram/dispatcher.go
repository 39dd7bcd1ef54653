package telegram

import (
	"context"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hakambing/bikebuddy-bot/internal/bot"
	"github.com/rs/zerolog/log"
)

const (
	defaultQueueSize  = 16
	defaultIdleWorker = 10 * time.Minute
)

type Handler interface {
	Handle(ctx context.Context, ev bot.Event) []bot.Reply
}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// dispatcher runs one worker per chat so that updates of a chat are handled in
// arrival order while different chats proceed in parallel. Enqueueing never blocks
// the polling loop: an update for a chat whose queue is full is dropped. Workers
// exit after idleTimeout without updates.
type dispatcher struct {
	handler     Handler
	out         sender
	queueSize   int
	idleTimeout time.Duration

	mu      sync.Mutex
	workers map[int64]chan tgbotapi.Update
	closed  bool
	wg      sync.WaitGroup
}

func newDispatcher(handler Handler, out sender, queueSize int) *dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &dispatcher{
		handler:     handler,
		out:         out,
		queueSize:   queueSize,
		idleTimeout: defaultIdleWorker,
		workers:     make(map[int64]chan tgbotapi.Update),
	}
}

func (d *dispatcher) dispatch(ctx context.Context, update tgbotapi.Update) {
	chatID, ok := chatOf(update)
	if !ok {
		log.Debug().Int("update_id", update.UpdateID).Msg("skipping update without chat")
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	queue, exists := d.workers[chatID]
	if !exists {
		queue = make(chan tgbotapi.Update, d.queueSize)
		d.workers[chatID] = queue
		d.wg.Add(1)
		go d.work(ctx, chatID, queue)
	}

	// Sending under the lock keeps a retiring worker from missing the update.
	select {
	case queue <- update:
	default:
		log.Warn().
			Int64("chat_id", chatID).
			Int("update_id", update.UpdateID).
			Msg("chat queue full, dropping update")
	}
}

// close stops accepting updates and waits for queued ones to finish.
func (d *dispatcher) close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		for chatID, queue := range d.workers {
			close(queue)
			delete(d.workers, chatID)
		}
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *dispatcher) work(ctx context.Context, chatID int64, queue chan tgbotapi.Update) {
	defer d.wg.Done()

	idle := time.NewTimer(d.idleTimeout)
	defer idle.Stop()

	for {
		select {
		case update, ok := <-queue:
			if !ok {
				return
			}
			d.process(ctx, chatID, update)
			idle.Reset(d.idleTimeout)
		case <-idle.C:
			if d.retire(chatID, queue) {
				return
			}
			idle.Reset(d.idleTimeout)
		}
	}
}

// retire removes an idle worker unless an update arrived in the meantime.
func (d *dispatcher) retire(chatID int64, queue chan tgbotapi.Update) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed || len(queue) > 0 || d.workers[chatID] != queue {
		return false
	}
	delete(d.workers, chatID)
	return true
}

func (d *dispatcher) process(ctx context.Context, chatID int64, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		if _, err := d.out.Request(tgbotapi.NewCallback(update.CallbackQuery.ID, "")); err != nil {
			log.Warn().Err(err).Int64("chat_id", chatID).Msg("answer callback query")
		}
	}

	replies := d.handler.Handle(ctx, toEvent(chatID, update))
	for _, reply := range replies {
		for _, msg := range toChattables(chatID, reply) {
			if _, err := d.out.Send(msg); err != nil {
				log.Error().Err(err).Int64("chat_id", chatID).Msg("send reply")
			}
		}
	}
}
